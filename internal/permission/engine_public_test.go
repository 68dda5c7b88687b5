// Copyright (c) 2026 John Dewey

// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to
// deal in the Software without restriction, including without limitation the
// rights to use, copy, modify, merge, publish, distribute, sublicense, and/or
// sell copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:

// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.

// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING
// FROM, OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER
// DEALINGS IN THE SOFTWARE.

package permission_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/scopekit-io/scopekit/internal/permission"
)

type EnginePublicTestSuite struct {
	suite.Suite

	engine *permission.Engine
}

func (s *EnginePublicTestSuite) SetupTest() {
	s.engine = permission.Compile([]permission.Role{
		{
			ID:      "local-reporter",
			Context: permission.ContextLocal,
			Permissions: []string{
				"Report.Read.reportA",
				"Report.Write.reportA",
				"User.Read",
			},
		},
		{
			ID:      "global-admin",
			Context: permission.ContextGlobal,
			Permissions: []string{
				"User.ReadWrite.All",
				"Audit.Read.All",
			},
		},
	})
}

func (s *EnginePublicTestSuite) TestCheck() {
	tests := []struct {
		name       string
		permission string
		want       bool
	}{
		{
			name:       "granted in local context only",
			permission: "Report.Read.reportA",
			want:       true,
		},
		{
			name:       "granted in global context only",
			permission: "Audit.Read.anything",
			want:       true,
		},
		{
			name:       "resource not in specific set",
			permission: "Report.Read.reportB",
			want:       false,
		},
		{
			name:       "readwrite satisfied when both actions granted",
			permission: "Report.ReadWrite.reportA",
			want:       true,
		},
		{
			name:       "readwrite fails when only read granted",
			permission: "Audit.ReadWrite.anything",
			want:       false,
		},
		{
			name:       "default grant matches resource-less query",
			permission: "User.Read",
			want:       true,
		},
		{
			name:       "default grant rejects specific resource in local",
			permission: "User.Write.x",
			want:       true, // satisfied by the global All grant
		},
		{
			name:       "unknown scope",
			permission: "Billing.Read.x",
			want:       false,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			got, err := s.engine.Check(tt.permission)
			s.Require().NoError(err)
			s.Equal(tt.want, got)
		})
	}
}

func (s *EnginePublicTestSuite) TestContextIsolation() {
	local, err := s.engine.CheckLocal("Report.Read.reportA")
	s.Require().NoError(err)
	s.True(local)

	global, err := s.engine.CheckGlobal("Report.Read.reportA")
	s.Require().NoError(err)
	s.False(global)

	global, err = s.engine.CheckGlobal("User.Write.anyUser")
	s.Require().NoError(err)
	s.True(global)

	local, err = s.engine.CheckLocal("User.Write.anyUser")
	s.Require().NoError(err)
	s.False(local)

	either, err := s.engine.Check("User.Write.anyUser")
	s.Require().NoError(err)
	s.True(either)
}

func (s *EnginePublicTestSuite) TestCheckAction() {
	tests := []struct {
		name       string
		permission string
		checkFn    func(string) (bool, error)
		want       bool
	}{
		{
			name:       "specific set grants the action regardless of resource",
			permission: "Report.Read.reportB",
			checkFn:    nil, // defaults to CheckAction
			want:       true,
		},
		{
			name:       "no write grant for scope",
			permission: "Audit.Write.x",
			want:       false,
		},
		{
			name:       "default grant counts as any grant",
			permission: "User.Read.whatever",
			want:       true,
		},
		{
			name:       "unknown scope has no grant",
			permission: "Billing.Read",
			want:       false,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			checkFn := tt.checkFn
			if checkFn == nil {
				checkFn = s.engine.CheckAction
			}

			got, err := checkFn(tt.permission)
			s.Require().NoError(err)
			s.Equal(tt.want, got)
		})
	}

	local, err := s.engine.CheckActionLocal("User.Write.x")
	s.Require().NoError(err)
	s.False(local)

	global, err := s.engine.CheckActionGlobal("User.Write.x")
	s.Require().NoError(err)
	s.True(global)
}

func (s *EnginePublicTestSuite) TestCheckContext() {
	tests := []struct {
		name       string
		permission string
		want       permission.ContextMatch
	}{
		{
			name:       "scope in both contexts",
			permission: "User.Read",
			want:       permission.MatchBoth,
		},
		{
			name:       "scope in local context only",
			permission: "Report.Read.reportA",
			want:       permission.MatchLocal,
		},
		{
			name:       "scope in global context only",
			permission: "Audit.Read",
			want:       permission.MatchGlobal,
		},
		{
			name:       "unknown scope",
			permission: "Billing.Read",
			want:       permission.MatchNone,
		},
		{
			name:       "bare scope is accepted",
			permission: "User",
			want:       permission.MatchBoth,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			got, err := s.engine.CheckContext(tt.permission)
			s.Require().NoError(err)
			s.Equal(tt.want, got)
		})
	}
}

func (s *EnginePublicTestSuite) TestMalformedQueryErrors() {
	tests := []struct {
		name       string
		permission string
	}{
		{
			name:       "empty string",
			permission: "",
		},
		{
			name:       "missing action segment",
			permission: "User",
		},
		{
			name:       "unknown action token",
			permission: "User.Delete.x",
		},
		{
			name:       "missing scope segment",
			permission: ".Read.x",
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			got, err := s.engine.Check(tt.permission)
			s.Require().ErrorIs(err, permission.ErrInvalidPermission)
			s.False(got)

			got, err = s.engine.CheckAction(tt.permission)
			s.Require().ErrorIs(err, permission.ErrInvalidPermission)
			s.False(got)
		})
	}

	_, err := s.engine.CheckContext("")
	s.ErrorIs(err, permission.ErrInvalidPermission)
}

func (s *EnginePublicTestSuite) TestEmptyEngineDeniesEverything() {
	empty := permission.Compile(nil)

	s.Empty(empty.Unwrap())

	for _, checkFn := range []func(string) (bool, error){
		empty.Check,
		empty.CheckLocal,
		empty.CheckGlobal,
		empty.CheckAction,
		empty.CheckActionLocal,
		empty.CheckActionGlobal,
	} {
		got, err := checkFn("User.Read.x")
		s.Require().NoError(err)
		s.False(got)
	}

	match, err := empty.CheckContext("User")
	s.Require().NoError(err)
	s.Equal(permission.MatchNone, match)
}

func TestEnginePublicTestSuite(t *testing.T) {
	suite.Run(t, new(EnginePublicTestSuite))
}
