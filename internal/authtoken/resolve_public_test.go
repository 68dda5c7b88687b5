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

package authtoken_test

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/scopekit-io/scopekit/internal/authtoken"
	"github.com/scopekit-io/scopekit/internal/permission"
)

type ResolvePublicTestSuite struct {
	suite.Suite

	token   *authtoken.Token
	defined map[string]permission.Role
}

func (s *ResolvePublicTestSuite) SetupTest() {
	s.token = authtoken.New(slog.Default())
	s.defined = map[string]permission.Role{
		"reader": {
			ID:          "reader",
			Name:        "reader",
			Context:     permission.ContextLocal,
			Permissions: []string{"Report.Read.All"},
		},
		"admin": {
			ID:          "admin",
			Name:        "admin",
			Context:     permission.ContextGlobal,
			Permissions: []string{"User.ReadWrite.All"},
		},
	}
}

func (s *ResolvePublicTestSuite) TestResolveRoles() {
	tests := []struct {
		name    string
		names   []string
		wantIDs []string
	}{
		{
			name:    "all names known",
			names:   []string{"reader", "admin"},
			wantIDs: []string{"reader", "admin"},
		},
		{
			name:    "unknown names are skipped",
			names:   []string{"reader", "owner"},
			wantIDs: []string{"reader"},
		},
		{
			name:    "no names",
			names:   nil,
			wantIDs: []string{},
		},
		{
			name:    "only unknown names",
			names:   []string{"owner"},
			wantIDs: []string{},
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			got := s.token.ResolveRoles(tt.names, s.defined)

			gotIDs := make([]string, 0, len(got))
			for _, role := range got {
				gotIDs = append(gotIDs, role.ID)
			}
			s.Equal(tt.wantIDs, gotIDs)
		})
	}
}

func (s *ResolvePublicTestSuite) TestResolvedRolesCompile() {
	roles := s.token.ResolveRoles([]string{"reader", "admin"}, s.defined)
	engine := permission.Compile(roles)

	got, err := engine.CheckLocal("Report.Read.anything")
	s.Require().NoError(err)
	s.True(got)

	got, err = engine.CheckGlobal("User.Write.anyone")
	s.Require().NoError(err)
	s.True(got)
}

func TestResolvePublicTestSuite(t *testing.T) {
	suite.Run(t, new(ResolvePublicTestSuite))
}
