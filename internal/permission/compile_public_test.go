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

type CompilePublicTestSuite struct {
	suite.Suite
}

func (s *CompilePublicTestSuite) TestUnwrap() {
	tests := []struct {
		name  string
		roles []permission.Role
		want  []permission.Flattened
	}{
		{
			name:  "empty role list",
			roles: []permission.Role{},
			want:  []permission.Flattened{},
		},
		{
			name: "role with no permissions",
			roles: []permission.Role{
				{ID: "r1", Context: permission.ContextLocal},
			},
			want: []permission.Flattened{},
		},
		{
			name: "global readwrite all on two scopes",
			roles: []permission.Role{
				{
					ID:      "r1",
					Context: permission.ContextGlobal,
					Permissions: []string{
						"User.ReadWrite.All",
						"Report.ReadWrite.All",
					},
				},
			},
			want: []permission.Flattened{
				{
					Context:   permission.ContextGlobal,
					Scope:     "User",
					Action:    permission.ActionFlags{Read: true, Write: true},
					Resources: permission.AllGrant(),
				},
				{
					Context:   permission.ContextGlobal,
					Scope:     "Report",
					Action:    permission.ActionFlags{Read: true, Write: true},
					Resources: permission.AllGrant(),
				},
			},
		},
		{
			name: "mixed marker and specific resources split per action",
			roles: []permission.Role{
				{
					ID:      "r1",
					Context: permission.ContextLocal,
					Permissions: []string{
						"User.ReadWrite.All",
						"Report.Read.All",
						"Report.ReadWrite.someReport",
					},
				},
			},
			want: []permission.Flattened{
				{
					Context:   permission.ContextLocal,
					Scope:     "User",
					Action:    permission.ActionFlags{Read: true, Write: true},
					Resources: permission.AllGrant(),
				},
				{
					Context:   permission.ContextLocal,
					Scope:     "Report",
					Action:    permission.ActionFlags{Read: true, Write: false},
					Resources: permission.AllGrant(),
				},
				{
					Context:   permission.ContextLocal,
					Scope:     "Report",
					Action:    permission.ActionFlags{Read: true, Write: true},
					Resources: permission.SpecificGrant("someReport"),
				},
			},
		},
		{
			name: "specific resources accumulate across roles",
			roles: []permission.Role{
				{
					ID:          "r1",
					Context:     permission.ContextLocal,
					Permissions: []string{"Report.Read.a"},
				},
				{
					ID:          "r2",
					Context:     permission.ContextLocal,
					Permissions: []string{"Report.Read.b"},
				},
			},
			want: []permission.Flattened{
				{
					Context:   permission.ContextLocal,
					Scope:     "Report",
					Action:    permission.ActionFlags{Read: true, Write: false},
					Resources: permission.SpecificGrant("a", "b"),
				},
			},
		},
		{
			name: "resource-less permission compiles to default grant",
			roles: []permission.Role{
				{
					ID:          "r1",
					Context:     permission.ContextGlobal,
					Permissions: []string{"User.Read"},
				},
			},
			want: []permission.Flattened{
				{
					Context:   permission.ContextGlobal,
					Scope:     "User",
					Action:    permission.ActionFlags{Read: true, Write: false},
					Resources: permission.DefaultGrant(),
				},
			},
		},
		{
			name: "invalid action token is skipped",
			roles: []permission.Role{
				{
					ID:      "r1",
					Context: permission.ContextLocal,
					Permissions: []string{
						"User.Delete.All",
						"User.Read.a",
					},
				},
			},
			want: []permission.Flattened{
				{
					Context:   permission.ContextLocal,
					Scope:     "User",
					Action:    permission.ActionFlags{Read: true, Write: false},
					Resources: permission.SpecificGrant("a"),
				},
			},
		},
		{
			name: "readwrite shorthand equals separate read and write",
			roles: []permission.Role{
				{
					ID:          "r1",
					Context:     permission.ContextLocal,
					Permissions: []string{"User.Read.x", "User.Write.x"},
				},
			},
			want: permission.Compile([]permission.Role{
				{
					ID:          "r1",
					Context:     permission.ContextLocal,
					Permissions: []string{"User.ReadWrite.x"},
				},
			}).Unwrap(),
		},
		{
			name: "all marker collapses accumulated specific set",
			roles: []permission.Role{
				{
					ID:      "r1",
					Context: permission.ContextGlobal,
					Permissions: []string{
						"Report.Read.a",
						"Report.Read.b",
						"Report.Read.All",
					},
				},
			},
			want: []permission.Flattened{
				{
					Context:   permission.ContextGlobal,
					Scope:     "Report",
					Action:    permission.ActionFlags{Read: true, Write: false},
					Resources: permission.AllGrant(),
				},
			},
		},
		{
			name: "duplicate resources are suppressed",
			roles: []permission.Role{
				{
					ID:          "r1",
					Context:     permission.ContextLocal,
					Permissions: []string{"Report.Write.a", "Report.Write.a"},
				},
			},
			want: []permission.Flattened{
				{
					Context:   permission.ContextLocal,
					Scope:     "Report",
					Action:    permission.ActionFlags{Read: false, Write: true},
					Resources: permission.SpecificGrant("a"),
				},
			},
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			got := permission.Compile(tt.roles).Unwrap()
			s.Equal(tt.want, got)
		})
	}
}

func (s *CompilePublicTestSuite) TestCompileIsDeterministic() {
	roles := []permission.Role{
		{
			ID:      "r1",
			Context: permission.ContextLocal,
			Permissions: []string{
				"User.ReadWrite.All",
				"Report.Read.a",
				"Report.Write.b",
			},
		},
		{
			ID:          "r2",
			Context:     permission.ContextGlobal,
			Permissions: []string{"Report.Read.c"},
		},
	}

	first := permission.Compile(roles)
	second := permission.Compile(roles)

	s.Equal(first.Unwrap(), second.Unwrap())

	for _, p := range []string{
		"User.Read.anything",
		"Report.Read.a",
		"Report.Write.a",
		"Report.ReadWrite.b",
	} {
		gotFirst, err := first.Check(p)
		s.Require().NoError(err)
		gotSecond, err := second.Check(p)
		s.Require().NoError(err)
		s.Equal(gotFirst, gotSecond, p)
	}
}

func (s *CompilePublicTestSuite) TestAllMarkerAbsorbsAcrossRoleOrder() {
	grantAll := permission.Role{
		ID:          "all",
		Context:     permission.ContextLocal,
		Permissions: []string{"Report.Read.All"},
	}
	grantSpecific := permission.Role{
		ID:          "specific",
		Context:     permission.ContextLocal,
		Permissions: []string{"Report.Read.a"},
	}

	allFirst := permission.Compile([]permission.Role{grantAll, grantSpecific})
	allLast := permission.Compile([]permission.Role{grantSpecific, grantAll})

	for _, e := range []*permission.Engine{allFirst, allLast} {
		got, err := e.CheckLocal("Report.Read.unrelated")
		s.Require().NoError(err)
		s.True(got)
	}

	s.Equal(allFirst.Unwrap(), allLast.Unwrap())
}

func TestCompilePublicTestSuite(t *testing.T) {
	suite.Run(t, new(CompilePublicTestSuite))
}
