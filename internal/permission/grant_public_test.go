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
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/scopekit-io/scopekit/internal/permission"
)

type GrantPublicTestSuite struct {
	suite.Suite
}

func (s *GrantPublicTestSuite) TestMarshalJSON() {
	tests := []struct {
		name  string
		grant permission.Grant
		want  string
	}{
		{
			name:  "all marker",
			grant: permission.AllGrant(),
			want:  `"All"`,
		},
		{
			name:  "default marker",
			grant: permission.DefaultGrant(),
			want:  `"Default"`,
		},
		{
			name:  "specific resource list",
			grant: permission.SpecificGrant("a", "b"),
			want:  `["a","b"]`,
		},
		{
			name:  "zero grant",
			grant: permission.Grant{},
			want:  `[]`,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			got, err := json.Marshal(tt.grant)
			s.Require().NoError(err)
			s.JSONEq(tt.want, string(got))
		})
	}
}

func (s *GrantPublicTestSuite) TestUnmarshalJSON() {
	tests := []struct {
		name        string
		data        string
		want        permission.Grant
		expectError bool
	}{
		{
			name: "all marker",
			data: `"All"`,
			want: permission.AllGrant(),
		},
		{
			name: "default marker",
			data: `"Default"`,
			want: permission.DefaultGrant(),
		},
		{
			name: "resource array",
			data: `["a","b"]`,
			want: permission.SpecificGrant("a", "b"),
		},
		{
			name:        "unknown marker string",
			data:        `"Everything"`,
			expectError: true,
		},
		{
			name:        "wrong json type",
			data:        `42`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			var got permission.Grant
			err := json.Unmarshal([]byte(tt.data), &got)
			if tt.expectError {
				s.Error(err)
				return
			}

			s.Require().NoError(err)
			s.Equal(tt.want, got)
		})
	}
}

func (s *GrantPublicTestSuite) TestFlattenedRoundTrip() {
	entry := permission.Flattened{
		Context:   permission.ContextGlobal,
		Scope:     "User",
		Action:    permission.ActionFlags{Read: true, Write: true},
		Resources: permission.AllGrant(),
	}

	data, err := json.Marshal(entry)
	s.Require().NoError(err)
	s.JSONEq(
		`{"context":"global","scope":"User","action":{"read":true,"write":true},"resources":"All"}`,
		string(data),
	)

	var got permission.Flattened
	s.Require().NoError(json.Unmarshal(data, &got))
	s.Equal(entry, got)
}

func TestGrantPublicTestSuite(t *testing.T) {
	suite.Run(t, new(GrantPublicTestSuite))
}
