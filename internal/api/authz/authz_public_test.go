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

package authz_test

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"

	"github.com/scopekit-io/scopekit/internal/api/authz"
	"github.com/scopekit-io/scopekit/internal/permission"
)

type AuthzPublicTestSuite struct {
	suite.Suite

	handler *authz.Authz
	echo    *echo.Echo
	roles   []permission.Role
	engine  *permission.Engine
}

func (s *AuthzPublicTestSuite) SetupTest() {
	s.handler = authz.New(slog.Default())
	s.echo = echo.New()
	s.roles = []permission.Role{
		{
			ID:          "reporter",
			Name:        "reporter",
			Context:     permission.ContextLocal,
			Permissions: []string{"Report.ReadWrite.someReport"},
		},
		{
			ID:          "admin",
			Name:        "admin",
			Context:     permission.ContextGlobal,
			Permissions: []string{"User.ReadWrite.All"},
		},
	}
	s.engine = permission.Compile(s.roles)
}

// newContext builds an echo context carrying an authenticated identity.
func (s *AuthzPublicTestSuite) newContext(
	method string,
	target string,
	body string,
) (echo.Context, *httptest.ResponseRecorder) {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}

	rec := httptest.NewRecorder()
	ctx := s.echo.NewContext(req, rec)
	authz.SetIdentity(ctx, "user-123", s.roles, s.engine)

	return ctx, rec
}

func (s *AuthzPublicTestSuite) TestCheckPost() {
	tests := []struct {
		name        string
		body        string
		wantCode    int
		wantAllowed bool
	}{
		{
			name:        "allowed in either context",
			body:        `{"permission":"Report.Read.someReport"}`,
			wantCode:    http.StatusOK,
			wantAllowed: true,
		},
		{
			name:        "denied resource outside specific set",
			body:        `{"permission":"Report.Read.otherReport"}`,
			wantCode:    http.StatusOK,
			wantAllowed: false,
		},
		{
			name:        "denied when restricted to wrong context",
			body:        `{"permission":"Report.Read.someReport","context":"global"}`,
			wantCode:    http.StatusOK,
			wantAllowed: false,
		},
		{
			name:        "action-only ignores resource",
			body:        `{"permission":"Report.Write.anything","actionOnly":true}`,
			wantCode:    http.StatusOK,
			wantAllowed: true,
		},
		{
			name:        "action-only restricted to context",
			body:        `{"permission":"User.Write.x","context":"local","actionOnly":true}`,
			wantCode:    http.StatusOK,
			wantAllowed: false,
		},
		{
			name:     "malformed permission string is a 400",
			body:     `{"permission":"Report.Destroy.x"}`,
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "missing permission field is a 400",
			body:     `{}`,
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "unknown context value is a 400",
			body:     `{"permission":"Report.Read.x","context":"tenant"}`,
			wantCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			ctx, rec := s.newContext(http.MethodPost, "/v1/authz/check", tt.body)

			s.Require().NoError(s.handler.CheckPost(ctx))
			s.Equal(tt.wantCode, rec.Code)

			if tt.wantCode == http.StatusOK {
				var resp authz.CheckResponse
				s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
				s.Equal(tt.wantAllowed, resp.Allowed)
			}
		})
	}
}

func (s *AuthzPublicTestSuite) TestCheckPostWithoutIdentity() {
	req := httptest.NewRequest(
		http.MethodPost,
		"/v1/authz/check",
		strings.NewReader(`{"permission":"Report.Read.x"}`),
	)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	ctx := s.echo.NewContext(req, rec)

	s.Require().NoError(s.handler.CheckPost(ctx))
	s.Equal(http.StatusUnauthorized, rec.Code)
}

func (s *AuthzPublicTestSuite) TestPermissionsGet() {
	ctx, rec := s.newContext(http.MethodGet, "/v1/authz/permissions", "")

	s.Require().NoError(s.handler.PermissionsGet(ctx))
	s.Equal(http.StatusOK, rec.Code)

	var resp authz.PermissionsResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))

	s.Equal("user-123", resp.UserID)
	s.Len(resp.Roles, 2)
	s.Len(resp.Permissions, 2)

	data, err := json.Marshal(resp.Permissions)
	s.Require().NoError(err)
	s.Contains(string(data), `"resources":["someReport"]`)
	s.Contains(string(data), `"resources":"All"`)
}

func (s *AuthzPublicTestSuite) TestContextGet() {
	tests := []struct {
		name      string
		scope     string
		wantMatch permission.ContextMatch
	}{
		{
			name:      "scope in local context",
			scope:     "Report",
			wantMatch: permission.MatchLocal,
		},
		{
			name:      "scope in global context",
			scope:     "User",
			wantMatch: permission.MatchGlobal,
		},
		{
			name:      "unknown scope",
			scope:     "Billing",
			wantMatch: permission.MatchNone,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			ctx, rec := s.newContext(http.MethodGet, "/v1/authz/context/"+tt.scope, "")
			ctx.SetParamNames("scope")
			ctx.SetParamValues(tt.scope)

			s.Require().NoError(s.handler.ContextGet(ctx))
			s.Equal(http.StatusOK, rec.Code)

			var resp authz.ContextResponse
			s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
			s.Equal(tt.wantMatch, resp.Match)
		})
	}
}

func (s *AuthzPublicTestSuite) TestRequirePermission() {
	tests := []struct {
		name     string
		perm     string
		wantCode int
	}{
		{
			name:     "passes a granted permission through",
			perm:     "Report.Read.someReport",
			wantCode: http.StatusOK,
		},
		{
			name:     "forbids a denied permission",
			perm:     "Report.Read.otherReport",
			wantCode: http.StatusForbidden,
		},
		{
			name:     "rejects a malformed permission",
			perm:     "Report.Destroy.x",
			wantCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			ctx, rec := s.newContext(http.MethodGet, "/reports", "")

			handler := authz.RequirePermission(tt.perm)(func(ctx echo.Context) error {
				return ctx.NoContent(http.StatusOK)
			})

			s.Require().NoError(handler(ctx))
			s.Equal(tt.wantCode, rec.Code)
		})
	}
}

func (s *AuthzPublicTestSuite) TestRequirePermissionWithoutIdentity() {
	req := httptest.NewRequest(http.MethodGet, "/reports", nil)
	rec := httptest.NewRecorder()
	ctx := s.echo.NewContext(req, rec)

	handler := authz.RequirePermission("Report.Read.someReport")(
		func(ctx echo.Context) error {
			return ctx.NoContent(http.StatusOK)
		},
	)

	s.Require().NoError(handler(ctx))
	s.Equal(http.StatusUnauthorized, rec.Code)
}

func (s *AuthzPublicTestSuite) TestCheckPostContexts() {
	ctx, rec := s.newContext(
		http.MethodPost,
		"/v1/authz/check",
		`{"permission":"Report.Read.someReport"}`,
	)

	s.Require().NoError(s.handler.CheckPost(ctx))
	s.Equal(http.StatusOK, rec.Code)

	var resp authz.CheckResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.True(resp.Allowed)
	s.Equal([]string{"local"}, resp.Contexts)
}

func TestAuthzPublicTestSuite(t *testing.T) {
	suite.Run(t, new(AuthzPublicTestSuite))
}
