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

package authz

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/scopekit-io/scopekit/internal/permission"
)

// CheckRequest is the body of POST /check.
type CheckRequest struct {
	// Permission in Scope.Action[.Resource] form.
	Permission string `json:"permission" validate:"required"`
	// Context restricts the check to "local" or "global"; empty means
	// either context may satisfy it.
	Context string `json:"context,omitempty"    validate:"omitempty,oneof=local global"`
	// ActionOnly ignores the resource segment: any grant for the scope
	// and action passes.
	ActionOnly bool `json:"actionOnly,omitempty"`
}

// CheckResponse is the decision for one permission check. Contexts is
// populated only for unrestricted checks, naming each context the
// permission holds in.
type CheckResponse struct {
	Allowed  bool     `json:"allowed"`
	Contexts []string `json:"contexts,omitempty"`
}

// ContextResponse reports which contexts hold grants for a scope.
type ContextResponse struct {
	Scope string                  `json:"scope"`
	Match permission.ContextMatch `json:"match"`
}

// PermissionsResponse is the introspection payload: the caller's
// identity, raw role list, and flattened effective permissions.
type PermissionsResponse struct {
	UserID      string                 `json:"userId"`
	Roles       []permission.Role      `json:"roles"`
	Permissions []permission.Flattened `json:"permissions"`
}

// ErrorResponse carries an error message to the client.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Unauthorized writes a 401 response.
func Unauthorized(
	ctx echo.Context,
	msg string,
) error {
	return ctx.JSON(http.StatusUnauthorized, ErrorResponse{Error: msg})
}

// Forbidden writes a 403 response.
func Forbidden(
	ctx echo.Context,
	msg string,
) error {
	return ctx.JSON(http.StatusForbidden, ErrorResponse{Error: msg})
}

// BadRequest writes a 400 response.
func BadRequest(
	ctx echo.Context,
	msg string,
) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: msg})
}
