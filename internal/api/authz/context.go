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
	"github.com/labstack/echo/v4"

	"github.com/scopekit-io/scopekit/internal/permission"
)

// Context key constants for the authenticated identity and its compiled
// permission engine.
const (
	ContextKeySubject = "auth.subject"
	ContextKeyRoles   = "auth.roles"
	ContextKeyEngine  = "auth.engine"
)

// SetIdentity stores the authenticated identity and its freshly compiled
// engine on the request context.
func SetIdentity(
	ctx echo.Context,
	subject string,
	roles []permission.Role,
	engine *permission.Engine,
) {
	ctx.Set(ContextKeySubject, subject)
	ctx.Set(ContextKeyRoles, roles)
	ctx.Set(ContextKeyEngine, engine)
}

// subjectFrom returns the authenticated subject, or "".
func subjectFrom(
	ctx echo.Context,
) string {
	subject, _ := ctx.Get(ContextKeySubject).(string)

	return subject
}

// rolesFrom returns the resolved role list, or nil.
func rolesFrom(
	ctx echo.Context,
) []permission.Role {
	roles, _ := ctx.Get(ContextKeyRoles).([]permission.Role)

	return roles
}

// EngineFrom returns the request's compiled permission engine, or nil if
// the auth middleware did not run.
func EngineFrom(
	ctx echo.Context,
) *permission.Engine {
	engine, _ := ctx.Get(ContextKeyEngine).(*permission.Engine)

	return engine
}
