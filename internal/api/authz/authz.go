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

// Package authz serves the authorization endpoints: permission checks,
// context lookups, and effective-permission introspection.
package authz

import (
	"log/slog"

	"github.com/labstack/echo/v4"
)

// Authz handles the authorization API endpoints.
type Authz struct {
	logger *slog.Logger
}

// New factory to create a new Authz instance.
func New(
	logger *slog.Logger,
) *Authz {
	return &Authz{
		logger: logger,
	}
}

// Register attaches the authorization routes to a group that already
// carries the auth middleware.
func (a *Authz) Register(
	g *echo.Group,
) {
	g.GET("/permissions", a.PermissionsGet)
	g.POST("/check", a.CheckPost)
	g.GET("/context/:scope", a.ContextGet)
}
