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
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/scopekit-io/scopekit/internal/permission"
)

// RequirePermission guards a route with a permission string: the request
// proceeds only when the caller's compiled engine grants it. Returns 403
// on denial and 401 when no engine is present, so it composes with the
// server's token middleware for resource routes mounted alongside the
// authorization endpoints.
func RequirePermission(
	p string,
) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			engine := EngineFrom(ctx)
			if engine == nil {
				return Unauthorized(ctx, "no compiled permissions on request")
			}

			allowed, err := engine.Check(p)
			if err != nil {
				if errors.Is(err, permission.ErrInvalidPermission) {
					return BadRequest(ctx, err.Error())
				}

				return err
			}
			if !allowed {
				return Forbidden(ctx, "permission denied: "+p)
			}

			return next(ctx)
		}
	}
}
