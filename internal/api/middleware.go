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

package api

import (
	"log/slog"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/scopekit-io/scopekit/internal/api/authz"
	"github.com/scopekit-io/scopekit/internal/authtoken"
	"github.com/scopekit-io/scopekit/internal/permission"
)

// TokenValidator parses and validates JWT tokens and resolves the role
// names they carry.
type TokenValidator interface {
	Validate(
		tokenString string,
		signingKey string,
	) (*authtoken.CustomClaims, error)
	ResolveRoles(
		names []string,
		defined map[string]permission.Role,
	) []permission.Role
}

// authMiddleware validates the bearer token, resolves the caller's roles,
// and compiles a fresh permission engine for the request. The engine and
// identity travel on the Echo context; both are discarded with the
// request.
func authMiddleware(
	tokenManager TokenValidator,
	signingKey string,
	defined map[string]permission.Role,
	logger *slog.Logger,
) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			authHeader := ctx.Request().Header.Get("Authorization")
			if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
				return authz.Unauthorized(ctx, "Bearer token required")
			}

			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			claims, err := tokenManager.Validate(tokenString, signingKey)
			if err != nil {
				return authz.Unauthorized(ctx, "Invalid token: "+err.Error())
			}

			roles := tokenManager.ResolveRoles(claims.Roles, defined)
			engine := permission.Compile(roles)

			logger.Debug(
				"authorized request",
				slog.String("subject", claims.Subject),
				slog.Int("roles", len(roles)),
			)

			authz.SetIdentity(ctx, claims.Subject, roles, engine)

			return next(ctx)
		}
	}
}
