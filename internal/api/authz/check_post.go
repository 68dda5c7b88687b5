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
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/scopekit-io/scopekit/internal/permission"
	"github.com/scopekit-io/scopekit/internal/validation"
)

// CheckPost answers one permission check against the caller's compiled
// engine. A malformed permission string is a 400, never a denial.
func (a *Authz) CheckPost(
	ctx echo.Context,
) error {
	var req CheckRequest
	if err := ctx.Bind(&req); err != nil {
		return BadRequest(ctx, "invalid request body")
	}
	if errMsg, ok := validation.Struct(req); !ok {
		return BadRequest(ctx, errMsg)
	}

	engine := EngineFrom(ctx)
	if engine == nil {
		return Unauthorized(ctx, "no compiled permissions on request")
	}

	allowed, err := runCheck(engine, req)
	if err != nil {
		if errors.Is(err, permission.ErrInvalidPermission) {
			return BadRequest(ctx, err.Error())
		}

		return err
	}

	resp := CheckResponse{Allowed: allowed}
	if allowed && req.Context == "" {
		resp.Contexts = grantedContexts(engine, req)
	}

	a.logger.Debug(
		"permission check",
		slog.String("subject", subjectFrom(ctx)),
		slog.String("permission", req.Permission),
		slog.Bool("allowed", allowed),
	)

	return ctx.JSON(http.StatusOK, resp)
}

// grantedContexts names each context an unrestricted check holds in.
// The permission is already known to parse and to be granted somewhere,
// so the per-context errors cannot fire.
func grantedContexts(
	engine *permission.Engine,
	req CheckRequest,
) []string {
	var contexts []string
	for _, c := range []permission.Context{
		permission.ContextLocal,
		permission.ContextGlobal,
	} {
		restricted := req
		restricted.Context = string(c)
		if ok, _ := runCheck(engine, restricted); ok {
			contexts = append(contexts, string(c))
		}
	}

	return contexts
}

// runCheck dispatches to the engine operation matching the request's
// context restriction and action-only flag.
func runCheck(
	engine *permission.Engine,
	req CheckRequest,
) (bool, error) {
	if req.ActionOnly {
		switch permission.Context(req.Context) {
		case permission.ContextLocal:
			return engine.CheckActionLocal(req.Permission)
		case permission.ContextGlobal:
			return engine.CheckActionGlobal(req.Permission)
		default:
			return engine.CheckAction(req.Permission)
		}
	}

	switch permission.Context(req.Context) {
	case permission.ContextLocal:
		return engine.CheckLocal(req.Permission)
	case permission.ContextGlobal:
		return engine.CheckGlobal(req.Permission)
	default:
		return engine.Check(req.Permission)
	}
}
