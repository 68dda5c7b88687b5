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

package client

import (
	"context"
	"net/http"
	"net/url"

	"github.com/scopekit-io/scopekit/internal/api/authz"
	"github.com/scopekit-io/scopekit/internal/api/health"
)

// CombinedHandler is a superset of all smaller handler interfaces.
type CombinedHandler interface {
	HealthHandler
	AuthzHandler
}

// HealthHandler defines an interface for interacting with Health client operations.
type HealthHandler interface {
	// GetHealth get the health liveness API endpoint.
	GetHealth(
		ctx context.Context,
	) (*health.StatusResponse, error)
}

// AuthzHandler defines an interface for interacting with Authz client operations.
type AuthzHandler interface {
	// CheckPermission evaluates a permission query against the caller's roles.
	CheckPermission(
		ctx context.Context,
		req authz.CheckRequest,
	) (*authz.CheckResponse, error)

	// GetPermissions retrieves the caller's flattened permission set.
	GetPermissions(
		ctx context.Context,
	) (*authz.PermissionsResponse, error)

	// GetContextMatch reports which contexts define the given scope.
	GetContextMatch(
		ctx context.Context,
		scope string,
	) (*authz.ContextResponse, error)
}

// GetHealth get the health liveness API endpoint.
func (c *Client) GetHealth(
	ctx context.Context,
) (*health.StatusResponse, error) {
	var resp health.StatusResponse
	if err := c.do(ctx, http.MethodGet, "/healthz", nil, &resp); err != nil {
		return nil, err
	}

	return &resp, nil
}

// CheckPermission evaluates a permission query against the caller's roles.
func (c *Client) CheckPermission(
	ctx context.Context,
	req authz.CheckRequest,
) (*authz.CheckResponse, error) {
	var resp authz.CheckResponse
	if err := c.do(ctx, http.MethodPost, "/v1/authz/check", req, &resp); err != nil {
		return nil, err
	}

	return &resp, nil
}

// GetPermissions retrieves the caller's flattened permission set.
func (c *Client) GetPermissions(
	ctx context.Context,
) (*authz.PermissionsResponse, error) {
	var resp authz.PermissionsResponse
	if err := c.do(ctx, http.MethodGet, "/v1/authz/permissions", nil, &resp); err != nil {
		return nil, err
	}

	return &resp, nil
}

// GetContextMatch reports which contexts define the given scope.
func (c *Client) GetContextMatch(
	ctx context.Context,
	scope string,
) (*authz.ContextResponse, error) {
	var resp authz.ContextResponse
	path := "/v1/authz/context/" + url.PathEscape(scope)
	if err := c.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}

	return &resp, nil
}
