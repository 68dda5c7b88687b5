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

// Package health serves the liveness and readiness endpoints.
package health

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// Health handles the health API endpoints.
type Health struct {
	logger    *slog.Logger
	startTime time.Time
	version   string
}

// StatusResponse is the liveness payload.
type StatusResponse struct {
	Status  string `json:"status"`
	Version string `json:"version,omitempty"`
	Uptime  string `json:"uptime"`
}

// New factory to create a new Health instance.
func New(
	logger *slog.Logger,
	startTime time.Time,
	version string,
) *Health {
	return &Health{
		logger:    logger,
		startTime: startTime,
		version:   version,
	}
}

// Register attaches the unauthenticated health routes.
func (h *Health) Register(
	e *echo.Echo,
) {
	e.GET("/healthz", h.StatusGet)
	e.GET("/healthz/ready", h.ReadyGet)
}

// StatusGet reports process liveness.
func (h *Health) StatusGet(
	ctx echo.Context,
) error {
	return ctx.JSON(http.StatusOK, StatusResponse{
		Status:  "ok",
		Version: h.version,
		Uptime:  time.Since(h.startTime).Round(time.Second).String(),
	})
}

// ReadyGet reports readiness. The engine has no external dependencies,
// so readiness tracks liveness.
func (h *Health) ReadyGet(
	ctx echo.Context,
) error {
	return ctx.JSON(http.StatusOK, StatusResponse{
		Status: "ready",
		Uptime: time.Since(h.startTime).Round(time.Second).String(),
	})
}
