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

package authtoken

import (
	"log/slog"

	"github.com/scopekit-io/scopekit/internal/permission"
)

// ResolveRoles maps the role names carried in a token's claims to full
// role definitions. Unknown names are skipped rather than errored, so a
// stale token referencing a removed role keeps its remaining grants.
func (t *Token) ResolveRoles(
	names []string,
	defined map[string]permission.Role,
) []permission.Role {
	roles := make([]permission.Role, 0, len(names))
	for _, name := range names {
		role, ok := defined[name]
		if !ok {
			t.logger.Debug(
				"skipping unknown role",
				slog.String("role", name),
			)
			continue
		}
		roles = append(roles, role)
	}

	return roles
}
