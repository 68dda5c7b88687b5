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

package permission

import (
	"fmt"
	"strings"
)

// parsed is a permission string broken into its segments. A missing
// resource segment parses as DefaultToken, so downstream code never
// distinguishes "omitted" from "explicit default".
type parsed struct {
	Scope    string
	Action   Action
	Resource string
}

// parsePermission splits a `Scope.Action[.Resource]` string. Missing scope
// or action segments, and action tokens outside the closed action set,
// return ErrInvalidPermission.
func parsePermission(
	s string,
) (parsed, error) {
	parts := strings.Split(s, ".")
	if len(parts) < 2 || parts[0] == "" {
		return parsed{}, fmt.Errorf("%w: %q: want Scope.Action[.Resource]", ErrInvalidPermission, s)
	}

	action, ok := parseAction(parts[1])
	if !ok {
		return parsed{}, fmt.Errorf("%w: %q: unknown action %q", ErrInvalidPermission, s, parts[1])
	}

	resource := DefaultToken
	if len(parts) > 2 && parts[2] != "" {
		resource = parts[2]
	}

	return parsed{
		Scope:    parts[0],
		Action:   action,
		Resource: resource,
	}, nil
}

// parseScope extracts the scope segment only, for queries that ignore
// action and resource.
func parseScope(
	s string,
) (string, error) {
	scope, _, _ := strings.Cut(s, ".")
	if scope == "" {
		return "", fmt.Errorf("%w: %q: missing scope", ErrInvalidPermission, s)
	}

	return scope, nil
}

// ValidateSyntax reports whether a permission string is well formed,
// without compiling anything. Used to validate role definitions up front.
func ValidateSyntax(
	s string,
) error {
	_, err := parsePermission(s)

	return err
}

// Key identifies one compiled block: the (context, scope) pair every
// permission string in a role maps into.
type Key struct {
	Context Context
	Scope   string
}
