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

// Package permission compiles role assignments into a queryable permission
// index. Roles carry dot-delimited permission strings in the form
// `Scope.Action[.Resource]`; compilation merges them into one block per
// (context, scope) pair, and the resulting Engine answers point-in-time
// authorization queries.
package permission

// Context is the applicability of a role's grants.
type Context string

// Role contexts.
const (
	ContextLocal  Context = "local"
	ContextGlobal Context = "global"
)

// Action is a closed set of grant verbs.
type Action string

// Actions accepted in permission strings. ReadWrite is shorthand that
// expands to both Read and Write during compilation.
const (
	ActionRead      Action = "Read"
	ActionWrite     Action = "Write"
	ActionReadWrite Action = "ReadWrite"
)

// Resource marker tokens. AllToken grants every resource under a scope;
// DefaultToken is the resource-less capability, equivalent to omitting the
// resource segment entirely.
const (
	AllToken     = "All"
	DefaultToken = "Default"
)

// Role is a named bundle of permission strings a user holds.
// The engine never mutates or persists roles.
type Role struct {
	// ID opaque unique identifier.
	ID string `json:"id"                    yaml:"id"`
	// Name display name, not used by the engine.
	Name string `json:"name"                  yaml:"name"`
	// Description display metadata, not used by the engine.
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	// Context the scope at which every permission string in this role applies.
	Context Context `json:"context"               yaml:"context"     validate:"oneof=local global"`
	// Permissions ordered permission strings in `Scope.Action[.Resource]` form.
	Permissions []string `json:"permissions"           yaml:"permissions" validate:"dive,permission"`
}

// expand resolves the ReadWrite shorthand into concrete actions.
func (a Action) expand() []Action {
	if a == ActionReadWrite {
		return []Action{ActionRead, ActionWrite}
	}

	return []Action{a}
}

// parseAction matches an action token against the closed action set.
func parseAction(
	token string,
) (Action, bool) {
	switch Action(token) {
	case ActionRead, ActionWrite, ActionReadWrite:
		return Action(token), true
	default:
		return "", false
	}
}
