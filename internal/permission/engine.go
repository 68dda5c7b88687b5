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

// ContextMatch reports which contexts hold a compiled block for a scope.
type ContextMatch string

// ContextMatch values.
const (
	MatchLocal  ContextMatch = "local"
	MatchGlobal ContextMatch = "global"
	MatchBoth   ContextMatch = "both"
	MatchNone   ContextMatch = "none"
)

// ActionFlags is the read/write pair of a flattened permission entry.
type ActionFlags struct {
	Read  bool `json:"read"`
	Write bool `json:"write"`
}

// Flattened is one human-readable entry of the compiled permission set,
// as served by the introspection endpoint.
type Flattened struct {
	Context   Context     `json:"context"`
	Scope     string      `json:"scope"`
	Action    ActionFlags `json:"action"`
	Resources Grant       `json:"resources"`
}

// Engine answers authorization queries over one compiled permission
// index. It is built once per authorization decision by Compile and is
// read-only afterward.
type Engine struct {
	blocks map[Key]Block
	order  []Key
}

// Unwrap flattens the compiled index. Each block collapses to one entry
// when Read and Write carry identical resource state; otherwise up to two
// entries are emitted, Read first, each marking the other action true
// only when that action's state subsumes the entry's own.
func (e *Engine) Unwrap() []Flattened {
	out := []Flattened{}

	for _, key := range e.order {
		block := e.blocks[key]

		if block.Read.equal(block.Write) {
			if block.Read.IsZero() {
				continue
			}
			out = append(out, Flattened{
				Context:   key.Context,
				Scope:     key.Scope,
				Action:    ActionFlags{Read: true, Write: true},
				Resources: block.Read,
			})

			continue
		}

		if !block.Read.IsZero() {
			out = append(out, Flattened{
				Context:   key.Context,
				Scope:     key.Scope,
				Action:    ActionFlags{Read: true, Write: block.Write.includes(block.Read)},
				Resources: block.Read,
			})
		}
		if !block.Write.IsZero() {
			out = append(out, Flattened{
				Context:   key.Context,
				Scope:     key.Scope,
				Action:    ActionFlags{Read: block.Read.includes(block.Write), Write: true},
				Resources: block.Write,
			})
		}
	}

	return out
}

// Check reports whether the permission string is granted in the local or
// the global context.
func (e *Engine) Check(
	p string,
) (bool, error) {
	parsed, err := parsePermission(p)
	if err != nil {
		return false, err
	}

	return e.match(ContextLocal, parsed) || e.match(ContextGlobal, parsed), nil
}

// CheckLocal reports whether the permission string is granted in the
// local context only.
func (e *Engine) CheckLocal(
	p string,
) (bool, error) {
	parsed, err := parsePermission(p)
	if err != nil {
		return false, err
	}

	return e.match(ContextLocal, parsed), nil
}

// CheckGlobal reports whether the permission string is granted in the
// global context only.
func (e *Engine) CheckGlobal(
	p string,
) (bool, error) {
	parsed, err := parsePermission(p)
	if err != nil {
		return false, err
	}

	return e.match(ContextGlobal, parsed), nil
}

// CheckAction is Check ignoring the resource segment: it succeeds when
// the user holds any grant at all for the scope and action, in either
// context.
func (e *Engine) CheckAction(
	p string,
) (bool, error) {
	parsed, err := parsePermission(p)
	if err != nil {
		return false, err
	}

	return e.matchAction(ContextLocal, parsed) || e.matchAction(ContextGlobal, parsed), nil
}

// CheckActionLocal is CheckAction restricted to the local context.
func (e *Engine) CheckActionLocal(
	p string,
) (bool, error) {
	parsed, err := parsePermission(p)
	if err != nil {
		return false, err
	}

	return e.matchAction(ContextLocal, parsed), nil
}

// CheckActionGlobal is CheckAction restricted to the global context.
func (e *Engine) CheckActionGlobal(
	p string,
) (bool, error) {
	parsed, err := parsePermission(p)
	if err != nil {
		return false, err
	}

	return e.matchAction(ContextGlobal, parsed), nil
}

// CheckContext reports which contexts carry a compiled block for the
// permission string's scope. Action and resource segments are ignored,
// so a bare scope is a valid argument.
func (e *Engine) CheckContext(
	p string,
) (ContextMatch, error) {
	scope, err := parseScope(p)
	if err != nil {
		return MatchNone, err
	}

	_, local := e.blocks[Key{Context: ContextLocal, Scope: scope}]
	_, global := e.blocks[Key{Context: ContextGlobal, Scope: scope}]

	switch {
	case local && global:
		return MatchBoth, nil
	case local:
		return MatchLocal, nil
	case global:
		return MatchGlobal, nil
	default:
		return MatchNone, nil
	}
}

// match applies the full match rule: every expanded action must cover the
// queried resource.
func (e *Engine) match(
	context Context,
	p parsed,
) bool {
	block, ok := e.blocks[Key{Context: context, Scope: p.Scope}]
	if !ok {
		return false
	}

	for _, action := range p.Action.expand() {
		if !block.grant(action).contains(p.Resource) {
			return false
		}
	}

	return true
}

// matchAction applies the action-only rule: every expanded action must
// hold some grant, regardless of which resource was asked for.
func (e *Engine) matchAction(
	context Context,
	p parsed,
) bool {
	block, ok := e.blocks[Key{Context: context, Scope: p.Scope}]
	if !ok {
		return false
	}

	for _, action := range p.Action.expand() {
		g := block.grant(action)
		if g.IsZero() || (!g.IsAll() && !g.IsDefault() && len(g.resources) == 0) {
			return false
		}
	}

	return true
}
