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
	"encoding/json"
	"fmt"
)

// grantKind tags the state of a Grant.
type grantKind int

const (
	// grantEmpty nothing granted; the zero value.
	grantEmpty grantKind = iota
	// grantSpecific an explicit resource list.
	grantSpecific
	// grantDefault the resource-less capability.
	grantDefault
	// grantAll every resource under the scope.
	grantAll
)

// Grant is the resource state of one action within a compiled block.
// It is in exactly one of three granted states (All, Default, or a
// specific resource set); the zero value means nothing was granted.
type Grant struct {
	kind      grantKind
	resources []string
}

// AllGrant returns the wildcard grant covering every resource.
func AllGrant() Grant {
	return Grant{kind: grantAll}
}

// DefaultGrant returns the resource-less grant.
func DefaultGrant() Grant {
	return Grant{kind: grantDefault}
}

// SpecificGrant returns a grant over an explicit resource list.
// Duplicates are suppressed; insertion order is preserved.
func SpecificGrant(
	resources ...string,
) Grant {
	g := Grant{kind: grantSpecific}
	for _, r := range resources {
		g = g.merge(r)
	}

	return g
}

// IsZero reports whether nothing was granted.
func (g Grant) IsZero() bool {
	return g.kind == grantEmpty
}

// IsAll reports whether the grant covers all resources.
func (g Grant) IsAll() bool {
	return g.kind == grantAll
}

// IsDefault reports whether the grant is the resource-less capability.
func (g Grant) IsDefault() bool {
	return g.kind == grantDefault
}

// Resources returns the explicit resource list, or nil for marker grants.
func (g Grant) Resources() []string {
	if g.kind != grantSpecific {
		return nil
	}

	out := make([]string, len(g.resources))
	copy(out, g.resources)

	return out
}

// merge folds one parsed resource into the grant. Markers overwrite
// outright: All or Default always replace whatever accumulated before
// them. Specific resources accumulate into a set, but never displace a
// marker already occupying the grant; once a marker is set, a later
// specific resource cannot downgrade it.
func (g Grant) merge(
	resource string,
) Grant {
	switch resource {
	case AllToken:
		return Grant{kind: grantAll}
	case DefaultToken:
		return Grant{kind: grantDefault}
	}

	switch g.kind {
	case grantAll, grantDefault:
		return g
	default:
	}

	for _, r := range g.resources {
		if r == resource {
			return g
		}
	}

	merged := Grant{kind: grantSpecific, resources: make([]string, 0, len(g.resources)+1)}
	merged.resources = append(merged.resources, g.resources...)
	merged.resources = append(merged.resources, resource)

	return merged
}

// normalize collapses specific sets that are morally markers: a set
// containing the All token becomes All, and a non-empty set holding only
// Default tokens becomes Default. With merge handling markers up front
// this is usually a no-op, but it keeps the block invariant independent
// of how entries arrived.
func (g Grant) normalize() Grant {
	if g.kind != grantSpecific || len(g.resources) == 0 {
		return g
	}

	onlyDefault := true
	for _, r := range g.resources {
		if r == AllToken {
			return Grant{kind: grantAll}
		}
		if r != DefaultToken {
			onlyDefault = false
		}
	}

	if onlyDefault {
		return Grant{kind: grantDefault}
	}

	return g
}

// contains reports whether the grant covers the given parsed resource:
// All covers anything, Default covers only the default resource, and a
// specific set covers its members.
func (g Grant) contains(
	resource string,
) bool {
	switch g.kind {
	case grantAll:
		return true
	case grantDefault:
		return resource == DefaultToken
	case grantSpecific:
		for _, r := range g.resources {
			if r == resource {
				return true
			}
		}
	}

	return false
}

// includes reports whether the grant subsumes another: All subsumes any
// granted state, Default subsumes only Default, and a specific set
// subsumes specific subsets. Nothing subsumes the empty grant's absence.
func (g Grant) includes(
	other Grant,
) bool {
	if other.kind == grantEmpty {
		return false
	}

	switch g.kind {
	case grantAll:
		return true
	case grantDefault:
		return other.kind == grantDefault
	case grantSpecific:
		if other.kind != grantSpecific {
			return false
		}
		for _, r := range other.resources {
			if !g.contains(r) {
				return false
			}
		}

		return true
	}

	return false
}

// equal reports state equality; specific sets compare as sets.
func (g Grant) equal(
	other Grant,
) bool {
	if g.kind != other.kind {
		return false
	}
	if g.kind != grantSpecific {
		return true
	}

	return len(g.resources) == len(other.resources) &&
		g.includes(other) && other.includes(g)
}

// MarshalJSON serializes markers as their token strings and specific
// grants as a resource array, matching the introspection wire shape.
func (g Grant) MarshalJSON() ([]byte, error) {
	switch g.kind {
	case grantAll:
		return json.Marshal(AllToken)
	case grantDefault:
		return json.Marshal(DefaultToken)
	default:
		if g.resources == nil {
			return json.Marshal([]string{})
		}

		return json.Marshal(g.resources)
	}
}

// UnmarshalJSON accepts either a marker token string or a resource array.
func (g *Grant) UnmarshalJSON(data []byte) error {
	var token string
	if err := json.Unmarshal(data, &token); err == nil {
		switch token {
		case AllToken:
			*g = AllGrant()
		case DefaultToken:
			*g = DefaultGrant()
		default:
			return fmt.Errorf("unknown resource marker: %q", token)
		}

		return nil
	}

	var resources []string
	if err := json.Unmarshal(data, &resources); err != nil {
		return fmt.Errorf("resources must be a marker string or array: %w", err)
	}
	*g = SpecificGrant(resources...)

	return nil
}
