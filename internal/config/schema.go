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

package config

import (
	"fmt"

	"github.com/scopekit-io/scopekit/internal/permission"
	"github.com/scopekit-io/scopekit/internal/validation"
)

// Validate checks the unmarshalled configuration, including every role
// definition's context and permission-string syntax.
func Validate(
	cfg *Config,
) error {
	if err := validation.Instance().Struct(cfg); err != nil {
		return err
	}

	for name, role := range cfg.Roles {
		if err := validation.Instance().Struct(role); err != nil {
			return fmt.Errorf("role %q: %w", name, err)
		}
	}

	return nil
}

// RoleSet converts the configured role definitions into engine roles,
// keyed by role name. The map key doubles as the role's name and, when
// no explicit ID is set, its ID.
func (c Config) RoleSet() map[string]permission.Role {
	set := make(map[string]permission.Role, len(c.Roles))
	for name, role := range c.Roles {
		id := role.ID
		if id == "" {
			id = name
		}

		set[name] = permission.Role{
			ID:          id,
			Name:        name,
			Description: role.Description,
			Context:     permission.Context(role.Context),
			Permissions: role.Permissions,
		}
	}

	return set
}
