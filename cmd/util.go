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

package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/scopekit-io/scopekit/internal/cli"
	"github.com/scopekit-io/scopekit/internal/config"
	"github.com/scopekit-io/scopekit/internal/permission"
)

// logFatal logs at error level and exits.
func logFatal(
	message string,
	err error,
	kvPairs ...any,
) {
	cli.LogFatal(logger, message, err, kvPairs...)
}

// printJSON marshals v with indentation and prints it.
func printJSON(
	v any,
) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		logFatal("failed to encode output", err)
	}
	fmt.Println(string(data))
}

// resolveRoles returns the role definitions the offline commands operate
// on: the standalone roles file when one is given, the configured role
// set filtered to the requested names otherwise. An empty name list
// selects every configured role.
func resolveRoles(
	rolesFile string,
	names []string,
) []permission.Role {
	if rolesFile != "" {
		roles, err := config.LoadRoles(appFs, rolesFile)
		if err != nil {
			logFatal("failed to load roles file", err, "path", rolesFile)
		}
		return roles
	}

	defined := appConfig.RoleSet()

	if len(names) == 0 {
		roles := make([]permission.Role, 0, len(defined))
		for _, role := range defined {
			roles = append(roles, role)
		}
		return roles
	}

	roles := make([]permission.Role, 0, len(names))
	for _, name := range names {
		role, ok := defined[name]
		if !ok {
			logFatal("unknown role", nil, "role", name)
		}
		roles = append(roles, role)
	}

	return roles
}
