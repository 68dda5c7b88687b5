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
	"github.com/spf13/cobra"

	"github.com/scopekit-io/scopekit/internal/cli"
	"github.com/scopekit-io/scopekit/internal/permission"
)

// permissionsListCmd represents the permissionsList command.
var permissionsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the flattened permission set",
	Long: `Compile role definitions and list the flattened permission set, one
entry per scope and action. Roles come from the configuration file, or from
a standalone roles file via --roles-file.
`,
	Run: func(cmd *cobra.Command, _ []string) {
		rolesFile, _ := cmd.Flags().GetString("roles-file")
		roleNames, _ := cmd.Flags().GetStringSlice("roles")

		roles := resolveRoles(rolesFile, roleNames)
		entries := permission.Compile(roles).Unwrap()

		if jsonOutput {
			printJSON(entries)
			return
		}

		headers, rows := cli.BuildPermissionsTable(entries)
		cli.PrintCompactTable([]cli.Section{
			{
				Title:   "Permissions",
				Headers: headers,
				Rows:    rows,
			},
		})
	},
}

func init() {
	permissionsCmd.AddCommand(permissionsListCmd)

	permissionsListCmd.PersistentFlags().
		String("roles-file", "", "Path to a standalone roles YAML file")
	permissionsListCmd.PersistentFlags().
		StringSliceP("roles", "r", []string{}, "Configured role names to compile (default: all)")
}
