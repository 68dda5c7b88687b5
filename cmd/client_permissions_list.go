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
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/scopekit-io/scopekit/internal/cli"
)

// clientPermissionsListCmd represents the clientPermissionsList command.
var clientPermissionsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the caller's flattened permission set via the API",
	Long: `List the flattened permission set compiled from the caller's token
roles on a running server.
`,
	Run: func(cmd *cobra.Command, _ []string) {
		ctx := cmd.Context()

		resp, err := apiClient.GetPermissions(ctx)
		if err != nil {
			logFatal("failed to get permissions", err)
		}

		if jsonOutput {
			printJSON(resp)
			return
		}

		roleNames := make([]string, 0, len(resp.Roles))
		for _, role := range resp.Roles {
			roleNames = append(roleNames, role.Name)
		}

		fmt.Println()
		cli.PrintKV("Subject", resp.UserID, "Roles", strings.Join(roleNames, ", "))

		headers, rows := cli.BuildPermissionsTable(resp.Permissions)
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
	clientPermissionsCmd.AddCommand(clientPermissionsListCmd)
}
