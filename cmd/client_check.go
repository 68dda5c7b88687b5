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
	"os"

	"github.com/spf13/cobra"

	"github.com/scopekit-io/scopekit/internal/api/authz"
	"github.com/scopekit-io/scopekit/internal/cli"
)

// clientCheckCmd represents the clientCheck command.
var clientCheckCmd = &cobra.Command{
	Use:   "check PERMISSION",
	Short: "Evaluate a permission via the API",
	Long: `Evaluate a Scope.Action[.Resource] permission against the caller's
token roles on a running server.

Exits 0 when the permission is granted and 1 when it is denied.
`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()
		queryContext, _ := cmd.Flags().GetString("context")
		actionOnly, _ := cmd.Flags().GetBool("action-only")

		resp, err := apiClient.CheckPermission(ctx, authz.CheckRequest{
			Permission: args[0],
			Context:    queryContext,
			ActionOnly: actionOnly,
		})
		if err != nil {
			logFatal("failed to evaluate permission", err, "permission", args[0])
		}

		if jsonOutput {
			printJSON(resp)
		} else if resp.Allowed {
			fmt.Println(cli.DimStyle.Render("allowed"))
		} else {
			fmt.Println(cli.DimStyle.Render("denied"))
		}

		if !resp.Allowed {
			os.Exit(1)
		}
	},
}

func init() {
	clientCmd.AddCommand(clientCheckCmd)

	clientCheckCmd.PersistentFlags().
		StringP("context", "c", "", "Restrict the check to one context (local or global)")
	clientCheckCmd.PersistentFlags().
		BoolP("action-only", "a", false, "Ignore the resource segment; any grant for the scope and action passes")
}
