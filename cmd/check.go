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

	"github.com/scopekit-io/scopekit/internal/cli"
	"github.com/scopekit-io/scopekit/internal/permission"
)

// checkCmd represents the check command.
var checkCmd = &cobra.Command{
	Use:   "check PERMISSION",
	Short: "Evaluate a permission against compiled roles",
	Long: `Compile role definitions and evaluate a Scope.Action[.Resource]
permission against them, without contacting a server. Roles come from the
configuration file, or from a standalone roles file via --roles-file.

Exits 0 when the permission is granted and 1 when it is denied.
`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		rolesFile, _ := cmd.Flags().GetString("roles-file")
		roleNames, _ := cmd.Flags().GetStringSlice("roles")
		queryContext, _ := cmd.Flags().GetString("context")
		actionOnly, _ := cmd.Flags().GetBool("action-only")

		roles := resolveRoles(rolesFile, roleNames)
		engine := permission.Compile(roles)

		allowed, err := runCheck(engine, args[0], queryContext, actionOnly)
		if err != nil {
			logFatal("failed to evaluate permission", err, "permission", args[0])
		}

		if jsonOutput {
			printJSON(map[string]bool{"allowed": allowed})
		} else if allowed {
			fmt.Println(cli.DimStyle.Render("allowed"))
		} else {
			fmt.Println(cli.DimStyle.Render("denied"))
		}

		if !allowed {
			os.Exit(1)
		}
	},
}

// runCheck dispatches to the engine query matching the requested context
// restriction and resource handling.
func runCheck(
	engine *permission.Engine,
	p string,
	queryContext string,
	actionOnly bool,
) (bool, error) {
	switch {
	case actionOnly && queryContext == "local":
		return engine.CheckActionLocal(p)
	case actionOnly && queryContext == "global":
		return engine.CheckActionGlobal(p)
	case actionOnly:
		return engine.CheckAction(p)
	case queryContext == "local":
		return engine.CheckLocal(p)
	case queryContext == "global":
		return engine.CheckGlobal(p)
	default:
		return engine.Check(p)
	}
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.PersistentFlags().
		String("roles-file", "", "Path to a standalone roles YAML file")
	checkCmd.PersistentFlags().
		StringSliceP("roles", "r", []string{}, "Configured role names to compile (default: all)")
	checkCmd.PersistentFlags().
		StringP("context", "c", "", "Restrict the check to one context (local or global)")
	checkCmd.PersistentFlags().
		BoolP("action-only", "a", false, "Ignore the resource segment; any grant for the scope and action passes")

	checkCmd.PersistentPreRun = func(cmd *cobra.Command, _ []string) {
		queryContext, _ := cmd.Flags().GetString("context")
		if queryContext != "" && queryContext != "local" && queryContext != "global" {
			logFatal("invalid context", nil, "context", queryContext)
		}
	}
}
