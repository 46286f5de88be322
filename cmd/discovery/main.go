// Command discovery runs the knowledge-discovery search API and offers a
// one-shot search from the terminal.
//
//	discovery serve
//	discovery search --type faculty,paper --format table machine learning
//
// @title                       Knowledge Discovery API
// @version                     1.0
// @description                 Keyword relevance search over university faculty, papers, patents and projects.
// @BasePath                    /api/v1
// @securityDefinitions.apikey  AdminToken
// @in                          header
// @name                        X-Admin-Token
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// version is set at build time via ldflags.
var version = "dev"

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "discovery",
		Short: "University knowledge-discovery search",
		Long: `discovery ranks faculty members, papers, patents and projects against a
free-text query by keyword overlap and explains every match.

serve runs the HTTP API; search runs a single query against the configured
dataset (or the built-in one) and prints the ranked results.`,
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	root.AddCommand(newServeCmd(), newSearchCmd(), newVersionCmd())
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "discovery", version)
		},
	}
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
