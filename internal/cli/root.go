package cli

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	version string // semantic version (e.g., "v1.2.3")
	commit  string // git commit SHA
	date    string // build timestamp
)

// SetVersion sets the version information displayed by --version.
// The main package calls it with values injected via ldflags.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the mazegen CLI until completion or until ctx is cancelled.
//
// Logs go to stderr at info level, or debug with --verbose.
func Execute(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}

// newRootCmd builds the command tree. Subcommands find their logger in the
// command context.
func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:           "mazegen",
		Short:         "mazegen carves perfect mazes from random spanning trees",
		Long:          `mazegen builds a rectangular grid of rooms, knocks down the walls of a randomized minimum spanning tree so that every room is reachable along exactly one route, and draws the result. It can also highlight the route between the top-left and bottom-right rooms.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger := newLogger(cmd.ErrOrStderr(), verbose)
			cmd.SetContext(log.WithContext(cmd.Context(), logger))
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("mazegen %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newGenerateCmd())
	root.AddCommand(newConfigCmd())

	return root
}
