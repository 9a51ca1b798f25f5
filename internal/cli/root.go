package cli

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/stencil-labs/stencil/internal/branding"
	"github.com/stencil-labs/stencil/internal/config"
	"github.com/stencil-labs/stencil/internal/scaffold"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` generates a complete, verified TypeScript project: directory
tree, build/lint/test configuration, source stubs, and git hook wiring,
then proves the result by running the external toolchain.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.Load()
	},
}

func init() {
	// A mistyped flag must fail the run, never be silently ignored: a typo
	// would otherwise generate an inconsistent tree.
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &scaffold.ConfigError{Kind: scaffold.UnknownOption, Message: err.Error()}
	})
}

// Execute runs the root command with build info injected via ldflags.
// An interrupt cancels the command context; the running toolchain step is
// killed and whatever partial tree exists is left in place.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return rootCmd.ExecuteContext(ctx)
}
