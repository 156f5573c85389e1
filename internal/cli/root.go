package cli

import (
	"io"

	"github.com/elemgen-labs/elemgen/internal/branding"
	"github.com/elemgen-labs/elemgen/internal/dispatch"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

// NewRootCommand builds the root command for one entry point.
func NewRootCommand(mode dispatch.Mode) *cobra.Command {
	use := branding.CLIName()
	if mode == dispatch.ModeScript {
		use = branding.CLIName() + "-script"
	}

	return &cobra.Command{
		Use:   use,
		Short: branding.Description(),
		Long: branding.DisplayName() + ` validates a scaffold request for a known element type
(component, page, service, connector) and its test-file options.`,
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		CompletionOptions:  cobra.CompletionOptions{DisableDefaultCmd: true},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(mode, cmd.OutOrStdout(), cmd.ErrOrStderr(), args)
		},
	}
}

// Execute runs the entry point for mode with build info injected via
// ldflags. Any error has already been written to stderr when it returns.
func Execute(mode dispatch.Mode, version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	return execute(NewRootCommand(mode))
}

func execute(cmd *cobra.Command) error {
	err := cmd.Execute()
	if err != nil {
		renderError(cmd.ErrOrStderr(), err)
	}
	return err
}

func renderError(w io.Writer, err error) {
	_ = dispatch.RenderError(w, err)
}
