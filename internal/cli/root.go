package cli

import (
	"github.com/spf13/cobra"

	"github.com/kickstart-dev/kickstart/internal/branding"
	"github.com/kickstart-dev/kickstart/internal/config"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` scaffolds a frontend project in one command: it drives the
Vite generator and the shadcn/ui init, writes opinionated editor and styling
config, wires the "@/*" import alias into tsconfig, and puts the dev-server
command on your clipboard.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.Load()
	},
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	return rootCmd.Execute()
}
