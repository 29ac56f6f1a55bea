package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kickstart-dev/kickstart/internal/config"
	"github.com/kickstart-dev/kickstart/internal/scaffold"
	"github.com/kickstart-dev/kickstart/internal/ui"
)

var (
	newTemplate    string
	newPM          string
	newNoClipboard bool
	newNoEmoji     bool
	newSkipChecks  bool
)

func init() {
	newCmd.Flags().StringVarP(&newTemplate, "template", "t", "", "Project template (default from config, react-ts otherwise)")
	newCmd.Flags().StringVar(&newPM, "pm", "", "Package manager: npm, pnpm, yarn, or bun")
	newCmd.Flags().BoolVar(&newNoClipboard, "no-clipboard", false, "Print the follow-up command instead of copying it")
	newCmd.Flags().BoolVar(&newNoEmoji, "no-emoji", false, "Skip the random emoji favicon")
	newCmd.Flags().BoolVar(&newSkipChecks, "skip-checks", false, "Skip tool version preflight")
	rootCmd.AddCommand(newCmd)
}

var newCmd = &cobra.Command{
	Use:   "new <name>",
	Short: "Scaffold a new frontend project",
	Long: `Create a project named <name> in the current directory.

The pipeline runs the Vite generator, installs dependencies, initializes
shadcn/ui (template permitting), writes editor and styling config, patches
tsconfig with the "@/*" alias, and copies the dev-server command to the
clipboard. The first failing step aborts the whole setup.

Examples:
  kickstart new my-app
  kickstart new my-app --template vue-ts --pm pnpm`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := config.Resolve()
		if err != nil {
			return err
		}

		// Flags override config.
		tmpl := settings.Template
		if newTemplate != "" {
			tmpl = newTemplate
		}
		pm := settings.PackageManager
		if newPM != "" {
			pm = newPM
		}

		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("getting current directory: %w", err)
		}

		opts := scaffold.Options{
			Name:           args[0],
			ParentDir:      cwd,
			Template:       tmpl,
			PackageManager: pm,
			Clipboard:      settings.ClipboardEnabled() && !newNoClipboard,
			EmojiFavicon:   settings.EmojiFaviconEnabled() && !newNoEmoji,
			SkipPreflight:  newSkipChecks,
		}

		printer := ui.Printer{Out: cmd.OutOrStdout()}
		result, err := scaffold.Setup(cmd.Context(), opts, scaffold.Deps{Printer: printer})
		if err != nil {
			printer.Error("Setup aborted: %v", err)
			return err
		}

		if !result.Copied {
			printer.Detail("Run it yourself: %s", result.NextCommand)
		}
		return nil
	},
}
