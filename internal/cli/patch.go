package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kickstart-dev/kickstart/internal/tsconfig"
)

func init() {
	rootCmd.AddCommand(patchCmd)
}

var patchCmd = &cobra.Command{
	Use:   "patch <tsconfig.json>...",
	Short: "Inject the \"@/*\" path alias into tsconfig files",
	Long: `Patch one or more tsconfig files in place, setting
compilerOptions.baseUrl to "." and compilerOptions.paths to {"@/*": ["./src/*"]}.

Comments and trailing commas in the input are tolerated; the output is plain
2-space-indented JSON with all other keys preserved in order. Patching twice
is a no-op.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, path := range args {
			if err := tsconfig.PatchFile(path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Patched %s\n", path)
		}
		return nil
	},
}
