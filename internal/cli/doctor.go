package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kickstart-dev/kickstart/internal/runner"
	"github.com/kickstart-dev/kickstart/internal/tools"
)

func init() {
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check that the required external tools are installed",
	Long:  `Verify that node, npm, and git are on PATH and recent enough for project setup.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "Tool check:")

		statuses, err := tools.CheckAll(cmd.Context(), &runner.ExecRunner{}, tools.Defaults)
		for _, st := range statuses {
			name := st.Requirement.Name
			switch {
			case st.OK() && st.Version != "":
				fmt.Fprintf(out, "  [ OK ] %s %s at %s\n", name, st.Version, st.Path)
			case st.OK():
				fmt.Fprintf(out, "  [ OK ] %s found at %s\n", name, st.Path)
			case st.Requirement.Optional:
				fmt.Fprintf(out, "  [WARN] %v\n", st.Err)
			default:
				fmt.Fprintf(out, "  [MISS] %v\n", st.Err)
			}
		}
		return err
	},
}
