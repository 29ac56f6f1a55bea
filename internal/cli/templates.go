package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kickstart-dev/kickstart/internal/template"
)

func init() {
	rootCmd.AddCommand(templatesCmd)
}

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "List available project templates",
	RunE: func(cmd *cobra.Command, args []string) error {
		manifests, err := template.List()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		for _, m := range manifests {
			fmt.Fprintf(out, "%-12s %s\n", m.Name, m.DisplayName)
			fmt.Fprintf(out, "             %s\n", m.Description)
		}
		return nil
	},
}
