package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/BerylCAtieno/marketing-super-agent/internal/catalog"
)

var agentsCmd = &cobra.Command{
	Use:   "agents",
	Short: "List the specialist agents",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "AGENT\tSLUG\tTASK")
		for _, a := range catalog.Agents() {
			fmt.Fprintf(w, "%s %s\t%s\t%s\n", a.Icon, a.Name, a.Slug, a.Task)
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(agentsCmd)
}
