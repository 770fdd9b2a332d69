package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/BerylCAtieno/marketing-super-agent/internal/router"
)

var classifyJSON bool

var classifyCmd = &cobra.Command{
	Use:   "classify <message>",
	Short: "Show which agents a message activates",
	Long: `Classify a marketing request and list the specialist agents it activates.

Examples:
  superagent classify "Create a campaign brief for Q3"
  superagent classify --json "Reallocate our media budget"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runClassify,
}

func init() {
	rootCmd.AddCommand(classifyCmd)
	classifyCmd.Flags().BoolVar(&classifyJSON, "json", false, "Output the route as JSON")
}

func runClassify(cmd *cobra.Command, args []string) error {
	route := router.Dispatch(strings.Join(args, " "))
	out := cmd.OutOrStdout()

	if classifyJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(route)
	}

	names := make([]string, 0, len(route.Agents))
	for _, a := range route.Agents {
		names = append(names, string(a))
	}
	fmt.Fprintf(out, "category: %s\n", route.Category)
	fmt.Fprintf(out, "agents:   %s\n", strings.Join(names, ", "))
	return nil
}
