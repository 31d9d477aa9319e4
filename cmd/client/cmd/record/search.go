package record

import (
	"strings"

	"github.com/spf13/cobra"
)

var searchFormat string

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search vault records",
	Long: `Searches the local vault by substring match over patient, doctor,
type, description and date. Every word in the query has to match; matching is
case-insensitive. An empty query returns all visible records.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := appFromContext(cmd)
		if err != nil {
			return err
		}

		records := app.SearchRecords(strings.Join(args, " "))

		switch searchFormat {
		case "json":
			return printRecordsJSON(records)
		case "table":
			return printRecordsTable(records)
		default:
			return printRecordsSimple(records)
		}
	},
}

func init() {
	searchCmd.Flags().StringVar(&searchFormat, "format", "simple", "output format: simple, table or json")
}
