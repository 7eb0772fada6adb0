package cmd

import (
	"encoding/json"
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/convertlength/convertlength/internal/units"
)

// unitRow is the JSON shape of one table entry
type unitRow struct {
	Name   string  `json:"name"`
	Symbol string  `json:"symbol"`
	Factor float64 `json:"per_metre"`
}

var unitsCmd = &cobra.Command{
	Use:   "units",
	Short: "List supported units",
	Long:  `List every supported unit with its symbol and how many of it make one metre.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		jsonOutput, _ := cmd.Flags().GetBool("json")
		out := cmd.OutOrStdout()

		if jsonOutput {
			rows := make([]unitRow, 0, units.Count)
			for _, u := range units.All() {
				rows = append(rows, unitRow{Name: u.Name, Symbol: u.Symbol, Factor: u.Factor})
			}
			data, err := json.MarshalIndent(rows, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(out, string(data))
			return nil
		}

		w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tSYMBOL\tPER METRE")
		fmt.Fprintln(w, "----\t------\t---------")
		for _, u := range units.All() {
			fmt.Fprintf(w, "%s\t%s\t%s\n", u.Name, u.Symbol, strconv.FormatFloat(u.Factor, 'g', -1, 64))
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(unitsCmd)
	unitsCmd.Flags().Bool("json", false, "Output in JSON format")
}
