package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/convertlength/convertlength/internal/units"
)

var convertCmd = &cobra.Command{
	Use:   "convert <value> <from> <to>",
	Short: "Convert a value without opening the screen",
	Long: `Convert a value from one unit to another and print the result.

Units may be given by name, symbol or common spelling (m, metre, meters, ft, feet...).
Separate negative values from flags with --, e.g. convertlength convert -- -5 ft m`,
	Example: `  convertlength convert 5 mile km
  convertlength convert --raw 12 in cm`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, _ := cmd.Flags().GetBool("raw")

		value, err := units.ParseInput(args[0])
		if err != nil {
			return err
		}
		from, _, err := units.Lookup(args[1])
		if err != nil {
			return err
		}
		to, _, err := units.Lookup(args[2])
		if err != nil {
			return err
		}

		result := units.Convert(value, from, to)
		if raw {
			fmt.Fprintln(cmd.OutOrStdout(), units.FormatValue(result))
			return nil
		}
		fmt.Fprintln(cmd.OutOrStdout(), units.FormatResult(result, to))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(convertCmd)
	convertCmd.Flags().Bool("raw", false, "print only the number")
}
