package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/convertlength/convertlength/internal/config"
	"github.com/convertlength/convertlength/internal/units"
	"github.com/convertlength/convertlength/internal/utils"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or change saved defaults",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the settings file location and contents",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := config.LoadSettings()
		if err != nil {
			return err
		}
		data, err := yaml.Marshal(settings)
		if err != nil {
			return fmt.Errorf("failed to encode settings: %w", err)
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "# %s\n", config.GetSettingsPath())
		fmt.Fprint(out, string(data))
		return nil
	},
}

var configSetDefaultCmd = &cobra.Command{
	Use:   "set-default <from> <to>",
	Short: "Set the units the screen opens with",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		from, _, err := units.Lookup(args[0])
		if err != nil {
			return err
		}
		to, _, err := units.Lookup(args[1])
		if err != nil {
			return err
		}

		settings, err := config.LoadSettings()
		if err != nil {
			utils.Debug("Replacing unreadable settings: %v", err)
			settings = config.DefaultSettings()
		}
		settings.General.DefaultFrom = from.Name
		settings.General.DefaultTo = to.Name
		if err := config.SaveSettings(settings); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Default units set: %s -> %s\n", from, to)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetDefaultCmd)
}
