package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/convertlength/convertlength/internal/config"
	"github.com/convertlength/convertlength/internal/tui"
	"github.com/convertlength/convertlength/internal/units"
	"github.com/convertlength/convertlength/internal/utils"
)

// Version information - set via ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "convertlength",
	Short: "Convert lengths between metric and imperial units",
	Long: `convertlength converts a value between metre, centimetre, millimetre,
kilometre, mile, foot, inch and yard.

Run without arguments to open the interactive converter.`,
	Version:      Version,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		initializeGlobalState()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := screenOptions(cmd)
		if err != nil {
			return err
		}
		return startTUI(opts)
	},
}

// startTUI runs the converter screen until the user quits
func startTUI(opts tui.Options) error {
	p := tea.NewProgram(tui.InitialModel(opts), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running program: %w", err)
	}
	return nil
}

// screenOptions merges the settings file with --from, --to and --value
func screenOptions(cmd *cobra.Command) (tui.Options, error) {
	settings, err := config.LoadSettings()
	if err != nil {
		utils.Debug("Falling back to default settings: %v", err)
		settings = config.DefaultSettings()
	}
	from, to := settings.DefaultUnits()

	if name, _ := cmd.Flags().GetString("from"); name != "" {
		_, i, err := units.Lookup(name)
		if err != nil {
			return tui.Options{}, err
		}
		from = i
	}
	if name, _ := cmd.Flags().GetString("to"); name != "" {
		_, i, err := units.Lookup(name)
		if err != nil {
			return tui.Options{}, err
		}
		to = i
	}
	value, _ := cmd.Flags().GetString("value")

	utils.Debug("Starting screen: from=%d to=%d value=%q", from, to, value)
	return tui.Options{From: from, To: to, Value: value}, nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.Flags().StringP("from", "f", "", "initial source unit (name or symbol)")
	rootCmd.Flags().StringP("to", "t", "", "initial target unit (name or symbol)")
	rootCmd.Flags().StringP("value", "v", "", "initial value")
	rootCmd.SetVersionTemplate("convertlength version {{.Version}}\n")
}

// initializeGlobalState prepares the config directory and debug logging
func initializeGlobalState() {
	if err := config.EnsureDirs(); err != nil {
		// Debug falls back to a no-op logger if the dir is unusable
		utils.Debug("Failed to create config dirs: %v", err)
	}
	utils.ConfigureDebug(config.GetLogsDir())
	utils.CleanupLogs(utils.DefaultLogRetention)
}
