// The root command for the CLI.
// This root 'composes' your subcommands and provides global config flags like --debug.
package cmd

import (
	// Import your CLI subcommands
	"github.com/syspeek/syspeek/internal/commands/envCommand"
	"github.com/syspeek/syspeek/internal/commands/scanCommand"
	"github.com/syspeek/syspeek/internal/commands/showCommand"
	"github.com/syspeek/syspeek/internal/commands/vinfoCommand"

	// Import your CLI config
	"github.com/syspeek/syspeek/internal/config"
	"github.com/syspeek/syspeek/internal/version"

	"github.com/spf13/cobra"
)

var (
	// A path to a file to load configuration from
	cfgFile string
	// For enabling debug logging with --debug/-D
	debug bool
)

// Cobra root command
var rootCmd = &cobra.Command{
	// The command you run to call the compiled binary
	Use: "syspeek",
	// A short description of what the command does
	Short: "Host & executable inspection utility.",
	// A longer description for the command
	Long: `Cross-platform host inspection: environment variables, OS & node
identification, and Win32 version-resource metadata of executables/DLLs.`,
	// Adds a help menu you can display with --help/-h
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// Execute the root Cobra command
func Execute() {
	// Import this into a main.go and call with cmd.Execute()
	cobra.CheckErr(rootCmd.Execute())
}

// Initialize the root command
func init() {
	// Add flags to the CLI's root command, making them 'global'
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (JSON/YAML/TOML/.env)")
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "D", false, "Enable debug logging")

	// Add other CLI subcommands
	rootCmd.AddCommand(showCommand.NewShowCmd())
	rootCmd.AddCommand(envCommand.NewEnvCommand())
	rootCmd.AddCommand(vinfoCommand.NewVinfoCommand())
	rootCmd.AddCommand(scanCommand.NewScanPathCommand())
	rootCmd.AddCommand(version.NewSelfCommand())

	// Call the initConfig function when the root command is initialized
	cobra.OnInitialize(initConfig)
}

// Load configuration for CLI app
func initConfig() {
	config.LoadConfig(rootCmd.PersistentFlags(), cfgFile)
}
