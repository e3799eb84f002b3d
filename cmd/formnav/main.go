// Formnav runs keyboard forms in the terminal with return-key navigation.
//
// Pressing return in a field moves focus to the next field of its
// navigation scope, or releases focus on the last one. Forms and the
// navigation policy come from a YAML or TOML configuration file.
//
// Usage:
//
//	formnav [command] [flags]
//
// Running without arguments opens the default form.
// See 'formnav --help' for available commands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/muurk/formnav/internal/logging"
	"github.com/muurk/formnav/internal/version"
)

func main() {
	err := rootCmd.Execute()
	logging.Sync()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "formnav",
	Short: "Terminal forms with return-key navigation",
	Long: `Formnav renders a form from its configuration file and lets you move
between fields with the return key.

Return advances to the next field of the current scope (a scrollable
list, or the field's siblings). On the last field it releases focus;
press return again to submit the form.

If no command is specified, the default form is opened.`,
	Version:           version.Version,
	SilenceUsage:      true,
	PersistentPreRunE: setupLogging,
	RunE:              runForm,
}

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), version.Get())
	},
}
