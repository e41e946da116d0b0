// Osrdesk is an operator console for composing and dispatching warehouse
// automation orders.
//
// It provides a full-screen terminal interface for building pick, inventory,
// goods-in, goods-add and transport orders, dispatching them to the control
// system over websocket, and browsing or cancelling previously sent orders.
// Against test facilities it also generates simulator commands for carrier
// handling.
//
// Usage:
//
//	osrdesk [command] [flags]
//
// Running without arguments launches the interactive console.
// See 'osrdesk --help' for available commands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/osrtools/osrdesk/internal/logging"
	"github.com/osrtools/osrdesk/internal/version"
)

func main() {
	if err := logging.Initialize(""); err != nil {
		fmt.Fprintf(os.Stderr, "Error: logging setup failed: %v\n", err)
		os.Exit(1)
	}
	defer logging.Sync()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "osrdesk",
	Short: "Warehouse Order Console",
	Long: `An operator console for warehouse automation orders.

Compose pick, inventory, goods-in, goods-add and transport orders in a
terminal interface, dispatch them to the control system, and browse or
cancel previously sent orders.

If no command is specified, the interactive console will launch.`,
	Version: version.Version,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runConsole(cmd, args)
	},
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("osrdesk %s (commit: %s)\n", version.Version, version.Commit)
	},
}
