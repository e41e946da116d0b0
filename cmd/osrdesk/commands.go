package main

import (
	"fmt"
	"net/url"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/osrtools/osrdesk/internal/config"
	"github.com/osrtools/osrdesk/internal/dispatch"
	"github.com/osrtools/osrdesk/internal/history"
	"github.com/osrtools/osrdesk/internal/lookup"
	"github.com/osrtools/osrdesk/internal/payload"
	"github.com/osrtools/osrdesk/internal/workflow"
)

// Console flags
var (
	dryRun       bool
	configPath   string
	historyPath  string
	endpoint     string
	listFacility string
)

func init() {
	rootCmd.PersistentFlags().BoolVar(&dryRun, "dry-run", false, "Compose and record orders without sending anything")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file path (default: user config dir)")
	rootCmd.PersistentFlags().StringVar(&historyPath, "history", "", "History database path (default: user config dir)")
	rootCmd.PersistentFlags().StringVar(&endpoint, "endpoint", "ws://localhost:8080/orders", "Controller order endpoint")

	rootCmd.AddCommand(consoleCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(cleanupCmd)
	rootCmd.AddCommand(sendCmd)
}

// consoleCmd launches the interactive console
var consoleCmd = &cobra.Command{
	Use:   "console",
	Short: "Launch the interactive order console",
	Long: `Launch the full-screen order console.

The console walks through order composition per mode, previews the
generated payload, dispatches on confirmation and records every sent
order in the local history database.

This is also the default when osrdesk runs without a command.`,
	Example: `  # Launch the console
  osrdesk

  # Compose orders without dispatching anything
  osrdesk --dry-run

  # Point at a different controller
  osrdesk --endpoint ws://wcs-test:8080/orders`,
	RunE: runConsole,
}

func runConsole(cmd *cobra.Command, args []string) error {
	store, err := config.NewStore(configPath)
	if err != nil {
		return fmt.Errorf("config store: %w", err)
	}
	settings, err := store.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	hist, err := openHistory()
	if err != nil {
		return err
	}
	defer hist.Close()

	model := workflow.NewAppModel(workflow.Deps{
		Store:      store,
		Settings:   settings,
		Dispatcher: dispatch.NewDispatcher(endpoint, dryRun),
		Canceller:  dispatch.NewCanceller(endpoint, dryRun),
		History:    hist,
		Lookup:     lookup.NewClient(lookupBase(endpoint)),
		DryRun:     dryRun,
	})

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("console error: %w", err)
	}
	return nil
}

// lookupBase derives the inventory API base URL from the ws:// order
// endpoint: same host, matching http scheme, no path.
func lookupBase(endpoint string) string {
	u, err := url.Parse(endpoint)
	if err != nil || u.Host == "" {
		return endpoint
	}
	scheme := "http"
	if u.Scheme == "wss" || u.Scheme == "https" {
		scheme = "https"
	}
	return scheme + "://" + u.Host
}

func openHistory() (*history.Store, error) {
	path := historyPath
	if path == "" {
		p, err := history.DefaultPath()
		if err != nil {
			return nil, fmt.Errorf("history path: %w", err)
		}
		path = p
	}
	hist, err := history.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open history: %w", err)
	}
	return hist, nil
}

// historyCmd groups the one-shot history operations
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Inspect the order history",
	RunE:  runHistory,
}

// historyListCmd lists recorded orders without entering the console
var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recorded orders",
	Long: `List orders recorded in the history database, most recent first.

Without --facility the configured facility is used.`,
	Example: `  # List orders for the configured facility
  osrdesk history list

  # List orders for another facility
  osrdesk history list --facility osr2`,
	RunE: runHistory,
}

func init() {
	historyListCmd.Flags().StringVar(&listFacility, "facility", "", "Facility to list orders for")
	historyCmd.AddCommand(historyListCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	facility := listFacility
	if facility == "" {
		store, err := config.NewStore(configPath)
		if err != nil {
			return fmt.Errorf("config store: %w", err)
		}
		settings, err := store.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		facility = settings.Facility()
	}
	if facility == "" {
		return fmt.Errorf("no facility configured; use --facility")
	}

	hist, err := openHistory()
	if err != nil {
		return err
	}
	defer hist.Close()

	entries, err := hist.ListFor(facility)
	if err != nil {
		return fmt.Errorf("list history: %w", err)
	}
	if len(entries) == 0 {
		fmt.Printf("No orders recorded for %s.\n", facility)
		return nil
	}

	fmt.Printf("%-30s %-10s %-18s %s\n", "ORDER", "TYPE", "STATUS", "CREATED")
	for _, e := range entries {
		fmt.Printf("%-30s %-10s %-18s %s\n",
			e.OrderID, e.Type, e.Status, e.Created.Local().Format("2006-01-02 15:04:05"))
	}
	return nil
}

// cleanupCmd removes old history entries
var cleanupCmd = &cobra.Command{
	Use:   "cleanup <timeframe>",
	Short: "Delete history entries older than a timeframe",
	Long: `Delete history entries created before the given cutoff.

Timeframes: 1d, 1w, 2w, 1m, all, or an absolute date as YYYY-MM-DD.`,
	Example: `  # Drop everything older than two weeks
  osrdesk cleanup 2w

  # Drop the entire history
  osrdesk cleanup all

  # Drop everything before a date
  osrdesk cleanup 2026-01-01`,
	Args: cobra.ExactArgs(1),
	RunE: runCleanup,
}

func runCleanup(cmd *cobra.Command, args []string) error {
	before, err := history.ParseTimeframe(args[0], time.Now())
	if err != nil {
		return err
	}

	hist, err := openHistory()
	if err != nil {
		return err
	}
	defer hist.Close()

	n, err := hist.Cleanup(before)
	if err != nil {
		return fmt.Errorf("cleanup: %w", err)
	}
	fmt.Printf("Deleted %d order(s).\n", n)
	return nil
}

// sendCmd dispatches a prepared payload file without the console
var sendCmd = &cobra.Command{
	Use:   "send <file>",
	Short: "Dispatch a prepared payload file",
	Long: `Send a prepared host2osr XML document to the controller.

The payload is dispatched as-is and recorded in the history database.
With --dry-run nothing is sent but the order is still recorded.`,
	Example: `  # Send a prepared order
  osrdesk send order.xml

  # Validate the round trip without dispatching
  osrdesk send order.xml --dry-run`,
	Args: cobra.ExactArgs(1),
	RunE: runSend,
}

func runSend(cmd *cobra.Command, args []string) error {
	raw, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read payload: %w", err)
	}
	doc := string(raw)

	store, err := config.NewStore(configPath)
	if err != nil {
		return fmt.Errorf("config store: %w", err)
	}
	settings, err := store.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	d := dispatch.NewDispatcher(endpoint, dryRun)
	if err := d.Send(cmd.Context(), doc); err != nil {
		return fmt.Errorf("dispatch failed: %w", err)
	}

	hist, err := openHistory()
	if err != nil {
		return err
	}
	defer hist.Close()

	entry, err := recordSend(hist, settings.Facility(), doc)
	if err != nil {
		return fmt.Errorf("record order: %w", err)
	}

	if dryRun {
		fmt.Printf("Dry run: order %s validated, nothing sent.\n", entry.OrderID)
	} else {
		fmt.Printf("Order %s dispatched.\n", entry.OrderID)
	}
	return nil
}

func recordSend(hist *history.Store, facility, doc string) (history.Entry, error) {
	status := history.StatusSent
	if dryRun {
		status = history.StatusDryRun
	}
	return hist.Add(history.Entry{
		OrderID:  payload.OrderID(doc),
		Type:     payload.OrderType(doc),
		Facility: facility,
		Status:   status,
		Payload:  doc,
	})
}
