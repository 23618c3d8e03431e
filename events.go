package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/decker502/spider/internal/telemetry"
)

var eventsCmd = &cobra.Command{
	Use:   "events [count]",
	Short: "Show recent analytics events",
	Long: `List the most recent analytics events recorded in --analytics-db,
newest first (default 20).

Examples:
  spider events
  spider events 50 --analytics-db ./events.db`,
	Args: cobra.MaximumNArgs(1),
	RunE: runEvents,
}

func runEvents(cmd *cobra.Command, args []string) error {
	limit := 20
	if len(args) == 1 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n <= 0 {
			return fmt.Errorf("invalid count %q", args[0])
		}
		limit = n
	}
	if flagAnalyticsDB == "" {
		return fmt.Errorf("no analytics database (--analytics-db is empty)")
	}

	store, err := telemetry.Open(flagAnalyticsDB)
	if err != nil {
		return err
	}
	defer store.Close()

	events, err := store.Recent(limit)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if len(events) == 0 {
		fmt.Fprintln(out, "No events recorded yet.")
		return nil
	}
	fmt.Fprintf(out, "  %-16s  %-20s  %s\n", "Time", "Event", "Params")
	fmt.Fprintf(out, "  %-16s  %-20s  %s\n", "----", "-----", "------")
	for _, e := range events {
		fmt.Fprintf(out, "  %-16s  %-20s  %s\n", e.CreatedAt.Local().Format("2006-01-02 15:04"), e.Kind, e.Params)
	}
	return nil
}
