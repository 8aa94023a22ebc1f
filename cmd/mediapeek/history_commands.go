package main

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"mediapeek/internal/config"
	"mediapeek/internal/journal"
	"mediapeek/internal/textutil"
)

var errJournalDisabled = errors.New("probe journal is disabled; enable [journal] in the configuration file")

func newHistoryCommand(ctx *commandContext) *cobra.Command {
	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "Inspect recorded probe outcomes",
	}

	historyCmd.AddCommand(newHistoryListCommand(ctx))
	historyCmd.AddCommand(newHistoryShowCommand(ctx))
	historyCmd.AddCommand(newHistoryClearCommand(ctx))

	return historyCmd
}

func openHistory(cfg *config.Config) (*journal.Store, error) {
	if cfg == nil || !cfg.Journal.Enabled {
		return nil, errJournalDisabled
	}
	return journal.Open(cfg.Journal.Path)
}

func newHistoryListCommand(ctx *commandContext) *cobra.Command {
	var limit int
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recorded probes, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			store, err := openHistory(cfg)
			if err != nil {
				return err
			}
			defer store.Close()

			entries, err := store.List(cmd.Context(), limit)
			if err != nil {
				return err
			}
			if jsonOut {
				return writeJSON(cmd, entries)
			}
			if len(entries) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No probe history recorded")
				return nil
			}

			rows := make([][]string, 0, len(entries))
			for _, entry := range entries {
				rows = append(rows, []string{
					strconv.FormatInt(entry.ID, 10),
					entry.CreatedAt.Local().Format(time.RFC3339),
					historyName(entry),
					textutil.FormatBytes(entry.SizeBytes),
					entry.Strategy,
					strconv.Itoa(len(entry.Tracks)),
				})
			}
			table := renderTable(
				[]string{"ID", "Recorded", "Name", "Size", "Strategy", "Tracks"},
				rows,
				0, 5,
			)
			fmt.Fprintln(cmd.OutOrStdout(), table)
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum entries to list (0 for all)")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit entries as JSON")
	return cmd
}

func newHistoryShowCommand(ctx *commandContext) *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show one recorded probe in detail",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid history id %q", args[0])
			}
			store, err := openHistory(cfg)
			if err != nil {
				return err
			}
			defer store.Close()

			entry, err := store.GetByID(cmd.Context(), id)
			if err != nil {
				return err
			}
			if entry == nil {
				return fmt.Errorf("history entry %d not found", id)
			}
			if jsonOut {
				return writeJSON(cmd, entry)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "ID:        %d\n", entry.ID)
			fmt.Fprintf(out, "Recorded:  %s\n", entry.CreatedAt.Local().Format(time.RFC3339))
			fmt.Fprintf(out, "Source:    %s\n", entry.Source)
			if entry.DisplayName != "" {
				fmt.Fprintf(out, "Name:      %s\n", entry.DisplayName)
			}
			fmt.Fprintf(out, "Size:      %s\n", textutil.FormatBytes(entry.SizeBytes))
			fmt.Fprintf(out, "Strategy:  %s\n", entry.Strategy)
			if len(entry.Tracks) == 0 {
				fmt.Fprintln(out, "No audio tracks recorded")
				return nil
			}
			fmt.Fprintln(out, renderTable(
				[]string{"#", "Language", "Codec", "Channels", "Bitrate"},
				buildTrackRows(entry.Tracks),
				0,
			))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit the entry as JSON")
	return cmd
}

func newHistoryClearCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove all recorded probes",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			store, err := openHistory(cfg)
			if err != nil {
				return err
			}
			defer store.Close()

			removed, err := store.Clear(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Cleared %d history entries\n", removed)
			return nil
		},
	}
}

func historyName(entry *journal.Entry) string {
	return textutil.Ternary(entry.DisplayName != "", entry.DisplayName, entry.Source)
}
