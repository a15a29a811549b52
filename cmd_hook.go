package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"hassha/internal/config"
	"hassha/internal/dispatch"
	"hassha/internal/history"
	"hassha/internal/model"
	"hassha/internal/store"
)

func init() {
	rootCmd.AddCommand(hookCmd)
}

var hookCmd = &cobra.Command{
	Use:   "hook [event]",
	Short: "Handle a hook event read from stdin",
	Long: `Reads the hook payload JSON from stdin and plays the melody configured for
the event in the nearest .hassha/config.toml. When event is omitted the
payload's hook_event_name is used.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var event string
		if len(args) == 1 {
			event = args[0]
		}

		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}

		cfg := config.Default()
		d := dispatch.New(dispatch.Deps{
			Cache:   newCache(cfg),
			Player:  newPlayer(),
			History: history.New(cfg.HistoryPath()),
			Journal: fileJournal(cfg.JournalPath()),
			Logger:  slog.Default(),
		})

		out, err := d.Dispatch(cmd.Context(), event, data)
		if err != nil {
			return err
		}
		slog.Debug("hook done", "event", event, "outcome", out)
		return nil
	},
}

// fileJournal opens the journal only when there is a play to record, so
// hooks that end without playing never touch DuckDB.
type fileJournal string

func (j fileJournal) RecordPlay(p model.Play) error {
	st, err := store.Open(string(j))
	if err != nil {
		return err
	}
	defer st.Close()

	if err := st.InitSchema(); err != nil {
		return err
	}
	return st.RecordPlay(p)
}
