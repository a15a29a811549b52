package main

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"hassha/internal/config"
	"hassha/internal/model"
	"hassha/internal/store"
)

var (
	statsSince string
	statsUntil string
	statsLimit int
)

func init() {
	statsCmd.Flags().StringVar(&statsSince, "since", "", "only plays after this time (30m, 2h, 1d, 1w, 2006-01-02, RFC3339)")
	statsCmd.Flags().StringVar(&statsUntil, "until", "", "only plays before this time")
	statsCmd.Flags().IntVarP(&statsLimit, "limit", "n", 10, "rows per table")
	rootCmd.AddCommand(statsCmd)
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Summarize the play journal",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		tf, err := model.ParseTimeFilter(statsSince, statsUntil, time.Now())
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		path := config.Default().JournalPath()
		if !fileExists(path) {
			fmt.Fprintln(out, "No plays recorded yet.")
			return nil
		}

		st, err := store.Open(path)
		if err != nil {
			return err
		}
		defer st.Close()
		if err := st.InitSchema(); err != nil {
			return err
		}

		total, err := st.Total(tf)
		if err != nil {
			return fmt.Errorf("count plays: %w", err)
		}
		if total == 0 {
			fmt.Fprintln(out, "No plays in range.")
			return nil
		}
		fmt.Fprintf(out, "Total plays: %d\n\n", total)

		melodies, err := st.MelodyCounts(statsLimit, tf)
		if err != nil {
			return fmt.Errorf("melody counts: %w", err)
		}
		events, err := st.EventCounts(statsLimit, tf)
		if err != nil {
			return fmt.Errorf("event counts: %w", err)
		}

		if err := printCounts(out, "MELODY", melodies); err != nil {
			return err
		}
		fmt.Fprintln(out)
		return printCounts(out, "EVENT", events)
	},
}

func printCounts(out io.Writer, heading string, counts []model.Count) error {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "%s\tPLAYS\tLAST PLAYED\n", heading)
	for _, c := range counts {
		fmt.Fprintf(w, "%s\t%d\t%s\n", truncate(c.Key, 40), c.Plays, c.LastPlay.Local().Format("2006-01-02 15:04"))
	}
	return w.Flush()
}
