package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"hassha/internal/config"
	"hassha/internal/history"
)

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.AddCommand(historyClearCmd)
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recently played melodies",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		h, err := history.New(config.Default().HistoryPath()).Load()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), strings.TrimRight(history.Format(h), "\n"))
		return nil
	},
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear melody history",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := history.New(config.Default().HistoryPath()).Clear(); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Melody history cleared.")
		return nil
	},
}
