package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"hassha/internal/config"
)

func init() {
	rootCmd.AddCommand(cacheCmd)
	cacheCmd.AddCommand(cacheInfoCmd, cacheClearCmd, cachePrefetchCmd)
}

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Manage downloaded melodies",
}

var cacheInfoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show cache location and size",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := newCache(config.Default()).Stats()
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Cache location: %s\n", st.Location)
		fmt.Fprintf(out, "Files cached:   %d\n", st.FileCount)
		fmt.Fprintf(out, "Total size:     %.2f MB\n", float64(st.TotalBytes)/1_000_000)
		return nil
	},
}

var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all cached audio files",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := newCache(config.Default()).Clear()
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Cleared %d cached files\n", n)
		return nil
	},
}

var cachePrefetchCmd = &cobra.Command{
	Use:   "prefetch",
	Short: "Download every built-in melody",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "Downloading all predefined melodies...")
		fmt.Fprintln(out)

		var ok, failed int
		for _, r := range newCache(config.Default()).PrefetchAll(cmd.Context()) {
			if r.Err != nil {
				fmt.Fprintf(out, "  ✗ %s - %v\n", r.ID, r.Err)
				failed++
				continue
			}
			fmt.Fprintf(out, "  ✓ %s -> %s\n", r.ID, r.Path)
			ok++
		}

		fmt.Fprintf(out, "\nDownloaded: %d, Failed: %d\n", ok, failed)
		return nil
	},
}
