package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"hassha/internal/config"
)

var playVolume float64

func init() {
	playCmd.Flags().Float64VarP(&playVolume, "volume", "v", config.DefaultVolume, "volume level (0.0 - 1.0)")
	rootCmd.AddCommand(playCmd)
}

var playCmd = &cobra.Command{
	Use:   "play <melody>",
	Short: "Play a melody directly",
	Long:  "Plays a melody id (e.g. JY-Shibuya), an http(s) URL or a local audio file.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ref := args[0]
		path, err := newCache(config.Default()).Resolve(cmd.Context(), ref)
		if err != nil {
			return err
		}
		if err := newPlayer().Play(path, playVolume); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Played: %s\n", ref)
		return nil
	},
}
