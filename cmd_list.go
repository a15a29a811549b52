package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"hassha/internal/melody"
)

func init() {
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the built-in melodies",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		legend := make([]string, 0, 6)
		for _, l := range melody.Lines() {
			legend = append(legend, l.Code+"="+l.Name)
		}
		fmt.Fprintf(out, "Available melodies (JR East Lines):\n\n")
		fmt.Fprintf(out, "Lines: %s\n\n", strings.Join(legend, ", "))

		w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tLINE\tSTATION\tJAPANESE\tMELODY")
		current := ""
		for _, m := range melody.Melodies() {
			if m.Line != current {
				if current != "" {
					fmt.Fprintln(w, "\t\t\t\t")
				}
				current = m.Line
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", m.ID, m.LineName, m.Station, m.StationJP, m.MelodyName)
		}
		if err := w.Flush(); err != nil {
			return err
		}

		fmt.Fprint(out, `
Usage in .hassha/config.toml:
  [hooks.Stop]
  melody = "JY-Shibuya"
  # or: melody = "JK-Akihabara"
  # or: melody = "NEX-Shinjuku"
`)
		return nil
	},
}
