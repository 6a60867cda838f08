package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rapidmidiex/rmxharmony/chord"
	"github.com/rapidmidiex/rmxharmony/roman"
	"github.com/rapidmidiex/rmxharmony/scale"
)

var (
	asJSON    bool
	maxDegree int
)

func init() {
	chordsCmd.Flags().BoolVar(&asJSON, "json", false, "print the analysis as JSON")
	chordsCmd.Flags().IntVar(&maxDegree, "degree", 13, "highest chord degree for full names (3/5, 7, 9, 11, 13)")
	rootCmd.AddCommand(scaleCmd, chordsCmd, romansCmd)
}

var scaleCmd = &cobra.Command{
	Use:   "scale <tonic> <mode>",
	Short: "Print the pitch classes and spelling of a scale",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := scale.BuildData(args[0], args[1])
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, strings.Join(data.Spelled, chord.NoteSeparator))
		fmt.Fprintln(out, formatInts(data.PitchClasses))
		return nil
	},
}

var chordsCmd = &cobra.Command{
	Use:   "chords <tonic> <mode>",
	Short: "Print the diatonic chords of a scale",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := scale.BuildData(args[0], args[1])
		if err != nil {
			return err
		}
		a := chord.Analyze(data.Spelled, data.PitchClasses)
		if asJSON {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(a)
		}
		printAnalysis(cmd.OutOrStdout(), a, roman.Compute(data.PitchClasses), maxDegree)
		return nil
	},
}

var romansCmd = &cobra.Command{
	Use:   "romans <tonic> <mode>",
	Short: "Print the roman numerals of a scale's degrees",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := scale.BuildData(args[0], args[1])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), strings.Join(roman.Compute(data.PitchClasses), " "))
		return nil
	},
}

func printAnalysis(w io.Writer, a chord.Analysis, romans []string, degree int) {
	sections := []struct {
		title   string
		entries []chord.Entry
	}{
		{"Triads", a.Categories.Triads},
		{"Sevenths", a.Categories.Sevenths},
		{"Ninths", a.Categories.Ninths},
		{"Suspended", a.Categories.Suspended},
	}
	for _, s := range sections {
		fmt.Fprintf(w, "%s:\n", s.title)
		for _, e := range s.entries {
			fmt.Fprintf(w, "  %-10s %s\n", e.Name, e.NotesString())
		}
	}

	max := chord.LadderUpTo(degree).MaxDegree()
	fmt.Fprintf(w, "Up to %d:\n", max)
	for i, d := range a.Degrees {
		fmt.Fprintf(w, "  %-5s %-16s %s\n",
			romans[i],
			chord.ChordNameForRow(d.Row, max),
			chord.ChordNotesStringForRow(d.Row, max))
	}
}

func formatInts[T ~int](xs []T) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = fmt.Sprintf("%d", x)
	}
	return strings.Join(parts, " ")
}
