package main

import (
	"github.com/spf13/cobra"

	"github.com/rapidmidiex/rmxharmony"
	"github.com/rapidmidiex/rmxharmony/config"
)

var cfg = config.FromEnv()

var rootCmd = &cobra.Command{
	Use:   "rmxharmony",
	Short: "Diatonic harmony explorer",
	Long: `Explore the chords of any tonic and mode. Rotate through relative modes,
transpose, stack extensions up to the 13th and audition chords.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return rmxharmony.Run(cfg)
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfg.SoundFontPath, "soundfont", cfg.SoundFontPath, "SoundFont (.sf2) used to audition chords")
	flags.StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "TUI log file")
	flags.StringVar(&cfg.Tonic, "tonic", cfg.Tonic, "starting tonic, ie: C, F#, Bb")
	flags.StringVar(&cfg.Mode, "mode", cfg.Mode, "starting mode, ie: Ionian, dorian, minor")
}

func main() {
	cobra.CheckErr(rootCmd.Execute())
}
