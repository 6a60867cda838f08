// Package config reads runtime settings from the environment.
package config

import "os"

const (
	DefaultLogFile = "rmxharmony.log"
	DefaultTonic   = "C"
	DefaultMode    = "Ionian"
)

type Config struct {
	// Path to an .sf2 SoundFont. Audio is disabled when empty.
	SoundFontPath string
	// File the TUI logs to.
	LogFile string
	// Starting tonic label and mode name.
	Tonic string
	Mode  string
}

// FromEnv reads RMX_SOUNDFONT, RMX_LOG_FILE, RMX_TONIC and RMX_MODE.
func FromEnv() Config {
	return Config{
		SoundFontPath: os.Getenv("RMX_SOUNDFONT"),
		LogFile:       getEnv("RMX_LOG_FILE", DefaultLogFile),
		Tonic:         getEnv("RMX_TONIC", DefaultTonic),
		Mode:          getEnv("RMX_MODE", DefaultMode),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// AudioEnabled reports whether a SoundFont is configured.
func (c Config) AudioEnabled() bool {
	return c.SoundFontPath != ""
}
