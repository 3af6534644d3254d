// Package cmd assembles the command line interface.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/tphakala/vocalization-go/cmd/file"
	"github.com/tphakala/vocalization-go/cmd/models"
	"github.com/tphakala/vocalization-go/cmd/service"
	"github.com/tphakala/vocalization-go/internal/conf"
)

// RootCommand creates and returns the root command with all subcommands.
func RootCommand(settings *conf.Settings) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "vocalization",
		Short: "Vocalization type classifier for BirdNET-Pi detections",
		Long: "Classifies BirdNET-Pi detections into vocalization types (song, call, alarm)\n" +
			"using per-species acoustic models.",
	}

	setupFlags(rootCmd, settings)

	rootCmd.AddCommand(
		service.Command(settings),
		file.Command(settings),
		models.Command(settings),
	)

	return rootCmd
}

// setupFlags wires the persistent flags overriding the config file.
func setupFlags(cmd *cobra.Command, settings *conf.Settings) {
	flags := cmd.PersistentFlags()
	flags.BoolVarP(&settings.Debug, "debug", "d", settings.Debug, "Enable debug logging")
	flags.StringVar(&settings.BirdNET.Dir, "birdnet-dir", settings.BirdNET.Dir, "BirdNET-Pi installation directory")
	flags.StringVar(&settings.Models.Dir, "models-dir", settings.Models.Dir, "Directory containing per-species models")
	flags.StringVar(&settings.Language, "language", settings.Language, "Display language for vocalization types (en, nl, de)")
}
