// Package file implements the one-shot classify command.
package file

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tphakala/vocalization-go/internal/conf"
	"github.com/tphakala/vocalization-go/internal/vocalization"
)

// Command creates the file command for classifying a single audio file.
func Command(settings *conf.Settings) *cobra.Command {
	var (
		species    string
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "file [input.wav]",
		Short: "Classify the vocalization type in a single audio file",
		Long:  `Classify a single audio clip as song, call or alarm using the model for the given species.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if species == "" {
				return fmt.Errorf("--species is required")
			}
			return runClassify(settings, species, args[0], jsonOutput)
		},
	}

	cmd.Flags().StringVarP(&species, "species", "s", "", "Species of the recording, scientific or common name")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Print the result as JSON")

	return cmd
}

func runClassify(settings *conf.Settings, species, audioPath string, jsonOutput bool) error {
	if _, err := os.Stat(audioPath); err != nil {
		return fmt.Errorf("audio file not accessible: %w", err)
	}

	classifier := vocalization.New(settings, nil)
	defer classifier.Close()

	result, err := classifier.Classify(species, audioPath)
	if err != nil {
		return err
	}

	if jsonOutput {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(result)
	}

	fmt.Printf("File:       %s\n", audioPath)
	fmt.Printf("Species:    %s\n", species)
	fmt.Printf("Type:       %s (%s)\n", result.CategoryDisplay, result.Category)
	fmt.Printf("Confidence: %.1f%%\n", result.Confidence*100)
	for _, category := range []string{vocalization.CategorySong, vocalization.CategoryCall, vocalization.CategoryAlarm} {
		if p, ok := result.Probabilities[category]; ok {
			fmt.Printf("  %-6s %.1f%%\n", category, p*100)
		}
	}
	return nil
}
