// Package models implements the model inventory commands.
package models

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tphakala/vocalization-go/internal/conf"
	"github.com/tphakala/vocalization-go/internal/vocalization"
)

// Command creates the models command group.
func Command(settings *conf.Settings) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "models",
		Short: "Manage per-species vocalization models",
	}

	cmd.AddCommand(listCommand(settings))
	cmd.AddCommand(renameCommand())

	return cmd
}

// listCommand prints the available species models.
func listCommand(settings *conf.Settings) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List available species models",
		RunE: func(cmd *cobra.Command, args []string) error {
			resolver := vocalization.NewNameResolver(settings.Models.Dir)
			species := resolver.KnownSpecies()
			if len(species) == 0 {
				fmt.Printf("No models found in %s\n", settings.Models.Dir)
				return nil
			}

			fmt.Printf("Models in %s:\n", settings.Models.Dir)
			for _, name := range species {
				fmt.Printf("  %s\n", name)
			}
			fmt.Printf("\n%d models available\n", len(species))
			return nil
		},
	}
}

// renameCommand copies Dutch-named model artifacts to scientific names so
// they resolve under any BirdNET-Pi language setting.
func renameCommand() *cobra.Command {
	var (
		sourceDir string
		destDir   string
		dryRun    bool
	)

	cmd := &cobra.Command{
		Use:   "rename",
		Short: "Copy Dutch-named models to scientific names",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRename(sourceDir, destDir, dryRun)
		},
	}

	cmd.Flags().StringVar(&sourceDir, "source", "", "Directory with Dutch-named models")
	cmd.Flags().StringVar(&destDir, "dest", "", "Destination directory for scientific-named models")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Show what would be done without copying")
	_ = cmd.MarkFlagRequired("source")
	_ = cmd.MarkFlagRequired("dest")

	return cmd
}

func runRename(sourceDir, destDir string, dryRun bool) error {
	entries, err := os.ReadDir(sourceDir)
	if err != nil {
		return fmt.Errorf("reading source directory: %w", err)
	}

	if !dryRun {
		if err := os.MkdirAll(destDir, 0o755); err != nil {
			return fmt.Errorf("creating destination directory: %w", err)
		}
	}

	var renamed, skipped int
	var missing []string

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), vocalization.ModelFileExtension) {
			continue
		}

		stem := strings.TrimSuffix(entry.Name(), vocalization.ModelFileExtension)

		// Non-species helper models stay behind.
		if strings.Contains(stem, "distance_quality") {
			fmt.Printf("  Skipping non-species model: %s\n", entry.Name())
			skipped++
			continue
		}

		// Versioned names carry a _cnn_<version> suffix after the species.
		dutchName := stem
		if idx := strings.Index(stem, "_cnn_"); idx >= 0 {
			dutchName = stem[:idx]
		}

		scientific, ok := dutchToScientific[strings.ToLower(dutchName)]
		if !ok {
			missing = append(missing, dutchName)
			skipped++
			continue
		}

		newName := scientific + vocalization.ModelFileExtension
		if dryRun {
			fmt.Printf("  %s -> %s\n", entry.Name(), newName)
		} else {
			src := filepath.Join(sourceDir, entry.Name())
			dst := filepath.Join(destDir, newName)
			if err := copyFile(src, dst); err != nil {
				return fmt.Errorf("copying %s: %w", entry.Name(), err)
			}
			fmt.Printf("  Copied: %s -> %s\n", entry.Name(), newName)
		}
		renamed++
	}

	fmt.Printf("\nSummary:\n  Renamed: %d\n  Skipped: %d\n", renamed, skipped)
	if len(missing) > 0 {
		sort.Strings(missing)
		fmt.Printf("\n  Missing mappings (%d):\n", len(missing))
		for _, name := range missing {
			fmt.Printf("    - %s\n", name)
		}
	}
	return nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src) //nolint:gosec // G304: paths come from command flags
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst) //nolint:gosec // G304: paths come from command flags
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Sync()
}
