package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/surendra-bolla/NeuralScan/internal/ingestion"
	"github.com/surendra-bolla/NeuralScan/internal/screening"
	"github.com/spf13/cobra"
)

var compareCmd = &cobra.Command{
	Use:   "compare <file>...",
	Short: "Compare two or more resumes side by side",
	Long:  "Compare resumes on extracted experience, skill counts, and education without a job description. Output is JSON.",
	Args:  cobra.MinimumNArgs(2),
	RunE:  runCompare,
}

func init() {
	rootCmd.AddCommand(compareCmd)
}

func runCompare(_ *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	tax, err := loadTaxonomy(cfg)
	if err != nil {
		return err
	}

	items := make([]screening.BatchItem, 0, len(args))
	for _, path := range args {
		text, err := ingestion.ExtractText(path)
		if err != nil {
			return fmt.Errorf("failed to extract %s: %w", path, err)
		}
		items = append(items, screening.BatchItem{Filename: path, Text: text})
	}

	// Comparison never embeds, so no embedding client is needed.
	screener := screening.New(tax, nil)
	comparisons, err := screener.CompareResumes(items)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(comparisons)
}
