package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/surendra-bolla/NeuralScan/internal/ingestion"
	"github.com/surendra-bolla/NeuralScan/internal/observability"
	"github.com/surendra-bolla/NeuralScan/internal/screening"
	"github.com/spf13/cobra"
)

var (
	batchDir     string
	batchJobFile string
	batchJSON    bool
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Screen a directory of resumes against a job description",
	Long:  "Screen every supported resume file (PDF, DOCX, TXT) in a directory against one job description and print the ranked results.",
	RunE:  runBatch,
}

func init() {
	batchCmd.Flags().StringVarP(&batchDir, "dir", "d", "", "Directory containing resume files (required)")
	batchCmd.Flags().StringVarP(&batchJobFile, "job-file", "j", "", "Path to job description text file (required)")
	batchCmd.Flags().BoolVar(&batchJSON, "json", false, "Print results as JSON")

	batchCmd.MarkFlagRequired("dir")
	batchCmd.MarkFlagRequired("job-file")

	rootCmd.AddCommand(batchCmd)
}

func runBatch(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	jobData, err := os.ReadFile(batchJobFile)
	if err != nil {
		return fmt.Errorf("failed to read job description: %w", err)
	}

	items, err := collectResumes(batchDir)
	if err != nil {
		return err
	}
	if len(items) == 0 {
		return fmt.Errorf("no supported resume files found in %s", batchDir)
	}

	ctx := context.Background()
	screener, cleanup, err := buildScreener(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	result, err := screener.ScreenBatch(ctx, items, string(jobData))
	if err != nil {
		return fmt.Errorf("batch screening failed: %w", err)
	}

	if batchJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	observability.NewPrinter(os.Stdout).PrintBatchResult(result)
	return nil
}

// collectResumes extracts text from every supported file in dir. Files that
// fail extraction are reported on stderr and skipped.
func collectResumes(dir string) ([]screening.BatchItem, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory: %w", err)
	}

	var items []screening.BatchItem
	for _, entry := range entries {
		if entry.IsDir() || !ingestion.IsSupported(entry.Name()) {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		text, err := ingestion.ExtractText(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Skipping %s: %v\n", entry.Name(), err)
			continue
		}
		items = append(items, screening.BatchItem{Filename: entry.Name(), Text: text})
	}
	return items, nil
}
