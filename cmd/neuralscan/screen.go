package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/surendra-bolla/NeuralScan/internal/fetch"
	"github.com/surendra-bolla/NeuralScan/internal/ingestion"
	"github.com/surendra-bolla/NeuralScan/internal/observability"
	"github.com/spf13/cobra"
)

var (
	screenResumePath string
	screenJobFile    string
	screenJobURL     string
	screenTopK       int
	screenBrowser    bool
	screenVerbose    bool
	screenJSON       bool
)

var screenCmd = &cobra.Command{
	Use:   "screen",
	Short: "Screen a resume against a job description",
	Long:  "Screen a resume file (PDF, DOCX, or TXT) against a job description from a text file or URL, and print the match score, verdict, and explanation.",
	RunE:  runScreen,
}

func init() {
	screenCmd.Flags().StringVarP(&screenResumePath, "resume", "r", "", "Path to resume file (required)")
	screenCmd.Flags().StringVarP(&screenJobFile, "job-file", "j", "", "Path to job description text file")
	screenCmd.Flags().StringVarP(&screenJobURL, "job-url", "u", "", "URL to fetch job description from")
	screenCmd.Flags().IntVar(&screenTopK, "top-k", 0, "Sentence matches to consider per job requirement")
	screenCmd.Flags().BoolVar(&screenBrowser, "browser", false, "Allow headless browser fallback for JavaScript-heavy job pages")
	screenCmd.Flags().BoolVarP(&screenVerbose, "verbose", "v", false, "Print score breakdown and semantic matches")
	screenCmd.Flags().BoolVar(&screenJSON, "json", false, "Print the full result as JSON")

	screenCmd.MarkFlagRequired("resume")

	rootCmd.AddCommand(screenCmd)
}

func runScreen(_ *cobra.Command, _ []string) error {
	if screenJobFile == "" && screenJobURL == "" {
		return fmt.Errorf("either --job-file or --job-url must be provided")
	}
	if screenJobFile != "" && screenJobURL != "" {
		return fmt.Errorf("--job-file and --job-url are mutually exclusive; provide only one")
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if screenTopK > 0 {
		cfg.TopK = screenTopK
	}

	ctx := context.Background()

	resumeText, err := ingestion.ExtractText(screenResumePath)
	if err != nil {
		return fmt.Errorf("failed to read resume: %w", err)
	}

	jobDescription, err := resolveJobDescription(ctx, cfg.UseBrowser || screenBrowser)
	if err != nil {
		return err
	}

	screener, cleanup, err := buildScreener(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	result, err := screener.Screen(ctx, resumeText, jobDescription)
	if err != nil {
		return fmt.Errorf("screening failed: %w", err)
	}

	if screenJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintScreeningResult(result)
	if screenVerbose || cfg.Verbose {
		printer.PrintScoreBreakdown(result.Explanation.ScoreBreakdown)
		printer.PrintSkillGap(&result.SkillGap)
		printer.PrintSentenceMatches(result.Analysis.TopMatches)
	}
	fmt.Fprintf(os.Stdout, "\n%s\n", result.Explanation.Narrative)

	return nil
}

// resolveJobDescription loads the job description from the file or URL flag.
func resolveJobDescription(ctx context.Context, allowBrowser bool) (string, error) {
	if screenJobFile != "" {
		data, err := os.ReadFile(screenJobFile)
		if err != nil {
			return "", fmt.Errorf("failed to read job description: %w", err)
		}
		return string(data), nil
	}

	result, err := fetch.JobPosting(ctx, screenJobURL, fetch.DefaultOptions(), allowBrowser)
	if err != nil {
		return "", fmt.Errorf("failed to fetch job posting: %w", err)
	}
	return result.Text, nil
}
