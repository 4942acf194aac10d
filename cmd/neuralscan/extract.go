package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/surendra-bolla/NeuralScan/internal/ingestion"
	"github.com/surendra-bolla/NeuralScan/internal/nlp"
	"github.com/spf13/cobra"
)

var extractCmd = &cobra.Command{
	Use:   "extract <file>",
	Short: "Extract structured data from a resume file",
	Long:  "Extract skills, education, experience years, and entities from a resume file without scoring it. Output is JSON.",
	Args:  cobra.ExactArgs(1),
	RunE:  runExtract,
}

func init() {
	rootCmd.AddCommand(extractCmd)
}

func runExtract(_ *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	tax, err := loadTaxonomy(cfg)
	if err != nil {
		return err
	}

	text, err := ingestion.ExtractText(args[0])
	if err != nil {
		return fmt.Errorf("failed to extract text: %w", err)
	}

	extractor := nlp.NewExtractor(tax)
	data := map[string]any{
		"skills":           extractor.ExtractSkills(text),
		"education":        nlp.DetectEducation(text),
		"experience_years": nlp.ExtractExperienceYears(text),
		"entities":         nlp.ExtractEntities(text),
		"sentences":        len(nlp.SplitSentences(text)),
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}
