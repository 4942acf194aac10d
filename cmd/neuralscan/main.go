// Package main provides the entry point for the NeuralScan resume screening CLI and API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "neuralscan",
	Short: "AI-powered resume screening",
	Long:  "NeuralScan scores resumes against job descriptions using skill taxonomy matching, semantic sentence similarity, and experience signals, via CLI or REST API.",
}

var (
	configPath   string
	taxonomyPath string
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to JSON config file")
	rootCmd.PersistentFlags().StringVar(&taxonomyPath, "taxonomy", "", "Path to custom skill taxonomy JSON file")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
