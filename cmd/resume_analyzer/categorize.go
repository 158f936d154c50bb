package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-analyzer/internal/ingestion"
	"github.com/jonathan/resume-analyzer/internal/types"
)

var categorizeCmd = &cobra.Command{
	Use:   "categorize <file> [file...]",
	Short: "Predict professional categories for one or more resumes",
	Long:  "Extract text from each resume file and predict its professional category with the pretrained classifier.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runCategorize,
}

var categorizeJSONOut bool

func init() {
	categorizeCmd.Flags().BoolVar(&categorizeJSONOut, "json", false, "Print results as JSON")

	rootCmd.AddCommand(categorizeCmd)
}

// categorization is one file's outcome in a batch run.
type categorization struct {
	Filename string                     `json:"filename"`
	Error    string                     `json:"error,omitempty"`
	Result   types.ClassificationResult `json:"result"`
}

func runCategorize(cmd *cobra.Command, args []string) error {
	cfg, err := loadRuntimeConfig()
	if err != nil {
		return err
	}

	logger, err := newLogger()
	if err != nil {
		return fmt.Errorf("creating a logger: %w", err)
	}
	defer logger.Sync() //nolint:errcheck

	analyzer, err := newAnalyzer(cmd.Context(), cfg, logger, false)
	if err != nil {
		return err
	}

	// Text extraction is I/O bound, so files are read concurrently.
	// Prediction stays sequential; the classifier is fast and results must
	// keep input order.
	texts := make([]string, len(args))
	extractErrs := make([]error, len(args))

	var g errgroup.Group
	g.SetLimit(4)
	for i, path := range args {
		g.Go(func() error {
			text, err := ingestion.ExtractFile(path)
			if err != nil {
				extractErrs[i] = err
				return nil
			}
			texts[i] = text
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	predictions := analyzer.BatchCategorize(texts)

	results := make([]categorization, len(args))
	for i, path := range args {
		results[i] = categorization{Filename: path, Result: predictions[i]}
		if extractErrs[i] != nil {
			results[i].Error = extractErrs[i].Error()
			results[i].Result = types.ClassificationResult{Category: types.CategoryUnknown}
		}
	}

	if categorizeJSONOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	for _, r := range results {
		if r.Error != "" {
			fmt.Fprintf(os.Stdout, "%-40s ERROR: %s\n", r.Filename, r.Error)
			continue
		}
		fmt.Fprintf(os.Stdout, "%-40s %-28s %6.2f%%\n", r.Filename, r.Result.Category, r.Result.Confidence)
	}
	return nil
}
