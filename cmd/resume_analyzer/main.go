// Package main provides the entry point for the resume analyzer CLI and
// HTTP API server.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/resume-analyzer/internal/classifier"
	"github.com/jonathan/resume-analyzer/internal/config"
	"github.com/jonathan/resume-analyzer/internal/extraction"
	"github.com/jonathan/resume-analyzer/internal/lexicon"
	"github.com/jonathan/resume-analyzer/internal/ner"
	"github.com/jonathan/resume-analyzer/internal/observability"
	"github.com/jonathan/resume-analyzer/internal/pipeline"
	"github.com/jonathan/resume-analyzer/internal/summary"
)

var rootCmd = &cobra.Command{
	Use:   "resume_analyzer",
	Short: "Resume analysis toolkit",
	Long:  "Resume Analyzer categorizes resumes with a pretrained TF-IDF classifier, extracts skills, and scores them against job descriptions.",
}

var (
	configPath string
	verbose    bool
	jsonLog    bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to JSON config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print detailed debug information")
	rootCmd.PersistentFlags().BoolVar(&jsonLog, "json-log", false, "Emit logs as JSON")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadRuntimeConfig resolves the effective configuration: config file values
// merged with environment variables and built-in defaults.
func loadRuntimeConfig() (config.Config, error) {
	cfg := config.Config{}
	if configPath != "" {
		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			return cfg, err
		}
		if err := loaded.Validate(); err != nil {
			return cfg, err
		}
		cfg = *loaded
	}

	merged := cfg.MergeWithDefaults(config.Config{
		VectorizerPath: envOr("VECTORIZER_PATH", "models/tfidf_vectorizer.json"),
		ClassifierPath: envOr("CLASSIFIER_PATH", "models/linear_classifier.json"),
		GazetteerPath:  os.Getenv("GAZETTEER_PATH"),
		APIKey:         os.Getenv("GEMINI_API_KEY"),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		ListenAddr:     envOr("LISTEN_ADDR", ":8080"),
	})
	if verbose {
		merged.Verbose = true
	}
	return merged, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func newLogger() (*zap.Logger, error) {
	return observability.NewLogger(jsonLog, verbose)
}

// newAnalyzer assembles the analysis pipeline from the configuration. The
// classifier may come up degraded; that is reported through diagnostics and
// Unknown results, never a constructor error.
func newAnalyzer(ctx context.Context, cfg config.Config, logger *zap.Logger, withSummarizer bool) (*pipeline.Analyzer, error) {
	clf := classifier.New(cfg.VectorizerPath, cfg.ClassifierPath, logger)

	var recognizer ner.Recognizer
	if cfg.GazetteerPath != "" {
		gaz, err := ner.LoadGazetteer(cfg.GazetteerPath)
		if err != nil {
			return nil, fmt.Errorf("loading gazetteer: %w", err)
		}
		recognizer = gaz
	}

	ext := extraction.New(lexicon.New(), recognizer, logger)

	opts := pipeline.Options{Logger: logger}
	if withSummarizer && cfg.APIKey != "" {
		summarizer, err := summary.NewGeminiSummarizer(ctx, cfg.APIKey, "")
		if err != nil {
			return nil, fmt.Errorf("creating summarizer: %w", err)
		}
		opts.Summarizer = summarizer
	}

	return pipeline.NewAnalyzer(clf, ext, opts), nil
}
