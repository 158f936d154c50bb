package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-analyzer/internal/courses"
	"github.com/jonathan/resume-analyzer/internal/ingestion"
	"github.com/jonathan/resume-analyzer/internal/observability"
	"github.com/jonathan/resume-analyzer/internal/textnorm"
	"github.com/jonathan/resume-analyzer/internal/types"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Run the full analysis pipeline on a resume",
	Long:  "Categorize a resume, extract its skills, and optionally score it against a job description and generate a summary.",
	RunE:  runAnalyze,
}

var (
	analyzeResumePath string
	analyzeJDPath     string
	analyzeJDText     string
	analyzeSummarize  bool
	analyzeJSONOut    bool
)

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeResumePath, "resume", "r", "", "Path to resume file (.pdf, .docx or .txt)")
	analyzeCmd.Flags().StringVar(&analyzeJDPath, "jd", "", "Path to job description text file")
	analyzeCmd.Flags().StringVar(&analyzeJDText, "jd-text", "", "Job description passed inline")
	analyzeCmd.Flags().BoolVar(&analyzeSummarize, "summarize", false, "Generate an LLM summary of the resume")
	analyzeCmd.Flags().BoolVar(&analyzeJSONOut, "json", false, "Print the result as JSON")

	analyzeCmd.MarkFlagRequired("resume")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	if analyzeJDPath != "" && analyzeJDText != "" {
		return fmt.Errorf("--jd and --jd-text are mutually exclusive; provide only one")
	}

	cfg, err := loadRuntimeConfig()
	if err != nil {
		return err
	}

	logger, err := newLogger()
	if err != nil {
		return fmt.Errorf("creating a logger: %w", err)
	}
	defer logger.Sync() //nolint:errcheck

	resumeText, err := ingestion.ExtractFile(analyzeResumePath)
	if err != nil {
		return fmt.Errorf("reading resume: %w", err)
	}

	jdText := analyzeJDText
	if analyzeJDPath != "" {
		data, err := os.ReadFile(analyzeJDPath)
		if err != nil {
			return fmt.Errorf("reading job description: %w", err)
		}
		jdText = string(data)
	}

	ctx := cmd.Context()
	withSummary := analyzeSummarize || cfg.EnableSummarization
	analyzer, err := newAnalyzer(ctx, cfg, logger, withSummary)
	if err != nil {
		return err
	}

	result := analyzer.Analyze(ctx, resumeText, jdText)

	var recommended []courses.Course
	if !result.Classification.Failed() {
		recommended = courses.Recommend(result.Classification.Category, 5)
	}

	if analyzeJSONOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(struct {
			*types.AnalysisResult
			RecommendedCourses []courses.Course `json:"recommended_courses,omitempty"`
		}{result, recommended})
	}

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintContact(
		textnorm.ExtractEmails(resumeText),
		textnorm.ExtractPhoneNumbers(resumeText),
		textnorm.ExtractURLs(resumeText),
	)
	printer.PrintAnalysis(result)
	printer.PrintCourses(recommended)
	return nil
}
