package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-analyzer/internal/extraction"
	"github.com/jonathan/resume-analyzer/internal/ingestion"
	"github.com/jonathan/resume-analyzer/internal/observability"
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Score a resume against a job description",
	Long:  "Extract skills from both documents and report the match score, the overlapping skills, and the gaps.",
	RunE:  runMatch,
}

var (
	matchResumePath string
	matchJDPath     string
	matchJSONOut    bool
)

func init() {
	matchCmd.Flags().StringVarP(&matchResumePath, "resume", "r", "", "Path to resume file (.pdf, .docx or .txt)")
	matchCmd.Flags().StringVar(&matchJDPath, "jd", "", "Path to job description text file")
	matchCmd.Flags().BoolVar(&matchJSONOut, "json", false, "Print the report as JSON")

	matchCmd.MarkFlagRequired("resume")
	matchCmd.MarkFlagRequired("jd")

	rootCmd.AddCommand(matchCmd)
}

func runMatch(cmd *cobra.Command, _ []string) error {
	cfg, err := loadRuntimeConfig()
	if err != nil {
		return err
	}

	logger, err := newLogger()
	if err != nil {
		return fmt.Errorf("creating a logger: %w", err)
	}
	defer logger.Sync() //nolint:errcheck

	resumeText, err := ingestion.ExtractFile(matchResumePath)
	if err != nil {
		return fmt.Errorf("reading resume: %w", err)
	}
	jdData, err := os.ReadFile(matchJDPath)
	if err != nil {
		return fmt.Errorf("reading job description: %w", err)
	}

	analyzer, err := newAnalyzer(cmd.Context(), cfg, logger, false)
	if err != nil {
		return err
	}

	resumeSkills := analyzer.ExtractSkills(resumeText)
	jdSkills := analyzer.ExtractSkillsRuleBased(string(jdData))
	report := extraction.MatchWithJD(resumeSkills, jdSkills)

	if matchJSONOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintSkills("RESUME SKILLS", resumeSkills)
	printer.PrintSkills("JOB DESCRIPTION SKILLS", jdSkills)
	printer.PrintMatchReport(report)
	return nil
}
