package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-analyzer/internal/ingestion"
	"github.com/jonathan/resume-analyzer/internal/observability"
)

var extractSkillsCmd = &cobra.Command{
	Use:   "extract-skills",
	Short: "Extract known skills from a document",
	Long:  "Extract skill mentions from a resume or job description using the skill lexicon, plus the gazetteer recognizer when configured.",
	RunE:  runExtractSkills,
}

var (
	extractFilePath string
	extractInline   string
	extractJSONOut  bool
)

func init() {
	extractSkillsCmd.Flags().StringVarP(&extractFilePath, "file", "f", "", "Path to document (.pdf, .docx or .txt)")
	extractSkillsCmd.Flags().StringVar(&extractInline, "text", "", "Text passed inline")
	extractSkillsCmd.Flags().BoolVar(&extractJSONOut, "json", false, "Print skills as JSON")

	rootCmd.AddCommand(extractSkillsCmd)
}

func runExtractSkills(cmd *cobra.Command, _ []string) error {
	if extractFilePath == "" && extractInline == "" {
		return fmt.Errorf("either --file or --text must be provided")
	}
	if extractFilePath != "" && extractInline != "" {
		return fmt.Errorf("--file and --text are mutually exclusive; provide only one")
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

	text := extractInline
	if extractFilePath != "" {
		text, err = ingestion.ExtractFile(extractFilePath)
		if err != nil {
			return fmt.Errorf("reading document: %w", err)
		}
	}

	analyzer, err := newAnalyzer(cmd.Context(), cfg, logger, false)
	if err != nil {
		return err
	}

	skills := analyzer.ExtractSkills(text)

	if extractJSONOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(map[string][]string{"skills": skills})
	}

	observability.NewPrinter(os.Stdout).PrintSkills("SKILLS", skills)
	return nil
}
