package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/resume-analyzer/internal/classifier"
	"github.com/jonathan/resume-analyzer/internal/lexicon"
	"github.com/jonathan/resume-analyzer/internal/ner"
	"github.com/jonathan/resume-analyzer/internal/taxonomy"
	"github.com/jonathan/resume-analyzer/internal/textnorm"
)

var diagnoseCmd = &cobra.Command{
	Use:   "diagnose",
	Short: "Check model files and runtime environment",
	Long:  "Report on model file presence, classifier load status, and the sizes of the built-in skill lexicon and stopword list.",
	RunE:  runDiagnose,
}

func init() {
	rootCmd.AddCommand(diagnoseCmd)
}

func runDiagnose(_ *cobra.Command, _ []string) error {
	cfg, err := loadRuntimeConfig()
	if err != nil {
		return err
	}

	out := os.Stdout

	fmt.Fprintln(out, "============================================================")
	fmt.Fprintln(out, "DIAGNOSTIC REPORT")
	fmt.Fprintln(out, "============================================================")

	cwd, _ := os.Getwd()
	fmt.Fprintf(out, "\n1. Working Directory:\n   %s\n", cwd)

	fmt.Fprintln(out, "\n2. Model Files Check:")
	for _, path := range []string{cfg.VectorizerPath, cfg.ClassifierPath} {
		info, err := os.Stat(path)
		if err != nil {
			fmt.Fprintf(out, "   ✗ %s: NOT FOUND\n", path)
			continue
		}
		fmt.Fprintf(out, "   ✓ %s: %d bytes\n", path, info.Size())
	}

	fmt.Fprintln(out, "\n3. Classifier Load:")
	clf := classifier.New(cfg.VectorizerPath, cfg.ClassifierPath, zap.NewNop())
	if clf.Loaded() {
		fmt.Fprintln(out, "   ✓ load: SUCCESS")
	} else {
		fmt.Fprintf(out, "   ✗ load: FAILED - %s\n", clf.LoadError())
		fmt.Fprintln(out, "     predictions will return the Unknown sentinel")
	}

	fmt.Fprintln(out, "\n4. Gazetteer:")
	if cfg.GazetteerPath == "" {
		fmt.Fprintln(out, "   - not configured (rule-based extraction only)")
	} else if gaz, err := ner.LoadGazetteer(cfg.GazetteerPath); err != nil {
		fmt.Fprintf(out, "   ✗ %s: FAILED - %v\n", cfg.GazetteerPath, err)
	} else {
		fmt.Fprintf(out, "   ✓ %s: %d entities\n", cfg.GazetteerPath, gaz.Len())
	}

	fmt.Fprintln(out, "\n5. Built-in Data:")
	fmt.Fprintf(out, "   skill lexicon:  %d entries\n", lexicon.New().Len())
	fmt.Fprintf(out, "   stopword list:  %d words\n", textnorm.StopwordCount())
	fmt.Fprintf(out, "   categories:     %d\n", taxonomy.Count())

	fmt.Fprintln(out, "\n============================================================")
	return nil
}
