// Package observability provides formatted output utilities for verbose CLI
// mode and logger construction.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/courses"
	"github.com/jonathan/resume-analyzer/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 10
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintClassification outputs a human-readable summary of a categorization.
func (p *Printer) PrintClassification(result types.ClassificationResult) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Category:   %s\n", result.Category))
	if result.CategoryID != nil {
		sb.WriteString(fmt.Sprintf("ID:         %d\n", *result.CategoryID))
	}
	sb.WriteString(fmt.Sprintf("Confidence: %.2f%%", result.Confidence))
	if result.Failed() {
		sb.WriteString("\n\nThe classifier could not produce a prediction.")
	}

	p.printBox("CATEGORIZATION", sb.String())
}

// PrintSkills outputs an extracted skill list.
func (p *Printer) PrintSkills(title string, skills []string) {
	if len(skills) == 0 {
		p.printBox(title, "(none found)")
		return
	}

	var sb strings.Builder
	count := min(len(skills), maxItemsToShow)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  • %s\n", skills[i]))
	}
	if len(skills) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(skills)-maxItemsToShow))
	}

	p.printBox(fmt.Sprintf("%s (%d)", title, len(skills)), strings.TrimRight(sb.String(), "\n"))
}

// PrintMatchReport outputs a resume/job-description comparison.
func (p *Printer) PrintMatchReport(report types.MatchReport) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Score:    %.2f%%\n", report.Score))
	sb.WriteString(fmt.Sprintf("Matched:  %d of %d required skills\n", report.MatchedCount, report.TotalJDSkills))

	if len(report.Matching) > 0 {
		sb.WriteString("\nMatching:\n")
		for _, skill := range report.Matching {
			sb.WriteString(fmt.Sprintf("  ✓ %s\n", skill))
		}
	}
	if len(report.Missing) > 0 {
		sb.WriteString("\nMissing:\n")
		for _, skill := range report.Missing {
			sb.WriteString(fmt.Sprintf("  ✗ %s\n", skill))
		}
	}

	p.printBox("JOB MATCH", strings.TrimRight(sb.String(), "\n"))
}

// PrintContact outputs contact details found in the raw resume text. Nothing
// is printed when all lists are empty.
func (p *Printer) PrintContact(emails, phones, urls []string) {
	if len(emails) == 0 && len(phones) == 0 && len(urls) == 0 {
		return
	}

	var sb strings.Builder
	for _, email := range emails {
		sb.WriteString(fmt.Sprintf("  ✉ %s\n", email))
	}
	for _, phone := range phones {
		sb.WriteString(fmt.Sprintf("  ☎ %s\n", phone))
	}
	for _, url := range urls {
		sb.WriteString(fmt.Sprintf("  ⌂ %s\n", url))
	}

	p.printBox("CONTACT", strings.TrimRight(sb.String(), "\n"))
}

// PrintCourses outputs course recommendations. Nothing is printed when the
// list is empty.
func (p *Printer) PrintCourses(recommended []courses.Course) {
	if len(recommended) == 0 {
		return
	}

	var sb strings.Builder
	for _, course := range recommended {
		sb.WriteString(fmt.Sprintf("  • %s\n", course.Name))
		sb.WriteString(fmt.Sprintf("    %s\n", course.Link))
	}

	p.printBox("RECOMMENDED COURSES", strings.TrimRight(sb.String(), "\n"))
}

// PrintAnalysis outputs the full analysis result.
func (p *Printer) PrintAnalysis(result *types.AnalysisResult) {
	if result == nil {
		return
	}

	p.PrintClassification(result.Classification)
	p.PrintSkills("RESUME SKILLS", result.ResumeSkills)
	if result.JDText != "" {
		p.PrintSkills("JOB DESCRIPTION SKILLS", result.JDSkills)
		p.PrintMatchReport(result.Match)
	}
	if result.Summary != "" {
		p.printBox("SUMMARY", result.Summary)
	}
}
