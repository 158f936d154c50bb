// Package extraction finds skills in resume and job description text and
// reconciles the two into a match report. Two extraction methods exist: a
// rule-based lexicon scan and an optional named-entity pass; both emit the
// lexicon's canonical casing and deduplicate case-insensitively.
package extraction

import (
	"regexp"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/jonathan/resume-analyzer/internal/lexicon"
	"github.com/jonathan/resume-analyzer/internal/ner"
)

// nerSkillLabels are the entity labels worth inspecting as skill candidates.
var nerSkillLabels = map[string]struct{}{
	ner.LabelOrg:       {},
	ner.LabelProduct:   {},
	ner.LabelWorkOfArt: {},
	ner.LabelLaw:       {},
	ner.LabelNORP:      {},
}

// Extractor scans text for known skills. The lexicon is fixed at
// construction; the recognizer is optional and its absence disables only
// the NER-based method.
type Extractor struct {
	lexicon    *lexicon.Lexicon
	patterns   map[string]*regexp.Regexp // lowercase skill -> boundary-anchored pattern
	recognizer ner.Recognizer
	logger     *zap.Logger
}

// New builds an extractor over a lexicon. recognizer may be nil.
func New(lex *lexicon.Lexicon, recognizer ner.Recognizer, logger *zap.Logger) *Extractor {
	if logger == nil {
		logger = zap.NewNop()
	}

	// Precompile one word-boundary pattern per lexicon entry. Skill phrases
	// contain regex metacharacters ("c++", ".net"), so each literal is
	// escaped rather than reinterpreted.
	patterns := make(map[string]*regexp.Regexp, lex.Len())
	for _, skill := range lex.Entries() {
		lower := strings.ToLower(skill)
		patterns[lower] = regexp.MustCompile(`\b` + regexp.QuoteMeta(lower) + `\b`)
	}

	return &Extractor{
		lexicon:    lex,
		patterns:   patterns,
		recognizer: recognizer,
		logger:     logger,
	}
}

// HasRecognizer reports whether NER-based extraction is available.
func (e *Extractor) HasRecognizer() bool {
	return e.recognizer != nil
}

// ExtractRuleBased scans lowercased, whitespace-normalized text for every
// lexicon entry with word-boundary matching and returns the canonical forms,
// deduplicated and sorted lexicographically.
func (e *Extractor) ExtractRuleBased(text string) []string {
	processed := strings.Join(strings.Fields(strings.ToLower(text)), " ")

	found := make(map[string]struct{})
	for lower, pattern := range e.patterns {
		if pattern.MatchString(processed) {
			canonical, _ := e.lexicon.Canonical(lower)
			found[canonical] = struct{}{}
		}
	}
	return sortedSet(found)
}

// ExtractNERBased runs entity recognition over the raw text and keeps only
// entities whose text is a lexicon entry, emitted in canonical form. With no
// recognizer configured it returns an empty result.
func (e *Extractor) ExtractNERBased(text string) []string {
	if e.recognizer == nil {
		return []string{}
	}

	entities, err := e.recognizer.Recognize(text)
	if err != nil {
		e.logger.Warn("entity recognition failed", zap.Error(err))
		return []string{}
	}

	found := make(map[string]struct{})
	for _, ent := range entities {
		entText := strings.ToLower(strings.TrimSpace(ent.Text))
		if canonical, ok := e.lexicon.Canonical(entText); ok {
			found[canonical] = struct{}{}
			continue
		}
		if _, interesting := nerSkillLabels[ent.Label]; interesting {
			// Candidates passing the length/non-numeric screen are logged
			// but not promoted to results; promotion requires a lexicon
			// review first.
			if len(entText) >= 2 && len(entText) < 30 && !isAllDigits(entText) {
				e.logger.Debug("unlisted entity skill candidate",
					zap.String("text", entText),
					zap.String("label", ent.Label))
			}
		}
	}
	return sortedSet(found)
}

// ExtractCombined unions the rule-based and NER-based methods, deduplicated
// and sorted.
func (e *Extractor) ExtractCombined(text string) []string {
	found := make(map[string]struct{})
	for _, s := range e.ExtractRuleBased(text) {
		found[s] = struct{}{}
	}
	for _, s := range e.ExtractNERBased(text) {
		found[s] = struct{}{}
	}
	return sortedSet(found)
}

func sortedSet(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for s := range set {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
