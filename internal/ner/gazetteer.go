package ner

import (
	"encoding/json"
	"fmt"
	"os"
	"regexp"
	"sort"
	"strings"
)

// gazetteerFile is the on-disk format for a phrase gazetteer: a flat list of
// known entity phrases with their labels.
type gazetteerFile struct {
	Entities []Entity `json:"entities"`
}

// Gazetteer is a dictionary-backed recognizer: it finds known phrases in
// text with word-boundary, case-insensitive matching and tags them with the
// label recorded for the phrase. It is read-only after construction and safe
// for concurrent use.
type Gazetteer struct {
	patterns []gazetteerPattern
}

type gazetteerPattern struct {
	re    *regexp.Regexp
	label string
}

// NewGazetteer builds a recognizer from an explicit entity list. Longer
// phrases are matched first so "amazon web services" wins over "amazon".
func NewGazetteer(entities []Entity) (*Gazetteer, error) {
	sorted := make([]Entity, len(entities))
	copy(sorted, entities)
	sort.SliceStable(sorted, func(i, j int) bool {
		return len(sorted[i].Text) > len(sorted[j].Text)
	})

	g := &Gazetteer{}
	for _, ent := range sorted {
		phrase := strings.TrimSpace(ent.Text)
		if phrase == "" {
			continue
		}
		re, err := regexp.Compile(`(?i)\b` + regexp.QuoteMeta(phrase) + `\b`)
		if err != nil {
			return nil, fmt.Errorf("invalid gazetteer phrase %q: %w", phrase, err)
		}
		g.patterns = append(g.patterns, gazetteerPattern{re: re, label: ent.Label})
	}
	return g, nil
}

// LoadGazetteer reads a gazetteer JSON file and builds a recognizer from it.
func LoadGazetteer(path string) (*Gazetteer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read gazetteer %s: %w", path, err)
	}
	var doc gazetteerFile
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse gazetteer %s: %w", path, err)
	}
	if len(doc.Entities) == 0 {
		return nil, fmt.Errorf("gazetteer %s contains no entities", path)
	}
	return NewGazetteer(doc.Entities)
}

// Recognize returns every gazetteer phrase found in the text, with the
// matched span's original casing. A span is reported once per phrase even if
// it appears multiple times.
func (g *Gazetteer) Recognize(text string) ([]Entity, error) {
	var out []Entity
	seen := make(map[string]struct{})
	for _, p := range g.patterns {
		match := p.re.FindString(text)
		if match == "" {
			continue
		}
		key := strings.ToLower(match) + "\x00" + p.label
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, Entity{Text: match, Label: p.label})
	}
	return out, nil
}

// Len returns the number of phrases in the gazetteer, for diagnostics.
func (g *Gazetteer) Len() int {
	return len(g.patterns)
}
