// Package ner defines the named entity recognition capability used by the
// skill extractor. Recognition is optional: when no recognizer is
// configured, NER-based extraction is disabled and rule-based extraction is
// unaffected.
package ner

// Entity labels of interest for skill extraction, following the usual NER
// tag set for organizations, products and affiliated groups.
const (
	LabelOrg       = "ORG"
	LabelProduct   = "PRODUCT"
	LabelWorkOfArt = "WORK_OF_ART"
	LabelLaw       = "LAW"
	LabelNORP      = "NORP"
)

// Entity is one recognized span of text with its label.
type Entity struct {
	Text  string `json:"text"`
	Label string `json:"label"`
}

// Recognizer detects named entities in raw, uncleaned text.
type Recognizer interface {
	Recognize(text string) ([]Entity, error)
}
