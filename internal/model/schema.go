package model

import (
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

// Model files are validated against these schemas before decoding, so a
// truncated or hand-edited file is rejected with a field-level message
// instead of a zero-valued model.

const vectorizerSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "title": "TF-IDF Vectorizer Model",
  "type": "object",
  "required": ["format", "version", "vocabulary", "idf"],
  "properties": {
    "format": {"type": "string", "enum": ["tfidf_vectorizer"]},
    "version": {"type": "integer", "minimum": 1},
    "lowercase": {"type": "boolean"},
    "vocabulary": {
      "type": "object",
      "minProperties": 1,
      "additionalProperties": {"type": "integer", "minimum": 0}
    },
    "idf": {
      "type": "array",
      "minItems": 1,
      "items": {"type": "number"}
    }
  }
}`

const classifierSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "title": "Linear Classifier Model",
  "type": "object",
  "required": ["format", "version", "classes", "coefficients", "intercepts"],
  "properties": {
    "format": {"type": "string", "enum": ["linear_classifier"]},
    "version": {"type": "integer", "minimum": 1},
    "classes": {
      "type": "array",
      "minItems": 1,
      "items": {"type": "integer"}
    },
    "coefficients": {
      "type": "array",
      "minItems": 1,
      "items": {
        "type": "array",
        "minItems": 1,
        "items": {"type": "number"}
      }
    },
    "intercepts": {
      "type": "array",
      "minItems": 1,
      "items": {"type": "number"}
    },
    "probability": {"type": "boolean"}
  }
}`

// validateAgainstSchema checks a raw JSON document against a schema string
// and returns a single aggregated message on failure.
func validateAgainstSchema(schema string, document []byte) error {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(schema),
		gojsonschema.NewBytesLoader(document),
	)
	if err != nil {
		return fmt.Errorf("schema validation could not run: %w", err)
	}
	if result.Valid() {
		return nil
	}

	detail := ""
	for i, desc := range result.Errors() {
		if i > 0 {
			detail += "; "
		}
		detail += desc.String()
	}
	return fmt.Errorf("%s", detail)
}
