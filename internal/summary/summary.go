// Package summary provides optional abstractive summarization of resume
// text. Summarization is an external call with no bearing on categorization
// or matching: a nil Summarizer, or a failed call, simply leaves the summary
// empty.
package summary

import "context"

// Summarizer condenses a document into a short abstract.
type Summarizer interface {
	Summarize(ctx context.Context, text string) (string, error)
	Close() error
}
