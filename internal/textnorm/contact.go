package textnorm

import "regexp"

var (
	reEmail = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Z|a-z]{2,}\b`)
	rePhone = regexp.MustCompile(`[\+\(]?[1-9][0-9 .\-\(\)]{8,}[0-9]`)
	reLink  = regexp.MustCompile(`http[s]?://(?:[a-zA-Z]|[0-9]|[$-_@.&+]|[!*\\(\\),]|(?:%[0-9a-fA-F][0-9a-fA-F]))+`)
)

// ExtractEmails returns all email addresses found in the raw text, in order
// of appearance.
func ExtractEmails(text string) []string {
	return reEmail.FindAllString(text, -1)
}

// ExtractPhoneNumbers returns candidate phone numbers found in the raw text.
// The pattern is permissive about separators, so callers should treat the
// results as candidates rather than validated numbers.
func ExtractPhoneNumbers(text string) []string {
	return rePhone.FindAllString(text, -1)
}

// ExtractURLs returns http/https URLs found in the raw text.
func ExtractURLs(text string) []string {
	return reLink.FindAllString(text, -1)
}
