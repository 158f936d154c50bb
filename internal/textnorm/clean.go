// Package textnorm provides deterministic text cleaning for resume analysis.
//
// Two cleaning variants exist and must stay distinct: CleanForCategorization
// reproduces, byte for byte, the preprocessing applied when the shipped
// classifier was trained, so its transformation order cannot change without
// retraining. CleanGeneral is the looser variant used for display and skill
// scanning. Both are total functions: any input string, including empty,
// produces a cleaned string and never an error.
package textnorm

import (
	"regexp"
	"strings"
)

// punctuation is the fixed character class stripped by both variants. Each
// occurrence is replaced with a single space.
const punctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

var (
	reURL        = regexp.MustCompile(`http\S+\s`)
	reRTCCLower  = regexp.MustCompile(`rt|cc`)
	reRTCCMixed  = regexp.MustCompile(`RT|cc`)
	reHashtag    = regexp.MustCompile(`#\S+`)
	reHashtagWS  = regexp.MustCompile(`#\S+\s`)
	reMention    = regexp.MustCompile(`@\S+`)
	reNonASCII   = regexp.MustCompile(`[^\x00-\x7f]`)
	reWhitespace = regexp.MustCompile(`\s+`)
)

// stripPunctuation replaces every character from the fixed punctuation class
// with a single space.
func stripPunctuation(s string) string {
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(punctuation, r) {
			return ' '
		}
		return r
	}, s)
}

// CleanGeneral lowercases the text first and then strips URLs, RT/cc tokens,
// hashtags, @-mentions, punctuation and non-ASCII characters, collapsing
// whitespace runs to single spaces and trimming the result. Because the
// lowercase happens before the regex steps, the RT/cc strip here is
// effectively case-insensitive.
func CleanGeneral(text string) string {
	txt := strings.ToLower(text)
	txt = reURL.ReplaceAllString(txt, " ")
	txt = reRTCCLower.ReplaceAllString(txt, " ")
	txt = reHashtag.ReplaceAllString(txt, "")
	txt = reMention.ReplaceAllString(txt, "  ")
	txt = stripPunctuation(txt)
	txt = reNonASCII.ReplaceAllString(txt, " ")
	txt = reWhitespace.ReplaceAllString(txt, " ")
	return strings.TrimSpace(txt)
}

// CleanForCategorization cleans resume text for classifier inference. The
// step order mirrors the training-time preprocessing exactly: URL strip,
// case-sensitive RT/cc strip, whitespace-terminated hashtag strip, mention
// strip, punctuation strip, non-ASCII strip, whitespace collapse, then the
// optional stop-word pass, and lowercasing last. There is no final trim;
// downstream comparisons use the output unmodified.
func CleanForCategorization(text string, removeStopwords bool) string {
	cleaned := reURL.ReplaceAllString(text, " ")
	cleaned = reRTCCMixed.ReplaceAllString(cleaned, " ")
	cleaned = reHashtagWS.ReplaceAllString(cleaned, " ")
	cleaned = reMention.ReplaceAllString(cleaned, "  ")
	cleaned = stripPunctuation(cleaned)
	cleaned = reNonASCII.ReplaceAllString(cleaned, " ")
	cleaned = reWhitespace.ReplaceAllString(cleaned, " ")

	if removeStopwords {
		kept := make([]string, 0)
		for _, word := range strings.Fields(cleaned) {
			if !IsStopword(word) {
				kept = append(kept, word)
			}
		}
		cleaned = strings.Join(kept, " ")
	}

	return strings.ToLower(cleaned)
}
