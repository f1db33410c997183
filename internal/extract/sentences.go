package extract

import (
	"regexp"
	"strings"
)

var (
	whitespaceRun = regexp.MustCompile(`\s+`)
	numericToken  = regexp.MustCompile(`\b\d+%?\b`)
)

// SplitSentences normalizes whitespace and splits text into trimmed
// sentences. A boundary is any space that immediately follows a sentence
// terminator, so the terminator stays attached to the preceding sentence.
// Always succeeds; empty or blank input yields no sentences.
func SplitSentences(text string) []string {
	cleaned := strings.TrimSpace(whitespaceRun.ReplaceAllString(text, " "))
	if cleaned == "" {
		return nil
	}

	var sentences []string
	start := 0
	for i := 0; i < len(cleaned); i++ {
		if cleaned[i] == ' ' && i > 0 && isTerminator(cleaned[i-1]) {
			if s := strings.TrimSpace(cleaned[start:i]); s != "" {
				sentences = append(sentences, s)
			}
			start = i + 1
		}
	}
	if s := strings.TrimSpace(cleaned[start:]); s != "" {
		sentences = append(sentences, s)
	}

	return sentences
}

// HasNumericToken reports whether the sentence contains a standalone
// number, optionally followed by a percent sign.
func HasNumericToken(sentence string) bool {
	return numericToken.MatchString(sentence)
}

func isTerminator(b byte) bool {
	return b == '.' || b == '!' || b == '?'
}
