package score

import (
	"fmt"
	"strings"

	"github.com/metanewsx/metanewsx/internal/extract"
	"github.com/metanewsx/metanewsx/internal/model"
)

// Fallbacks used when no input text was provided.
const (
	fallbackWatchItem = "Clarify the main topic and provide supporting facts."
	fallbackFlag      = "No input text provided to evaluate."
)

// vagueQualifiers are matched as substrings of the joined lowercase text,
// not as whole words, so "someone" triggers "some". Kept that way on
// purpose: the looser match errs toward flagging.
var vagueQualifiers = []string{"some", "many", "various", "likely", "reportedly"}

// Scorer derives the narrative sections of a brief from the sentence and
// claim sequences. All methods are pure and total.
type Scorer struct{}

// NewScorer creates a new scorer
func NewScorer() *Scorer {
	return &Scorer{}
}

// ConfidenceNote classifies overall reliability into one of the canned
// narrative templates. Branch order matters: detail-rich texts with
// several claims rank above detail-free texts, and the clarity wording
// only surfaces in the partial-reliability branch.
func (s *Scorer) ConfidenceNote(sentences, claims []string) string {
	if len(sentences) == 0 {
		return "No source text was provided, so reliability cannot be assessed."
	}

	detailScore := 0
	for _, sentence := range sentences {
		if extract.HasNumericToken(sentence) {
			detailScore++
		}
	}
	clarity := "mixed"
	if len(sentences) <= 6 {
		clarity = "clear"
	}

	if detailScore >= 2 && len(claims) >= 3 {
		return "The text is relatively clear and includes multiple concrete details, " +
			"so the claims appear moderately reliable pending verification."
	}
	if detailScore == 0 {
		return "The text offers broad statements with few specifics, so reliability is uncertain " +
			"and would benefit from corroborating sources."
	}
	return fmt.Sprintf("The text has %s structure with some factual indicators, suggesting partial reliability "+
		"that should be checked against primary sources.", clarity)
}

// WatchItems suggests follow-up verification actions. Conditional items
// come first, the generic primary-sources item is always appended last,
// and the list is truncated from the end to the cap.
func (s *Scorer) WatchItems(sentences []string) []string {
	if len(sentences) == 0 {
		return []string{fallbackWatchItem}
	}

	var watchlist []string
	if anySentence(sentences, hasHedgingWord) {
		watchlist = append(watchlist, "Verify conditional statements against confirmed reports.")
	}
	if anySentence(sentences, extract.HasNumericToken) {
		watchlist = append(watchlist, "Confirm the quantitative figures with original data.")
	}
	watchlist = append(watchlist, "Identify the primary sources behind the reported claims.")

	return truncate(watchlist, model.MaxWatchItems)
}

// UncertaintyFlags produces caution notes about the input text itself:
// brevity, vague qualifiers, missing numeric anchors. Insertion order is
// fixed and truncation keeps the earliest flags.
func (s *Scorer) UncertaintyFlags(sentences []string) []string {
	if len(sentences) == 0 {
		return []string{fallbackFlag}
	}

	var flags []string
	if anySentence(sentences, isVeryShort) {
		flags = append(flags, "Some sentences are very short, which may omit important context.")
	}
	joined := strings.ToLower(strings.Join(sentences, " "))
	for _, qualifier := range vagueQualifiers {
		if strings.Contains(joined, qualifier) {
			flags = append(flags, "Vague qualifiers suggest potential uncertainty or bias.")
			break
		}
	}
	if !anySentence(sentences, extract.HasNumericToken) {
		flags = append(flags, "No numeric data was provided to anchor the claims.")
	}

	return truncate(flags, model.MaxFlags)
}

func anySentence(sentences []string, pred func(string) bool) bool {
	for _, sentence := range sentences {
		if pred(sentence) {
			return true
		}
	}
	return false
}

func hasHedgingWord(sentence string) bool {
	lower := strings.ToLower(sentence)
	return strings.Contains(lower, "could") || strings.Contains(lower, "may")
}

func isVeryShort(sentence string) bool {
	return len(strings.Fields(sentence)) < 6
}

func truncate(items []string, max int) []string {
	if len(items) > max {
		return items[:max]
	}
	return items
}
