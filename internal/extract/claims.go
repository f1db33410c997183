package extract

import (
	"strings"

	"github.com/metanewsx/metanewsx/internal/model"
)

// ClaimSelector selects candidate factual claims from sentences
type ClaimSelector struct {
	assertionTokens []string
}

// NewClaimSelector creates a new claim selector
func NewClaimSelector() *ClaimSelector {
	return &ClaimSelector{
		// Space-padded so only interior, space-delimited occurrences
		// match. A sentence opening with "Is" or ending "... is." does
		// not qualify through this list.
		assertionTokens: []string{
			" will ", " has ", " have ", " is ", " are ", " was ", " were ",
		},
	}
}

// Select scans sentences in order and collects those that carry a factual
// assertion: an assertion verb or a numeric token. Selection stops once
// MaxClaims have been collected; later sentences are not evaluated.
// Duplicate sentences in the input are kept.
func (s *ClaimSelector) Select(sentences []string) []string {
	var claims []string
	for _, sentence := range sentences {
		lower := strings.ToLower(sentence)
		if s.hasAssertionToken(lower) {
			claims = append(claims, sentence)
		} else if HasNumericToken(sentence) {
			claims = append(claims, sentence)
		}
		if len(claims) >= model.MaxClaims {
			break
		}
	}
	return claims
}

func (s *ClaimSelector) hasAssertionToken(lower string) bool {
	for _, token := range s.assertionTokens {
		if strings.Contains(lower, token) {
			return true
		}
	}
	return false
}
