package model

// Brief represents the complete MetaNewsX analysis output for one article.
// Rendered as the fixed-section plain-text document on stdout, and
// optionally as JSON or Markdown files.
type Brief struct {
	Headline   string   `json:"headline" yaml:"headline"`                 // First sentence, terminal-punctuated, or fallback
	Claims     []string `json:"claims" yaml:"claims"`                     // Up to 5 candidate factual claims, in source order
	Confidence string   `json:"confidence" yaml:"confidence"`             // Narrative reliability note
	WatchItems []string `json:"watch_items" yaml:"watch_items"`           // Up to 3 follow-up verification actions, never empty
	Flags      []string `json:"uncertainty_flags" yaml:"uncertainty_flags"` // Up to 3 caution notes, never empty
}

// Limits on list sections of a Brief.
const (
	MaxClaims     = 5
	MaxWatchItems = 3
	MaxFlags      = 3
)
