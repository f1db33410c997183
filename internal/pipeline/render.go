package pipeline

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/metanewsx/metanewsx/internal/model"
)

const noClaimsPlaceholder = "No clear factual claims detected from the text."

// Renderer renders briefs as plain text, JSON, or Markdown
type Renderer struct{}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	return &Renderer{}
}

// Document assembles the canonical fixed-section brief document. Section
// order is part of the output contract and must not change.
func (r *Renderer) Document(brief *model.Brief) string {
	lines := []string{
		"Decision-Grade Brief",
		"====================",
		"",
		"HEADLINE",
		brief.Headline,
		"",
		"CLAIMS",
	}
	if len(brief.Claims) > 0 {
		for _, claim := range brief.Claims {
			lines = append(lines, "- "+claim)
		}
	} else {
		lines = append(lines, "- "+noClaimsPlaceholder)
	}
	lines = append(lines,
		"",
		"CONFIDENCE",
		brief.Confidence,
		"",
		"WHAT TO WATCH",
	)
	for _, item := range brief.WatchItems {
		lines = append(lines, "- "+item)
	}
	lines = append(lines, "", "UNCERTAINTY FLAGS")
	for _, flag := range brief.Flags {
		lines = append(lines, "- "+flag)
	}

	return strings.Join(lines, "\n")
}

// RenderText writes the canonical brief document to w
func (r *Renderer) RenderText(w io.Writer, brief *model.Brief) error {
	if _, err := fmt.Fprintln(w, r.Document(brief)); err != nil {
		return fmt.Errorf("write brief: %w", err)
	}
	return nil
}

// RenderJSON writes the brief as indented JSON to the given path
func (r *Renderer) RenderJSON(brief *model.Brief, path string) error {
	data, err := json.MarshalIndent(brief, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal brief: %w", err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write JSON: %w", err)
	}
	return nil
}

// RenderMarkdown writes the brief as a Markdown report to the given path
func (r *Renderer) RenderMarkdown(brief *model.Brief, path string) error {
	var b strings.Builder

	b.WriteString("# Decision-Grade Brief\n\n")
	b.WriteString("## Headline\n\n")
	b.WriteString(brief.Headline + "\n\n")

	b.WriteString("## Claims\n\n")
	if len(brief.Claims) > 0 {
		for _, claim := range brief.Claims {
			b.WriteString("- " + claim + "\n")
		}
	} else {
		b.WriteString("- " + noClaimsPlaceholder + "\n")
	}
	b.WriteString("\n")

	b.WriteString("## Confidence\n\n")
	b.WriteString(brief.Confidence + "\n\n")

	b.WriteString("## What to Watch\n\n")
	for _, item := range brief.WatchItems {
		b.WriteString("- " + item + "\n")
	}
	b.WriteString("\n")

	b.WriteString("## Uncertainty Flags\n\n")
	for _, flag := range brief.Flags {
		b.WriteString("- " + flag + "\n")
	}

	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("write Markdown: %w", err)
	}
	return nil
}
