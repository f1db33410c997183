package pipeline

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/metanewsx/metanewsx/internal/model"
)

func sampleBrief() *model.Brief {
	return &model.Brief{
		Headline:   "Sales grew 20%.",
		Claims:     []string{"Sales grew 20%.", "Analysts are optimistic."},
		Confidence: "The text has clear structure with some factual indicators, suggesting partial reliability that should be checked against primary sources.",
		WatchItems: []string{
			"Confirm the quantitative figures with original data.",
			"Identify the primary sources behind the reported claims.",
		},
		Flags: []string{
			"Some sentences are very short, which may omit important context.",
		},
	}
}

func TestRenderer_Document_Exact(t *testing.T) {
	renderer := NewRenderer()

	got := renderer.Document(sampleBrief())
	want := strings.Join([]string{
		"Decision-Grade Brief",
		"====================",
		"",
		"HEADLINE",
		"Sales grew 20%.",
		"",
		"CLAIMS",
		"- Sales grew 20%.",
		"- Analysts are optimistic.",
		"",
		"CONFIDENCE",
		"The text has clear structure with some factual indicators, suggesting partial reliability that should be checked against primary sources.",
		"",
		"WHAT TO WATCH",
		"- Confirm the quantitative figures with original data.",
		"- Identify the primary sources behind the reported claims.",
		"",
		"UNCERTAINTY FLAGS",
		"- Some sentences are very short, which may omit important context.",
	}, "\n")

	if got != want {
		t.Errorf("document mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestRenderer_Document_NoClaimsPlaceholder(t *testing.T) {
	renderer := NewRenderer()

	brief := sampleBrief()
	brief.Claims = nil

	got := renderer.Document(brief)
	if !strings.Contains(got, "- No clear factual claims detected from the text.") {
		t.Errorf("expected placeholder line for empty claims, got:\n%s", got)
	}
}

func TestRenderer_Document_SectionOrder(t *testing.T) {
	renderer := NewRenderer()

	got := renderer.Document(sampleBrief())

	order := []string{"HEADLINE", "CLAIMS", "CONFIDENCE", "WHAT TO WATCH", "UNCERTAINTY FLAGS"}
	last := -1
	for _, header := range order {
		idx := strings.Index(got, header)
		if idx < 0 {
			t.Fatalf("missing section %q", header)
		}
		if idx < last {
			t.Errorf("section %q out of order", header)
		}
		last = idx
	}
}

func TestRenderer_RenderText_TrailingNewline(t *testing.T) {
	renderer := NewRenderer()

	var buf bytes.Buffer
	if err := renderer.RenderText(&buf, sampleBrief()); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	out := buf.String()
	if !strings.HasSuffix(out, "UNCERTAINTY FLAGS\n- Some sentences are very short, which may omit important context.\n") {
		t.Errorf("unexpected output tail: %q", out)
	}
}

func TestRenderer_RenderJSON(t *testing.T) {
	renderer := NewRenderer()

	path := filepath.Join(t.TempDir(), "brief.json")
	if err := renderer.RenderJSON(sampleBrief(), path); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read rendered JSON: %v", err)
	}

	var decoded model.Brief
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("rendered JSON does not parse: %v", err)
	}
	if decoded.Headline != "Sales grew 20%." {
		t.Errorf("unexpected headline in JSON: %q", decoded.Headline)
	}
	if len(decoded.Claims) != 2 {
		t.Errorf("expected 2 claims in JSON, got %d", len(decoded.Claims))
	}
}

func TestRenderer_RenderMarkdown(t *testing.T) {
	renderer := NewRenderer()

	path := filepath.Join(t.TempDir(), "brief.md")
	if err := renderer.RenderMarkdown(sampleBrief(), path); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read rendered Markdown: %v", err)
	}

	md := string(data)
	for _, heading := range []string{"# Decision-Grade Brief", "## Headline", "## Claims", "## Confidence", "## What to Watch", "## Uncertainty Flags"} {
		if !strings.Contains(md, heading) {
			t.Errorf("missing heading %q in Markdown output", heading)
		}
	}
}
