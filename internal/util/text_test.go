package util

import "testing"

func TestDedent(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "no indentation",
			input: "line one\nline two",
			want:  "line one\nline two",
		},
		{
			name:  "common margin removed",
			input: "    first\n    second\n      deeper",
			want:  "first\nsecond\n  deeper",
		},
		{
			name:  "blank lines ignored for margin",
			input: "  a\n\n  b",
			want:  "a\n\nb",
		},
		{
			name:  "mixed margins keep shortest",
			input: "    a\n  b",
			want:  "  a\nb",
		},
		{
			name:  "empty string",
			input: "",
			want:  "",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Dedent(tc.input); got != tc.want {
				t.Errorf("Dedent(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}
