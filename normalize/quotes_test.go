package normalize

import "testing"

func TestQuotes(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "apostrophe mojibake",
			text: "donât",
			want: "don't",
		},
		{
			name: "windows-1252 double quotes",
			text: "quoted",
			want: "“quoted”",
		},
		{
			name: "windows-1252 single quotes",
			text: "word",
			want: "‘word’",
		},
		{
			name: "apos entity",
			text: "it&apos;s",
			want: "it's",
		},
		{
			name: "em dash",
			text: "aâb",
			want: "a—b",
		},
		{
			name: "en dash",
			text: "pages 3â5",
			want: "pages 3–5",
		},
		{
			name: "ellipsis",
			text: "waitâ¦",
			want: "wait…",
		},
		{
			name: "left double quote",
			text: "âœword",
			want: "“word",
		},
		{
			name: "zero width family deleted",
			text: "aâ‹b",
			want: "ab",
		},
		{
			name: "bare prefix deleted last",
			text: "xây",
			want: "xy",
		},
		{
			name: "clean text untouched",
			text: "nothing to repair here",
			want: "nothing to repair here",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Quotes(tt.text); got != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, got)
			}
		})
	}
}
