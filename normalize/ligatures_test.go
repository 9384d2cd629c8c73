package normalize

import "testing"

func TestLigatures(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "fi and fl",
			text: "The ﬁrst ﬂoor",
			want: "The first floor",
		},
		{
			name: "three letter ligatures",
			text: "oﬃce staﬄess",
			want: "office staffless",
		},
		{
			name: "ash and ethel",
			text: "Æon æther Œuvre cœur",
			want: "AEon aether OEuvre coeur",
		},
		{
			name: "st ligature",
			text: "ﬆar",
			want: "star",
		},
		{
			name: "plain text untouched",
			text: "first floor office",
			want: "first floor office",
		},
		{
			name: "empty text",
			text: "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Ligatures(tt.text); got != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, got)
			}
		})
	}
}
