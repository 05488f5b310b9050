package provider

import "testing"

func TestParseRoundTrip(t *testing.T) {
	for _, p := range All {
		parsed, err := Parse(p.Key())
		if err != nil {
			t.Fatalf("Parse(%q) failed: %v", p.Key(), err)
		}
		if parsed != p {
			t.Errorf("Parse(%q) = %v, want %v", p.Key(), parsed, p)
		}
	}
}

func TestParseUnknown(t *testing.T) {
	if _, err := Parse("skynet"); err == nil {
		t.Error("Parse should reject unknown providers")
	}
}

func TestLocal(t *testing.T) {
	for _, p := range All {
		want := p == Llamafile || p == Ollama
		if p.Local() != want {
			t.Errorf("%v.Local() = %v, want %v", p, p.Local(), want)
		}
	}
}

func TestModelSpecLabel(t *testing.T) {
	tests := []struct {
		name string
		spec ModelSpec
		want string
	}{
		{
			name: "empty model shows provider only",
			spec: ModelSpec{Provider: Llamafile},
			want: "Llamafile",
		},
		{
			name: "alias is resolved in the label",
			spec: ModelSpec{Provider: Anthropic, Model: "haiku"},
			want: "Anthropic claude-3-5-haiku-latest",
		},
		{
			name: "qualified id passes through",
			spec: ModelSpec{Provider: OpenAI, Model: "gpt-4o-2024-08-06"},
			want: "OpenAI gpt-4o-2024-08-06",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.spec.Label(); got != tt.want {
				t.Errorf("Label() = %q, want %q", got, tt.want)
			}
		})
	}
}
