package llm

import (
	"errors"
	"strings"
	"testing"

	"github.com/ad-si/cai/internal/provider"
)

func TestSelectExplicitSpec(t *testing.T) {
	spec := &provider.ModelSpec{Provider: provider.Anthropic, Model: "haiku"}
	label, req, err := Select(testConfig(), "/tmp/secrets.yaml", spec)
	if err != nil {
		t.Fatalf("Select() failed: %v", err)
	}
	if req.Provider != provider.Anthropic {
		t.Errorf("Provider = %v, want Anthropic", req.Provider)
	}
	if label != "Anthropic claude-3-5-haiku-latest" {
		t.Errorf("label = %q", label)
	}
}

func TestSelectExplicitSpecMissingKey(t *testing.T) {
	spec := &provider.ModelSpec{Provider: provider.Anthropic, Model: "haiku"}
	var keyErr *KeyError
	if _, _, err := Select(map[string]string{}, "/tmp/secrets.yaml", spec); !errors.As(err, &keyErr) {
		t.Fatalf("expected KeyError, got %v", err)
	}
}

func TestSelectFallbackOrder(t *testing.T) {
	tests := []struct {
		name         string
		cfg          map[string]string
		wantProvider provider.Provider
		wantModel    string
	}{
		{
			name:         "groq wins when every key is set",
			cfg:          testConfig(),
			wantProvider: provider.Groq,
			wantModel:    "llama-3.1-8b-instant",
		},
		{
			name:         "openai is second choice",
			cfg:          map[string]string{"openai_api_key": "sk-test", "anthropic_api_key": "sk-ant"},
			wantProvider: provider.OpenAI,
			wantModel:    "gpt-4o-mini",
		},
		{
			name:         "anthropic is picked when it holds the only key",
			cfg:          map[string]string{"anthropic_api_key": "sk-ant"},
			wantProvider: provider.Anthropic,
			wantModel:    "claude-3-5-haiku-latest",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			label, req, err := Select(tt.cfg, "/tmp/secrets.yaml", nil)
			if err != nil {
				t.Fatalf("Select() failed: %v", err)
			}
			if req.Provider != tt.wantProvider {
				t.Errorf("Provider = %v, want %v", req.Provider, tt.wantProvider)
			}
			if req.Model != tt.wantModel {
				t.Errorf("Model = %q, want %q", req.Model, tt.wantModel)
			}
			if label == "" {
				t.Error("label should not be empty")
			}
		})
	}
}

func TestSelectNoKeysAnywhere(t *testing.T) {
	_, _, err := Select(map[string]string{}, "/home/u/.config/cai/secrets.yaml", nil)

	var keyErr *KeyError
	if !errors.As(err, &keyErr) {
		t.Fatalf("expected KeyError, got %v", err)
	}
	// Even though only the last probe's error survives, the guidance must
	// cover every credential mechanism.
	for _, want := range []string{"anthropic_api_key", "groq_api_key", "openai_api_key"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("guidance should mention %q", want)
		}
	}
}
