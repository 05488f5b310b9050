package llm

import (
	"errors"
	"strings"
	"testing"

	"github.com/ad-si/cai/internal/provider"
)

func testConfig() map[string]string {
	return map[string]string{
		"anthropic_api_key":  "sk-ant-test",
		"groq_api_key":       "gsk-test",
		"openai_api_key":     "sk-test",
		"google_api_key":     "AIza-test",
		"xai_api_key":        "xai-test",
		"perplexity_api_key": "pplx-test",
		"cerebras_api_key":   "csk-test",
		"deepseek_api_key":   "dsk-test",
	}
}

func TestNewRequestEndpoints(t *testing.T) {
	tests := []struct {
		name    string
		spec    provider.ModelSpec
		wantURL string
	}{
		{
			name:    "anthropic messages",
			spec:    provider.ModelSpec{Provider: provider.Anthropic, Model: "haiku"},
			wantURL: "https://api.anthropic.com/v1/messages",
		},
		{
			name:    "groq chat",
			spec:    provider.ModelSpec{Provider: provider.Groq, Model: "ll"},
			wantURL: "https://api.groq.com/openai/v1/chat/completions",
		},
		{
			name:    "groq whisper routes to transcriptions",
			spec:    provider.ModelSpec{Provider: provider.Groq, Model: "whisper"},
			wantURL: "https://api.groq.com/openai/v1/audio/transcriptions",
		},
		{
			name:    "openai chat",
			spec:    provider.ModelSpec{Provider: provider.OpenAI, Model: "4o"},
			wantURL: "https://api.openai.com/v1/chat/completions",
		},
		{
			name:    "openai tts routes to speech",
			spec:    provider.ModelSpec{Provider: provider.OpenAI, Model: "gpt-4o-mini-tts"},
			wantURL: "https://api.openai.com/v1/audio/speech",
		},
		{
			name:    "openai gpt-image routes to images",
			spec:    provider.ModelSpec{Provider: provider.OpenAI, Model: "gpt-image-1"},
			wantURL: "https://api.openai.com/v1/images/generations",
		},
		{
			name:    "openai dall-e routes to images",
			spec:    provider.ModelSpec{Provider: provider.OpenAI, Model: "dall-e-3"},
			wantURL: "https://api.openai.com/v1/images/generations",
		},
		{
			name:    "xai image routes to images",
			spec:    provider.ModelSpec{Provider: provider.XAI, Model: "grok-2-image-1212"},
			wantURL: "https://api.x.ai/v1/images/generations",
		},
		{
			name:    "xai chat",
			spec:    provider.ModelSpec{Provider: provider.XAI, Model: "grok"},
			wantURL: "https://api.x.ai/v1/chat/completions",
		},
		{
			name:    "google stays at the models collection",
			spec:    provider.ModelSpec{Provider: provider.Google, Model: "flash"},
			wantURL: "https://generativelanguage.googleapis.com/v1beta/models",
		},
		{
			name:    "deepseek chat",
			spec:    provider.ModelSpec{Provider: provider.DeepSeek, Model: "chat"},
			wantURL: "https://api.deepseek.com/chat/completions",
		},
		{
			name:    "perplexity chat",
			spec:    provider.ModelSpec{Provider: provider.Perplexity, Model: "sonar"},
			wantURL: "https://api.perplexity.ai/chat/completions",
		},
		{
			name:    "ollama local",
			spec:    provider.ModelSpec{Provider: provider.Ollama, Model: "llama"},
			wantURL: "http://localhost:11434/v1/chat/completions",
		},
		{
			name:    "llamafile local",
			spec:    provider.ModelSpec{Provider: provider.Llamafile, Model: ""},
			wantURL: "http://localhost:8080/v1/chat/completions",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := NewRequest(testConfig(), "/tmp/secrets.yaml", tt.spec)
			if err != nil {
				t.Fatalf("NewRequest() failed: %v", err)
			}
			if req.URL != tt.wantURL {
				t.Errorf("URL = %q, want %q", req.URL, tt.wantURL)
			}
		})
	}
}

func TestNewRequestResolvesAlias(t *testing.T) {
	spec := provider.ModelSpec{Provider: provider.Anthropic, Model: "haiku"}
	req, err := NewRequest(testConfig(), "/tmp/secrets.yaml", spec)
	if err != nil {
		t.Fatalf("NewRequest() failed: %v", err)
	}
	if req.Model != "claude-3-5-haiku-latest" {
		t.Errorf("Model = %q, want the resolved id", req.Model)
	}
	if req.MaxTokens != 4096 {
		t.Errorf("MaxTokens = %d, want 4096", req.MaxTokens)
	}
}

func TestNewRequestBaseURLOverride(t *testing.T) {
	cfg := testConfig()
	cfg["openai_base_url"] = "https://proxy.example.com/"

	spec := provider.ModelSpec{Provider: provider.OpenAI, Model: "4o"}
	req, err := NewRequest(cfg, "/tmp/secrets.yaml", spec)
	if err != nil {
		t.Fatalf("NewRequest() failed: %v", err)
	}
	if req.URL != "https://proxy.example.com/v1/chat/completions" {
		t.Errorf("URL = %q, trailing slash should be stripped before the suffix", req.URL)
	}
}

func TestNewRequestLocalProvidersNeedNoKey(t *testing.T) {
	for _, p := range []provider.Provider{provider.Ollama, provider.Llamafile} {
		req, err := NewRequest(map[string]string{}, "/tmp/secrets.yaml", provider.ModelSpec{Provider: p})
		if err != nil {
			t.Fatalf("NewRequest(%v) failed: %v", p, err)
		}
		if req.APIKey == "" {
			t.Errorf("%v should get a placeholder key", p)
		}
	}
}

func TestNewRequestMissingKey(t *testing.T) {
	spec := provider.ModelSpec{Provider: provider.Anthropic, Model: "haiku"}
	_, err := NewRequest(map[string]string{}, "/home/u/.config/cai/secrets.yaml", spec)

	var keyErr *KeyError
	if !errors.As(err, &keyErr) {
		t.Fatalf("expected a KeyError, got %v", err)
	}

	// The remediation text must name every credential mechanism for every
	// key-requiring provider family, not just the one that failed.
	msg := err.Error()
	for _, want := range []string{
		"/home/u/.config/cai/secrets.yaml",
		"anthropic_api_key", "groq_api_key", "openai_api_key",
		"CAI_ANTHROPIC_API_KEY", "CAI_GROQ_API_KEY", "CAI_OPENAI_API_KEY",
		"ANTHROPIC_API_KEY", "GROQ_API_KEY", "OPENAI_API_KEY",
	} {
		if !strings.Contains(msg, want) {
			t.Errorf("key setup message should contain %q, got:\n%s", want, msg)
		}
	}
}

func TestNewRequestEmptyKeyIsMissing(t *testing.T) {
	cfg := map[string]string{"openai_api_key": ""}
	spec := provider.ModelSpec{Provider: provider.OpenAI, Model: "4o"}

	var keyErr *KeyError
	if _, err := NewRequest(cfg, "/tmp/secrets.yaml", spec); !errors.As(err, &keyErr) {
		t.Fatalf("empty key should be a KeyError, got %v", err)
	}
}
