package llm

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ad-si/cai/internal/provider"
)

func TestPromptFailureKeepsTiming(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":{"message":"overloaded"}}`))
	}))
	defer server.Close()

	cfg := map[string]string{
		"openai_api_key":  "sk-test",
		"openai_base_url": server.URL,
	}
	spec := &provider.ModelSpec{Provider: provider.OpenAI, Model: "gpt-4o"}

	_, err := Prompt(
		context.Background(), cfg, "/tmp/secrets.yaml", spec, Options{}, "hi", testLogger())
	if err == nil {
		t.Fatal("expected the dispatch to fail")
	}

	var dispatchErr *DispatchError
	if !errors.As(err, &dispatchErr) {
		t.Fatalf("expected DispatchError, got %v", err)
	}
	if dispatchErr.Label != "OpenAI gpt-4o" {
		t.Errorf("Label = %q, want the resolved model", dispatchErr.Label)
	}
	if dispatchErr.Elapsed <= 0 {
		t.Errorf("Elapsed = %v, want a positive duration", dispatchErr.Elapsed)
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Errorf("the upstream APIError should stay reachable, got %v", err)
	}
}

func TestPromptEmptyPrompt(t *testing.T) {
	_, err := Prompt(
		context.Background(), testConfig(), "/tmp/secrets.yaml",
		&provider.ModelSpec{Provider: provider.Groq, Model: "ll"},
		Options{}, "", testLogger())

	if !errors.Is(err, ErrEmptyPrompt) {
		t.Fatalf("expected ErrEmptyPrompt, got %v", err)
	}
	// Wrapping must not change the message the user sees.
	if err.Error() != ErrEmptyPrompt.Error() {
		t.Errorf("Error() = %q", err.Error())
	}
}

func TestPromptMissingKeyHasNoTiming(t *testing.T) {
	spec := &provider.ModelSpec{Provider: provider.Anthropic, Model: "haiku"}
	_, err := Prompt(
		context.Background(), map[string]string{}, "/tmp/secrets.yaml",
		spec, Options{}, "hi", testLogger())

	var keyErr *KeyError
	if !errors.As(err, &keyErr) {
		t.Fatalf("expected KeyError, got %v", err)
	}
	var dispatchErr *DispatchError
	if errors.As(err, &dispatchErr) {
		t.Error("failures before model resolution should not carry dispatch metadata")
	}
}
