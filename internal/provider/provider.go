// Package provider defines the closed set of supported LLM backends and the
// alias tables that map short user-typed model names to canonical vendor ids.
package provider

import "fmt"

// Provider identifies one hosted LLM backend.
type Provider int

const (
	Anthropic Provider = iota
	Cerebras
	DeepSeek
	Google
	Groq
	Llamafile
	Ollama
	OpenAI
	Perplexity
	XAI
)

// All lists every supported provider, in display order.
var All = []Provider{
	Anthropic,
	Cerebras,
	DeepSeek,
	Google,
	Groq,
	Llamafile,
	Ollama,
	OpenAI,
	Perplexity,
	XAI,
}

// String returns the vendor display name.
func (p Provider) String() string {
	switch p {
	case Anthropic:
		return "Anthropic"
	case Cerebras:
		return "Cerebras"
	case DeepSeek:
		return "DeepSeek"
	case Google:
		return "Google"
	case Groq:
		return "Groq"
	case Llamafile:
		return "Llamafile"
	case Ollama:
		return "Ollama"
	case OpenAI:
		return "OpenAI"
	case Perplexity:
		return "Perplexity"
	case XAI:
		return "xAI"
	}
	return "Unknown"
}

// Key returns the lowercase stem used for configuration lookups,
// e.g. "openai" for the keys "openai_api_key" and "openai_base_url".
func (p Provider) Key() string {
	switch p {
	case Anthropic:
		return "anthropic"
	case Cerebras:
		return "cerebras"
	case DeepSeek:
		return "deepseek"
	case Google:
		return "google"
	case Groq:
		return "groq"
	case Llamafile:
		return "llamafile"
	case Ollama:
		return "ollama"
	case OpenAI:
		return "openai"
	case Perplexity:
		return "perplexity"
	case XAI:
		return "xai"
	}
	return "unknown"
}

// Local reports whether the provider runs on the local machine and
// therefore needs no real API credential.
func (p Provider) Local() bool {
	return p == Llamafile || p == Ollama
}

// Parse converts a configuration-key stem back into a Provider.
func Parse(s string) (Provider, error) {
	for _, p := range All {
		if p.Key() == s {
			return p, nil
		}
	}
	return 0, fmt.Errorf("unknown provider: %q", s)
}

// ModelSpec pairs a provider with a model alias or fully-qualified model id.
// An empty Model means "use the provider's default".
type ModelSpec struct {
	Provider Provider
	Model    string
}

// Label returns the human-readable "Provider model-id" form shown in the
// metadata line. The model part is resolved through the alias tables so the
// label always names the concrete model that will be used.
func (s ModelSpec) Label() string {
	if s.Model == "" {
		return s.Provider.String()
	}
	return s.Provider.String() + " " + Resolve(s.Provider, s.Model)
}
