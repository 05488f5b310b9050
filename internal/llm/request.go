package llm

import (
	"strings"

	"github.com/ad-si/cai/internal/provider"
)

// defaultMaxTokens is the token budget applied to every request.
const defaultMaxTokens = 4096

// placeholderKey is used for local providers that accept any credential.
const placeholderKey = "DUMMY_KEY"

// Request is the fully resolved descriptor for one provider call: where to
// send it, which concrete model to ask for, and how to authenticate.
type Request struct {
	Provider  provider.Provider
	URL       string
	Model     string
	MaxTokens int
	APIKey    string
}

// Options carries the per-invocation execution flags supplied by the CLI.
type Options struct {
	// Raw disables the metadata line and any output decoration.
	Raw bool

	// JSON requests a JSON-object response from the model.
	JSON bool

	// Schema requests a response conforming to this JSON schema.
	Schema map[string]any

	// Command names the invoking subcommand when it changes how the payload
	// is shaped, e.g. "image" for image generation or "transcribe".
	Command string

	// Audio holds the file content for transcription requests, read by the
	// CLI layer. AudioName is the original filename sent in the form.
	Audio     []byte
	AudioName string

	// Prompt is the user prompt, recorded here so the extractor can derive
	// filenames for saved media from it.
	Prompt string
}

func defaultBaseURL(p provider.Provider) string {
	switch p {
	case provider.Anthropic:
		return "https://api.anthropic.com"
	case provider.Cerebras:
		return "https://api.cerebras.ai"
	case provider.DeepSeek:
		return "https://api.deepseek.com"
	case provider.Google:
		return "https://generativelanguage.googleapis.com/v1beta/models"
	case provider.Groq:
		return "https://api.groq.com"
	case provider.Llamafile:
		return "http://localhost:8080"
	case provider.Ollama:
		return "http://localhost:11434"
	case provider.OpenAI:
		return "https://api.openai.com"
	case provider.Perplexity:
		return "https://api.perplexity.ai"
	case provider.XAI:
		return "https://api.x.ai"
	}
	return ""
}

// isSpeechModel reports whether an OpenAI model name targets the
// text-to-speech endpoint.
func isSpeechModel(model string) bool {
	return strings.Contains(model, "-tts")
}

// isImageModel reports whether a model name targets an image-generation
// endpoint on OpenAI or xAI.
func isImageModel(model string) bool {
	return strings.HasPrefix(model, "gpt-image") ||
		strings.HasPrefix(model, "dall-e") ||
		strings.HasPrefix(model, "grok-2-image")
}

// isTranscriptionModel reports whether a model name targets an
// audio-transcription endpoint.
func isTranscriptionModel(model string) bool {
	return strings.Contains(model, "whisper") ||
		strings.Contains(model, "-transcribe")
}

// pathSuffix returns the endpoint path appended to the provider's base URL.
// For Google the model segment and action verb are appended at dispatch time
// instead, because its URL embeds the model id and the API key.
func pathSuffix(p provider.Provider, model string) string {
	switch p {
	case provider.Anthropic:
		return "/v1/messages"
	case provider.Cerebras:
		return "/v1/chat/completions"
	case provider.DeepSeek, provider.Perplexity:
		return "/chat/completions"
	case provider.Google:
		return ""
	case provider.Groq:
		if isTranscriptionModel(model) {
			return "/openai/v1/audio/transcriptions"
		}
		return "/openai/v1/chat/completions"
	case provider.Llamafile, provider.Ollama:
		return "/v1/chat/completions"
	case provider.OpenAI:
		switch {
		case isSpeechModel(model):
			return "/v1/audio/speech"
		case isImageModel(model):
			return "/v1/images/generations"
		case isTranscriptionModel(model):
			return "/v1/audio/transcriptions"
		default:
			return "/v1/chat/completions"
		}
	case provider.XAI:
		if isImageModel(model) {
			return "/v1/images/generations"
		}
		return "/v1/chat/completions"
	}
	return ""
}

// NewRequest resolves a model spec against the configuration snapshot into a
// dispatchable request descriptor. The returned model id is always the
// provider-native identifier, never the raw alias.
func NewRequest(
	cfg map[string]string,
	secretsPath string,
	spec provider.ModelSpec,
) (*Request, error) {
	p := spec.Provider
	model := provider.Resolve(p, spec.Model)

	base := cfg[p.Key()+"_base_url"]
	if base == "" {
		base = defaultBaseURL(p)
	}
	base = strings.TrimSuffix(base, "/")

	apiKey := cfg[p.Key()+"_api_key"]
	if p.Local() {
		apiKey = placeholderKey
	}
	if apiKey == "" {
		return nil, &KeyError{Provider: p, SecretsPath: secretsPath}
	}

	return &Request{
		Provider:  p,
		URL:       base + pathSuffix(p, model),
		Model:     model,
		MaxTokens: defaultMaxTokens,
		APIKey:    apiKey,
	}, nil
}
