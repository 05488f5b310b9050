package llm

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"strings"

	"github.com/ad-si/cai/internal/provider"
)

// Payload is the provider-specific wire body for one request, either a JSON
// document or an encoded multipart form.
type Payload struct {
	ContentType string
	Body        []byte
}

// xaiImageModel is the one xAI model that accepts image-generation payloads.
const xaiImageModel = "grok-2-image-1212"

// jsonModeProviders can honor `response_format: {type: "json_object"}`.
var jsonModeProviders = map[provider.Provider]bool{
	provider.OpenAI: true,
	provider.Groq:   true,
	provider.Ollama: true,
}

// jsonSchemaProviders can honor `response_format: {type: "json_schema"}`.
var jsonSchemaProviders = map[provider.Provider]bool{
	provider.OpenAI: true,
	provider.Ollama: true,
}

// reasoningModelPrefixes name the OpenAI model families that take their
// token budget as `max_completion_tokens` instead of `max_tokens`.
var reasoningModelPrefixes = []string{"o1", "o3", "o4", "gpt-5"}

func maxTokensField(model string) string {
	for _, prefix := range reasoningModelPrefixes {
		if strings.HasPrefix(model, prefix) {
			return "max_completion_tokens"
		}
	}
	return "max_tokens"
}

func jsonPayload(body map[string]any) (*Payload, error) {
	data, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encoding request body: %w", err)
	}
	return &Payload{ContentType: "application/json", Body: data}, nil
}

// BuildPayload turns a request descriptor, the execution options, and the
// prompt into the wire body the provider's endpoint expects. It is a pure
// transform; capability mismatches surface as typed errors.
//
// The special cases are checked in a fixed order because several of the
// predicates overlap; the first match wins.
func BuildPayload(req *Request, opts Options, prompt string) (*Payload, error) {
	// A prompt that is itself a JSON object is passed through verbatim, so
	// callers can supply a fully custom request body.
	if raw := passthroughBody(prompt); raw != nil {
		return &Payload{ContentType: "application/json", Body: raw}, nil
	}

	switch {
	case req.Provider == provider.Google:
		return googlePayload(req, prompt)

	case req.Provider == provider.OpenAI && isSpeechModel(req.Model):
		return jsonPayload(map[string]any{
			"model": req.Model,
			"input": prompt,
			"voice": "alloy",
		})

	case req.Provider == provider.XAI && req.Model == xaiImageModel:
		return jsonPayload(map[string]any{
			"model":  req.Model,
			"prompt": prompt,
			"n":      1,
		})

	case (req.Provider == provider.OpenAI || req.Provider == provider.XAI) &&
		(opts.Command == "image" ||
			strings.HasPrefix(req.Model, "gpt-image") ||
			strings.HasPrefix(req.Model, "dall-e")):
		return jsonPayload(map[string]any{
			"model":  req.Model,
			"prompt": prompt,
		})

	case isTranscriptionModel(req.Model):
		return transcriptionPayload(req, opts)
	}

	return chatPayload(req, opts, prompt)
}

// passthroughBody returns the prompt bytes when the prompt is a complete
// JSON object, nil otherwise. Scalars and arrays are not treated as custom
// bodies; no provider accepts them and short numeric prompts would
// otherwise be swallowed.
func passthroughBody(prompt string) []byte {
	trimmed := strings.TrimSpace(prompt)
	if !strings.HasPrefix(trimmed, "{") || !json.Valid([]byte(trimmed)) {
		return nil
	}
	return []byte(trimmed)
}

func googlePayload(req *Request, prompt string) (*Payload, error) {
	generationConfig := map[string]any{
		"maxOutputTokens": req.MaxTokens,
	}
	if strings.Contains(req.Model, "-image") {
		generationConfig["responseModalities"] = []string{"IMAGE"}
	}
	return jsonPayload(map[string]any{
		"contents": []map[string]any{{
			"role":  "user",
			"parts": []map[string]any{{"text": prompt}},
		}},
		"generationConfig": generationConfig,
	})
}

func chatPayload(req *Request, opts Options, prompt string) (*Payload, error) {
	body := map[string]any{
		"model":                    req.Model,
		maxTokensField(req.Model): req.MaxTokens,
		"messages": []map[string]any{{
			"role":    "user",
			"content": prompt,
		}},
	}

	if opts.JSON {
		if !jsonModeProviders[req.Provider] {
			return nil, &CapabilityError{Provider: req.Provider, Feature: "a JSON mode"}
		}
		body["response_format"] = map[string]any{"type": "json_object"}
	}

	if opts.Schema != nil {
		if !jsonSchemaProviders[req.Provider] {
			return nil, &CapabilityError{Provider: req.Provider, Feature: "a JSON schema mode"}
		}
		body["response_format"] = map[string]any{
			"type":        "json_schema",
			"json_schema": opts.Schema,
		}
	}

	return jsonPayload(body)
}

// transcriptionPayload builds the multipart form the audio-transcription
// endpoints expect. The audio bytes are supplied by the CLI layer via the
// options; the shaper itself never touches the filesystem.
func transcriptionPayload(req *Request, opts Options) (*Payload, error) {
	if len(opts.Audio) == 0 {
		return nil, fmt.Errorf("model %s transcribes audio, but no audio file was provided", req.Model)
	}

	var buf bytes.Buffer
	form := multipart.NewWriter(&buf)

	if err := form.WriteField("model", req.Model); err != nil {
		return nil, fmt.Errorf("encoding form field: %w", err)
	}
	part, err := form.CreateFormFile("file", opts.AudioName)
	if err != nil {
		return nil, fmt.Errorf("encoding form file: %w", err)
	}
	if _, err := part.Write(opts.Audio); err != nil {
		return nil, fmt.Errorf("encoding form file: %w", err)
	}
	if err := form.Close(); err != nil {
		return nil, fmt.Errorf("finalizing form: %w", err)
	}

	return &Payload{ContentType: form.FormDataContentType(), Body: buf.Bytes()}, nil
}
