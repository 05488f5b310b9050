package llm

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ad-si/cai/internal/provider"
	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
)

// Citation is one web source reference attached to a Perplexity answer.
type Citation struct {
	Title       string
	URL         string
	Date        string
	LastUpdated string
}

// Outcome is the uniform result of a successful dispatch: display text,
// optional citations, and any files written to disk.
type Outcome struct {
	Text      string
	Citations []Citation
	Files     []string
}

// Extract turns a raw provider reply into an Outcome, navigating the
// provider-specific response envelope. The shape checks run in a fixed
// priority order because media-producing models share endpoints and
// response schemas with plain chat models.
func Extract(req *Request, resp *Response, opts Options) (*Outcome, error) {
	if resp.Status < 200 || resp.Status > 299 {
		body := string(resp.Body)
		if json.Valid(resp.Body) {
			body = string(pretty.Pretty(resp.Body))
		}
		return nil, &APIError{Provider: req.Provider, Status: resp.Status, Body: body}
	}

	switch {
	case req.Provider == provider.OpenAI && isSpeechModel(req.Model):
		return speechOutcome(resp.Body)

	case (req.Provider == provider.OpenAI || req.Provider == provider.XAI) &&
		(isImageModel(req.Model) || opts.Command == "image"):
		return imageOutcome(req, resp.Body, opts)

	case req.Provider == provider.Google && strings.Contains(req.Model, "-image"):
		return googleImageOutcome(req, resp.Body, opts)

	case req.Provider == provider.Anthropic:
		return anthropicOutcome(req, resp.Body)

	case req.Provider == provider.Google:
		// Missing path segments degrade to empty output instead of failing;
		// Google omits parts entirely for some finish reasons.
		text := gjson.GetBytes(resp.Body, "candidates.0.content.parts.0.text").String()
		return &Outcome{Text: text}, nil

	case isTranscriptionModel(req.Model):
		return &Outcome{Text: gjson.GetBytes(resp.Body, "text").String()}, nil
	}

	return chatOutcome(req, resp.Body)
}

// speechOutcome handles text-to-speech replies, which are raw audio bytes
// rather than JSON.
func speechOutcome(body []byte) (*Outcome, error) {
	path, err := saveFile("output", "mp3", body)
	if err != nil {
		return nil, err
	}
	return &Outcome{Files: []string{path}}, nil
}

// imageOutcome handles the OpenAI/xAI images endpoint: each generated entry
// carries either an inline base64 payload or a hosted URL.
func imageOutcome(req *Request, body []byte, opts Options) (*Outcome, error) {
	entries := gjson.GetBytes(body, "data")
	if !entries.Exists() || len(entries.Array()) == 0 {
		return nil, &ShapeError{Provider: req.Provider, Detail: "no generated images in response"}
	}

	out := &Outcome{}
	slug := slugify(opts.Prompt)
	for _, entry := range entries.Array() {
		if b64 := entry.Get("b64_json"); b64.Exists() {
			data, err := base64.StdEncoding.DecodeString(b64.String())
			if err != nil {
				return nil, &ShapeError{
					Provider: req.Provider,
					Detail:   fmt.Sprintf("invalid base64 image data: %v", err),
				}
			}
			path, err := saveFile(slug, "png", data)
			if err != nil {
				return nil, err
			}
			out.Files = append(out.Files, path)
			continue
		}
		if url := entry.Get("url"); url.Exists() {
			out.Text += url.String() + "\n"
		}
	}
	return out, nil
}

// googleImageOutcome walks candidates[].content.parts[], saving every inline
// image blob and collecting any interleaved text.
func googleImageOutcome(req *Request, body []byte, opts Options) (*Outcome, error) {
	out := &Outcome{}
	slug := slugify(opts.Prompt)
	var saveErr error

	gjson.GetBytes(body, "candidates").ForEach(func(_, candidate gjson.Result) bool {
		candidate.Get("content.parts").ForEach(func(_, part gjson.Result) bool {
			if text := part.Get("text"); text.Exists() {
				out.Text += text.String()
			}
			if blob := part.Get("inlineData.data"); blob.Exists() {
				data, err := base64.StdEncoding.DecodeString(blob.String())
				if err != nil {
					saveErr = &ShapeError{
						Provider: req.Provider,
						Detail:   fmt.Sprintf("invalid base64 image data: %v", err),
					}
					return false
				}
				path, err := saveFile(slug, "png", data)
				if err != nil {
					saveErr = err
					return false
				}
				out.Files = append(out.Files, path)
			}
			return true
		})
		return saveErr == nil
	})

	if saveErr != nil {
		return nil, saveErr
	}
	return out, nil
}

func anthropicOutcome(req *Request, body []byte) (*Outcome, error) {
	content := gjson.GetBytes(body, "content")
	if !content.Exists() || len(content.Array()) == 0 {
		return nil, &ShapeError{Provider: req.Provider, Detail: "empty content array"}
	}
	return &Outcome{Text: content.Get("0.text").String()}, nil
}

// chatOutcome handles every OpenAI-compatible chat-completions reply.
func chatOutcome(req *Request, body []byte) (*Outcome, error) {
	choices := gjson.GetBytes(body, "choices")
	if !choices.Exists() || len(choices.Array()) == 0 {
		return nil, &ShapeError{Provider: req.Provider, Detail: "empty choices array"}
	}

	out := &Outcome{Text: choices.Get("0.message.content").String()}

	// Perplexity attaches the web sources backing the answer.
	if req.Provider == provider.Perplexity {
		for _, result := range gjson.GetBytes(body, "search_results").Array() {
			out.Citations = append(out.Citations, Citation{
				Title:       result.Get("title").String(),
				URL:         result.Get("url").String(),
				Date:        result.Get("date").String(),
				LastUpdated: result.Get("last_updated").String(),
			})
		}
	}

	return out, nil
}
