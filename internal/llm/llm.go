// Package llm translates a user prompt into one provider-specific HTTP
// request and the provider's reply back into a uniform result.
//
// The pipeline is a single-shot, stateless request translator:
//
//	Select → NewRequest → BuildPayload → Send → Extract
//
// Each provider has its own request schema (chat completions, Anthropic
// messages, Gemini contents/parts, image and speech payloads, transcription
// forms), its own authentication scheme, and its own response envelope; this
// package owns all of those differences so callers only deal with a
// ModelSpec, a prompt, and an Outcome.
//
// Example usage:
//
//	cfg, secretsPath, err := config.Load()
//	if err != nil {
//	    return err
//	}
//
//	spec := &provider.ModelSpec{Provider: provider.Anthropic, Model: "haiku"}
//	result, err := llm.Prompt(ctx, cfg, secretsPath, spec, llm.Options{}, "Hello", logger)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(result.Outcome.Text)
//
// Errors are typed (KeyError, CapabilityError, APIError, ShapeError) and
// bubble up to the caller; this package never terminates the process.
package llm

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/ad-si/cai/internal/provider"
)

// Result is the outcome of one completed prompt dispatch, together with the
// metadata the CLI prints alongside it.
type Result struct {
	// Label is the resolved "Provider model-id" display string.
	Label string

	// Elapsed is the wall-clock duration of the whole dispatch.
	Elapsed time.Duration

	// Outcome holds the extracted text, citations, and saved files.
	Outcome *Outcome
}

// Prompt runs the full request pipeline for one prompt. A nil spec engages
// the credential fallback policy. The empty-prompt check deliberately runs
// after credential resolution so key-setup guidance takes priority when both
// problems exist.
//
// Once a model has been resolved, every failure is returned as a
// DispatchError carrying the label and elapsed time, so failed dispatches
// keep the same metadata line as successful ones.
func Prompt(
	ctx context.Context,
	cfg map[string]string,
	secretsPath string,
	spec *provider.ModelSpec,
	opts Options,
	prompt string,
	logger *slog.Logger,
) (*Result, error) {
	start := time.Now()

	label, req, err := Select(cfg, secretsPath, spec)
	if err != nil {
		return nil, err
	}

	fail := func(err error) (*Result, error) {
		return nil, &DispatchError{Label: label, Elapsed: time.Since(start), Err: err}
	}

	if prompt == "" {
		return fail(ErrEmptyPrompt)
	}

	opts.Prompt = prompt
	payload, err := BuildPayload(req, opts, prompt)
	if err != nil {
		return fail(err)
	}

	resp, err := Send(ctx, http.DefaultClient, req, payload, logger)
	if err != nil {
		return fail(err)
	}

	outcome, err := Extract(req, resp, opts)
	if err != nil {
		return fail(err)
	}

	return &Result{
		Label:   label,
		Elapsed: time.Since(start),
		Outcome: outcome,
	}, nil
}
