package llm

import (
	"errors"
	"fmt"
	"time"

	"github.com/ad-si/cai/internal/provider"
)

// Common errors returned by the request pipeline.
var (
	// ErrEmptyPrompt indicates the caller supplied no prompt text.
	ErrEmptyPrompt = errors.New("no prompt was provided")
)

// KeyError indicates that no usable API key could be found for a provider.
// Its message always lists every supported way to configure a credential,
// for all key-requiring provider families, because the fallback policy may
// have probed several providers before giving up.
type KeyError struct {
	Provider    provider.Provider
	SecretsPath string
}

func (e *KeyError) Error() string {
	return fmt.Sprintf(
		"An API key must be provided. Use one of the following options:\n"+
			"\n"+
			"1. Set one or more API keys in %s\n"+
			"   (`anthropic_api_key`, `groq_api_key`, `openai_api_key`)\n"+
			"2. Set one or more cai specific env variables\n"+
			"   (CAI_ANTHROPIC_API_KEY, CAI_GROQ_API_KEY, CAI_OPENAI_API_KEY)\n"+
			"3. Set one or more generic env variables\n"+
			"   (ANTHROPIC_API_KEY, GROQ_API_KEY, OPENAI_API_KEY)",
		e.SecretsPath,
	)
}

// DispatchError wraps a failure that occurred after a model was resolved,
// carrying the label and the elapsed wall-clock time so the failure can be
// rendered as one unit with the same metadata a success would have.
type DispatchError struct {
	Label   string
	Elapsed time.Duration
	Err     error
}

func (e *DispatchError) Error() string { return e.Err.Error() }

func (e *DispatchError) Unwrap() error { return e.Err }

// CapabilityError indicates a requested feature (JSON mode, JSON schema)
// is not supported by the selected provider.
type CapabilityError struct {
	Provider provider.Provider
	Feature  string
}

func (e *CapabilityError) Error() string {
	return fmt.Sprintf("%s doesn't support %s", e.Provider, e.Feature)
}

// APIError is a non-2xx response from a provider. Body holds the upstream
// error payload pretty-printed verbatim; it is the primary diagnostic and
// must never be summarized away.
type APIError struct {
	Provider provider.Provider
	Status   int
	Body     string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s returned status %d:\n%s", e.Provider, e.Status, e.Body)
}

// ShapeError is a 2xx response whose body does not match the expected
// structure for the provider, e.g. an empty choices array.
type ShapeError struct {
	Provider provider.Provider
	Detail   string
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("unexpected %s response: %s", e.Provider, e.Detail)
}
