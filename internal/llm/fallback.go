package llm

import (
	"errors"

	"github.com/ad-si/cai/internal/provider"
)

// defaultModels is the fixed probe order used when the caller does not name
// a model: the first provider with a configured API key wins.
var defaultModels = []provider.ModelSpec{
	{Provider: provider.Groq, Model: "llama-3.1-8b-instant"},
	{Provider: provider.OpenAI, Model: "gpt-4o-mini"},
	{Provider: provider.Anthropic, Model: "claude-3-5-haiku-latest"},
}

// Select resolves which provider and model to call. An explicit spec is
// built directly; with no spec, the default models are probed in order.
// When every probe fails for lack of a key, the error still lists every
// supported credential path, not just the last provider tried.
func Select(
	cfg map[string]string,
	secretsPath string,
	spec *provider.ModelSpec,
) (string, *Request, error) {
	if spec != nil {
		req, err := NewRequest(cfg, secretsPath, *spec)
		if err != nil {
			return "", nil, err
		}
		return spec.Label(), req, nil
	}

	var lastErr error
	for _, candidate := range defaultModels {
		req, err := NewRequest(cfg, secretsPath, candidate)
		if err != nil {
			var keyErr *KeyError
			if errors.As(err, &keyErr) {
				lastErr = err
				continue
			}
			return "", nil, err
		}
		return candidate.Label(), req, nil
	}
	return "", nil, lastErr
}
