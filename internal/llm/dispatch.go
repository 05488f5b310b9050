package llm

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/ad-si/cai/internal/provider"
)

// anthropicVersion is the API version header Anthropic requires on every call.
const anthropicVersion = "2023-06-01"

// Response is the raw provider reply: status plus the unparsed body.
type Response struct {
	Status int
	Body   []byte
}

// endpointURL finalizes the request URL. Google is the one protocol where
// the full endpoint is not known until dispatch: the model id is a URL path
// segment and the API key travels as a query parameter instead of a header.
func endpointURL(req *Request) string {
	if req.Provider == provider.Google {
		return req.URL + "/" + req.Model + ":generateContent?key=" +
			url.QueryEscape(req.APIKey)
	}
	return req.URL
}

// Send issues the single POST for a request. No retries, no streaming; the
// transport default timeout applies.
func Send(
	ctx context.Context,
	client *http.Client,
	req *Request,
	payload *Payload,
	logger *slog.Logger,
) (*Response, error) {
	if client == nil {
		client = http.DefaultClient
	}

	httpReq, err := http.NewRequestWithContext(
		ctx, http.MethodPost, endpointURL(req), bytes.NewReader(payload.Body))
	if err != nil {
		return nil, fmt.Errorf("building request for %s: %w", req.Provider, err)
	}
	httpReq.Header.Set("Content-Type", payload.ContentType)

	switch req.Provider {
	case provider.Anthropic:
		httpReq.Header.Set("anthropic-version", anthropicVersion)
		httpReq.Header.Set("x-api-key", req.APIKey)
	case provider.Google:
		// Key is already in the URL; no auth header.
	default:
		httpReq.Header.Set("Authorization", "Bearer "+req.APIKey)
	}

	logger.Debug("sending request",
		"provider", req.Provider.String(),
		"model", req.Model,
		"url", req.URL,
	)

	resp, err := client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("request to %s failed: %w", req.Provider, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading %s response: %w", req.Provider, err)
	}

	logger.Debug("received response",
		"provider", req.Provider.String(),
		"status", resp.StatusCode,
		"bytes", len(body),
	)

	return &Response{Status: resp.StatusCode, Body: body}, nil
}
