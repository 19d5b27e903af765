package provider

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// DefaultLimit bounds result-set size when the caller does not ask for one.
const DefaultLimit = 20

// Client is the narrow query surface every upstream exercise provider
// implements. Each call issues one HTTP request and returns the provider's
// body unparsed beyond JSON decoding; normalization happens in the
// catalog package. Adding a provider means implementing this interface;
// the failover orchestrator needs no changes.
type Client interface {
	Name() string
	SearchByName(ctx context.Context, query string, limit int) (json.RawMessage, error)
	ByBodyPart(ctx context.Context, bodyPart string, limit int) (json.RawMessage, error)
	ByEquipment(ctx context.Context, equipment string, limit int) (json.RawMessage, error)
	ByTarget(ctx context.Context, target string, limit int) (json.RawMessage, error)
	ByID(ctx context.Context, id string) (json.RawMessage, error)
}

// --- Error Definitions ---

// ErrNotConfigured means the provider's credential is missing; the call is
// refused before any network I/O. The orchestrator treats it as an
// automatic-fallback trigger, not a hard failure.
var ErrNotConfigured = errors.New("provider API key is not configured")

// InvalidArgumentError marks an empty/missing query parameter, rejected
// before any network I/O. Not recoverable by falling over.
type InvalidArgumentError string

func (e InvalidArgumentError) Error() string {
	return "invalid argument: " + string(e)
}

// UpstreamError reports a non-2xx status or transport failure from one
// provider.
type UpstreamError struct {
	Provider string
	Status   int   // 0 for transport errors
	Err      error // underlying transport error, nil for status failures
}

func (e *UpstreamError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("provider %s: %v", e.Provider, e.Err)
	}
	return fmt.Sprintf("provider %s: unexpected status %d", e.Provider, e.Status)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// BothFailedError is the terminal failover outcome: primary and fallback
// both failed. It carries both reasons so operators can distinguish "both
// providers down" from "bad query".
type BothFailedError struct {
	Primary  error
	Fallback error
}

func (e *BothFailedError) Error() string {
	return fmt.Sprintf("both providers failed: primary: %v; fallback: %v", e.Primary, e.Fallback)
}

// --- Shared HTTP plumbing ---

// getJSON performs one GET against url with the given headers and returns
// the body when the status is 2xx. The caller inherits the http.Client's
// timeout; this layer adds none of its own.
func getJSON(ctx context.Context, httpClient *http.Client, providerName, url string, headers map[string]string) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &UpstreamError{Provider: providerName, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, &UpstreamError{Provider: providerName, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &UpstreamError{Provider: providerName, Status: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &UpstreamError{Provider: providerName, Err: err}
	}
	return json.RawMessage(body), nil
}

func normalizeLimit(limit int) int {
	if limit <= 0 {
		return DefaultLimit
	}
	return limit
}
