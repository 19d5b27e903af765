package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
)

// remoteQuery is the wire shape of the exercise-catalog query endpoint.
type remoteQuery struct {
	Action    string `json:"action"`
	Query     string `json:"query,omitempty"`
	BodyPart  string `json:"bodyPart,omitempty"`
	Equipment string `json:"equipment,omitempty"`
	Target    string `json:"target,omitempty"`
	ID        string `json:"id,omitempty"`
	Limit     int    `json:"limit,omitempty"`
}

// RemoteSource queries a catalog-api instance through its query endpoint
// instead of talking to the upstream providers directly. It offers the
// same surface as the Orchestrator, so callers pick direct or remote at
// composition time; nothing branches on execution context at runtime.
type RemoteSource struct {
	httpClient *http.Client
	baseURL    string
	token      string
}

// NewRemoteSource creates a client for another catalog-api instance's
// query endpoint. token is a bearer JWT for the protected route; a nil
// httpClient uses http.DefaultClient.
func NewRemoteSource(baseURL, token string, httpClient *http.Client) *RemoteSource {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &RemoteSource{
		httpClient: httpClient,
		baseURL:    baseURL,
		token:      token,
	}
}

func (r *RemoteSource) SearchByName(ctx context.Context, query string, limit int) (Result, error) {
	return r.post(ctx, remoteQuery{Action: "search", Query: query, Limit: limit})
}

func (r *RemoteSource) ByBodyPart(ctx context.Context, bodyPart string, limit int) (Result, error) {
	return r.post(ctx, remoteQuery{Action: "bodyPart", BodyPart: bodyPart, Limit: limit})
}

func (r *RemoteSource) ByEquipment(ctx context.Context, equipment string, limit int) (Result, error) {
	return r.post(ctx, remoteQuery{Action: "equipment", Equipment: equipment, Limit: limit})
}

func (r *RemoteSource) ByTarget(ctx context.Context, target string, limit int) (Result, error) {
	return r.post(ctx, remoteQuery{Action: "target", Target: target, Limit: limit})
}

func (r *RemoteSource) ByID(ctx context.Context, id string) (Result, error) {
	return r.post(ctx, remoteQuery{Action: "byId", ID: id})
}

func (r *RemoteSource) post(ctx context.Context, q remoteQuery) (Result, error) {
	body, err := json.Marshal(q)
	if err != nil {
		return Result{}, &UpstreamError{Provider: "remote", Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.baseURL+"/api/v1/exercise-catalog/query", bytes.NewReader(body))
	if err != nil {
		return Result{}, &UpstreamError{Provider: "remote", Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if r.token != "" {
		req.Header.Set("Authorization", "Bearer "+r.token)
	}

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return Result{}, &UpstreamError{Provider: "remote", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Result{}, &UpstreamError{Provider: "remote", Status: resp.StatusCode}
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return Result{}, &UpstreamError{Provider: "remote", Err: err}
	}

	provider := resp.Header.Get("X-Catalog-Provider")
	if provider == "" {
		provider = "remote"
	}
	return Result{Raw: json.RawMessage(raw), Provider: provider}, nil
}
