package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"fitflow/catalog-api/internal/config"
)

// exerciseDBClient talks to the ExerciseDB API through RapidAPI. Auth is
// two headers (key + host); responses are bare JSON arrays, or a single
// object for by-id.
type exerciseDBClient struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	apiHost    string
}

// NewExerciseDB creates the primary provider client. The credential comes
// from injected configuration, never from ambient process state, so tests
// can supply fake or missing keys deterministically. A nil httpClient uses
// http.DefaultClient.
func NewExerciseDB(cfg config.ExerciseDBConfig, httpClient *http.Client) Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &exerciseDBClient{
		httpClient: httpClient,
		baseURL:    cfg.BaseURL,
		apiKey:     cfg.APIKey,
		apiHost:    cfg.APIHost,
	}
}

func (c *exerciseDBClient) Name() string {
	return "exercisedb"
}

func (c *exerciseDBClient) SearchByName(ctx context.Context, query string, limit int) (json.RawMessage, error) {
	if query == "" {
		return nil, InvalidArgumentError("search query must not be empty")
	}
	return c.get(ctx, fmt.Sprintf("/exercises/name/%s?limit=%d", url.PathEscape(query), normalizeLimit(limit)))
}

func (c *exerciseDBClient) ByBodyPart(ctx context.Context, bodyPart string, limit int) (json.RawMessage, error) {
	if bodyPart == "" {
		return nil, InvalidArgumentError("body part must not be empty")
	}
	return c.get(ctx, fmt.Sprintf("/exercises/bodyPart/%s?limit=%d", url.PathEscape(bodyPart), normalizeLimit(limit)))
}

func (c *exerciseDBClient) ByEquipment(ctx context.Context, equipment string, limit int) (json.RawMessage, error) {
	if equipment == "" {
		return nil, InvalidArgumentError("equipment must not be empty")
	}
	return c.get(ctx, fmt.Sprintf("/exercises/equipment/%s?limit=%d", url.PathEscape(equipment), normalizeLimit(limit)))
}

func (c *exerciseDBClient) ByTarget(ctx context.Context, target string, limit int) (json.RawMessage, error) {
	if target == "" {
		return nil, InvalidArgumentError("target muscle must not be empty")
	}
	return c.get(ctx, fmt.Sprintf("/exercises/target/%s?limit=%d", url.PathEscape(target), normalizeLimit(limit)))
}

func (c *exerciseDBClient) ByID(ctx context.Context, id string) (json.RawMessage, error) {
	if id == "" {
		return nil, InvalidArgumentError("exercise id must not be empty")
	}
	return c.get(ctx, "/exercises/exercise/"+url.PathEscape(id))
}

func (c *exerciseDBClient) get(ctx context.Context, path string) (json.RawMessage, error) {
	// Refuse to fire an unauthenticated call that the gateway would reject
	// anyway; the orchestrator reads this as "try the fallback".
	if c.apiKey == "" {
		return nil, ErrNotConfigured
	}
	headers := map[string]string{
		"X-RapidAPI-Key":  c.apiKey,
		"X-RapidAPI-Host": c.apiHost,
	}
	return getJSON(ctx, c.httpClient, c.Name(), c.baseURL+path, headers)
}
