package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"fitflow/catalog-api/internal/config"
)

// openExDBClient talks to the free, unauthenticated ExerciseDB mirror.
// Responses come wrapped in a {"success": bool, "data": [...]} envelope
// with snake_case field names. Looser contract, but always reachable, so
// the orchestrator uses it as the generic safety net.
type openExDBClient struct {
	httpClient *http.Client
	baseURL    string
}

// NewOpenExDB creates the secondary provider client. A nil httpClient uses
// http.DefaultClient.
func NewOpenExDB(cfg config.OpenExDBConfig, httpClient *http.Client) Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &openExDBClient{
		httpClient: httpClient,
		baseURL:    cfg.BaseURL,
	}
}

func (c *openExDBClient) Name() string {
	return "openexdb"
}

func (c *openExDBClient) SearchByName(ctx context.Context, query string, limit int) (json.RawMessage, error) {
	if query == "" {
		return nil, InvalidArgumentError("search query must not be empty")
	}
	return c.get(ctx, fmt.Sprintf("/api/v1/exercises/search?q=%s&limit=%d", url.QueryEscape(query), normalizeLimit(limit)))
}

func (c *openExDBClient) ByBodyPart(ctx context.Context, bodyPart string, limit int) (json.RawMessage, error) {
	if bodyPart == "" {
		return nil, InvalidArgumentError("body part must not be empty")
	}
	return c.get(ctx, fmt.Sprintf("/api/v1/bodyparts/%s/exercises?limit=%d", url.PathEscape(bodyPart), normalizeLimit(limit)))
}

func (c *openExDBClient) ByEquipment(ctx context.Context, equipment string, limit int) (json.RawMessage, error) {
	if equipment == "" {
		return nil, InvalidArgumentError("equipment must not be empty")
	}
	return c.get(ctx, fmt.Sprintf("/api/v1/equipments/%s/exercises?limit=%d", url.PathEscape(equipment), normalizeLimit(limit)))
}

func (c *openExDBClient) ByTarget(ctx context.Context, target string, limit int) (json.RawMessage, error) {
	if target == "" {
		return nil, InvalidArgumentError("target muscle must not be empty")
	}
	return c.get(ctx, fmt.Sprintf("/api/v1/muscles/%s/exercises?limit=%d", url.PathEscape(target), normalizeLimit(limit)))
}

func (c *openExDBClient) ByID(ctx context.Context, id string) (json.RawMessage, error) {
	if id == "" {
		return nil, InvalidArgumentError("exercise id must not be empty")
	}
	return c.get(ctx, "/api/v1/exercises/"+url.PathEscape(id))
}

func (c *openExDBClient) get(ctx context.Context, path string) (json.RawMessage, error) {
	return getJSON(ctx, c.httpClient, c.Name(), c.baseURL+path, nil)
}
