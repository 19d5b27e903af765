package provider

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemoteSourceSpeaksQueryProtocol(t *testing.T) {
	var gotPath, gotAuth string
	var gotBody map[string]interface{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		raw, _ := io.ReadAll(r.Body)
		json.Unmarshal(raw, &gotBody)
		w.Header().Set("X-Catalog-Provider", "openexdb")
		w.Write([]byte(`{"success":true,"data":[]}`))
	}))
	defer server.Close()

	source := NewRemoteSource(server.URL, "tok123", server.Client())

	result, err := source.ByEquipment(context.Background(), "dumbbell", 15)
	require.NoError(t, err)

	assert.Equal(t, "/api/v1/exercise-catalog/query", gotPath)
	assert.Equal(t, "Bearer tok123", gotAuth)
	assert.Equal(t, map[string]interface{}{
		"action":    "equipment",
		"equipment": "dumbbell",
		"limit":     float64(15),
	}, gotBody)

	// Provider attribution comes through the response header.
	assert.Equal(t, "openexdb", result.Provider)
	assert.JSONEq(t, `{"success":true,"data":[]}`, string(result.Raw))
}

func TestRemoteSourceNon2xx(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	source := NewRemoteSource(server.URL, "", server.Client())

	_, err := source.ByID(context.Background(), "ex_1")
	var upstream *UpstreamError
	require.ErrorAs(t, err, &upstream)
	assert.Equal(t, "remote", upstream.Provider)
	assert.Equal(t, http.StatusBadGateway, upstream.Status)
}
