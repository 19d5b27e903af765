package provider

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"fitflow/catalog-api/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExerciseDBSendsRapidAPIHeaders(t *testing.T) {
	var gotKey, gotHost, gotPath, gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("X-RapidAPI-Key")
		gotHost = r.Header.Get("X-RapidAPI-Host")
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := NewExerciseDB(config.ExerciseDBConfig{
		BaseURL: server.URL,
		APIKey:  "test-key",
		APIHost: "exercisedb.p.rapidapi.com",
	}, server.Client())

	raw, err := client.SearchByName(context.Background(), "push up", 10)
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(raw))

	assert.Equal(t, "test-key", gotKey)
	assert.Equal(t, "exercisedb.p.rapidapi.com", gotHost)
	assert.Equal(t, "/exercises/name/push up", gotPath)
	assert.Equal(t, "limit=10", gotQuery)
}

func TestExerciseDBDefaultLimit(t *testing.T) {
	var gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := NewExerciseDB(config.ExerciseDBConfig{BaseURL: server.URL, APIKey: "k"}, server.Client())

	_, err := client.ByBodyPart(context.Background(), "back", 0)
	require.NoError(t, err)
	assert.Equal(t, "limit=20", gotQuery)
}

func TestExerciseDBMissingKeyFailsWithoutNetworkIO(t *testing.T) {
	called := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer server.Close()

	client := NewExerciseDB(config.ExerciseDBConfig{BaseURL: server.URL}, server.Client())

	_, err := client.SearchByName(context.Background(), "squat", 5)
	assert.ErrorIs(t, err, ErrNotConfigured)
	assert.False(t, called)
}

func TestExerciseDBEmptyArgumentFailsFast(t *testing.T) {
	called := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer server.Close()

	client := NewExerciseDB(config.ExerciseDBConfig{BaseURL: server.URL, APIKey: "k"}, server.Client())

	ctx := context.Background()
	calls := []func() error{
		func() error { _, err := client.SearchByName(ctx, "", 5); return err },
		func() error { _, err := client.ByBodyPart(ctx, "", 5); return err },
		func() error { _, err := client.ByEquipment(ctx, "", 5); return err },
		func() error { _, err := client.ByTarget(ctx, "", 5); return err },
		func() error { _, err := client.ByID(ctx, ""); return err },
	}
	for _, call := range calls {
		var invalid InvalidArgumentError
		assert.ErrorAs(t, call(), &invalid)
	}
	assert.False(t, called)
}

func TestExerciseDBNon2xxStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := NewExerciseDB(config.ExerciseDBConfig{BaseURL: server.URL, APIKey: "k"}, server.Client())

	_, err := client.ByID(context.Background(), "ex_1")
	var upstream *UpstreamError
	require.True(t, errors.As(err, &upstream))
	assert.Equal(t, "exercisedb", upstream.Provider)
	assert.Equal(t, http.StatusTooManyRequests, upstream.Status)
}

func TestOpenExDBNeedsNoAuth(t *testing.T) {
	var gotKey, gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("X-RapidAPI-Key")
		gotPath = r.URL.Path
		w.Write([]byte(`{"success":true,"data":[]}`))
	}))
	defer server.Close()

	client := NewOpenExDB(config.OpenExDBConfig{BaseURL: server.URL}, server.Client())

	raw, err := client.ByBodyPart(context.Background(), "chest", 5)
	require.NoError(t, err)
	assert.JSONEq(t, `{"success":true,"data":[]}`, string(raw))

	assert.Empty(t, gotKey)
	assert.Equal(t, "/api/v1/bodyparts/chest/exercises", gotPath)
}

func TestOpenExDBSearchUsesQueryParam(t *testing.T) {
	var gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Write([]byte(`{"success":true,"data":[]}`))
	}))
	defer server.Close()

	client := NewOpenExDB(config.OpenExDBConfig{BaseURL: server.URL}, server.Client())

	_, err := client.SearchByName(context.Background(), "bench press", 7)
	require.NoError(t, err)
	assert.Equal(t, "q=bench+press&limit=7", gotQuery)
}
