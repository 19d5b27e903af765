package provider

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubClient implements Client with per-call overrides.
type stubClient struct {
	name     string
	response json.RawMessage
	err      error
	calls    int
}

func (s *stubClient) Name() string { return s.name }

func (s *stubClient) answer() (json.RawMessage, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.response, nil
}

func (s *stubClient) SearchByName(ctx context.Context, query string, limit int) (json.RawMessage, error) {
	return s.answer()
}
func (s *stubClient) ByBodyPart(ctx context.Context, bodyPart string, limit int) (json.RawMessage, error) {
	return s.answer()
}
func (s *stubClient) ByEquipment(ctx context.Context, equipment string, limit int) (json.RawMessage, error) {
	return s.answer()
}
func (s *stubClient) ByTarget(ctx context.Context, target string, limit int) (json.RawMessage, error) {
	return s.answer()
}
func (s *stubClient) ByID(ctx context.Context, id string) (json.RawMessage, error) {
	return s.answer()
}

func TestOrchestratorPrimarySuccess(t *testing.T) {
	primary := &stubClient{name: "exercisedb", response: json.RawMessage(`[{"id":"1"}]`)}
	fallback := &stubClient{name: "openexdb", response: json.RawMessage(`{"data":[]}`)}
	o := NewOrchestrator(primary, fallback)

	result, err := o.SearchByName(context.Background(), "push up", 5)
	require.NoError(t, err)
	assert.Equal(t, "exercisedb", result.Provider)
	assert.JSONEq(t, `[{"id":"1"}]`, string(result.Raw))
	assert.Zero(t, fallback.calls)
}

func TestOrchestratorFallsOverOnPrimaryFailure(t *testing.T) {
	testCases := []struct {
		name       string
		primaryErr error
	}{
		{name: "primary not configured", primaryErr: ErrNotConfigured},
		{name: "primary upstream status failure", primaryErr: &UpstreamError{Provider: "exercisedb", Status: 500}},
		{name: "primary transport failure", primaryErr: &UpstreamError{Provider: "exercisedb", Err: context.DeadlineExceeded}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			primary := &stubClient{name: "exercisedb", err: tc.primaryErr}
			fallback := &stubClient{name: "openexdb", response: json.RawMessage(`{"success":true,"data":[]}`)}
			o := NewOrchestrator(primary, fallback)

			result, err := o.ByBodyPart(context.Background(), "back", 10)
			require.NoError(t, err)
			assert.Equal(t, "openexdb", result.Provider)
			assert.Equal(t, 1, primary.calls)
			assert.Equal(t, 1, fallback.calls)
		})
	}
}

func TestOrchestratorBothFail(t *testing.T) {
	primary := &stubClient{name: "exercisedb", err: &UpstreamError{Provider: "exercisedb", Status: 503}}
	fallback := &stubClient{name: "openexdb", err: &UpstreamError{Provider: "openexdb", Status: 404}}
	o := NewOrchestrator(primary, fallback)

	_, err := o.ByID(context.Background(), "ex_1")
	var both *BothFailedError
	require.ErrorAs(t, err, &both)

	// Both reasons must survive into the combined error.
	assert.Contains(t, err.Error(), "exercisedb")
	assert.Contains(t, err.Error(), "503")
	assert.Contains(t, err.Error(), "openexdb")
	assert.Contains(t, err.Error(), "404")
}

func TestOrchestratorInvalidArgumentSkipsFallback(t *testing.T) {
	primary := &stubClient{name: "exercisedb", err: InvalidArgumentError("search query must not be empty")}
	fallback := &stubClient{name: "openexdb", response: json.RawMessage(`{}`)}
	o := NewOrchestrator(primary, fallback)

	_, err := o.SearchByName(context.Background(), "", 5)
	var invalid InvalidArgumentError
	require.ErrorAs(t, err, &invalid)
	assert.Zero(t, fallback.calls)
}
