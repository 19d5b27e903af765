package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"fitflow/catalog-api/internal/catalog"
	"fitflow/catalog-api/internal/domain"
	"fitflow/catalog-api/internal/provider"
	"fitflow/catalog-api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// fakeCatalogService implements service.CatalogService; only Query is
// meaningful here, the rest return zero values.
type fakeCatalogService struct {
	QueryFunc  func(ctx context.Context, q service.CatalogQuery) (provider.Result, error)
	queryCalls int
}

func (f *fakeCatalogService) Query(ctx context.Context, q service.CatalogQuery) (provider.Result, error) {
	f.queryCalls++
	return f.QueryFunc(ctx, q)
}

func (f *fakeCatalogService) SearchNormalized(ctx context.Context, q service.CatalogQuery) ([]catalog.Exercise, error) {
	return nil, nil
}

func (f *fakeCatalogService) Import(ctx context.Context, sourceID string) (*domain.CatalogExercise, error) {
	return nil, nil
}

func (f *fakeCatalogService) ListSaved(ctx context.Context) ([]domain.CatalogExercise, error) {
	return nil, nil
}

func (f *fakeCatalogService) GetSaved(ctx context.Context, id primitive.ObjectID) (*domain.CatalogExercise, error) {
	return nil, nil
}

func (f *fakeCatalogService) UpdateSaved(ctx context.Context, exercise *domain.CatalogExercise) (*domain.CatalogExercise, error) {
	return nil, nil
}

func (f *fakeCatalogService) DeleteSaved(ctx context.Context, id primitive.ObjectID) error {
	return nil
}

func setupQueryRouter(svc service.CatalogService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handler := NewCatalogHandler(svc)
	router.POST("/api/v1/exercise-catalog/query", handler.QueryProviders)
	return router
}

func postQuery(router *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/exercise-catalog/query", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func TestQueryProvidersReturnsRawBodyAndProviderHeader(t *testing.T) {
	svc := &fakeCatalogService{
		QueryFunc: func(ctx context.Context, q service.CatalogQuery) (provider.Result, error) {
			assert.Equal(t, service.ActionSearch, q.Action)
			assert.Equal(t, "push up", q.Query)
			return provider.Result{Raw: []byte(`[{"id":"1","name":"Push Up"}]`), Provider: "exercisedb"}, nil
		},
	}
	router := setupQueryRouter(svc)

	recorder := postQuery(router, `{"action":"search","query":"push up","limit":5}`)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "exercisedb", recorder.Header().Get("X-Catalog-Provider"))
	assert.JSONEq(t, `[{"id":"1","name":"Push Up"}]`, recorder.Body.String())
}

func TestQueryProvidersRejectsUnknownAction(t *testing.T) {
	svc := &fakeCatalogService{
		QueryFunc: func(ctx context.Context, q service.CatalogQuery) (provider.Result, error) {
			return provider.Result{}, service.ErrUnknownAction
		},
	}
	router := setupQueryRouter(svc)

	recorder := postQuery(router, `{"action":"bogus"}`)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "bogus")
}

func TestQueryProvidersRejectsMalformedBody(t *testing.T) {
	svc := &fakeCatalogService{
		QueryFunc: func(ctx context.Context, q service.CatalogQuery) (provider.Result, error) {
			return provider.Result{}, nil
		},
	}
	router := setupQueryRouter(svc)

	recorder := postQuery(router, `{not json`)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	// Nothing may reach the providers for a body that never parsed.
	assert.Zero(t, svc.queryCalls)
}

func TestQueryProvidersInvalidArgument(t *testing.T) {
	svc := &fakeCatalogService{
		QueryFunc: func(ctx context.Context, q service.CatalogQuery) (provider.Result, error) {
			return provider.Result{}, provider.InvalidArgumentError("search query must not be empty")
		},
	}
	router := setupQueryRouter(svc)

	recorder := postQuery(router, `{"action":"search","query":""}`)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "search query must not be empty")
}

func TestQueryProvidersBothProvidersFailed(t *testing.T) {
	svc := &fakeCatalogService{
		QueryFunc: func(ctx context.Context, q service.CatalogQuery) (provider.Result, error) {
			return provider.Result{}, &provider.BothFailedError{
				Primary:  &provider.UpstreamError{Provider: "exercisedb", Status: 503},
				Fallback: &provider.UpstreamError{Provider: "openexdb", Status: 500},
			}
		},
	}
	router := setupQueryRouter(svc)

	recorder := postQuery(router, `{"action":"bodyPart","bodyPart":"back"}`)

	require.Equal(t, http.StatusBadGateway, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "exercisedb")
	assert.Contains(t, recorder.Body.String(), "openexdb")
}
