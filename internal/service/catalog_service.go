package service

import (
	"context"
	"errors"

	"fitflow/catalog-api/internal/catalog"
	"fitflow/catalog-api/internal/domain"
	"fitflow/catalog-api/internal/provider"
	"fitflow/catalog-api/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Error Definitions ---
var (
	ErrExerciseNotFound  = errors.New("exercise not found")
	ErrAlreadyImported   = errors.New("exercise was already imported from this provider record")
	ErrUnknownAction     = errors.New("unknown query action")
	ErrEmptyProviderBody = errors.New("provider returned no usable exercise record")
)

// Query actions accepted by the exercise-catalog query endpoint. The
// browser speaks exactly these; anything else is rejected before any
// outbound call.
const (
	ActionSearch    = "search"
	ActionBodyPart  = "bodyPart"
	ActionEquipment = "equipment"
	ActionTarget    = "target"
	ActionByID      = "byId"
)

// CatalogQuery is one of the five query shapes, as posted by the browser
// or built by a server-side caller.
type CatalogQuery struct {
	Action    string `json:"action"`
	Query     string `json:"query,omitempty"`
	BodyPart  string `json:"bodyPart,omitempty"`
	Equipment string `json:"equipment,omitempty"`
	Target    string `json:"target,omitempty"`
	ID        string `json:"id,omitempty"`
	Limit     int    `json:"limit,omitempty"`
}

// ExerciseSource is the failover orchestrator's query surface. Declared
// here so tests can substitute a fake source.
type ExerciseSource interface {
	SearchByName(ctx context.Context, query string, limit int) (provider.Result, error)
	ByBodyPart(ctx context.Context, bodyPart string, limit int) (provider.Result, error)
	ByEquipment(ctx context.Context, equipment string, limit int) (provider.Result, error)
	ByTarget(ctx context.Context, target string, limit int) (provider.Result, error)
	ByID(ctx context.Context, id string) (provider.Result, error)
}

// --- Service Interface ---
type CatalogService interface {
	// Query forwards one query shape to the providers and returns the raw
	// JSON untouched, so browser and server callers share one normalizer.
	Query(ctx context.Context, q CatalogQuery) (provider.Result, error)
	// SearchNormalized is the server-side render path: query, normalize,
	// resolve media.
	SearchNormalized(ctx context.Context, q CatalogQuery) ([]catalog.Exercise, error)
	// Import fetches one provider record by id and saves its catalog
	// projection.
	Import(ctx context.Context, sourceID string) (*domain.CatalogExercise, error)
	ListSaved(ctx context.Context) ([]domain.CatalogExercise, error)
	GetSaved(ctx context.Context, id primitive.ObjectID) (*domain.CatalogExercise, error)
	UpdateSaved(ctx context.Context, exercise *domain.CatalogExercise) (*domain.CatalogExercise, error)
	DeleteSaved(ctx context.Context, id primitive.ObjectID) error
}

// --- Service Implementation ---

// catalogService implements the CatalogService interface.
type catalogService struct {
	source      ExerciseSource
	resolver    catalog.Resolver
	catalogRepo repository.CatalogRepository
}

// NewCatalogService creates a new instance of catalogService.
func NewCatalogService(source ExerciseSource, resolver catalog.Resolver, catalogRepo repository.CatalogRepository) CatalogService {
	return &catalogService{
		source:      source,
		resolver:    resolver,
		catalogRepo: catalogRepo,
	}
}

// Query dispatches one query shape to the failover orchestrator.
func (s *catalogService) Query(ctx context.Context, q CatalogQuery) (provider.Result, error) {
	switch q.Action {
	case ActionSearch:
		return s.source.SearchByName(ctx, q.Query, q.Limit)
	case ActionBodyPart:
		return s.source.ByBodyPart(ctx, q.BodyPart, q.Limit)
	case ActionEquipment:
		return s.source.ByEquipment(ctx, q.Equipment, q.Limit)
	case ActionTarget:
		return s.source.ByTarget(ctx, q.Target, q.Limit)
	case ActionByID:
		return s.source.ByID(ctx, q.ID)
	default:
		return provider.Result{}, ErrUnknownAction
	}
}

// SearchNormalized runs a query and normalizes the response for
// server-side rendering. Media URLs are resolved on every record; a
// malformed provider body degrades to an empty list, not an error.
func (s *catalogService) SearchNormalized(ctx context.Context, q CatalogQuery) ([]catalog.Exercise, error) {
	result, err := s.Query(ctx, q)
	if err != nil {
		return nil, err
	}

	exercises := catalog.NormalizeMany(result.Raw)
	for i := range exercises {
		exercises[i].Media = s.resolver.Resolve(exercises[i])
	}
	return exercises, nil
}

// Import fetches one record by its provider id, projects it into the
// catalog shape and persists it. Re-importing the same provider record is
// reported as ErrAlreadyImported.
func (s *catalogService) Import(ctx context.Context, sourceID string) (*domain.CatalogExercise, error) {
	result, err := s.source.ByID(ctx, sourceID)
	if err != nil {
		return nil, err
	}

	exercises := catalog.NormalizeMany(result.Raw)
	if len(exercises) == 0 {
		return nil, ErrEmptyProviderBody
	}

	ex := exercises[0]
	ex.Media = s.resolver.Resolve(ex)
	record := catalog.ToCatalogRecord(ex)

	recordID, err := s.catalogRepo.Create(ctx, &record)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrAlreadyImported
		}
		return nil, err
	}

	return s.catalogRepo.GetByID(ctx, recordID)
}

// ListSaved retrieves all saved catalog exercises.
func (s *catalogService) ListSaved(ctx context.Context) ([]domain.CatalogExercise, error) {
	return s.catalogRepo.List(ctx)
}

// GetSaved retrieves a single saved exercise.
func (s *catalogService) GetSaved(ctx context.Context, id primitive.ObjectID) (*domain.CatalogExercise, error) {
	exercise, err := s.catalogRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrExerciseNotFound
		}
		return nil, err
	}
	return exercise, nil
}

// UpdateSaved modifies the editable fields of a saved exercise.
func (s *catalogService) UpdateSaved(ctx context.Context, exercise *domain.CatalogExercise) (*domain.CatalogExercise, error) {
	if exercise.ID == primitive.NilObjectID {
		return nil, errors.New("exercise ID is required")
	}

	err := s.catalogRepo.Update(ctx, exercise)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrExerciseNotFound
		}
		return nil, err
	}
	return s.catalogRepo.GetByID(ctx, exercise.ID)
}

// DeleteSaved removes a saved exercise from the catalog.
func (s *catalogService) DeleteSaved(ctx context.Context, id primitive.ObjectID) error {
	err := s.catalogRepo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrExerciseNotFound
		}
		return err
	}
	return nil
}
