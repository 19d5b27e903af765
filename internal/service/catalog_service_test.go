package service

import (
	"context"
	"testing"

	"fitflow/catalog-api/internal/catalog"
	"fitflow/catalog-api/internal/domain"
	"fitflow/catalog-api/internal/provider"
	"fitflow/catalog-api/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// fakeSource implements ExerciseSource with per-call overrides.
type fakeSource struct {
	SearchByNameFunc func(ctx context.Context, query string, limit int) (provider.Result, error)
	ByBodyPartFunc   func(ctx context.Context, bodyPart string, limit int) (provider.Result, error)
	ByEquipmentFunc  func(ctx context.Context, equipment string, limit int) (provider.Result, error)
	ByTargetFunc     func(ctx context.Context, target string, limit int) (provider.Result, error)
	ByIDFunc         func(ctx context.Context, id string) (provider.Result, error)
}

func (f *fakeSource) SearchByName(ctx context.Context, query string, limit int) (provider.Result, error) {
	return f.SearchByNameFunc(ctx, query, limit)
}
func (f *fakeSource) ByBodyPart(ctx context.Context, bodyPart string, limit int) (provider.Result, error) {
	return f.ByBodyPartFunc(ctx, bodyPart, limit)
}
func (f *fakeSource) ByEquipment(ctx context.Context, equipment string, limit int) (provider.Result, error) {
	return f.ByEquipmentFunc(ctx, equipment, limit)
}
func (f *fakeSource) ByTarget(ctx context.Context, target string, limit int) (provider.Result, error) {
	return f.ByTargetFunc(ctx, target, limit)
}
func (f *fakeSource) ByID(ctx context.Context, id string) (provider.Result, error) {
	return f.ByIDFunc(ctx, id)
}

// fakeCatalogRepo implements repository.CatalogRepository in memory.
type fakeCatalogRepo struct {
	records map[primitive.ObjectID]*domain.CatalogExercise
	bySrc   map[string]primitive.ObjectID
}

func newFakeCatalogRepo() *fakeCatalogRepo {
	return &fakeCatalogRepo{
		records: make(map[primitive.ObjectID]*domain.CatalogExercise),
		bySrc:   make(map[string]primitive.ObjectID),
	}
}

func (f *fakeCatalogRepo) Create(ctx context.Context, exercise *domain.CatalogExercise) (primitive.ObjectID, error) {
	if exercise.SourceID != "" {
		if _, exists := f.bySrc[exercise.SourceID]; exists {
			return primitive.NilObjectID, repository.ErrDuplicate
		}
	}
	id := primitive.NewObjectID()
	stored := *exercise
	stored.ID = id
	f.records[id] = &stored
	if exercise.SourceID != "" {
		f.bySrc[exercise.SourceID] = id
	}
	return id, nil
}

func (f *fakeCatalogRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.CatalogExercise, error) {
	record, ok := f.records[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return record, nil
}

func (f *fakeCatalogRepo) GetBySourceID(ctx context.Context, sourceID string) (*domain.CatalogExercise, error) {
	id, ok := f.bySrc[sourceID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return f.records[id], nil
}

func (f *fakeCatalogRepo) List(ctx context.Context) ([]domain.CatalogExercise, error) {
	out := make([]domain.CatalogExercise, 0, len(f.records))
	for _, record := range f.records {
		out = append(out, *record)
	}
	return out, nil
}

func (f *fakeCatalogRepo) Update(ctx context.Context, exercise *domain.CatalogExercise) error {
	if _, ok := f.records[exercise.ID]; !ok {
		return repository.ErrNotFound
	}
	f.records[exercise.ID] = exercise
	return nil
}

func (f *fakeCatalogRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	if _, ok := f.records[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.records, id)
	return nil
}

func newTestCatalogService(source ExerciseSource, repo repository.CatalogRepository) CatalogService {
	return NewCatalogService(source, catalog.NewResolver("", "", ""), repo)
}

func TestQueryDispatch(t *testing.T) {
	var gotAction, gotValue string
	source := &fakeSource{
		SearchByNameFunc: func(ctx context.Context, query string, limit int) (provider.Result, error) {
			gotAction, gotValue = ActionSearch, query
			return provider.Result{Raw: []byte(`[]`), Provider: "exercisedb"}, nil
		},
		ByBodyPartFunc: func(ctx context.Context, bodyPart string, limit int) (provider.Result, error) {
			gotAction, gotValue = ActionBodyPart, bodyPart
			return provider.Result{Raw: []byte(`[]`), Provider: "exercisedb"}, nil
		},
		ByEquipmentFunc: func(ctx context.Context, equipment string, limit int) (provider.Result, error) {
			gotAction, gotValue = ActionEquipment, equipment
			return provider.Result{Raw: []byte(`[]`), Provider: "exercisedb"}, nil
		},
		ByTargetFunc: func(ctx context.Context, target string, limit int) (provider.Result, error) {
			gotAction, gotValue = ActionTarget, target
			return provider.Result{Raw: []byte(`[]`), Provider: "exercisedb"}, nil
		},
		ByIDFunc: func(ctx context.Context, id string) (provider.Result, error) {
			gotAction, gotValue = ActionByID, id
			return provider.Result{Raw: []byte(`{}`), Provider: "exercisedb"}, nil
		},
	}
	svc := newTestCatalogService(source, newFakeCatalogRepo())

	testCases := []struct {
		query     CatalogQuery
		wantValue string
	}{
		{CatalogQuery{Action: ActionSearch, Query: "push"}, "push"},
		{CatalogQuery{Action: ActionBodyPart, BodyPart: "back"}, "back"},
		{CatalogQuery{Action: ActionEquipment, Equipment: "cable"}, "cable"},
		{CatalogQuery{Action: ActionTarget, Target: "lats"}, "lats"},
		{CatalogQuery{Action: ActionByID, ID: "ex_1"}, "ex_1"},
	}
	for _, tc := range testCases {
		t.Run(tc.query.Action, func(t *testing.T) {
			_, err := svc.Query(context.Background(), tc.query)
			require.NoError(t, err)
			assert.Equal(t, tc.query.Action, gotAction)
			assert.Equal(t, tc.wantValue, gotValue)
		})
	}
}

func TestQueryUnknownAction(t *testing.T) {
	svc := newTestCatalogService(&fakeSource{}, newFakeCatalogRepo())

	_, err := svc.Query(context.Background(), CatalogQuery{Action: "bogus"})
	assert.ErrorIs(t, err, ErrUnknownAction)
}

func TestSearchNormalizedResolvesMedia(t *testing.T) {
	source := &fakeSource{
		SearchByNameFunc: func(ctx context.Context, query string, limit int) (provider.Result, error) {
			return provider.Result{
				Raw:      []byte(`[{"exerciseId":"ex_1","name":"Push Up","gifUrl":"ex_1.gif"},{"exerciseId":"ex_2","name":"Squat"}]`),
				Provider: "exercisedb",
			}, nil
		},
	}
	svc := newTestCatalogService(source, newFakeCatalogRepo())

	exercises, err := svc.SearchNormalized(context.Background(), CatalogQuery{Action: ActionSearch, Query: "p"})
	require.NoError(t, err)
	require.Len(t, exercises, 2)

	assert.Equal(t, catalog.DefaultAnimationBase+"/ex_1.gif", exercises[0].Media.AnimatedURL)
	// No media fields on the second record: synthesized from its id.
	assert.Equal(t, catalog.DefaultAnimationBase+"/ex_2", exercises[1].Media.AnimatedURL)
}

func TestSearchNormalizedMalformedBodyDegradesToEmpty(t *testing.T) {
	source := &fakeSource{
		SearchByNameFunc: func(ctx context.Context, query string, limit int) (provider.Result, error) {
			return provider.Result{Raw: []byte(`{"unexpected":"shape"}`), Provider: "openexdb"}, nil
		},
	}
	svc := newTestCatalogService(source, newFakeCatalogRepo())

	exercises, err := svc.SearchNormalized(context.Background(), CatalogQuery{Action: ActionSearch, Query: "p"})
	require.NoError(t, err)
	assert.Empty(t, exercises)
}

func TestImportSavesProjectedRecord(t *testing.T) {
	source := &fakeSource{
		ByIDFunc: func(ctx context.Context, id string) (provider.Result, error) {
			return provider.Result{
				Raw:      []byte(`{"exerciseId":"ex_9","name":"Pull Up","bodyPart":"back","equipment":"body weight","exerciseType":"STRENGTH"}`),
				Provider: "exercisedb",
			}, nil
		},
	}
	repo := newFakeCatalogRepo()
	svc := newTestCatalogService(source, repo)

	saved, err := svc.Import(context.Background(), "ex_9")
	require.NoError(t, err)

	assert.Equal(t, "Pull Up", saved.Name)
	assert.Equal(t, "BACK", saved.MuscleGroup)
	assert.Equal(t, "BODY WEIGHT", saved.Equipment)
	assert.Equal(t, domain.CategoryStrength, saved.Category)
	assert.Equal(t, "ex_9", saved.SourceID)
	assert.NotEmpty(t, saved.AnimatedURL)
}

func TestImportDuplicateSourceID(t *testing.T) {
	source := &fakeSource{
		ByIDFunc: func(ctx context.Context, id string) (provider.Result, error) {
			return provider.Result{
				Raw:      []byte(`{"exerciseId":"ex_9","name":"Pull Up"}`),
				Provider: "exercisedb",
			}, nil
		},
	}
	svc := newTestCatalogService(source, newFakeCatalogRepo())

	_, err := svc.Import(context.Background(), "ex_9")
	require.NoError(t, err)

	_, err = svc.Import(context.Background(), "ex_9")
	assert.ErrorIs(t, err, ErrAlreadyImported)
}

func TestImportEmptyProviderBody(t *testing.T) {
	source := &fakeSource{
		ByIDFunc: func(ctx context.Context, id string) (provider.Result, error) {
			return provider.Result{Raw: []byte(`{"unexpected":"shape"}`), Provider: "openexdb"}, nil
		},
	}
	svc := newTestCatalogService(source, newFakeCatalogRepo())

	_, err := svc.Import(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrEmptyProviderBody)
}
