package mongo

import (
	"context"
	"errors"
	"time"

	"fitflow/catalog-api/internal/domain"
	"fitflow/catalog-api/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const catalogCollectionName = "catalog_exercises"

// mongoCatalogRepository implements repository.CatalogRepository
type mongoCatalogRepository struct {
	collection *mongo.Collection
}

// NewMongoCatalogRepository creates a new catalog repository backed by MongoDB.
func NewMongoCatalogRepository(db *mongo.Database) repository.CatalogRepository {
	return &mongoCatalogRepository{
		collection: db.Collection(catalogCollectionName),
	}
}

// Create inserts a new saved exercise into the catalog.
// Name, muscle group, equipment and category are non-null by contract with
// the mapper that produces these records.
func (r *mongoCatalogRepository) Create(ctx context.Context, exercise *domain.CatalogExercise) (primitive.ObjectID, error) {
	if exercise.Name == "" || exercise.MuscleGroup == "" || exercise.Equipment == "" || exercise.Category == "" {
		return primitive.NilObjectID, errors.New("exercise name, muscle group, equipment and category are required")
	}

	exercise.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	exercise.CreatedAt = now
	exercise.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, exercise)
	if err != nil {
		// The sourceId unique index catches re-imports of the same provider record.
		if mongo.IsDuplicateKeyError(err) {
			return primitive.NilObjectID, repository.ErrDuplicate
		}
		return primitive.NilObjectID, err
	}

	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted ID")
	}

	return insertedID, nil
}

// GetByID retrieves a saved exercise by its ID.
func (r *mongoCatalogRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.CatalogExercise, error) {
	var exercise domain.CatalogExercise
	filter := bson.M{"_id": id}

	err := r.collection.FindOne(ctx, filter).Decode(&exercise)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &exercise, nil
}

// GetBySourceID retrieves a saved exercise by the provider-assigned identifier.
func (r *mongoCatalogRepository) GetBySourceID(ctx context.Context, sourceID string) (*domain.CatalogExercise, error) {
	var exercise domain.CatalogExercise
	filter := bson.M{"sourceId": sourceID}

	err := r.collection.FindOne(ctx, filter).Decode(&exercise)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &exercise, nil
}

// List retrieves all saved exercises, newest first.
func (r *mongoCatalogRepository) List(ctx context.Context) ([]domain.CatalogExercise, error) {
	var exercises []domain.CatalogExercise

	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := r.collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &exercises); err != nil {
		return nil, err
	}

	if err = cursor.Err(); err != nil {
		return nil, err
	}

	return exercises, nil
}

// Update modifies the editable fields of an existing saved exercise.
func (r *mongoCatalogRepository) Update(ctx context.Context, exercise *domain.CatalogExercise) error {
	if exercise.ID == primitive.NilObjectID {
		return errors.New("exercise ID is required for update")
	}
	if exercise.Name == "" {
		return errors.New("exercise name cannot be empty")
	}

	filter := bson.M{"_id": exercise.ID}
	// The sourceId is the provider join key and never changes after import.
	update := bson.M{
		"$set": bson.M{
			"name":        exercise.Name,
			"muscleGroup": exercise.MuscleGroup,
			"category":    exercise.Category,
			"equipment":   exercise.Equipment,
			"description": exercise.Description,
			"imageUrl":    exercise.ImageURL,
			"animatedUrl": exercise.AnimatedURL,
			"videoUrl":    exercise.VideoURL,
			"updatedAt":   time.Now().UTC(),
		},
	}

	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}

	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}

	return nil
}

// Delete removes a saved exercise from the catalog.
func (r *mongoCatalogRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}

	if result.DeletedCount == 0 {
		return repository.ErrNotFound
	}

	return nil
}

// EnsureCatalogIndexes creates necessary indexes for the catalog collection.
func EnsureCatalogIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			// One catalog record per provider record; re-imports are rejected.
			// Sparse because manually created exercises have no sourceId.
			Keys:    bson.D{{Key: "sourceId", Value: 1}},
			Options: options.Index().SetUnique(true).SetSparse(true),
		},
		{
			Keys:    bson.D{{Key: "muscleGroup", Value: 1}},
			Options: options.Index(),
		},
		{
			Keys:    bson.D{{Key: "name", Value: "text"}, {Key: "description", Value: "text"}},
			Options: options.Index().SetName("catalog_text_search"),
		},
	}

	_, err := collection.Indexes().CreateMany(ctx, indexes)
	if err != nil {
		// log.Printf("WARN: Failed to create indexes for collection %s: %v", collection.Name(), err)
	}
}
