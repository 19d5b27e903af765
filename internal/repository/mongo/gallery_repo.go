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

const galleryCollectionName = "gallery_items"

// mongoGalleryRepository implements repository.GalleryRepository
type mongoGalleryRepository struct {
	collection *mongo.Collection
}

// NewMongoGalleryRepository creates a new gallery metadata repository backed by MongoDB.
func NewMongoGalleryRepository(db *mongo.Database) repository.GalleryRepository {
	return &mongoGalleryRepository{
		collection: db.Collection(galleryCollectionName),
	}
}

// Create inserts new upload metadata into the database.
func (r *mongoGalleryRepository) Create(ctx context.Context, item *domain.GalleryItem) (primitive.ObjectID, error) {
	if item.UploaderID == primitive.NilObjectID || item.S3ObjectKey == "" {
		return primitive.NilObjectID, errors.New("gallery item requires uploaderId and s3ObjectKey")
	}

	item.ID = primitive.NewObjectID()
	item.UploadedAt = time.Now().UTC()

	result, err := r.collection.InsertOne(ctx, item)
	if err != nil {
		return primitive.NilObjectID, err
	}

	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted ID")
	}

	return insertedID, nil
}

// GetByID retrieves upload metadata by its ID.
func (r *mongoGalleryRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.GalleryItem, error) {
	var item domain.GalleryItem
	filter := bson.M{"_id": id}

	err := r.collection.FindOne(ctx, filter).Decode(&item)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}

// List retrieves all gallery items, newest first.
func (r *mongoGalleryRepository) List(ctx context.Context) ([]domain.GalleryItem, error) {
	var items []domain.GalleryItem

	findOptions := options.Find().SetSort(bson.D{{Key: "uploadedAt", Value: -1}})

	cursor, err := r.collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &items); err != nil {
		return nil, err
	}

	if err = cursor.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

// Delete removes gallery metadata. The S3 object itself is deleted by the
// service layer before this is called.
func (r *mongoGalleryRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}

	if result.DeletedCount == 0 {
		return repository.ErrNotFound
	}

	return nil
}

// EnsureGalleryIndexes creates necessary indexes for the gallery collection.
func EnsureGalleryIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "uploaderId", Value: 1}},
			Options: options.Index(),
		},
		{
			Keys:    bson.D{{Key: "s3ObjectKey", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}

	_, err := collection.Indexes().CreateMany(ctx, indexes)
	if err != nil {
		// log.Printf("WARN: Failed to create indexes for collection %s: %v", collection.Name(), err)
	}
}
