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

const blogCollectionName = "blog_posts"

// mongoBlogRepository implements repository.BlogRepository
type mongoBlogRepository struct {
	collection *mongo.Collection
}

// NewMongoBlogRepository creates a new blog repository backed by MongoDB.
func NewMongoBlogRepository(db *mongo.Database) repository.BlogRepository {
	return &mongoBlogRepository{
		collection: db.Collection(blogCollectionName),
	}
}

// Create inserts a new blog post.
func (r *mongoBlogRepository) Create(ctx context.Context, post *domain.BlogPost) (primitive.ObjectID, error) {
	if post.Title == "" || post.Slug == "" || post.AuthorID == primitive.NilObjectID {
		return primitive.NilObjectID, errors.New("post title, slug and author are required")
	}

	post.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	post.CreatedAt = now
	post.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, post)
	if err != nil {
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

// GetByID retrieves a post by its ID.
func (r *mongoBlogRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.BlogPost, error) {
	var post domain.BlogPost
	filter := bson.M{"_id": id}

	err := r.collection.FindOne(ctx, filter).Decode(&post)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &post, nil
}

// GetBySlug retrieves a post by its URL slug.
func (r *mongoBlogRepository) GetBySlug(ctx context.Context, slug string) (*domain.BlogPost, error) {
	var post domain.BlogPost
	filter := bson.M{"slug": slug}

	err := r.collection.FindOne(ctx, filter).Decode(&post)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &post, nil
}

// List retrieves posts, newest first. With publishedOnly set, drafts are
// excluded (the public site path).
func (r *mongoBlogRepository) List(ctx context.Context, publishedOnly bool) ([]domain.BlogPost, error) {
	var posts []domain.BlogPost

	filter := bson.M{}
	if publishedOnly {
		filter["published"] = true
	}

	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &posts); err != nil {
		return nil, err
	}

	if err = cursor.Err(); err != nil {
		return nil, err
	}

	return posts, nil
}

// Update modifies an existing post. The author is never changed.
func (r *mongoBlogRepository) Update(ctx context.Context, post *domain.BlogPost) error {
	if post.ID == primitive.NilObjectID {
		return errors.New("post ID is required for update")
	}
	if post.Title == "" || post.Slug == "" {
		return errors.New("post title and slug cannot be empty")
	}

	filter := bson.M{"_id": post.ID}
	update := bson.M{
		"$set": bson.M{
			"title":     post.Title,
			"slug":      post.Slug,
			"body":      post.Body,
			"tags":      post.Tags,
			"published": post.Published,
			"updatedAt": time.Now().UTC(),
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

// Delete removes a post.
func (r *mongoBlogRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}

	if result.DeletedCount == 0 {
		return repository.ErrNotFound
	}

	return nil
}

// EnsureBlogIndexes creates necessary indexes for the blog collection.
func EnsureBlogIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "slug", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "published", Value: 1}, {Key: "createdAt", Value: -1}},
			Options: options.Index(),
		},
	}

	_, err := collection.Indexes().CreateMany(ctx, indexes)
	if err != nil {
		// log.Printf("WARN: Failed to create indexes for collection %s: %v", collection.Name(), err)
	}
}
