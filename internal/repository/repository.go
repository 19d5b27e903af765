package repository

import (
	"context"

	"fitflow/catalog-api/internal/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Error constants for repository layer
var (
	ErrNotFound     = RepositoryError("not found")
	ErrDuplicate    = RepositoryError("duplicate record")
	ErrUpdateFailed = RepositoryError("update failed")
	ErrDeleteFailed = RepositoryError("delete failed")
)

// RepositoryError helps distinguish repository errors
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// UserRepository defines the interface for interacting with dashboard accounts.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (primitive.ObjectID, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error)
}

// CatalogRepository defines the interface for the saved exercise catalog.
// Deduplication of identical sourceId values is enforced here (unique
// index), not in the integration layer that produces the records.
type CatalogRepository interface {
	Create(ctx context.Context, exercise *domain.CatalogExercise) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.CatalogExercise, error)
	GetBySourceID(ctx context.Context, sourceID string) (*domain.CatalogExercise, error)
	List(ctx context.Context) ([]domain.CatalogExercise, error)
	Update(ctx context.Context, exercise *domain.CatalogExercise) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// TemplateRepository defines the interface for workout templates.
type TemplateRepository interface {
	Create(ctx context.Context, template *domain.WorkoutTemplate) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.WorkoutTemplate, error)
	List(ctx context.Context) ([]domain.WorkoutTemplate, error)
	Update(ctx context.Context, template *domain.WorkoutTemplate) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// BlogRepository defines the interface for blog posts.
type BlogRepository interface {
	Create(ctx context.Context, post *domain.BlogPost) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.BlogPost, error)
	GetBySlug(ctx context.Context, slug string) (*domain.BlogPost, error)
	List(ctx context.Context, publishedOnly bool) ([]domain.BlogPost, error)
	Update(ctx context.Context, post *domain.BlogPost) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// TicketRepository defines the interface for support tickets.
type TicketRepository interface {
	Create(ctx context.Context, ticket *domain.SupportTicket) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.SupportTicket, error)
	List(ctx context.Context, status domain.TicketStatus) ([]domain.SupportTicket, error) // empty status lists all
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status domain.TicketStatus, reply string) error
}

// GalleryRepository defines the interface for uploaded media metadata.
type GalleryRepository interface {
	Create(ctx context.Context, item *domain.GalleryItem) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.GalleryItem, error)
	List(ctx context.Context) ([]domain.GalleryItem, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}
