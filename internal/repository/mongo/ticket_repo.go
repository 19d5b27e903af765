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

const ticketCollectionName = "support_tickets"

// mongoTicketRepository implements repository.TicketRepository
type mongoTicketRepository struct {
	collection *mongo.Collection
}

// NewMongoTicketRepository creates a new support ticket repository backed by MongoDB.
func NewMongoTicketRepository(db *mongo.Database) repository.TicketRepository {
	return &mongoTicketRepository{
		collection: db.Collection(ticketCollectionName),
	}
}

// Create inserts a new support ticket. New tickets always start open.
func (r *mongoTicketRepository) Create(ctx context.Context, ticket *domain.SupportTicket) (primitive.ObjectID, error) {
	if ticket.Email == "" || ticket.Message == "" {
		return primitive.NilObjectID, errors.New("ticket email and message are required")
	}

	ticket.ID = primitive.NewObjectID()
	ticket.Status = domain.TicketOpen
	now := time.Now().UTC()
	ticket.CreatedAt = now
	ticket.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, ticket)
	if err != nil {
		return primitive.NilObjectID, err
	}

	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted ID")
	}

	return insertedID, nil
}

// GetByID retrieves a ticket by its ID.
func (r *mongoTicketRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.SupportTicket, error) {
	var ticket domain.SupportTicket
	filter := bson.M{"_id": id}

	err := r.collection.FindOne(ctx, filter).Decode(&ticket)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &ticket, nil
}

// List retrieves tickets, newest first, optionally filtered by status.
func (r *mongoTicketRepository) List(ctx context.Context, status domain.TicketStatus) ([]domain.SupportTicket, error) {
	var tickets []domain.SupportTicket

	filter := bson.M{}
	if status != "" {
		filter["status"] = status
	}

	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &tickets); err != nil {
		return nil, err
	}

	if err = cursor.Err(); err != nil {
		return nil, err
	}

	return tickets, nil
}

// UpdateStatus moves a ticket through its lifecycle, optionally recording
// a staff reply.
func (r *mongoTicketRepository) UpdateStatus(ctx context.Context, id primitive.ObjectID, status domain.TicketStatus, reply string) error {
	fields := bson.M{
		"status":    status,
		"updatedAt": time.Now().UTC(),
	}
	if reply != "" {
		fields["reply"] = reply
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": fields})
	if err != nil {
		return err
	}

	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}

	return nil
}

// EnsureTicketIndexes creates necessary indexes for the tickets collection.
func EnsureTicketIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "status", Value: 1}, {Key: "createdAt", Value: -1}},
			Options: options.Index(),
		},
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index(),
		},
	}

	_, err := collection.Indexes().CreateMany(ctx, indexes)
	if err != nil {
		// log.Printf("WARN: Failed to create indexes for collection %s: %v", collection.Name(), err)
	}
}
