package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BlogPost is an article shown on the marketing site.
type BlogPost struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title     string             `bson:"title" json:"title"`
	Slug      string             `bson:"slug" json:"slug"` // Should be unique
	Body      string             `bson:"body" json:"body"`
	Tags      []string           `bson:"tags,omitempty" json:"tags,omitempty"`
	Published bool               `bson:"published" json:"published"`
	AuthorID  primitive.ObjectID `bson:"authorId" json:"authorId"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}
