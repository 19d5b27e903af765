package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TicketStatus type for support ticket lifecycle
type TicketStatus string

const (
	TicketOpen     TicketStatus = "open"
	TicketInReview TicketStatus = "in_review" // Someone on the team picked it up
	TicketResolved TicketStatus = "resolved"
	TicketClosed   TicketStatus = "closed"
)

// SupportTicket is a message submitted through the site's contact form,
// triaged from the dashboard.
type SupportTicket struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email     string             `bson:"email" json:"email"`
	Subject   string             `bson:"subject" json:"subject"`
	Message   string             `bson:"message" json:"message"`
	Status    TicketStatus       `bson:"status" json:"status"`
	Reply     string             `bson:"reply,omitempty" json:"reply,omitempty"` // Staff reply, sent by mail elsewhere
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}
