package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GalleryItem stores metadata about a media file uploaded from the
// dashboard (gallery images, custom demo videos). The actual file
// resides in S3.
type GalleryItem struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UploaderID  primitive.ObjectID `bson:"uploaderId" json:"uploaderId"` // Dashboard user who uploaded
	S3ObjectKey string             `bson:"s3ObjectKey" json:"-"`         // The unique key (path/filename) in the S3 bucket - internal use
	FileName    string             `bson:"fileName" json:"fileName"`     // Original filename
	ContentType string             `bson:"contentType" json:"contentType"`
	Size        int64              `bson:"size,omitempty" json:"size,omitempty"` // Reported by the client after upload, best effort
	UploadedAt  time.Time          `bson:"uploadedAt" json:"uploadedAt"`
}
