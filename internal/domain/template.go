package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TemplateEntry is one exercise slot inside a workout template.
type TemplateEntry struct {
	ExerciseID primitive.ObjectID `bson:"exerciseId" json:"exerciseId"` // Link to the saved CatalogExercise
	Sets       int                `bson:"sets" json:"sets"`
	Reps       string             `bson:"reps" json:"reps"` // e.g., "8-12", "30s"
	RestSec    int                `bson:"restSec,omitempty" json:"restSec,omitempty"`
	Notes      string             `bson:"notes,omitempty" json:"notes,omitempty"`
}

// WorkoutTemplate is an admin-curated workout built from saved catalog
// exercises, published to the mobile app as-is.
type WorkoutTemplate struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"` // e.g., "Full Body Beginner A"
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Level       string             `bson:"level,omitempty" json:"level,omitempty"` // e.g., "Beginner", "Intermediate"
	Entries     []TemplateEntry    `bson:"entries" json:"entries"`
	CreatedBy   primitive.ObjectID `bson:"createdBy" json:"createdBy"` // Dashboard user who created it
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}
