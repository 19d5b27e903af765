package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Category is the fixed training-category vocabulary used by the catalog.
type Category string

const (
	CategoryStrength   Category = "Strength"
	CategoryCardio     Category = "Cardio"
	CategoryMobility   Category = "Mobility"
	CategoryOlympic    Category = "Olympic Weightlifting"
	CategoryFunctional Category = "Functional"
)

// CatalogExercise is an exercise saved into the app's own catalog after
// being imported from an external provider. Flattened scalar fields match
// what the dashboard forms edit directly; the list fields are carried along
// verbatim from the provider record.
type CatalogExercise struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	MuscleGroup string             `bson:"muscleGroup" json:"muscleGroup"` // primary body part, "FULL BODY" when unknown
	Category    Category           `bson:"category" json:"category"`
	Equipment   string             `bson:"equipment" json:"equipment"` // primary equipment, "BODYWEIGHT" when unknown
	Description string             `bson:"description,omitempty" json:"description,omitempty"`

	SourceID    string `bson:"sourceId,omitempty" json:"sourceId,omitempty"` // provider-assigned identifier
	ImageURL    string `bson:"imageUrl,omitempty" json:"imageUrl,omitempty"`
	AnimatedURL string `bson:"animatedUrl,omitempty" json:"animatedUrl,omitempty"`
	VideoURL    string `bson:"videoUrl,omitempty" json:"videoUrl,omitempty"`

	TargetMuscles    []string `bson:"targetMuscles,omitempty" json:"targetMuscles,omitempty"`
	SecondaryMuscles []string `bson:"secondaryMuscles,omitempty" json:"secondaryMuscles,omitempty"`
	Variations       []string `bson:"variations,omitempty" json:"variations,omitempty"`
	RelatedIDs       []string `bson:"relatedIds,omitempty" json:"relatedIds,omitempty"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}
