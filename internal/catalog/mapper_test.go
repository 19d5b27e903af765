package catalog

import (
	"testing"

	"fitflow/catalog-api/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestToCatalogRecordDefaults(t *testing.T) {
	record := ToCatalogRecord(Exercise{ID: "ex_1", Name: "Mystery Move"})

	assert.Equal(t, "Mystery Move", record.Name)
	assert.Equal(t, FallbackMuscleGroup, record.MuscleGroup)
	assert.Equal(t, FallbackEquipment, record.Equipment)
	assert.Equal(t, domain.CategoryStrength, record.Category)
	assert.Equal(t, "ex_1", record.SourceID)
}

func TestToCatalogRecordUppercasesPrimaryFields(t *testing.T) {
	record := ToCatalogRecord(Exercise{
		ID:         "ex_2",
		Name:       "Bench Press",
		BodyParts:  []string{"chest", "shoulders"},
		Equipments: []string{"barbell"},
	})

	assert.Equal(t, "CHEST", record.MuscleGroup)
	assert.Equal(t, "BARBELL", record.Equipment)
}

func TestToCatalogRecordCategoryMapping(t *testing.T) {
	testCases := []struct {
		exerciseType string
		want         domain.Category
	}{
		{"STRENGTH", domain.CategoryStrength},
		{"strength", domain.CategoryStrength},
		{"CARDIO", domain.CategoryCardio},
		{"STRETCHING", domain.CategoryMobility},
		{"POWERLIFTING", domain.CategoryStrength},
		{"OLYMPIC_WEIGHTLIFTING", domain.CategoryOlympic},
		{"STRONGMAN", domain.CategoryStrength},
		{"PLYOMETRICS", domain.CategoryFunctional},
		{"YOGA_FUSION", domain.CategoryStrength}, // unknown type
		{"", domain.CategoryStrength},
	}

	for _, tc := range testCases {
		t.Run(tc.exerciseType, func(t *testing.T) {
			record := ToCatalogRecord(Exercise{Name: "X", ExerciseType: tc.exerciseType})
			assert.Equal(t, tc.want, record.Category)
		})
	}
}

func TestBuildDescriptionSections(t *testing.T) {
	ex := Exercise{
		Name:         "Pull Up",
		Overview:     "A vertical pull.",
		Description:  "Classic back builder.",
		Instructions: []string{"Hang from the bar.", "Pull your chin over it."},
		Tips:         []string{"Keep your core tight."},
	}

	want := "A vertical pull.\n\n" +
		"Classic back builder.\n\n" +
		"Instructions:\n1. Hang from the bar.\n2. Pull your chin over it.\n\n" +
		"Tips:\n- Keep your core tight."

	assert.Equal(t, want, ToCatalogRecord(ex).Description)
}

func TestBuildDescriptionOmitsEmptySections(t *testing.T) {
	ex := Exercise{
		Name:         "Pull Up",
		Instructions: []string{"Hang.", "Pull."},
	}

	assert.Equal(t, "Instructions:\n1. Hang.\n2. Pull.", ToCatalogRecord(ex).Description)

	assert.Equal(t, "", ToCatalogRecord(Exercise{Name: "Bare"}).Description)
}

func TestToCatalogRecordCarriesResolvedMedia(t *testing.T) {
	ex := Exercise{
		ID:   "ex_3",
		Name: "Dip",
		Media: Media{
			ImageURL:    "https://cdn/img.png",
			AnimatedURL: "https://cdn/a.gif",
			VideoURL:    "https://cdn/v.mp4",
		},
	}

	record := ToCatalogRecord(ex)
	assert.Equal(t, "https://cdn/img.png", record.ImageURL)
	assert.Equal(t, "https://cdn/a.gif", record.AnimatedURL)
	assert.Equal(t, "https://cdn/v.mp4", record.VideoURL)
}
