// internal/catalog/mapper.go
package catalog

import (
	"fmt"
	"strings"

	"fitflow/catalog-api/internal/domain"
)

// Defaults used when a provider record carries no body part / equipment at
// all. The store has non-null constraints on both columns.
const (
	FallbackMuscleGroup = "FULL BODY"
	FallbackEquipment   = "BODYWEIGHT"
)

// categoryByType maps the providers' exercise-type vocabulary onto the
// app's fixed category set. Unknown types fall back to Strength.
var categoryByType = map[string]domain.Category{
	"STRENGTH":              domain.CategoryStrength,
	"CARDIO":                domain.CategoryCardio,
	"STRETCHING":            domain.CategoryMobility,
	"POWERLIFTING":          domain.CategoryStrength,
	"OLYMPIC_WEIGHTLIFTING": domain.CategoryOlympic,
	"STRONGMAN":             domain.CategoryStrength,
	"PLYOMETRICS":           domain.CategoryFunctional,
}

// ToCatalogRecord projects a canonical exercise into the shape the catalog
// store persists. Total: every Exercise, however sparse, yields a valid
// record (the store rejects empty name/muscleGroup/equipment/category).
// Media URLs are taken from ex.Media, so run the Resolver first.
func ToCatalogRecord(ex Exercise) domain.CatalogExercise {
	muscleGroup := FallbackMuscleGroup
	if len(ex.BodyParts) > 0 && ex.BodyParts[0] != "" {
		muscleGroup = strings.ToUpper(ex.BodyParts[0])
	}

	equipment := FallbackEquipment
	if len(ex.Equipments) > 0 && ex.Equipments[0] != "" {
		equipment = strings.ToUpper(ex.Equipments[0])
	}

	category, ok := categoryByType[strings.ToUpper(ex.ExerciseType)]
	if !ok {
		category = domain.CategoryStrength
	}

	return domain.CatalogExercise{
		Name:             ex.Name,
		MuscleGroup:      muscleGroup,
		Category:         category,
		Equipment:        equipment,
		Description:      buildDescription(ex),
		SourceID:         ex.ID,
		ImageURL:         ex.Media.ImageURL,
		AnimatedURL:      ex.Media.AnimatedURL,
		VideoURL:         ex.Media.VideoURL,
		TargetMuscles:    ex.TargetMuscles,
		SecondaryMuscles: ex.SecondaryMuscles,
		Variations:       ex.Variations,
		RelatedIDs:       ex.RelatedIDs,
	}
}

// buildDescription concatenates, in order: overview, free description, a
// numbered instructions block and a bulleted tips block. Sections whose
// source is empty are omitted entirely.
func buildDescription(ex Exercise) string {
	var sections []string

	if ex.Overview != "" {
		sections = append(sections, ex.Overview)
	}
	if ex.Description != "" {
		sections = append(sections, ex.Description)
	}
	if len(ex.Instructions) > 0 {
		lines := make([]string, 0, len(ex.Instructions)+1)
		lines = append(lines, "Instructions:")
		for i, step := range ex.Instructions {
			lines = append(lines, fmt.Sprintf("%d. %s", i+1, step))
		}
		sections = append(sections, strings.Join(lines, "\n"))
	}
	if len(ex.Tips) > 0 {
		lines := make([]string, 0, len(ex.Tips)+1)
		lines = append(lines, "Tips:")
		for _, tip := range ex.Tips {
			lines = append(lines, "- "+tip)
		}
		sections = append(sections, strings.Join(lines, "\n"))
	}

	return strings.Join(sections, "\n\n")
}
