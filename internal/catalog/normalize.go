// internal/catalog/normalize.go
package catalog

import (
	"encoding/json"
	"strconv"
)

// The two providers disagree on field naming (camelCase vs snake_case,
// singular vs pluralized-array). Each logical field is resolved through an
// explicit key priority list: first present non-null value wins. Unknown
// extra keys are ignored rather than merged.

// Normalize converts one raw provider object into a canonical Exercise.
// Total: never fails, whatever the input contains. The only defaulted
// field is Name ("Unknown") because every downstream consumer assumes it
// is printable.
func Normalize(raw map[string]interface{}) Exercise {
	name := stringField(raw, "name", "exercise_name")
	if name == "" {
		name = "Unknown"
	}

	return Exercise{
		ID:   stringField(raw, "exerciseId", "exercise_id", "id"),
		Name: name,

		BodyParts:        stringsField(raw, "bodyPart", "body_part", "bodyParts", "body_parts"),
		Equipments:       stringsField(raw, "equipment", "equipments"),
		TargetMuscles:    stringsField(raw, "target", "targetMuscles", "target_muscles"),
		SecondaryMuscles: stringsField(raw, "secondaryMuscles", "secondary_muscles"),

		Instructions: stringsField(raw, "instructions"),
		Tips:         stringsField(raw, "tips", "exerciseTips", "exercise_tips"),
		Overview:     stringField(raw, "overview"),
		Description:  stringField(raw, "description"),
		ExerciseType: stringField(raw, "exerciseType", "exercise_type", "category"),

		GifURL:   stringField(raw, "gifUrl", "gif_url", "gif"),
		ImageURL: stringField(raw, "imageUrl", "image_url", "image"),
		VideoURL: stringField(raw, "videoUrl", "video_url", "video"),

		Variations: stringsField(raw, "variations", "variation_ids"),
		RelatedIDs: stringsField(raw, "relatedExerciseIds", "related_exercise_ids", "relatedIds", "related_ids"),
	}
}

// NormalizeMany decodes a raw provider response body and normalizes every
// record in it. Accepted shapes: an envelope {"success": ..., "data": [...]},
// a bare array, or a single object (by-id endpoints). Anything else yields
// an empty slice; malformed provider responses degrade to "no results"
// instead of crashing the caller.
func NormalizeMany(raw []byte) []Exercise {
	var decoded interface{}
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return nil
	}

	switch v := decoded.(type) {
	case []interface{}:
		return normalizeList(v)
	case map[string]interface{}:
		if data, ok := v["data"].([]interface{}); ok {
			return normalizeList(data)
		}
		// A single by-id object: only treat it as a record if it carries
		// at least an identity field, so {"unexpected": "shape"} stays empty.
		if looksLikeExercise(v) {
			return []Exercise{Normalize(v)}
		}
	}
	return nil
}

func normalizeList(items []interface{}) []Exercise {
	out := make([]Exercise, 0, len(items))
	for _, item := range items {
		obj, ok := item.(map[string]interface{})
		if !ok {
			continue
		}
		out = append(out, Normalize(obj))
	}
	return out
}

func looksLikeExercise(obj map[string]interface{}) bool {
	for _, key := range []string{"name", "exerciseId", "exercise_id", "id"} {
		if v, ok := obj[key]; ok && v != nil {
			return true
		}
	}
	return false
}

// stringField returns the first present non-null string value among keys.
// Numeric values (JSON numbers decode as float64) are formatted, since some
// provider endpoints send numeric ids.
func stringField(obj map[string]interface{}, keys ...string) string {
	for _, key := range keys {
		v, ok := obj[key]
		if !ok || v == nil {
			continue
		}
		switch val := v.(type) {
		case string:
			return val
		case float64:
			return strconv.FormatFloat(val, 'f', -1, 64)
		}
	}
	return ""
}

// stringsField returns the first present non-null value among keys as a
// string slice. A scalar string counts as a one-element slice, so singular
// and pluralized-array provider fields resolve through one priority list.
func stringsField(obj map[string]interface{}, keys ...string) []string {
	for _, key := range keys {
		v, ok := obj[key]
		if !ok || v == nil {
			continue
		}
		switch val := v.(type) {
		case string:
			if val == "" {
				continue
			}
			return []string{val}
		case []interface{}:
			out := make([]string, 0, len(val))
			for _, item := range val {
				if s, ok := item.(string); ok && s != "" {
					out = append(out, s)
				}
			}
			return out
		}
	}
	return nil
}
