package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeKeyPriority(t *testing.T) {
	testCases := []struct {
		name string
		raw  map[string]interface{}
		want Exercise
	}{
		{
			name: "camelCase wins over snake_case",
			raw: map[string]interface{}{
				"exerciseId": "ex_1",
				"name":       "Push Up",
				"gifUrl":     "a.gif",
				"gif_url":    "b.gif",
			},
			want: Exercise{ID: "ex_1", Name: "Push Up", GifURL: "a.gif"},
		},
		{
			name: "snake_case fills when camelCase absent",
			raw: map[string]interface{}{
				"exercise_id": "ex_2",
				"name":        "Squat",
				"gif_url":     "b.gif",
			},
			want: Exercise{ID: "ex_2", Name: "Squat", GifURL: "b.gif"},
		},
		{
			name: "null camelCase value falls through to snake_case",
			raw: map[string]interface{}{
				"exerciseId": nil,
				"id":         "ex_3",
				"name":       "Lunge",
			},
			want: Exercise{ID: "ex_3", Name: "Lunge"},
		},
		{
			name: "singular scalar becomes one-element slice",
			raw: map[string]interface{}{
				"id":        "ex_4",
				"name":      "Row",
				"bodyPart":  "back",
				"equipment": "cable",
				"target":    "lats",
			},
			want: Exercise{
				ID:            "ex_4",
				Name:          "Row",
				BodyParts:     []string{"back"},
				Equipments:    []string{"cable"},
				TargetMuscles: []string{"lats"},
			},
		},
		{
			name: "pluralized arrays accepted",
			raw: map[string]interface{}{
				"id":         "ex_5",
				"name":       "Deadlift",
				"bodyParts":  []interface{}{"back", "legs"},
				"equipments": []interface{}{"barbell"},
			},
			want: Exercise{
				ID:         "ex_5",
				Name:       "Deadlift",
				BodyParts:  []string{"back", "legs"},
				Equipments: []string{"barbell"},
			},
		},
		{
			name: "numeric id is formatted",
			raw: map[string]interface{}{
				"id":   float64(42),
				"name": "Plank",
			},
			want: Exercise{ID: "42", Name: "Plank"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := Normalize(tc.raw)
			assert.Equal(t, tc.want, got)
		})
	}
}

// Normalize must never fail, whatever the record contains.
func TestNormalizeTotality(t *testing.T) {
	testCases := []struct {
		name string
		raw  map[string]interface{}
	}{
		{name: "empty object", raw: map[string]interface{}{}},
		{name: "all nulls", raw: map[string]interface{}{
			"exerciseId": nil, "name": nil, "bodyPart": nil, "gifUrl": nil,
		}},
		{name: "wrong types everywhere", raw: map[string]interface{}{
			"exerciseId": true,
			"name":       []interface{}{"not", "a", "string"},
			"bodyPart":   map[string]interface{}{"nested": "object"},
			"equipment":  float64(7),
		}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := Normalize(tc.raw)
			assert.Equal(t, "Unknown", got.Name)
		})
	}
}

func TestNormalizeManyShapes(t *testing.T) {
	t.Run("bare array", func(t *testing.T) {
		got := NormalizeMany([]byte(`[{"id":"1","name":"A"},{"id":"2","name":"B"}]`))
		require.Len(t, got, 2)
		assert.Equal(t, "A", got[0].Name)
		assert.Equal(t, "2", got[1].ID)
	})

	t.Run("envelope with data array", func(t *testing.T) {
		got := NormalizeMany([]byte(`{"success":true,"data":[{"exercise_id":"x1","exercise_name":"Curl"}]}`))
		require.Len(t, got, 1)
		assert.Equal(t, "x1", got[0].ID)
		assert.Equal(t, "Curl", got[0].Name)
	})

	t.Run("single by-id object", func(t *testing.T) {
		got := NormalizeMany([]byte(`{"exerciseId":"solo","name":"Dip"}`))
		require.Len(t, got, 1)
		assert.Equal(t, "solo", got[0].ID)
	})

	t.Run("non-record entries in an array are skipped", func(t *testing.T) {
		got := NormalizeMany([]byte(`[{"id":"1","name":"A"},"junk",7]`))
		require.Len(t, got, 1)
		assert.Equal(t, "A", got[0].Name)
	})
}

func TestNormalizeManyMalformed(t *testing.T) {
	testCases := []struct {
		name string
		raw  string
	}{
		{name: "unexpected object shape", raw: `{"unexpected":"shape"}`},
		{name: "invalid json", raw: `{{{`},
		{name: "scalar", raw: `42`},
		{name: "null", raw: `null`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Empty(t, NormalizeMany([]byte(tc.raw)))
		})
	}
}
