// internal/catalog/canonical.go
package catalog

// Media holds the resolved demonstration URLs for one exercise.
// Populated by the Resolver, not by normalization.
type Media struct {
	ImageURL    string `json:"imageUrl,omitempty"`
	AnimatedURL string `json:"animatedUrl,omitempty"`
	VideoURL    string `json:"videoUrl,omitempty"`
}

// Exercise is the canonical, provider-agnostic record one provider result
// normalizes into. A value type: constructed once per response, never
// mutated afterwards. Empty string / nil slice means the provider did not
// send the field.
type Exercise struct {
	ID   string `json:"id,omitempty"` // provider-assigned identifier
	Name string `json:"name"`         // never empty, defaults to "Unknown"

	BodyParts        []string `json:"bodyParts,omitempty"` // first element is the primary
	Equipments       []string `json:"equipments,omitempty"`
	TargetMuscles    []string `json:"targetMuscles,omitempty"`
	SecondaryMuscles []string `json:"secondaryMuscles,omitempty"`

	Instructions []string `json:"instructions,omitempty"` // step text, numbered by position when rendered
	Tips         []string `json:"tips,omitempty"`
	Overview     string   `json:"overview,omitempty"`
	Description  string   `json:"description,omitempty"`
	ExerciseType string   `json:"exerciseType,omitempty"` // provider vocabulary, e.g. "STRENGTH"

	// Raw media field values exactly as the provider sent them. URL
	// resolution against the CDN bases happens in the Resolver so the
	// synthesis policy can change without touching parsing.
	GifURL   string `json:"gifUrl,omitempty"`
	ImageURL string `json:"imageUrl,omitempty"`
	VideoURL string `json:"videoUrl,omitempty"`

	Media Media `json:"media"`

	Variations []string `json:"variations,omitempty"` // opaque ids into the same provider's catalog
	RelatedIDs []string `json:"relatedIds,omitempty"`
}
