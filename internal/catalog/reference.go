// internal/catalog/reference.go
package catalog

// Fixed reference vocabularies shown in the dashboard's search filters.
// These are not provider-derived; both providers accept them as query
// values. Served synchronously, no network call.

var bodyParts = []string{
	"back",
	"cardio",
	"chest",
	"lower arms",
	"lower legs",
	"neck",
	"shoulders",
	"upper arms",
	"upper legs",
	"waist",
}

var equipments = []string{
	"assisted",
	"band",
	"barbell",
	"body weight",
	"bosu ball",
	"cable",
	"dumbbell",
	"elliptical machine",
	"ez barbell",
	"hammer",
	"kettlebell",
	"leverage machine",
	"medicine ball",
	"olympic barbell",
	"resistance band",
	"roller",
	"rope",
	"skierg machine",
	"sled machine",
	"smith machine",
	"stability ball",
	"stationary bike",
	"stepmill machine",
	"tire",
	"trap bar",
	"upper body ergometer",
	"weighted",
	"wheel roller",
}

// BodyParts returns the static body-part vocabulary.
func BodyParts() []string {
	out := make([]string, len(bodyParts))
	copy(out, bodyParts)
	return out
}

// Equipments returns the static equipment vocabulary.
func Equipments() []string {
	out := make([]string, len(equipments))
	copy(out, equipments)
	return out
}
