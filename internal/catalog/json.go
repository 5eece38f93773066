// JSON record structure and schema validation for the durable slot.
// The slot holds one JSON array; a blob is accepted only when every record
// in it is complete and ids are unique.
package catalog

import (
	"encoding/json"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/mesh-intelligence/recipebox/pkg/types"
)

// recipeJSON mirrors types.Recipe with validation rules. Lists must be
// present (an empty array is fine, null or missing is not) and hold no
// empty entries. Unknown fields are ignored.
type recipeJSON struct {
	ID          string   `json:"id" validate:"required"`
	Title       string   `json:"title" validate:"required"`
	Tags        []string `json:"tags" validate:"required,dive,required"`
	Servings    int      `json:"servings" validate:"min=1"`
	Time        string   `json:"time"`
	Ingredients []string `json:"ingredients" validate:"required,dive,required"`
	Steps       []string `json:"steps" validate:"required,dive,required"`
	Favorite    bool     `json:"favorite"`
	Image       *string  `json:"image" validate:"omitempty,startswith=data:"`
}

func (r recipeJSON) toRecipe() types.Recipe {
	return types.Recipe{
		ID:          r.ID,
		Title:       r.Title,
		Tags:        r.Tags,
		Servings:    r.Servings,
		Time:        r.Time,
		Ingredients: r.Ingredients,
		Steps:       r.Steps,
		Favorite:    r.Favorite,
		Image:       r.Image,
	}
}

func fromRecipe(r types.Recipe) recipeJSON {
	rec := recipeJSON{
		ID:          r.ID,
		Title:       r.Title,
		Tags:        r.Tags,
		Servings:    r.Servings,
		Time:        r.Time,
		Ingredients: r.Ingredients,
		Steps:       r.Steps,
		Favorite:    r.Favorite,
		Image:       r.Image,
	}
	// Lists are never written as null.
	if rec.Tags == nil {
		rec.Tags = []string{}
	}
	if rec.Ingredients == nil {
		rec.Ingredients = []string{}
	}
	if rec.Steps == nil {
		rec.Steps = []string{}
	}
	return rec
}

// schema validates slot records. validator.Validate caches struct metadata
// and is safe for concurrent use.
var schema = validator.New()

// decodeCollection parses and validates a slot value. Any malformed record
// rejects the whole blob with an error wrapping ErrInvalidRecord.
func decodeCollection(data []byte) ([]types.Recipe, error) {
	var records []*recipeJSON
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decoding collection: %w: %w", err, types.ErrInvalidRecord)
	}
	if records == nil {
		return nil, fmt.Errorf("collection is null: %w", types.ErrInvalidRecord)
	}

	seen := make(map[string]bool, len(records))
	recipes := make([]types.Recipe, 0, len(records))
	for i, rec := range records {
		if rec == nil {
			return nil, fmt.Errorf("record %d is null: %w", i, types.ErrInvalidRecord)
		}
		if err := schema.Struct(rec); err != nil {
			return nil, fmt.Errorf("record %d: %v: %w", i, err, types.ErrInvalidRecord)
		}
		if seen[rec.ID] {
			return nil, fmt.Errorf("record %d: duplicate id %q: %w", i, rec.ID, types.ErrInvalidRecord)
		}
		seen[rec.ID] = true
		recipes = append(recipes, rec.toRecipe())
	}
	return recipes, nil
}

// encodeCollection serializes the collection as one JSON array in
// collection order.
func encodeCollection(recipes []types.Recipe) ([]byte, error) {
	records := make([]recipeJSON, len(recipes))
	for i, r := range recipes {
		records[i] = fromRecipe(r)
	}
	data, err := json.Marshal(records)
	if err != nil {
		return nil, fmt.Errorf("encoding collection: %w", err)
	}
	return data, nil
}
