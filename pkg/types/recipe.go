package types

// Recipe is the single persisted entity: one dish with its ingredients,
// steps and display metadata. The JSON field names are the on-disk format
// of the durable slot and must not change.
type Recipe struct {
	ID          string   `json:"id" yaml:"id"`                   // UUID v7, generated on creation, immutable.
	Title       string   `json:"title" yaml:"title"`             // Display name, never empty after normalization.
	Tags        []string `json:"tags" yaml:"tags"`               // Ordered; duplicates are tolerated.
	Servings    int      `json:"servings" yaml:"servings"`       // Always >= 1.
	Time        string   `json:"time" yaml:"time"`               // Free-form, e.g. "20 min".
	Ingredients []string `json:"ingredients" yaml:"ingredients"` // One item per entry.
	Steps       []string `json:"steps" yaml:"steps"`             // Order-significant.
	Favorite    bool     `json:"favorite" yaml:"favorite"`
	Image       *string  `json:"image" yaml:"image"` // data: URI, or nil when absent.
}

// HasTag reports whether tag is one of the recipe's tags. Matching is exact
// and case-sensitive.
func (r Recipe) HasTag(tag string) bool {
	for _, t := range r.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Clone returns a deep copy so callers can hold snapshots that later
// mutations of the collection do not reach.
func (r Recipe) Clone() Recipe {
	c := r
	c.Tags = cloneStrings(r.Tags)
	c.Ingredients = cloneStrings(r.Ingredients)
	c.Steps = cloneStrings(r.Steps)
	if r.Image != nil {
		img := *r.Image
		c.Image = &img
	}
	return c
}

func cloneStrings(s []string) []string {
	out := make([]string, len(s))
	copy(out, s)
	return out
}

// Draft is unsaved form input destined to become, or replace, a Recipe.
// List fields hold the raw text the user typed: Tags is comma separated,
// Ingredients and Steps are newline separated, Servings is unparsed.
type Draft struct {
	ID          string // Empty for a new recipe; the existing ID when editing.
	Title       string
	Tags        string
	Servings    string
	Time        string
	Ingredients string
	Steps       string
	Favorite    bool
	Image       string // data: URI or empty.
}
