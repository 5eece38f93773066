package catalog

import (
	"math"
	"strconv"
	"strings"

	"github.com/mesh-intelligence/recipebox/pkg/types"
)

// UntitledTitle replaces a blank title at save time.
const UntitledTitle = "Untitled"

// dataURIPrefix marks an inline image payload.
const dataURIPrefix = "data:"

// Normalize turns form input into a Recipe. Tags are split on commas,
// ingredients and steps on newlines; every entry is trimmed and empty
// entries are dropped. A blank title becomes UntitledTitle and servings
// that are missing, non-numeric or below one become 1. The ID is carried
// over unchanged.
func Normalize(d types.Draft) types.Recipe {
	r := types.Recipe{
		ID:          strings.TrimSpace(d.ID),
		Title:       d.Title,
		Tags:        splitList(d.Tags, ","),
		Servings:    ParseServings(d.Servings),
		Time:        d.Time,
		Ingredients: splitList(d.Ingredients, "\n"),
		Steps:       splitList(d.Steps, "\n"),
		Favorite:    d.Favorite,
	}
	if d.Image != "" {
		img := d.Image
		r.Image = &img
	}
	return normalizeRecipe(r)
}

// DraftFrom prefills a Draft with an existing recipe, the way the edit
// form opens.
func DraftFrom(r types.Recipe) types.Draft {
	d := types.Draft{
		ID:          r.ID,
		Title:       r.Title,
		Tags:        strings.Join(r.Tags, ", "),
		Servings:    strconv.Itoa(r.Servings),
		Time:        r.Time,
		Ingredients: strings.Join(r.Ingredients, "\n"),
		Steps:       strings.Join(r.Steps, "\n"),
		Favorite:    r.Favorite,
	}
	if r.Image != nil {
		d.Image = *r.Image
	}
	return d
}

// ParseServings coerces raw input to a positive integer. Fractions
// truncate toward zero; anything that does not yield at least 1 becomes 1.
func ParseServings(raw string) int {
	raw = strings.TrimSpace(raw)
	if n, err := strconv.Atoi(raw); err == nil {
		return atLeastOne(n)
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f > math.MaxInt32 {
		return 1
	}
	return atLeastOne(int(f))
}

func atLeastOne(n int) int {
	if n < 1 {
		return 1
	}
	return n
}

// normalizeRecipe applies the save-time rules to a full record. Lists come
// back non-nil even when empty.
func normalizeRecipe(r types.Recipe) types.Recipe {
	out := types.Recipe{
		ID:          strings.TrimSpace(r.ID),
		Title:       strings.TrimSpace(r.Title),
		Tags:        cleanList(r.Tags),
		Servings:    atLeastOne(r.Servings),
		Time:        strings.TrimSpace(r.Time),
		Ingredients: cleanList(r.Ingredients),
		Steps:       cleanList(r.Steps),
		Favorite:    r.Favorite,
	}
	if out.Title == "" {
		out.Title = UntitledTitle
	}
	if r.Image != nil && strings.HasPrefix(*r.Image, dataURIPrefix) {
		img := *r.Image
		out.Image = &img
	}
	return out
}

func splitList(raw, sep string) []string {
	if raw == "" {
		return []string{}
	}
	return cleanList(strings.Split(raw, sep))
}

func cleanList(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
