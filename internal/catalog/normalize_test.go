package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mesh-intelligence/recipebox/pkg/types"
)

func TestParseServings(t *testing.T) {
	tests := []struct {
		raw  string
		want int
	}{
		{"4", 4},
		{" 6 ", 6},
		{"", 1},
		{"abc", 1},
		{"0", 1},
		{"-3", 1},
		{"2.7", 2},
		{"0.5", 1},
		{"NaN", 1},
		{"Inf", 1},
		{"1e300", 1},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseServings(tt.raw))
		})
	}
}

func TestNormalizeDraft(t *testing.T) {
	d := types.Draft{
		ID:          "keep-me",
		Title:       "  Shakshuka ",
		Tags:        "breakfast, , eggs ,",
		Servings:    "3",
		Time:        " 30 min ",
		Ingredients: "4 eggs\n\n  1 can tomatoes  \r\n",
		Steps:       "Simmer sauce.\nCrack eggs in.\n",
		Favorite:    true,
		Image:       "data:image/png;base64,AAAA",
	}

	r := Normalize(d)

	assert.Equal(t, "keep-me", r.ID)
	assert.Equal(t, "Shakshuka", r.Title)
	assert.Equal(t, []string{"breakfast", "eggs"}, r.Tags)
	assert.Equal(t, 3, r.Servings)
	assert.Equal(t, "30 min", r.Time)
	assert.Equal(t, []string{"4 eggs", "1 can tomatoes"}, r.Ingredients)
	assert.Equal(t, []string{"Simmer sauce.", "Crack eggs in."}, r.Steps)
	assert.True(t, r.Favorite)
	if assert.NotNil(t, r.Image) {
		assert.Equal(t, "data:image/png;base64,AAAA", *r.Image)
	}
}

func TestNormalizeBlankDraft(t *testing.T) {
	r := Normalize(types.Draft{Title: "  ", Servings: "abc"})

	assert.Equal(t, UntitledTitle, r.Title)
	assert.Equal(t, 1, r.Servings)
	assert.NotNil(t, r.Tags)
	assert.NotNil(t, r.Ingredients)
	assert.NotNil(t, r.Steps)
	assert.Empty(t, r.Tags)
	assert.Nil(t, r.Image)
}

func TestNormalizeDropsNonDataImage(t *testing.T) {
	r := Normalize(types.Draft{Title: "x", Image: "https://example.com/cake.jpg"})
	assert.Nil(t, r.Image)
}

func TestDraftFromRoundTrips(t *testing.T) {
	img := "data:image/jpeg;base64,/9j/"
	r := types.Recipe{
		ID:          "r1",
		Title:       "Soup",
		Tags:        []string{"dinner", "warm"},
		Servings:    2,
		Time:        "1 h",
		Ingredients: []string{"water", "salt"},
		Steps:       []string{"Boil.", "Season."},
		Favorite:    true,
		Image:       &img,
	}

	d := DraftFrom(r)
	assert.Equal(t, "dinner, warm", d.Tags)
	assert.Equal(t, "2", d.Servings)
	assert.Equal(t, "water\nsalt", d.Ingredients)
	assert.Equal(t, r, Normalize(d))
}
