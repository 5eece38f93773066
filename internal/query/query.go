// Package query derives the visible, ordered subset of a recipe collection
// from free-text search, a tag filter and the favorites mode. Every
// function here is pure: inputs are never modified.
package query

import (
	"fmt"
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/mesh-intelligence/recipebox/pkg/types"
)

// Filter selects recipes. The zero Filter selects everything.
type Filter struct {
	// Text is matched case-insensitively as a substring of the title, tags
	// and ingredients. Blank text matches everything.
	Text string

	// Tag, when set, requires an exact, case-sensitive tag match. The tag
	// "favorite" is an ordinary tag and says nothing about Favorite.
	Tag string

	// FavoritesOnly keeps only recipes whose Favorite flag is set.
	FavoritesOnly bool
}

// IsZero reports whether f selects every recipe.
func (f Filter) IsZero() bool {
	return strings.TrimSpace(f.Text) == "" && f.Tag == "" && !f.FavoritesOnly
}

// Match reports whether r passes every active part of f.
func (f Filter) Match(r types.Recipe) bool {
	if q := strings.ToLower(strings.TrimSpace(f.Text)); q != "" {
		if !strings.Contains(strings.ToLower(haystack(r)), q) {
			return false
		}
	}
	if f.Tag != "" && !r.HasTag(f.Tag) {
		return false
	}
	if f.FavoritesOnly && !r.Favorite {
		return false
	}
	return true
}

// haystack is the text searched by Filter.Text.
func haystack(r types.Recipe) string {
	return r.Title + " " + strings.Join(r.Tags, " ") + " " + strings.Join(r.Ingredients, " ")
}

// ParseLocale parses a BCP 47 language tag such as "en" or "de-CH" for
// title collation.
func ParseLocale(s string) (language.Tag, error) {
	if s == "" {
		return language.English, nil
	}
	tag, err := language.Parse(s)
	if err != nil {
		return language.Und, fmt.Errorf("parse locale %q: %w", s, err)
	}
	return tag, nil
}

// Apply returns the recipes matching f, favorites first, then by title in
// locale collation order. The sort is stable, so recipes that compare
// equal keep their collection order. The result is a new slice.
func Apply(recipes []types.Recipe, f Filter, locale language.Tag) []types.Recipe {
	out := make([]types.Recipe, 0, len(recipes))
	for _, r := range recipes {
		if f.Match(r) {
			out = append(out, r)
		}
	}

	// Collators keep internal buffers; one per call.
	col := collate.New(locale)
	slices.SortStableFunc(out, func(a, b types.Recipe) int {
		if a.Favorite != b.Favorite {
			if a.Favorite {
				return -1
			}
			return 1
		}
		return col.CompareString(a.Title, b.Title)
	})
	return out
}

// AllTags returns every distinct tag in recipes, sorted in locale
// collation order, the same order titles use: "breakfast" sorts before
// "Dinner". Distinctness is exact, so "Dinner" and "dinner" are two tags.
func AllTags(recipes []types.Recipe, locale language.Tag) []string {
	seen := make(map[string]bool)
	tags := []string{}
	for _, r := range recipes {
		for _, t := range r.Tags {
			if !seen[t] {
				seen[t] = true
				tags = append(tags, t)
			}
		}
	}
	col := collate.New(locale)
	col.SortStrings(tags)
	return tags
}
