package ui

import (
	"fmt"
	"strings"

	"github.com/mesh-intelligence/recipebox/pkg/types"
)

// Empty-state messages.
const (
	NoRecipesMessage = "No recipes found. Create your first one!"
	NoTagsMessage    = "No tags yet"
)

// star returns the favorite marker for r.
func star(r types.Recipe) string {
	if r.Favorite {
		return StarStyle.Render(IconFavorite)
	}
	return MutedStyle.Render(IconNotFavorite)
}

// meta is the "20 min • 4 servings" line of a card.
func meta(r types.Recipe) string {
	parts := make([]string, 0, 2)
	if r.Time != "" {
		parts = append(parts, r.Time)
	}
	parts = append(parts, fmt.Sprintf("%d servings", r.Servings))
	return strings.Join(parts, " • ")
}

// Card renders one recipe of the list view, highlighting selectedTag
// among its tags.
func Card(r types.Recipe, selectedTag string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s  %s\n", star(r), TitleStyle.Render(r.Title), MutedStyle.Render(r.ID))
	fmt.Fprintf(&b, "  %s", MutedStyle.Render(meta(r)))
	if r.Image != nil {
		b.WriteString(MutedStyle.Render(" • image"))
	}
	b.WriteByte('\n')
	if len(r.Tags) > 0 {
		fmt.Fprintf(&b, "  %s\n", Chips(r.Tags, selectedTag))
	}
	return b.String()
}

// List renders the list view with a footer counting the whole
// collection.
func List(visible []types.Recipe, total int, selectedTag string) string {
	var b strings.Builder
	if len(visible) == 0 {
		b.WriteString(MutedStyle.Render(NoRecipesMessage))
		b.WriteByte('\n')
	}
	for i, r := range visible {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(Card(r, selectedTag))
	}
	fmt.Fprintf(&b, "\n%s\n", MutedStyle.Render(fmt.Sprintf("Showing %d of %d. Saved: %d", len(visible), total, total)))
	return b.String()
}

// Chips renders tags inline; the selected tag is highlighted.
func Chips(tags []string, selected string) string {
	chips := make([]string, len(tags))
	for i, t := range tags {
		if t == selected {
			chips[i] = HeadingStyle.Render("[" + t + "]")
			continue
		}
		chips[i] = TagStyle.Render("#" + t)
	}
	return strings.Join(chips, " ")
}

// Tags renders the tag filter controls, one tag per line.
func Tags(tags []string) string {
	if len(tags) == 0 {
		return MutedStyle.Render(NoTagsMessage) + "\n"
	}
	var b strings.Builder
	for _, t := range tags {
		b.WriteString(TagStyle.Render(t))
		b.WriteByte('\n')
	}
	return b.String()
}

// Detail renders the detail view: ingredients bulleted, steps numbered.
func Detail(r types.Recipe) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", star(r), TitleStyle.Render(r.Title))
	fmt.Fprintf(&b, "%s\n", MutedStyle.Render(meta(r)))
	fmt.Fprintf(&b, "%s\n", MutedStyle.Render("id: "+r.ID))
	if len(r.Tags) > 0 {
		fmt.Fprintf(&b, "%s\n", Chips(r.Tags, ""))
	}
	if r.Image != nil {
		fmt.Fprintf(&b, "%s\n", MutedStyle.Render(fmt.Sprintf("image: %s (%d bytes)", imageKind(*r.Image), len(*r.Image))))
	}

	fmt.Fprintf(&b, "\n%s\n", HeadingStyle.Render("Ingredients"))
	for _, ing := range r.Ingredients {
		fmt.Fprintf(&b, "  • %s\n", ing)
	}

	fmt.Fprintf(&b, "\n%s\n", HeadingStyle.Render("Steps"))
	for i, s := range r.Steps {
		fmt.Fprintf(&b, "  %d. %s\n", i+1, s)
	}
	return b.String()
}

// imageKind extracts the media type of a data URI.
func imageKind(uri string) string {
	kind := strings.TrimPrefix(uri, "data:")
	if i := strings.IndexAny(kind, ";,"); i >= 0 {
		kind = kind[:i]
	}
	if kind == "" {
		return "inline"
	}
	return kind
}
