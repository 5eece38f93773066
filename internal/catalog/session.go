package catalog

import (
	"context"
	"fmt"

	"golang.org/x/text/language"

	"github.com/mesh-intelligence/recipebox/internal/query"
	"github.com/mesh-intelligence/recipebox/pkg/types"
)

// Confirmer asks the user to approve a destructive action.
type Confirmer interface {
	Confirm(prompt string) (bool, error)
}

// ConfirmFunc adapts a function to Confirmer.
type ConfirmFunc func(prompt string) (bool, error)

// Confirm calls f.
func (f ConfirmFunc) Confirm(prompt string) (bool, error) { return f(prompt) }

// AlwaysConfirm approves every prompt, for --yes style callers.
var AlwaysConfirm Confirmer = ConfirmFunc(func(string) (bool, error) { return true, nil })

// DeletePrompt is the question asked before a recipe is deleted.
const DeletePrompt = "Delete this recipe?"

// Session is the view state a presentation layer holds over one
// Repository: the search text, the tag or favorites selection, and the
// recipe open in the detail view. It is passed explicitly to whatever
// renders; there is no package-level instance.
type Session struct {
	repo    *Repository
	locale  language.Tag
	filter  query.Filter
	viewing string
}

// NewSession returns a Session over repo with no filter and no open recipe.
func NewSession(repo *Repository, locale language.Tag) *Session {
	return &Session{repo: repo, locale: locale}
}

// Repository returns the repository the session renders.
func (s *Session) Repository() *Repository { return s.repo }

// Locale returns the collation locale used for sorting.
func (s *Session) Locale() language.Tag { return s.locale }

// Filter returns the active filter.
func (s *Session) Filter() query.Filter { return s.filter }

// SetQuery sets the free-text search.
func (s *Session) SetQuery(text string) { s.filter.Text = text }

// SelectAll clears the tag and favorites selection.
func (s *Session) SelectAll() {
	s.filter.Tag = ""
	s.filter.FavoritesOnly = false
}

// SelectTag narrows to one tag, replacing a favorites selection.
func (s *Session) SelectTag(tag string) {
	s.filter.Tag = tag
	s.filter.FavoritesOnly = false
}

// SelectFavorites narrows to favorite recipes, replacing a tag selection.
func (s *Session) SelectFavorites() {
	s.filter.Tag = ""
	s.filter.FavoritesOnly = true
}

// SetFilter replaces the whole filter, for callers that combine a tag
// with the favorites mode.
func (s *Session) SetFilter(f query.Filter) { s.filter = f }

// Visible returns the filtered, sorted list view.
func (s *Session) Visible() []types.Recipe {
	return query.Apply(s.repo.All(), s.filter, s.locale)
}

// Tags returns every tag in the whole collection, for filter controls.
func (s *Session) Tags() []string {
	return query.AllTags(s.repo.All(), s.locale)
}

// View opens the recipe with id in the detail view.
func (s *Session) View(id string) (types.Recipe, error) {
	r, ok := s.repo.Get(id)
	if !ok {
		return types.Recipe{}, fmt.Errorf("view %q: %w", id, types.ErrNotFound)
	}
	s.viewing = id
	return r, nil
}

// CloseView clears the detail view.
func (s *Session) CloseView() { s.viewing = "" }

// Viewing returns the recipe open in the detail view, if any.
func (s *Session) Viewing() (types.Recipe, bool) {
	if s.viewing == "" {
		return types.Recipe{}, false
	}
	r, ok := s.repo.Get(s.viewing)
	if !ok {
		s.viewing = ""
	}
	return r, ok
}

// Save submits a draft and opens the saved recipe in the detail view.
func (s *Session) Save(ctx context.Context, d types.Draft) (types.Recipe, error) {
	r, err := s.repo.Save(ctx, d)
	s.viewing = r.ID
	return r, err
}

// ToggleFavorite flips the favorite flag of id.
func (s *Session) ToggleFavorite(ctx context.Context, id string) error {
	return s.repo.ToggleFavorite(ctx, id)
}

// Delete asks c to confirm, then removes id. It reports whether the recipe
// was deleted. A refusal changes nothing. Deleting the recipe open in the
// detail view closes the view.
func (s *Session) Delete(ctx context.Context, id string, c Confirmer) (bool, error) {
	if c == nil {
		return false, fmt.Errorf("delete %q: no confirmer", id)
	}
	ok, err := c.Confirm(DeletePrompt)
	if err != nil {
		return false, fmt.Errorf("confirm delete: %w", err)
	}
	if !ok {
		return false, nil
	}
	if s.viewing == id {
		s.viewing = ""
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return true, err
	}
	return true, nil
}

// Reset clears the slot, reinstalls the seed recipes and closes the
// detail view, whose recipe no longer exists.
func (s *Session) Reset(ctx context.Context) error {
	s.viewing = ""
	return s.repo.Reset(ctx)
}
