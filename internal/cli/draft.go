package cli

import (
	"errors"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/recipebox/pkg/types"
)

// draftFlags are the recipe fields shared by add and edit.
type draftFlags struct {
	title       string
	tags        string
	servings    string
	time        string
	ingredients []string
	steps       []string
	image       string
	noImage     bool
	favorite    bool
	interactive bool
}

func (f *draftFlags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVar(&f.title, "title", "", "recipe title")
	fs.StringVar(&f.tags, "tags", "", "comma-separated tags")
	fs.StringVar(&f.servings, "servings", "", "number of servings")
	fs.StringVar(&f.time, "time", "", "preparation time, e.g. \"20 min\"")
	fs.StringArrayVar(&f.ingredients, "ingredient", nil, "ingredient line (repeatable)")
	fs.StringArrayVar(&f.steps, "step", nil, "step line (repeatable)")
	fs.StringVar(&f.image, "image", "", "image file to attach")
	fs.BoolVar(&f.noImage, "no-image", false, "remove the attached image")
	fs.BoolVar(&f.favorite, "favorite", false, "mark as favorite")
	fs.BoolVarP(&f.interactive, "interactive", "i", false, "fill in the recipe with a form")
	cmd.MarkFlagsMutuallyExclusive("image", "no-image")
}

// apply overlays the flags the user set on d. Unset flags leave d as is,
// so edit only touches what was named.
func (f *draftFlags) apply(cmd *cobra.Command, d types.Draft) (types.Draft, error) {
	fs := cmd.Flags()
	if fs.Changed("title") {
		d.Title = f.title
	}
	if fs.Changed("tags") {
		d.Tags = f.tags
	}
	if fs.Changed("servings") {
		d.Servings = f.servings
	}
	if fs.Changed("time") {
		d.Time = f.time
	}
	if fs.Changed("ingredient") {
		d.Ingredients = strings.Join(f.ingredients, "\n")
	}
	if fs.Changed("step") {
		d.Steps = strings.Join(f.steps, "\n")
	}
	if fs.Changed("favorite") {
		d.Favorite = f.favorite
	}
	if f.noImage {
		d.Image = ""
	}
	if f.image != "" {
		uri, err := attachImage(f.image)
		if err != nil {
			return d, err
		}
		d.Image = uri
	}
	return d, nil
}

// attachImage reads path into a data URI, mapping failures to user errors.
func attachImage(path string) (string, error) {
	uri, err := readImageDataURI(path)
	switch {
	case err == nil:
		return uri, nil
	case errors.Is(err, errImageTooLarge), errors.Is(err, errNotAnImage), errors.Is(err, os.ErrNotExist):
		return "", userError("%w", err)
	default:
		return "", sysError("%w", err)
	}
}

// fillDraft applies flags to d and, with --interactive, runs the form
// prefilled from the result.
func (f *draftFlags) fillDraft(cmd *cobra.Command, d types.Draft) (types.Draft, bool, error) {
	d, err := f.apply(cmd, d)
	if err != nil {
		return d, false, err
	}
	if !f.interactive {
		return d, true, nil
	}
	if !isTerminal() {
		return d, false, userError("%w: --interactive needs a terminal", errNotInteractive)
	}
	return runForm(d)
}
