package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/mesh-intelligence/recipebox/internal/catalog"
	"github.com/mesh-intelligence/recipebox/pkg/types"
)

// runForm is the edit form: it shows d, lets the user change every field
// and returns the submitted draft. ok is false when the user cancels.
// Overridden in tests.
var runForm = func(d types.Draft) (types.Draft, bool, error) {
	var (
		imagePath string
		submit    = true
	)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Placeholder(catalog.UntitledTitle).
				Value(&d.Title),

			huh.NewInput().
				Title("Tags").
				Description("Comma-separated").
				Placeholder("e.g., dinner, quick").
				Value(&d.Tags),

			huh.NewInput().
				Title("Servings").
				Description("Blank, zero or negative becomes 1").
				Value(&d.Servings).
				Validate(validateServings),

			huh.NewInput().
				Title("Time").
				Placeholder("e.g., 20 min").
				Value(&d.Time),

			huh.NewConfirm().
				Title("Favorite").
				Value(&d.Favorite),
		),

		huh.NewGroup(
			huh.NewText().
				Title("Ingredients").
				Description("One per line").
				CharLimit(5000).
				Value(&d.Ingredients),

			huh.NewText().
				Title("Steps").
				Description("One per line").
				CharLimit(5000).
				Value(&d.Steps),
		),

		huh.NewGroup(
			huh.NewInput().
				Title("Image").
				Description(imageDescription(d)).
				Placeholder("path/to/photo.jpg").
				Value(&imagePath).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return nil
					}
					_, err := readImageDataURI(strings.TrimSpace(s))
					return err
				}),

			huh.NewConfirm().
				Title("Save this recipe?").
				Affirmative("Save").
				Negative("Cancel").
				Value(&submit),
		),
	).WithTheme(huh.ThemeDracula())

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return d, false, nil
		}
		return d, false, sysError("form error: %w", err)
	}
	if !submit {
		return d, false, nil
	}
	if p := strings.TrimSpace(imagePath); p != "" {
		uri, err := attachImage(p)
		if err != nil {
			return d, false, err
		}
		d.Image = uri
	}
	return d, true, nil
}

// validateServings accepts blank input or any number; the form rejects
// text that would silently become 1.
func validateServings(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if _, err := strconv.ParseFloat(s, 64); err != nil {
		return fmt.Errorf("servings must be a number")
	}
	return nil
}

func imageDescription(d types.Draft) string {
	if d.Image != "" {
		return "File to replace the attached image (optional)"
	}
	return "File to attach (optional)"
}
