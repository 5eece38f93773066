package cli

import (
	"errors"
	"os"

	"github.com/charmbracelet/huh"
	"golang.org/x/term"

	"github.com/mesh-intelligence/recipebox/internal/catalog"
)

// errNotInteractive is returned when a prompt is needed but stdin is not
// a terminal.
var errNotInteractive = errors.New("stdin is not a terminal")

// isTerminal reports whether stdin is attached to a terminal.
// Overridden in tests.
var isTerminal = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// newConfirmer returns the Confirmer used by delete when --yes is not
// given. Overridden in tests.
var newConfirmer = func() catalog.Confirmer {
	return catalog.ConfirmFunc(func(prompt string) (bool, error) {
		if !isTerminal() {
			return false, errNotInteractive
		}
		var ok bool
		err := huh.NewConfirm().
			Title(prompt).
			Affirmative("Delete").
			Negative("Cancel").
			Value(&ok).
			Run()
		if errors.Is(err, huh.ErrUserAborted) {
			return false, nil
		}
		return ok, err
	})
}
