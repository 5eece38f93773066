package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/recipebox/internal/ui"
	"github.com/mesh-intelligence/recipebox/pkg/types"
)

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one recipe in full",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(_ context.Context, a *app) error {
				rec, err := a.session.View(args[0])
				if errors.Is(err, types.ErrNotFound) {
					return userError("recipe %s: %w", args[0], err)
				}
				if err != nil {
					return sysError("%w", err)
				}
				return renderDetail(cmd, rec)
			})
		},
	}
}

// renderDetail writes the detail view of rec.
func renderDetail(cmd *cobra.Command, rec types.Recipe) error {
	if flags.jsonMode {
		return writeJSON(cmd.OutOrStdout(), rec)
	}
	fmt.Fprint(cmd.OutOrStdout(), ui.Detail(rec))
	return nil
}
