package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/recipebox/internal/ui"
)

func newFavoriteCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "favorite <id>",
		Aliases: []string{"fav"},
		Short:   "Toggle the favorite flag of a recipe",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, a *app) error {
				if _, err := a.lookup(args[0]); err != nil {
					return err
				}
				if err := a.session.ToggleFavorite(ctx, args[0]); err != nil {
					return wrapMutation("favorite", err)
				}
				rec, _ := a.repo().Get(args[0])
				if flags.jsonMode {
					return writeJSON(cmd.OutOrStdout(), rec)
				}
				state := "Removed from favorites"
				if rec.Favorite {
					state = "Added to favorites"
				}
				fmt.Fprintln(cmd.OutOrStdout(), ui.RenderPass(fmt.Sprintf("%s: %s", state, rec.Title)))
				return nil
			})
		},
	}
}
