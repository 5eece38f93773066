package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/recipebox/internal/ui"
)

func newResetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Discard all recipes and restore the samples",
		Long: "Clear the storage slot and start over from the two sample recipes.\n" +
			"There is no confirmation prompt.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, a *app) error {
				if err := a.session.Reset(ctx); err != nil {
					return wrapMutation("reset", err)
				}
				if flags.jsonMode {
					return writeJSON(cmd.OutOrStdout(), a.repo().All())
				}
				fmt.Fprintln(cmd.OutOrStdout(), ui.RenderPass(fmt.Sprintf("Reset to %d sample recipes", a.repo().Len())))
				return nil
			})
		},
	}
}
