package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/recipebox/internal/catalog"
	"github.com/mesh-intelligence/recipebox/internal/ui"
)

func newDeleteCmd() *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Delete a recipe after confirmation",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, a *app) error {
				rec, err := a.lookup(args[0])
				if err != nil {
					return err
				}
				var c catalog.Confirmer = catalog.AlwaysConfirm
				if !yes {
					c = newConfirmer()
				}
				deleted, err := a.session.Delete(ctx, rec.ID, c)
				if errors.Is(err, errNotInteractive) {
					return userError("%w: pass --yes to delete without a prompt", err)
				}
				if err != nil && !deleted {
					return sysError("%w", err)
				}
				if err != nil {
					return wrapMutation("delete", err)
				}
				if !deleted {
					fmt.Fprintln(cmd.OutOrStdout(), ui.RenderMuted("Cancelled"))
					return nil
				}
				fmt.Fprintln(cmd.OutOrStdout(), ui.RenderPass("Deleted: "+rec.Title))
				return nil
			})
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "delete without asking")
	return cmd
}
