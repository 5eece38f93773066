package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/recipebox/internal/catalog"
	"github.com/mesh-intelligence/recipebox/internal/ui"
)

func newEditCmd() *cobra.Command {
	var df draftFlags
	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a recipe",
		Long: "Change the fields named by flags, or with --interactive edit every\n" +
			"field in a form prefilled from the recipe. The favorite flag is kept\n" +
			"unless --favorite is given.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, a *app) error {
				rec, err := a.lookup(args[0])
				if err != nil {
					return err
				}
				d, ok, err := df.fillDraft(cmd, catalog.DraftFrom(rec))
				if err != nil {
					return err
				}
				if !ok {
					fmt.Fprintln(cmd.OutOrStdout(), ui.RenderMuted("Cancelled"))
					return nil
				}
				return saveDraft(ctx, cmd, a, d)
			})
		},
	}
	df.register(cmd)
	return cmd
}
