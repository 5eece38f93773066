package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/recipebox/internal/ui"
	"github.com/mesh-intelligence/recipebox/pkg/types"
)

func newAddCmd() *cobra.Command {
	var df draftFlags
	cmd := &cobra.Command{
		Use:     "add",
		Aliases: []string{"new"},
		Short:   "Create a recipe",
		Long: "Create a recipe from flags, or with --interactive from a form.\n" +
			"Empty fields are normalized: a missing title becomes \"Untitled\"\n" +
			"and missing or invalid servings become 1.",
		Example: `  recipebox add --title "Omelette" --tags "breakfast, quick" --servings 1 \
    --ingredient "2 eggs" --ingredient "Salt" --step "Whisk" --step "Fry"
  recipebox add -i`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, a *app) error {
				d, ok, err := df.fillDraft(cmd, types.Draft{})
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

// saveDraft submits d and shows the saved recipe in the detail view.
func saveDraft(ctx context.Context, cmd *cobra.Command, a *app, d types.Draft) error {
	rec, err := a.session.Save(ctx, d)
	if err != nil {
		return wrapMutation("save", err)
	}
	if viewed, ok := a.session.Viewing(); ok {
		rec = viewed
	}
	if !flags.jsonMode {
		fmt.Fprintln(cmd.OutOrStdout(), ui.RenderPass("Saved: "+rec.ID))
	}
	return renderDetail(cmd, rec)
}
