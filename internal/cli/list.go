package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/recipebox/internal/query"
	"github.com/mesh-intelligence/recipebox/internal/ui"
)

func newListCmd() *cobra.Command {
	var f query.Filter
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List recipes, favorites first",
		Long: "List recipes sorted with favorites first, then by title.\n" +
			"--query matches title, tags and ingredients; --tag and --favorites\n" +
			"select one tag or only favorites.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFilter(f); err != nil {
				return err
			}
			return withApp(cmd, func(_ context.Context, a *app) error {
				a.session.SetFilter(f)
				return renderList(cmd, a)
			})
		},
	}
	cmd.Flags().StringVarP(&f.Text, "query", "q", "", "search title, tags and ingredients")
	cmd.Flags().StringVarP(&f.Tag, "tag", "t", "", "show only recipes with this tag")
	cmd.Flags().BoolVarP(&f.FavoritesOnly, "favorites", "f", false, "show only favorites")
	return cmd
}

// checkFilter rejects flag combinations the list view has no mode for:
// a tag selection and the favorites selection are alternatives.
func checkFilter(f query.Filter) error {
	if f.Tag != "" && f.FavoritesOnly {
		return userError("--tag and --favorites are mutually exclusive")
	}
	return nil
}

// renderList writes the session's visible recipes.
func renderList(cmd *cobra.Command, a *app) error {
	visible := a.session.Visible()
	if flags.jsonMode {
		return writeJSON(cmd.OutOrStdout(), visible)
	}
	fmt.Fprint(cmd.OutOrStdout(), ui.List(visible, a.repo().Len(), a.session.Filter().Tag))
	return nil
}
