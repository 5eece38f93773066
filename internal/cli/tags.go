package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/recipebox/internal/ui"
)

func newTagsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tags",
		Short: "List every tag in use",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(_ context.Context, a *app) error {
				tags := a.session.Tags()
				if flags.jsonMode {
					return writeJSON(cmd.OutOrStdout(), tags)
				}
				fmt.Fprint(cmd.OutOrStdout(), ui.Tags(tags))
				return nil
			})
		},
	}
}
