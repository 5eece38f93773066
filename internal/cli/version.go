package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/recipebox/pkg/recipebox"
)

const modulePath = "github.com/mesh-intelligence/recipebox"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the recipebox version",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "recipebox v%s\nmodule: %s\n", recipebox.Version, modulePath)
			return nil
		},
	}
}
