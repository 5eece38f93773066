package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/recipebox/internal/ui"
	"github.com/mesh-intelligence/recipebox/pkg/types"
)

func newImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file|->",
		Short: "Merge recipes from a JSON or YAML file",
		Long: "Read a list of recipes (the output of export, or the same fields in\n" +
			"YAML) and merge it into the collection. A recipe whose id exists\n" +
			"replaces it; the rest are added. Use - to read stdin.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			recipes, err := readRecipes(cmd.InOrStdin(), args[0])
			if err != nil {
				return err
			}
			return withApp(cmd, func(ctx context.Context, a *app) error {
				added, err := a.repo().Import(ctx, recipes)
				if err != nil {
					return wrapMutation("import", err)
				}
				if flags.jsonMode {
					return writeJSON(cmd.OutOrStdout(), map[string]int{
						"imported": len(recipes),
						"added":    added,
						"total":    a.repo().Len(),
					})
				}
				fmt.Fprintln(cmd.OutOrStdout(), ui.RenderPass(fmt.Sprintf(
					"Imported %d recipes (%d new, %d updated). Saved: %d",
					len(recipes), added, len(recipes)-added, a.repo().Len())))
				return nil
			})
		},
	}
}

// readRecipes decodes the recipe list at path. Files ending in .yaml or
// .yml are YAML; everything else, including stdin, is tried as JSON first.
func readRecipes(stdin io.Reader, path string) ([]types.Recipe, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, userError("read %s: %w", path, err)
	}

	var recipes []types.Recipe
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &recipes)
	default:
		if err = json.Unmarshal(data, &recipes); err != nil {
			if yerr := yaml.Unmarshal(data, &recipes); yerr == nil {
				err = nil
			}
		}
	}
	if err != nil {
		return nil, userError("parse %s: %w", path, err)
	}
	return recipes, nil
}
