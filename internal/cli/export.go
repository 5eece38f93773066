package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/recipebox/internal/ui"
)

// writeClipboard copies text to the system clipboard. Overridden in tests.
var writeClipboard = clipboard.WriteAll

func newExportCmd() *cobra.Command {
	var (
		toClipboard bool
		out         string
		pretty      bool
	)
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Print the whole collection as JSON",
		Long: "Write the full recipe collection as a JSON array to stdout, a file\n" +
			"(--out) or the clipboard (--clipboard). The output can be read back\n" +
			"with recipebox import.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(_ context.Context, a *app) error {
				data, err := a.repo().ExportJSON()
				if err != nil {
					return sysError("export: %w", err)
				}
				if pretty {
					var buf bytes.Buffer
					if err := json.Indent(&buf, data, "", "  "); err != nil {
						return sysError("export: %w", err)
					}
					data = buf.Bytes()
				}

				switch {
				case toClipboard:
					if err := writeClipboard(string(data)); err != nil {
						return sysError("copy to clipboard: %w", err)
					}
					fmt.Fprintln(cmd.ErrOrStderr(), ui.RenderPass(fmt.Sprintf("Copied %d recipes to the clipboard", a.repo().Len())))
				case out != "":
					if err := os.WriteFile(out, append(data, '\n'), 0o644); err != nil {
						return sysError("write %s: %w", out, err)
					}
					fmt.Fprintln(cmd.ErrOrStderr(), ui.RenderPass(fmt.Sprintf("Wrote %d recipes to %s", a.repo().Len(), out)))
				default:
					fmt.Fprintln(cmd.OutOrStdout(), string(data))
				}
				return nil
			})
		},
	}
	cmd.Flags().BoolVarP(&toClipboard, "clipboard", "c", false, "copy to the clipboard")
	cmd.Flags().StringVarP(&out, "out", "o", "", "write to a file")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "indent the JSON")
	cmd.MarkFlagsMutuallyExclusive("clipboard", "out")
	return cmd
}
