package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/recipebox/internal/query"
	"github.com/mesh-intelligence/recipebox/internal/slot"
	"github.com/mesh-intelligence/recipebox/internal/ui"
	"github.com/mesh-intelligence/recipebox/pkg/types"
)

const watchDebounce = 300 * time.Millisecond

func newWatchCmd() *cobra.Command {
	var f query.Filter
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Re-render the list whenever the stored collection changes",
		Long: "Print the list view, then print it again each time another recipebox\n" +
			"process writes the collection. Works with the file and sqlite backends.\n" +
			"Press Ctrl+C to exit.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFilter(f); err != nil {
				return err
			}
			return withApp(cmd, func(ctx context.Context, a *app) error {
				target, err := watchTarget(a.cfg)
				if err != nil {
					return err
				}
				a.session.SetFilter(f)
				if err := renderList(cmd, a); err != nil {
					return err
				}
				fmt.Fprintln(cmd.ErrOrStderr(), ui.RenderMuted("Watching for changes... (Press Ctrl+C to exit)"))

				ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
				defer stop()

				var mu sync.Mutex
				err = watchSlot(ctx, a.cfg.DataDir, target, watchDebounce, func() {
					mu.Lock()
					defer mu.Unlock()
					recipes, ok := a.store.Load(ctx)
					if !ok {
						fmt.Fprintln(cmd.ErrOrStderr(), ui.RenderFail("Stored collection is empty or unreadable"))
						return
					}
					visible := query.Apply(recipes, f, a.session.Locale())
					if flags.jsonMode {
						if err := writeJSON(cmd.OutOrStdout(), visible); err != nil {
							a.logger.Warn("render list", "error", err)
						}
						return
					}
					fmt.Fprintln(cmd.OutOrStdout())
					fmt.Fprint(cmd.OutOrStdout(), ui.List(visible, len(recipes), f.Tag))
				})
				if err != nil {
					return sysError("watch: %w", err)
				}
				fmt.Fprintln(cmd.ErrOrStderr(), ui.RenderMuted("Stopped watching."))
				return nil
			})
		},
	}
	cmd.Flags().StringVarP(&f.Text, "query", "q", "", "search title, tags and ingredients")
	cmd.Flags().StringVarP(&f.Tag, "tag", "t", "", "show only recipes with this tag")
	cmd.Flags().BoolVarP(&f.FavoritesOnly, "favorites", "f", false, "show only favorites")
	return cmd
}

// watchTarget names the file in DataDir that holds the collection.
func watchTarget(cfg types.Config) (string, error) {
	name, ok := slot.LocalFile(cfg)
	if !ok {
		return "", userError("watch is not supported for the %s backend", cfg.Backend)
	}
	return name, nil
}

// watchSlot calls onChange after name in dir is written, created or
// renamed over, coalescing bursts within delay. It returns nil when ctx is
// done.
func watchSlot(ctx context.Context, dir, name string, delay time.Duration, onChange func()) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	// Watch the directory: atomic writes replace the file itself.
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}

	var timer *time.Timer
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Base(event.Name) != name {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(delay, onChange)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			return err
		}
	}
}
