package cli

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/leapstack-labs/sqlcases/pkg/corpus"
	"github.com/leapstack-labs/sqlcases/pkg/dialect"
)

func newLintCommand() *cobra.Command {
	var (
		watch         bool
		assertsPrefix string
	)

	cmd := &cobra.Command{
		Use:   "lint",
		Short: "Validate the fixture corpora",
		Long: `Build both corpora and expand their test matrices, surfacing the
errors a test run would hit: malformed documents, duplicate case ids,
and unknown dialect literals. With --watch, fixture edits trigger
re-validation.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := lintOnce(cmd, assertsPrefix); err != nil {
				if !watch {
					return err
				}
				fmt.Fprintln(cmd.ErrOrStderr(), "Error:", err)
			}
			if !watch {
				return nil
			}
			return watchFixtures(cmd, assertsPrefix)
		},
	}

	cmd.Flags().BoolVar(&watch, "watch", false, "re-validate when fixture files change")
	cmd.Flags().StringVar(&assertsPrefix, "asserts", "", "also validate assertion fixtures under this category")
	return cmd
}

func lintOnce(cmd *cobra.Command, assertsPrefix string) error {
	loader := newLoader()
	w := cmd.OutOrStdout()

	supported, err := loader.Supported()
	if err != nil {
		return err
	}
	if _, err := corpus.Expand(supported, dialect.All()); err != nil {
		return err
	}
	unsupported, err := loader.Unsupported()
	if err != nil {
		return err
	}
	if _, err := corpus.Expand(unsupported, dialect.All()); err != nil {
		return err
	}
	fmt.Fprintf(w, "ok: %d supported, %d unsupported cases\n", supported.Len(), unsupported.Len())

	if assertsPrefix != "" {
		asserts, err := corpus.LoadAssertions(corpus.DetectSource(cfg.FixturesDir), assertsPrefix)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "ok: %d assertions under %s\n", len(asserts), assertsPrefix)
	}
	return nil
}

// watchFixtures re-validates on every filesystem event under the
// fixture tree. Each run constructs a fresh loader; built corpora are
// immutable and cannot be refreshed in place.
func watchFixtures(cmd *cobra.Command, assertsPrefix string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	err = filepath.WalkDir(cfg.FixturesDir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return watcher.Add(path)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("watch %s: %w", cfg.FixturesDir, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "watching %s\n", cfg.FixturesDir)
	for {
		select {
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			slog.Debug("fixture change", "file", ev.Name, "op", ev.Op.String())
			if err := lintOnce(cmd, assertsPrefix); err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), "Error:", err)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintln(cmd.ErrOrStderr(), "watch error:", err)
		}
	}
}
