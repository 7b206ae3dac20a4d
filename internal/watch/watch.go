// Package watch re-checks WebIDL files as they change on disk.
package watch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/webidl-tools/widlidl/internal/diag"
)

// CheckFunc re-checks one file, returning its issues.
type CheckFunc func(path string) ([]diag.Issue, error)

// Watcher runs a CheckFunc whenever a watched file is written.
type Watcher struct {
	watcher    *fsnotify.Watcher
	logger     *zap.Logger
	extensions []string
	check      CheckFunc
	report     func(path string, issues []diag.Issue)
}

// New builds a Watcher over the given directories (files are watched
// through their parent directory).
func New(paths, extensions []string, logger *zap.Logger, check CheckFunc, report func(string, []diag.Issue)) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{watcher: fsw, logger: logger, extensions: extensions, check: check, report: report}
	for _, path := range paths {
		if err := w.add(path); err != nil {
			fsw.Close()
			return nil, err
		}
	}
	return w, nil
}

func (w *Watcher) add(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("error accessing %s: %w", path, err)
	}
	if !info.IsDir() {
		return w.watcher.Add(filepath.Dir(path))
	}
	return filepath.Walk(path, func(p string, fi os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if fi.IsDir() {
			return w.watcher.Add(p)
		}
		return nil
	})
}

// Run blocks, re-checking written files until the context is done.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.watcher.Close()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			w.handleEvent(event)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("watch error", zap.Error(err))
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	if event.Op&fsnotify.Write != fsnotify.Write {
		return
	}
	if !w.wantedFile(event.Name) {
		return
	}
	// coalesce editor write bursts into one re-check
	time.Sleep(100 * time.Millisecond)

	issues, err := w.check(event.Name)
	if err != nil {
		w.logger.Error("re-check failed", zap.String("file", event.Name), zap.Error(err))
		return
	}
	w.logger.Info("re-checked", zap.String("file", event.Name), zap.Int("issues", len(issues)))
	if w.report != nil {
		w.report(event.Name, issues)
	}
}

func (w *Watcher) wantedFile(name string) bool {
	for _, ext := range w.extensions {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}
