// Package engine runs the WebIDL parser over files and directory trees,
// collecting diagnostics. Directories are processed by a bounded worker
// pool with a terminal progress bar; each file gets its own parser, so
// concurrency never touches a parser from two goroutines.
package engine

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"

	"github.com/webidl-tools/widlidl/internal/config"
	"github.com/webidl-tools/widlidl/internal/diag"
	"github.com/webidl-tools/widlidl/internal/nameindex"
	"github.com/webidl-tools/widlidl/parser"
	"github.com/webidl-tools/widlidl/widl"
)

// Engine checks files against the grammar and tracks construct paths
// across the whole run to flag duplicate definitions.
type Engine struct {
	cfg    *config.Config
	logger *zap.Logger

	mu    sync.Mutex
	paths *nameindex.Index
}

// New returns an Engine for one check run.
func New(cfg *config.Config, logger *zap.Logger) *Engine {
	if cfg == nil {
		cfg = config.Default()
	}
	return &Engine{cfg: cfg, logger: logger, paths: nameindex.New()}
}

// CheckFile parses one file and returns its issues.
func (e *Engine) CheckFile(path string) ([]diag.Issue, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", path, err)
	}
	return e.CheckSource(path, string(content)), nil
}

// CheckSource parses source text under a display name and returns its
// issues, filtered per the configuration.
func (e *Engine) CheckSource(path, source string) []diag.Issue {
	collector := &diag.Collector{Filename: path}
	p := parser.New(source, collector)

	e.recordPaths(path, collector, p.Constructs())

	var issues []diag.Issue
	for _, issue := range collector.Issues {
		if e.cfg.Ignored(issue.Kind) {
			continue
		}
		issues = append(issues, issue)
	}
	return issues
}

// recordPaths inserts every named top-level construct path into the
// run-wide index; a second definition of the same path is a duplicate.
// Members are not inserted. Partial
// interfaces and dictionaries are exactly the constructs the grammar
// allows to repeat, so they are skipped.
func (e *Engine) recordPaths(path string, collector *diag.Collector, constructs []widl.Construct) {
	e.mu.Lock()
	defer e.mu.Unlock()
	for _, c := range constructs {
		if isPartial(c) {
			continue
		}
		full := widl.FullName(c)
		if full == "" {
			continue
		}
		if e.paths.Insert([]string{full}) {
			collector.Issues = append(collector.Issues, diag.Issue{
				Filename: path,
				Kind:     diag.KindDuplicate,
				Message:  "duplicate definition of " + full,
				Line:     1,
				Column:   1,
			})
		}
	}
}

func isPartial(c widl.Construct) bool {
	switch v := c.(type) {
	case *widl.Interface:
		return v.Partial
	case *widl.Dictionary:
		return v.Partial
	}
	return false
}

// ProcessPaths checks every configured-extension file under the given
// files and directories.
func (e *Engine) ProcessPaths(ctx context.Context, paths []string) ([]diag.Issue, error) {
	var all []diag.Issue
	for _, path := range paths {
		issues, err := e.processPath(ctx, path)
		if err != nil {
			if e.logger != nil {
				e.logger.Error("Error processing path", zap.String("path", path), zap.Error(err))
			}
			return nil, err
		}
		all = append(all, issues...)
	}
	diag.Sort(all)
	return all, nil
}

func (e *Engine) processPath(ctx context.Context, path string) ([]diag.Issue, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("error accessing %s: %w", path, err)
	}

	if !info.IsDir() {
		if !e.hasDesiredExtension(path) {
			return nil, nil
		}
		return e.CheckFile(path)
	}

	var files []string
	filepath.Walk(path, func(filePath string, fileInfo os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !fileInfo.IsDir() && e.hasDesiredExtension(filePath) {
			files = append(files, filePath)
		}
		return nil
	})
	return e.processFiles(ctx, path, files)
}

func (e *Engine) processFiles(ctx context.Context, label string, files []string) ([]diag.Issue, error) {
	resultChan := make(chan []diag.Issue, len(files))
	errorChan := make(chan error, len(files))

	maxWorkers := runtime.NumCPU()
	sem := make(chan struct{}, maxWorkers)

	bar := progressbar.NewOptions(len(files),
		progressbar.OptionSetDescription(label),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}))

	for _, filePath := range files {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
			sem <- struct{}{}
			go func(fp string) {
				defer func() { <-sem }()

				fileIssues, err := e.CheckFile(fp)
				if err != nil {
					if e.logger != nil {
						e.logger.Error("Error processing file", zap.String("file", fp), zap.Error(err))
					}
					errorChan <- err
					resultChan <- nil
				} else {
					resultChan <- fileIssues
					errorChan <- nil
				}
				bar.Add(1)
			}(filePath)
		}
	}

	var issues []diag.Issue
	for range files {
		if err := <-errorChan; err != nil {
			continue
		}
		if result := <-resultChan; result != nil {
			issues = append(issues, result...)
		}
	}

	fmt.Println()
	return issues, nil
}

func (e *Engine) hasDesiredExtension(path string) bool {
	ext := filepath.Ext(path)
	for _, want := range e.cfg.Extensions {
		if ext == want {
			return true
		}
	}
	return false
}
