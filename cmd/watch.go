package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/webidl-tools/widlidl/internal/config"
	"github.com/webidl-tools/widlidl/internal/diag"
	"github.com/webidl-tools/widlidl/internal/engine"
	"github.com/webidl-tools/widlidl/internal/watch"
)

var watchCmd = &cobra.Command{
	Use:   "watch [paths...]",
	Short: "Re-check WebIDL files whenever they change",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			fmt.Println("error: Please provide file or directory paths")
			os.Exit(1)
		}

		cfg, err := config.Load(cfgFile)
		if err != nil {
			logger.Fatal("Failed to load configuration", zap.Error(err))
		}

		report := func(path string, issues []diag.Issue) {
			if len(issues) == 0 {
				return
			}
			sourceCode, err := diag.ReadSourceCode(path)
			if err != nil {
				logger.Error("Error reading source file", zap.String("file", path), zap.Error(err))
				return
			}
			fmt.Println(diag.FormatIssuesWithArrows(issues, sourceCode))
		}

		check := func(path string) ([]diag.Issue, error) {
			// a fresh engine per change keeps duplicate tracking scoped
			// to one file generation
			return engine.New(cfg, logger).CheckFile(path)
		}

		w, err := watch.New(args, cfg.Extensions, logger, check, report)
		if err != nil {
			logger.Fatal("Failed to start watcher", zap.Error(err))
		}
		logger.Info("watching for changes", zap.Strings("paths", args))
		if err := w.Run(context.Background()); err != nil && err != context.Canceled {
			logger.Error("Watcher stopped", zap.Error(err))
			os.Exit(1)
		}
	},
}
