package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/webidl-tools/widlidl/internal/config"
	"github.com/webidl-tools/widlidl/internal/diag"
	"github.com/webidl-tools/widlidl/internal/engine"
)

var (
	ignoreKinds     string
	checkJsonOutput bool
	outPath         string
)

var checkCmd = &cobra.Command{
	Use:   "check [paths...]",
	Short: "Parse WebIDL files and report grammar errors and legacy forms",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			fmt.Println("error: Please provide file or directory paths")
			os.Exit(1)
		}

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		cfg, err := config.Load(cfgFile)
		if err != nil {
			logger.Fatal("Failed to load configuration", zap.Error(err))
		}
		if ignoreKinds != "" {
			for _, kind := range strings.Split(ignoreKinds, ",") {
				cfg.IgnoreKinds = append(cfg.IgnoreKinds, strings.TrimSpace(kind))
			}
		}

		eng := engine.New(cfg, logger)
		issues, err := eng.ProcessPaths(ctx, args)
		if err != nil {
			logger.Error("Error processing files", zap.Error(err))
			os.Exit(1)
		}

		printIssues(logger, issues, checkJsonOutput, outPath)

		for _, issue := range issues {
			if issue.Kind != diag.KindLegacy {
				os.Exit(1)
			}
		}
	},
}

func init() {
	checkCmd.Flags().StringVar(&ignoreKinds, "ignore", "", "Comma-separated list of issue kinds to ignore")
	checkCmd.Flags().BoolVar(&checkJsonOutput, "json", false, "Output issues in JSON format")
	checkCmd.Flags().StringVarP(&outPath, "output", "o", "", "Output path (when using JSON)")
}

func printIssues(logger *zap.Logger, issues []diag.Issue, isJson bool, jsonOutput string) {
	issuesByFile := make(map[string][]diag.Issue)
	for _, issue := range issues {
		issuesByFile[issue.Filename] = append(issuesByFile[issue.Filename], issue)
	}

	sortedFiles := make([]string, 0, len(issuesByFile))
	for filename := range issuesByFile {
		sortedFiles = append(sortedFiles, filename)
	}
	sort.Strings(sortedFiles)

	if !isJson {
		// text output
		for _, filename := range sortedFiles {
			fileIssues := issuesByFile[filename]
			sourceCode, err := diag.ReadSourceCode(filename)
			if err != nil {
				logger.Error("Error reading source file", zap.String("file", filename), zap.Error(err))
				continue
			}
			output := diag.FormatIssuesWithArrows(fileIssues, sourceCode)
			fmt.Println(output)
		}
		return
	}

	// JSON output
	d, err := json.Marshal(issuesByFile)
	if err != nil {
		logger.Error("Error marshalling issues to JSON", zap.Error(err))
		return
	}
	if jsonOutput == "" {
		fmt.Println(string(d))
		return
	}
	f, err := os.Create(jsonOutput)
	if err != nil {
		logger.Error("Error creating JSON output file", zap.Error(err))
		return
	}
	defer f.Close()
	if _, err := f.Write(d); err != nil {
		logger.Error("Error writing JSON output file", zap.Error(err))
	}
}
