package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/webidl-tools/widlidl/internal/config"
	"github.com/webidl-tools/widlidl/parser"
	"github.com/webidl-tools/widlidl/scanner"
)

var fmtWrite bool

// fmtCmd re-serializes each file through the parser and verifies the
// output is byte-identical to the input. The parser is nullipotent, so
// any difference means the parser dropped or reordered source text —
// this is the round-trip invariant as a CLI-level self-check.
var fmtCmd = &cobra.Command{
	Use:   "fmt [paths...]",
	Short: "Round-trip WebIDL files through the parser and verify byte identity",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			fmt.Println("error: Please provide file or directory paths")
			os.Exit(1)
		}

		cfg, err := config.Load(cfgFile)
		if err != nil {
			logger.Fatal("Failed to load configuration", zap.Error(err))
		}

		failed := false
		for _, path := range args {
			for _, file := range collectFiles(path, cfg.Extensions) {
				if !roundTripFile(file) {
					failed = true
				}
			}
		}
		if failed {
			os.Exit(1)
		}
	},
}

func init() {
	fmtCmd.Flags().BoolVarP(&fmtWrite, "write", "w", false, "Rewrite each file with the serialized output")
}

func collectFiles(path string, extensions []string) []string {
	info, err := os.Stat(path)
	if err != nil {
		logger.Error("Error accessing path", zap.String("path", path), zap.Error(err))
		return nil
	}
	if !info.IsDir() {
		return []string{path}
	}
	files, err := scanner.New(path, extensions...).Scan()
	if err != nil {
		logger.Error("Error scanning directory", zap.String("path", path), zap.Error(err))
		return nil
	}
	paths := make([]string, len(files))
	for i, f := range files {
		paths[i] = f.Path
	}
	return paths
}

func roundTripFile(file string) bool {
	content, err := os.ReadFile(file)
	if err != nil {
		logger.Error("Failed to read file", zap.String("file", file), zap.Error(err))
		return false
	}

	p := parser.New(string(content), nil)
	out := p.String()
	if out != string(content) {
		fmt.Printf("%s: serialization differs from input (%d bytes in, %d bytes out)\n", file, len(content), len(out))
		return false
	}

	if fmtWrite {
		if err := os.WriteFile(file, []byte(out), 0o644); err != nil {
			logger.Error("Failed to write file", zap.String("file", file), zap.Error(err))
			return false
		}
	}
	fmt.Printf("%s: ok\n", file)
	return true
}
