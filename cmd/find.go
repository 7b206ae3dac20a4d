package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/webidl-tools/widlidl/internal/diag"
	"github.com/webidl-tools/widlidl/parser"
)

var findAll bool

var findCmd = &cobra.Command{
	Use:   "find <file> <path>",
	Short: "Resolve a dotted or slashed path (Interface/member/argument) in a WebIDL file",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		file, query := args[0], args[1]

		content, err := os.ReadFile(file)
		if err != nil {
			logger.Fatal("Failed to read file", zap.String("file", file), zap.Error(err))
		}

		collector := &diag.Collector{Filename: file}
		p := parser.New(string(content), collector)

		matches := p.FindAll(query)
		if !findAll && len(matches) > 1 {
			matches = matches[:1]
		}
		if len(matches) == 0 {
			fmt.Printf("no construct matches %q\n", query)
			os.Exit(1)
		}
		for _, c := range matches {
			fmt.Printf("%s: %s\n", c.IdlType(), trimmed(c.String()))
		}
	},
}

func init() {
	findCmd.Flags().BoolVar(&findAll, "all", false, "Print every match instead of the first")
}

func trimmed(s string) string {
	const max = 200
	if len(s) > max {
		return s[:max] + "..."
	}
	return s
}
