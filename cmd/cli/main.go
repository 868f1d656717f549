package main

import (
	"fmt"
	"os"

	"github.com/de-tools/data-probe/pkg/runtime/terminal"
	"github.com/de-tools/data-probe/pkg/services/fixgen"
	"github.com/de-tools/data-probe/pkg/services/quality"
	"github.com/de-tools/data-probe/pkg/services/summary"
)

func main() {
	cli := terminal.NewCLI(terminal.Options{
		// The terminal runtime stays offline: deterministic summaries,
		// no report history.
		Analyzer: quality.NewAnalyzer(summary.NewStatic(), nil),
		Fixer:    fixgen.NewGenerator(),
		Output:   os.Stdout,
	})

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
