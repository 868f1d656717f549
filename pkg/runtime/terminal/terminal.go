package terminal

import (
	"io"
	"os"

	"github.com/de-tools/data-probe/pkg/runtime/terminal/commands"
	"github.com/de-tools/data-probe/pkg/services/fixgen"
	"github.com/de-tools/data-probe/pkg/services/quality"
	"github.com/spf13/cobra"
)

// CLI represents the command-line interface
type CLI struct {
	analyzer quality.Analyzer
	fixer    *fixgen.Generator
	reporter *Reporter
	output   io.Writer
	rootCmd  *cobra.Command
}

// Options contain configuration for the CLI
type Options struct {
	Analyzer quality.Analyzer
	Fixer    *fixgen.Generator
	Output   io.Writer
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	cli := &CLI{
		analyzer: opts.Analyzer,
		fixer:    opts.Fixer,
		reporter: NewReporter(opts.Output),
		output:   opts.Output,
	}

	cli.rootCmd = cli.newRootCmd()
	return cli
}

func (cli *CLI) Execute() error {
	return cli.rootCmd.Execute()
}

func (cli *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "probe",
		Short: "Dataset quality probe",
	}

	cmd.AddCommand(commands.NewAnalyzeCmd(cli.analyzer, cli.reporter))
	cmd.AddCommand(commands.NewFixCmd(cli.fixer, cli.output))

	return cmd
}
