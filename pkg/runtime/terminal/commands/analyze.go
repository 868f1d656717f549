package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/de-tools/data-probe/pkg/models/domain"
	"github.com/de-tools/data-probe/pkg/services/quality"
	"github.com/spf13/cobra"
)

// ReportRenderer renders a finished report to the terminal.
type ReportRenderer interface {
	Handle(report *domain.Report) error
}

func NewAnalyzeCmd(analyzer quality.Analyzer, renderer ReportRenderer) *cobra.Command {
	return &cobra.Command{
		Use:   "analyze <file>",
		Short: "Analyze the quality of a CSV or JSON dataset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			content, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("read %s: %w", path, err)
			}

			report, err := analyzer.Analyze(cmd.Context(), content, filepath.Base(path))
			if err != nil {
				return err
			}

			return renderer.Handle(report)
		},
	}
}
