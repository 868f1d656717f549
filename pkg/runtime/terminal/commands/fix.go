package commands

import (
	"fmt"
	"io"

	"github.com/de-tools/data-probe/pkg/models/domain"
	"github.com/de-tools/data-probe/pkg/services/fixgen"
	"github.com/spf13/cobra"
)

func NewFixCmd(fixer *fixgen.Generator, output io.Writer) *cobra.Command {
	var column string
	var issueType string

	cmd := &cobra.Command{
		Use:   "fix <file>",
		Short: "Print a remediation snippet for a detected issue",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			issue := domain.Issue{
				Column: column,
				Type:   domain.IssueType(issueType),
			}
			fixCode, err := fixer.Generate(issue, args[0])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(output, fixCode)
			return err
		},
	}

	cmd.Flags().StringVar(&column, "column", "", "column the issue was reported for")
	cmd.Flags().StringVar(&issueType, "type", string(domain.IssueOther),
		"issue type: missing_values, duplicate_values, outliers or other")
	_ = cmd.MarkFlagRequired("column")

	return cmd
}
