package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mvirtane/leadwizard/internal/survey"
	"github.com/spf13/cobra"
)

func newQuestionsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "questions",
		Short: "List the question catalog",
		RunE: func(cmd *cobra.Command, _ []string) error {
			headers := []string{"#", "ID", "Label", "Kind", "Options"}
			rows := make([][]string, 0, len(survey.Questions()))
			for i, q := range survey.Questions() {
				rows = append(rows, []string{
					strconv.Itoa(i + 1),
					q.ID,
					q.Label,
					q.Kind.String(),
					strings.Join(q.Options, ", "),
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(headers, rows))
			return nil
		},
	}
}
