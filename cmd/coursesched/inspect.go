package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/ukaji3/coursesched-go/pkg/coursesched"
	"github.com/ukaji3/coursesched-go/pkg/coursesched/output"
)

func newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect [input.xlsx]",
		Short: "Describe the sheets of a workbook and how they would be read",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reports, err := coursesched.Inspect(args[0], options())
			if err != nil {
				return fmt.Errorf("inspection failed: %w", err)
			}

			jsonData, err := output.ValueToJSON(reports, true)
			if err != nil {
				return fmt.Errorf("serialization failed: %w", err)
			}
			fmt.Print(string(jsonData))
			return nil
		},
	}
}
