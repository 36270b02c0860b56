package main

import (
	"bytes"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/ukaji3/coursesched-go/pkg/coursesched"
	"github.com/ukaji3/coursesched-go/pkg/coursesched/output"
	"github.com/ukaji3/coursesched-go/pkg/logx"
)

func newICSCmd() *cobra.Command {
	var (
		icsOutput string
		from      string
	)

	cmd := &cobra.Command{
		Use:   "ics [input.xlsx]",
		Short: "Export the extracted courses as a weekly recurring ICS calendar",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			loc, err := time.LoadLocation(cfg.ICS.Timezone)
			if err != nil {
				return fmt.Errorf("could not load timezone: %w", err)
			}

			start := time.Now().In(loc)
			if from != "" {
				start, err = time.ParseInLocation("2006-01-02", from, loc)
				if err != nil {
					return fmt.Errorf("invalid --from date %q: %w", from, err)
				}
			}

			records, err := coursesched.Extract(args[0], options())
			if err != nil {
				return fmt.Errorf("extraction failed: %w", err)
			}

			var buf bytes.Buffer
			n, err := output.ToICS(records, output.ICSOptions{
				Location: loc,
				Duration: time.Duration(cfg.ICS.DurationMinutes) * time.Minute,
				From:     start,
			}, &buf)
			if err != nil {
				return fmt.Errorf("failed to generate ICS: %w", err)
			}
			if err := output.WriteFile(icsOutput, buf.Bytes()); err != nil {
				return fmt.Errorf("failed to write output: %w", err)
			}
			if skipped := len(records) - n; skipped > 0 {
				logger.Warn("courses without a readable day or time were not exported", logx.Int("skipped", skipped))
			}

			fmt.Printf("SUCCESS: %s\n", icsOutput)
			return nil
		},
	}

	cmd.Flags().StringVarP(&icsOutput, "output", "o", "schedule.ics", "Output file path")
	cmd.Flags().StringVar(&from, "from", "", "First week to schedule, as YYYY-MM-DD (default: today)")
	return cmd
}
