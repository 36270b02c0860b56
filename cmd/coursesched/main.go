// Package main provides the CLI entry point for coursesched-go.
package main

import (
	"fmt"
	"os"
	"time"
	_ "time/tzdata"

	"github.com/spf13/cobra"
	"github.com/ukaji3/coursesched-go/pkg/coursesched"
	"github.com/ukaji3/coursesched-go/pkg/coursesched/config"
	"github.com/ukaji3/coursesched-go/pkg/coursesched/output"
	"github.com/ukaji3/coursesched-go/pkg/logx"
)

var (
	outputPath string
	pretty     bool
	configPath string
	logLevel   string

	logger logx.Logger
	cfg    *config.Config
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Printf("ERROR: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "coursesched [input.xlsx]",
		Short: "Extract course schedules from Excel workbooks",
		Long: `coursesched-go reads the schedule sheets of a workbook (dynamic, fixed
and free-grid layouts) and writes the courses they describe as JSON.`,
		Args:              cobra.ExactArgs(1),
		PersistentPreRunE: setup,
		RunE:              run,
		SilenceErrors:     true,
		SilenceUsage:      true,
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "YAML file with column mapping and defaults")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: temp_courses_<timestamp>.json)")
	rootCmd.Flags().BoolVar(&pretty, "pretty", true, "Pretty-print JSON output")

	rootCmd.AddCommand(newInspectCmd())
	rootCmd.AddCommand(newICSCmd())
	return rootCmd
}

// setup configures logging once for the process and loads the configuration.
func setup(cmd *cobra.Command, args []string) error {
	logx.Setup()
	logger = logx.NewConsole(logLevel)

	var err error
	cfg, err = config.Load(configPath)
	if err != nil {
		return err
	}
	return nil
}

func options() coursesched.Options {
	return coursesched.Options{
		Config: cfg,
		Logger: logger,
	}
}

func run(cmd *cobra.Command, args []string) error {
	records, err := coursesched.Extract(args[0], options())
	if err != nil {
		return fmt.Errorf("extraction failed: %w", err)
	}

	jsonData, err := output.ToJSON(records, pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}

	path := outputPath
	if path == "" {
		path = output.DefaultPath(time.Now())
	}
	if err := output.WriteFile(path, jsonData); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	logger.Info("courses saved", logx.String("output", path), logx.Int("courses", len(records)))
	fmt.Printf("SUCCESS: %s\n", path)
	return nil
}
