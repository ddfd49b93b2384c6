// Package main provides the CLI entry point for schedtable-go.
package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/ukaji3/schedtable-go/pkg/schedtable"
	"github.com/ukaji3/schedtable-go/pkg/schedtable/models"
	"github.com/ukaji3/schedtable-go/pkg/schedtable/output"
)

var (
	outputPath   string
	format       string
	pretty       bool
	configPath   string
	sheet        string
	noTrim       bool
	noMerge      bool
	onConflict   string
	daysDir      string
	templatePath string
	stylesheet   string
	verbose      bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "schedtable [schedule.xml|schedule.xlsx]",
		Short: "Render event schedules as time slot tables",
		Long: `schedtable-go lays out the events of a schedule on a grid of time slots
and rooms and writes the result as HTML, JSON or an Excel workbook.`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE:         run,
	}

	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	rootCmd.Flags().StringVar(&format, "format", "html", "Output format: html, json, xlsx")
	rootCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	rootCmd.Flags().StringVar(&configPath, "config", "", "Layout config file (.toml, .yaml)")
	rootCmd.Flags().StringVar(&sheet, "sheet", "", "Event sheet of xlsx input (default: first sheet)")
	rootCmd.Flags().BoolVar(&noTrim, "no-trim", false, "Keep trailing empty time slots")
	rootCmd.Flags().BoolVar(&noMerge, "no-merge", false, "Do not merge neighbouring cells of one event")
	rootCmd.Flags().StringVar(&onConflict, "on-conflict", "", "Conflict policy: fail, skip (default: from config or fail)")
	rootCmd.Flags().StringVar(&daysDir, "days-dir", "", "Directory for per-day output files")
	rootCmd.Flags().StringVar(&templatePath, "template", "", "Page template file for html output")
	rootCmd.Flags().StringVar(&stylesheet, "stylesheet", "", "Stylesheet URL linked from html output")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newLogger(w io.Writer) *log.Logger {
	level := log.InfoLevel
	if verbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

func run(cmd *cobra.Command, args []string) error {
	inputPath := args[0]
	logger := newLogger(os.Stderr)

	switch format {
	case "html", "json", "xlsx":
	default:
		return fmt.Errorf("invalid format: %s (must be html, json, or xlsx)", format)
	}

	opts := schedtable.DefaultOptions()
	if configPath != "" {
		var err error
		if opts, err = schedtable.LoadOptions(configPath); err != nil {
			return err
		}
		logger.Debug("Loaded config", "path", configPath)
	}
	if sheet != "" {
		opts.Sheet = sheet
	}
	if onConflict != "" {
		opts.OnConflict = schedtable.ConflictPolicy(onConflict)
	}
	off := false
	if noTrim {
		opts.Trim = &off
	}
	if noMerge {
		opts.Merge = &off
	}
	opts.Logger = logger

	var tmpl string
	if templatePath != "" {
		data, err := os.ReadFile(templatePath)
		if err != nil {
			return fmt.Errorf("failed to read template: %w", err)
		}
		tmpl = string(data)
	}

	// Days that failed are reported after the others are written.
	tt, convErr := schedtable.Convert(inputPath, opts)
	if tt == nil {
		return fmt.Errorf("conversion failed: %w", convErr)
	}

	var buf bytes.Buffer
	if err := write(&buf, tt, tmpl); err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}

	// Write output
	if outputPath != "" {
		if err := os.WriteFile(outputPath, buf.Bytes(), 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		logger.Info("Wrote timetable", "path", outputPath, "days", len(tt.Days))
	} else if daysDir == "" {
		if _, err := os.Stdout.Write(buf.Bytes()); err != nil {
			return err
		}
	}

	// Write per-day files
	if daysDir != "" {
		if err := writeDayFiles(tt, daysDir, tmpl); err != nil {
			return fmt.Errorf("failed to write day files: %w", err)
		}
		logger.Info("Wrote day files", "dir", daysDir, "days", len(tt.Days))
	}

	if convErr != nil {
		return fmt.Errorf("conversion failed: %w", convErr)
	}
	return nil
}

func write(w io.Writer, tt *models.Timetable, tmpl string) error {
	switch format {
	case "json":
		data, err := output.ToJSON(tt, pretty)
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	case "xlsx":
		return output.WriteXLSX(w, tt)
	default:
		return output.RenderPage(w, tt, tmpl, stylesheet)
	}
}

func writeDayFiles(tt *models.Timetable, dir, tmpl string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	for _, day := range tt.Days {
		var data []byte
		if format == "json" {
			var err error
			if data, err = output.DayToJSON(&day, pretty); err != nil {
				return err
			}
		} else {
			single := &models.Timetable{Source: tt.Source, Days: []models.DayTable{day}}
			var buf bytes.Buffer
			if err := write(&buf, single, tmpl); err != nil {
				return fmt.Errorf("day %s: %w", day.Date, err)
			}
			data = buf.Bytes()
		}

		filename := filepath.Join(dir, day.Date+"."+format)
		if err := os.WriteFile(filename, data, 0644); err != nil {
			return err
		}
	}

	return nil
}
