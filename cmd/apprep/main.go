// Package main provides the CLI entry point for apprep.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/ukaji3/apprep-go/internal/config"
	"github.com/ukaji3/apprep-go/internal/logging"
	"github.com/ukaji3/apprep-go/internal/metrics"
	"github.com/ukaji3/apprep-go/pkg/apprep"
)

const usageLine = "Usage: apprep <data_json> <output_xlsx>"

// errRunFailed marks a failure that has already been reported.
var errRunFailed = errors.New("report generation failed")

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	var (
		configPath  string
		logLevel    string
		logFormat   string
		metricsFile string
		verify      string
		noOverwrite bool
	)

	rootCmd := &cobra.Command{
		Use:   "apprep <data_json> <output_xlsx>",
		Short: "Generate the appraisal summary workbook",
		Long: `apprep turns an appraisal dataset (JSON) into an Excel report with
employee and manager section scores, live totals, scaled scores and ratings.`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			if flags.Changed("log-level") {
				cfg.LogLevel = logLevel
			}
			if flags.Changed("log-format") {
				cfg.LogFormat = logFormat
			}
			if flags.Changed("metrics-file") {
				cfg.MetricsFile = metricsFile
			}
			if flags.Changed("verify") {
				cfg.Verify = verify
			}
			if flags.Changed("no-overwrite") {
				cfg.Overwrite = !noOverwrite
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			logger, err := logging.New(stdout, cfg.LogLevel, cfg.LogFormat)
			if err != nil {
				return err
			}
			log := logger.WithField("run_id", uuid.NewString())
			log.WithField("path", args[0]).Info("input json")
			log.WithField("path", args[1]).Info("output excel")

			res := apprep.Build(args[0], args[1], apprep.Options{
				Verify:    apprep.VerifyMode(cfg.Verify),
				Overwrite: cfg.Overwrite,
				Logger:    log,
			})

			if cfg.MetricsFile != "" {
				m := metrics.NewManager()
				m.Observe(metrics.Run{
					OK:       res.OK,
					Rows:     len(res.Rows),
					Bytes:    res.Size,
					Duration: res.Duration,
					Finished: time.Now(),
				})
				if err := m.WriteFile(cfg.MetricsFile); err != nil {
					log.WithError(err).Warn("could not write metrics")
				}
			}

			if !res.OK {
				fmt.Fprintf(stdout, "ERROR: %s\n%+v\n", res.Message, res.Err)
				return errRunFailed
			}
			log.WithFields(logrus.Fields{
				"path":  res.OutputPath,
				"bytes": res.Size,
			}).Info("file size")
			return nil
		},
	}

	flags := rootCmd.Flags()
	flags.StringVar(&configPath, "config", "", "YAML config file")
	flags.StringVar(&logLevel, "log-level", "info", "Log level: debug, info, warn, error")
	flags.StringVar(&logFormat, "log-format", "text", "Log format: text or json")
	flags.StringVar(&metricsFile, "metrics-file", "", "Write run metrics in Prometheus text format to this file")
	flags.StringVar(&verify, "verify", "full", "Output check: basic (exists, non-empty) or full (also reopen and inspect)")
	flags.BoolVar(&noOverwrite, "no-overwrite", false, "Fail when the output file already exists")

	if args == nil {
		// cobra falls back to os.Args when given nil.
		args = []string{}
	}
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errRunFailed) {
			fmt.Fprintf(stdout, "ERROR: %v\n%s\n", err, usageLine)
		}
		return 1
	}
	return 0
}
