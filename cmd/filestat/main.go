package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/M-D-Ai-Academy-LLC/open-agent-system/internal/analyzer"
	"github.com/M-D-Ai-Academy-LLC/open-agent-system/internal/config"
	"github.com/M-D-Ai-Academy-LLC/open-agent-system/internal/filesystem"
	"github.com/M-D-Ai-Academy-LLC/open-agent-system/internal/logging"
	"github.com/M-D-Ai-Academy-LLC/open-agent-system/internal/report"
	"github.com/M-D-Ai-Academy-LLC/open-agent-system/pkg/models"
)

var version = "0.1.0"

// Exit codes form the tool's contract with callers.
const (
	exitOK         = 0
	exitUsage      = 1
	exitNotFound   = 2
	exitProcessing = 3
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "[ERROR] %v\n", err)
		os.Exit(exitCode(err))
	}
}

// newRootCmd builds the filestat command surface.
func newRootCmd() *cobra.Command {
	var (
		outputFile string
		format     string
		verbose    bool
	)

	cmd := &cobra.Command{
		Use:   "filestat <input_file>",
		Short: "Analyze line, word and character counts of a text file",
		Long: `Filestat reads a UTF-8 text file and reports its line, word and
character counts as JSON or plain text, to stdout or an output file.`,
		Example: `  filestat data.txt
  filestat data.txt --output result.json
  filestat data.txt --format text --verbose`,
		Version:       version,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}

			// CLI flags override environment configuration. Verbose
			// only escalates debug mode, never resets it.
			cfg.InputPath = args[0]
			if outputFile != "" {
				cfg.OutputFile = outputFile
			}
			if format != "" {
				cfg.Format = format
			}
			if verbose {
				cfg.Debug = true
			}

			// Reject an unknown format before touching the filesystem.
			if _, err := config.ParseFormat(cfg.Format); err != nil {
				return err
			}

			return run(cfg)
		},
	}

	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "Path to output file (default: stdout)")
	cmd.Flags().StringVarP(&format, "format", "f", "", "Output format: json or text (default: json)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	return cmd
}

// run executes the validate, analyze, render pipeline.
func run(cfg *config.Config) error {
	logger, err := logging.NewLogger(cfg.Debug)
	if err != nil {
		return err
	}
	defer logger.Sync()

	if err := filesystem.Validate(cfg.InputPath); err != nil {
		return err
	}

	logger.Info("Processing input file", zap.String("path", cfg.InputPath))

	result, err := analyzer.New(cfg, logger).Analyze()
	if err != nil {
		logger.Debug("Processing failed", zap.Error(err), zap.Stack("stacktrace"))
		return err
	}

	if err := report.NewGenerator(cfg, logger).Generate(result); err != nil {
		logger.Debug("Processing failed", zap.Error(err), zap.Stack("stacktrace"))
		return err
	}

	return nil
}

// exitCode maps an error to the documented exit code contract.
func exitCode(err error) int {
	var notFound *models.NotFoundError
	if errors.As(err, &notFound) {
		return exitNotFound
	}

	var processing *models.ProcessingError
	if errors.As(err, &processing) {
		return exitProcessing
	}

	// Argument errors, non-regular-file targets and cobra's own parse
	// failures all report invalid usage.
	return exitUsage
}
