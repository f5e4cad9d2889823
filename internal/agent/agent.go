// =============================================================================
// WhiteSource CSV Agent - Agent Module
// =============================================================================
//
// This module runs the update pipeline for one input file.
//
// PIPELINE:
//   1. Check the required configuration (API key, project token)
//   2. Read and validate the input file (CSV or XLSX)
//   3. Send the submission to the inventory service (one request, no retry)
//   4. Log the created and updated projects
//
// ERROR HANDLING:
//   Run never exits the process. Fatal conditions are returned as errors and
//   the caller decides on the exit status. A missing input file is not an
//   error: it is logged at INFO and the run ends without contacting the
//   service.
//
// =============================================================================

package agent

import (
	"context"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/ginjaninja78/wss-csv-agent/internal/config"
	"github.com/ginjaninja78/wss-csv-agent/internal/csvparser"
	"github.com/ginjaninja78/wss-csv-agent/internal/report"
	"github.com/ginjaninja78/wss-csv-agent/internal/types"
	"github.com/ginjaninja78/wss-csv-agent/internal/xlsxparser"
	"github.com/ginjaninja78/wss-csv-agent/pkg/utils"
)

// =============================================================================
// DEPENDENCIES
// =============================================================================

// Updater sends a submission to the inventory service.
// *inventory.Client implements it.
type Updater interface {
	Update(ctx context.Context, apiKey string, submission *types.ProjectSubmission) (*types.SubmissionResult, error)
	URL() string
}

// =============================================================================
// AGENT STRUCTURE
// =============================================================================

// Agent runs the pipeline for a single input file.
type Agent struct {
	cfg     *config.Config
	updater Updater
	logger  *zap.SugaredLogger

	// dryRunOut receives the submission as YAML instead of sending it.
	// Nil means a normal run.
	dryRunOut io.Writer
}

// Option customizes an Agent.
type Option func(*Agent)

// WithDryRun makes Run print the submission to out and skip the service call.
func WithDryRun(out io.Writer) Option {
	return func(a *Agent) {
		a.dryRunOut = out
	}
}

// New creates an Agent.
func New(cfg *config.Config, updater Updater, logger *zap.SugaredLogger, opts ...Option) *Agent {
	a := &Agent{
		cfg:     cfg,
		updater: updater,
		logger:  logger,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// =============================================================================
// MAIN PROCESSING FUNCTION
// =============================================================================

// Run reads inputPath and submits its dependencies.
//
// RETURNS:
//   - nil on success, on dry run, and when the input file does not exist.
//   - config.ErrMissingAPIKey / config.ErrMissingProjectToken before anything
//     is read or sent.
//   - An error wrapping utils.ErrInputRead when the input cannot be read.
//   - An error wrapping *inventory.ServiceError when the update fails.
func (a *Agent) Run(ctx context.Context, inputPath string) error {
	if err := a.cfg.Validate(); err != nil {
		return err
	}

	submission, err := a.readInput(inputPath)
	if errors.Is(err, utils.ErrInputNotFound) {
		a.logger.Infof("File %s not found!", inputPath)
		return nil
	}
	if err != nil {
		return err
	}

	if a.dryRunOut != nil {
		return a.writeDryRun(submission)
	}

	if a.cfg.WSSURL != "" {
		a.logger.Debugf("Service Url is %s", a.updater.URL())
	}

	a.logger.Info("Updating White Source")
	result, err := a.updater.Update(ctx, a.cfg.APIKey, submission)
	if err != nil {
		return fmt.Errorf("a problem occurred while updating projects: %w", err)
	}

	report.Log(result, a.logger)
	return nil
}

// readInput picks the reader for the file format.
func (a *Agent) readInput(path string) (*types.ProjectSubmission, error) {
	format := utils.DetectFormat(path)
	if size, err := utils.GetFileSize(path); err == nil {
		a.logger.Debugf("Reading %s file %s (%d bytes)", format, path, size)
	}

	switch format {
	case utils.FormatXLSX:
		return xlsxparser.Parse(path, a.cfg.ProjectToken, a.logger)
	default:
		return csvparser.Parse(path, a.cfg.ProjectToken, a.logger)
	}
}

func (a *Agent) writeDryRun(submission *types.ProjectSubmission) error {
	a.logger.Infof("Dry run: %d dependencies found, nothing sent", len(submission.Dependencies))

	enc := yaml.NewEncoder(a.dryRunOut)
	enc.SetIndent(2)
	if err := enc.Encode(submission); err != nil {
		return fmt.Errorf("failed to write submission: %w", err)
	}
	return enc.Close()
}
