// =============================================================================
// WhiteSource CSV Agent - Update Pipeline
// =============================================================================
//
// This file wires the update pipeline behind the root command.
//
// PROCESSING PIPELINE:
//   1. Load wss.properties (a read failure is fatal)
//   2. Build the console logger (DEBUG only when debug=true)
//   3. Build the inventory client (wssUrl overrides the default endpoint)
//   4. Run the agent on the input file
//
// =============================================================================

package cmd

import (
	"net/http"

	"github.com/spf13/cobra"

	"github.com/ginjaninja78/wss-csv-agent/internal/agent"
	"github.com/ginjaninja78/wss-csv-agent/internal/config"
	"github.com/ginjaninja78/wss-csv-agent/internal/inventory"
	"github.com/ginjaninja78/wss-csv-agent/internal/logging"
)

// runUpdate loads the configuration and runs the agent on inputPath.
func runUpdate(cmd *cobra.Command, opts *rootOptions, inputPath string) error {
	cfg, err := config.Load(opts.cfgFile)
	if err != nil {
		return err
	}

	logger := logging.New(cfg.Debug, cmd.OutOrStdout())
	defer logger.Sync() //nolint:errcheck // stdout sync errors are not actionable

	client := inventory.New(cfg.WSSURL, &http.Client{Timeout: cfg.RequestTimeout}, logger)

	var agentOpts []agent.Option
	if opts.dryRun {
		agentOpts = append(agentOpts, agent.WithDryRun(cmd.OutOrStdout()))
	}

	return agent.New(cfg, client, logger, agentOpts...).Run(cmd.Context(), inputPath)
}
