// =============================================================================
// WhiteSource CSV Agent - Root Command
// =============================================================================
//
// This file defines the root command for the Cobra CLI. The root command
// reads one dependency file and updates the configured WhiteSource project.
//
// COBRA CLI STRUCTURE:
//   rootCmd (wss-csv <file>)
//   └── versionCmd (wss-csv version)
//
// EXIT STATUS:
//   0 - the update succeeded, was a dry run, or the input file was missing
//   1 - any ERROR: bad configuration, unreadable input, service failure
//
// =============================================================================

package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/ginjaninja78/wss-csv-agent/internal/config"
	"github.com/ginjaninja78/wss-csv-agent/internal/logging"
)

// =============================================================================
// ROOT COMMAND DEFINITION
// =============================================================================

// rootOptions holds the flag values of the root command.
type rootOptions struct {
	// cfgFile is the path to the properties file.
	cfgFile string

	// dryRun prints the submission instead of sending it.
	dryRun bool
}

// newRootCmd creates the root command with its flags and subcommands.
func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "wss-csv <file>",
		Short: "Update a WhiteSource project from a CSV dependency list",
		Long: `wss-csv reads a dependency list (group,artifact,version per row) from a
CSV or XLSX file and sends it to WhiteSource as the inventory of the project
configured in wss.properties.

Configuration (wss.properties):
  apiKey=<organization api key>
  projectToken=<project token>
  wssUrl=<optional service url>
  debug=<true|false>

Example Usage:
  wss-csv dependencies.csv
  wss-csv --config ./conf/wss.properties dependencies.xlsx
  wss-csv --dry-run dependencies.csv`,

		Args: cobra.ExactArgs(1),

		// Errors are logged by Execute in the agent's own format.
		SilenceErrors: true,
		SilenceUsage:  true,

		RunE: func(cmd *cobra.Command, args []string) error {
			return runUpdate(cmd, opts, args[0])
		},
	}

	// --config flag: path to the properties file.
	cmd.PersistentFlags().StringVar(
		&opts.cfgFile,
		"config",
		config.DefaultFile,
		"Path to the properties file",
	)

	// --dry-run flag: print the submission as YAML and skip the service call.
	cmd.Flags().BoolVar(
		&opts.dryRun,
		"dry-run",
		false,
		"Print the dependencies that would be sent without contacting the service",
	)

	cmd.AddCommand(newVersionCmd())

	return cmd
}

// =============================================================================
// EXECUTE FUNCTION
// =============================================================================

// Execute runs the root command and exits with status 1 on any error.
// This is called by main.main().
func Execute() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		logging.New(false, rootCmd.OutOrStdout()).Error(err.Error())
		os.Exit(1)
	}
}
