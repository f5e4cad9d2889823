// =============================================================================
// WhiteSource CSV Agent - Version Command
// =============================================================================
//
// This file defines the 'version' command, which displays the application
// version and the agent identification sent to the service.
//
// COMMAND USAGE:
//   wss-csv version
//
// OUTPUT:
//   WhiteSource CSV Agent
//   Version:       1.0.0
//   Build Date:    2024-01-01
//   Agent:         csv-plugin/1.0
//   Go Version:    go1.24.0
//
// =============================================================================

package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/ginjaninja78/wss-csv-agent/internal/inventory"
)

// =============================================================================
// VERSION INFORMATION
// =============================================================================
// These variables are set at build time using ldflags.
// Example build command:
//   go build -ldflags "-X 'github.com/ginjaninja78/wss-csv-agent/cmd.Version=1.0.0'"

// Version is the application version.
var Version = "1.0.0"

// BuildDate is the date the application was built.
var BuildDate = "unknown"

// newVersionCmd creates the 'version' command.
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Display the application version",
		Long:  `Display the application version, build date, agent identification, and Go runtime version.`,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "WhiteSource CSV Agent")
			fmt.Fprintf(out, "Version:       %s\n", Version)
			fmt.Fprintf(out, "Build Date:    %s\n", BuildDate)
			fmt.Fprintf(out, "Agent:         %s/%s\n", inventory.AgentType, inventory.AgentVersion)
			fmt.Fprintf(out, "Go Version:    %s\n", runtime.Version())
		},
	}
}
