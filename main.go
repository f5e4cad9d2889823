// =============================================================================
// WhiteSource CSV Agent - Main Entry Point
// =============================================================================
//
// This is the main entry point for the WhiteSource CSV agent. It hands
// control to the Cobra CLI defined in the cmd package.
//
// USAGE:
//   wss-csv <file>          - Send the dependencies in <file> to WhiteSource
//   wss-csv version         - Display the application version
//
// ARCHITECTURE:
//   - cmd/           : CLI command definitions (Cobra)
//   - internal/      : Pipeline stages (config, parsing, client, report)
//   - pkg/           : Shared file utilities
//
// =============================================================================

package main

import (
	"github.com/ginjaninja78/wss-csv-agent/cmd"
)

// main is the entry point of the application.
func main() {
	cmd.Execute()
}
