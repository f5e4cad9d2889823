// =============================================================================
// WhiteSource CSV Agent - Row Validation
// =============================================================================
//
// This module validates a single input row (from CSV or XLSX) and turns it
// into a Dependency. Invalid rows are dropped and never enter the data model.
//
// VALIDATION RULES:
//   1. The row must have exactly three fields: group, artifact, version.
//   2. None of the three fields may be blank (whitespace only counts as blank).
//
// ERROR HANDLING:
//   - Invalid rows are informational: they are logged at INFO and skipped.
//   - Each missing field is reported on its own line so the user can see
//     every problem with the row at once.
//
// =============================================================================

package validation

import (
	"strings"

	"go.uber.org/zap"

	"github.com/ginjaninja78/wss-csv-agent/internal/types"
)

// =============================================================================
// ROW LAYOUT
// =============================================================================

// ValidEntryLength is the number of fields a dependency row must have.
const ValidEntryLength = 3

// Column positions within a row.
const (
	GroupIDIndex    = 0
	ArtifactIDIndex = 1
	VersionIndex    = 2
)

// =============================================================================
// ROW VALIDATION
// =============================================================================

// Row validates the fields of one input row.
//
// PARAMETERS:
//   - fields: The raw field values of the row.
//   - line: The 1-based row number, used in log messages.
//   - logger: Receives INFO messages for skipped rows and a DEBUG message
//     for each accepted dependency.
//
// RETURNS:
//   - The dependency and true when the row is valid.
//   - A zero Dependency and false otherwise.
func Row(fields []string, line int, logger *zap.SugaredLogger) (types.Dependency, bool) {
	if len(fields) != ValidEntryLength {
		logger.Infof("Invalid entry in line %d, skipping", line)
		return types.Dependency{}, false
	}

	dep := types.Dependency{
		GroupID:    fields[GroupIDIndex],
		ArtifactID: fields[ArtifactIDIndex],
		Version:    fields[VersionIndex],
	}

	valid := true
	if isBlank(dep.GroupID) {
		valid = false
		logger.Info("Invalid dependency - missing groupId")
	}
	if isBlank(dep.ArtifactID) {
		valid = false
		logger.Info("Invalid dependency - missing artifactId")
	}
	if isBlank(dep.Version) {
		valid = false
		logger.Info("Invalid dependency - missing version")
	}
	if !valid {
		return types.Dependency{}, false
	}

	logger.Debugf("Found dependency %s", dep)
	return dep, true
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
