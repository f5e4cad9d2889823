// =============================================================================
// WhiteSource CSV Agent - Result Reporter
// =============================================================================
//
// This module prints the outcome of an inventory update at INFO level:
// the organization, then the created and the updated project names.
//
// =============================================================================

package report

import (
	"go.uber.org/zap"

	"github.com/ginjaninja78/wss-csv-agent/internal/types"
)

// =============================================================================
// REPORTING
// =============================================================================

// Log writes the organization and the created and updated project names
// at INFO level.
func Log(result *types.SubmissionResult, logger *zap.SugaredLogger) {
	logger.Info("White Source update results:")
	logger.Infof("White Source organization: %s", result.Organization)

	if len(result.CreatedProjects) == 0 {
		logger.Info("No new projects found")
	} else {
		logger.Infof("%d Newly created projects:", len(result.CreatedProjects))
		for _, name := range result.CreatedProjects {
			logger.Info(name)
		}
	}

	if len(result.UpdatedProjects) == 0 {
		logger.Info("No projects were updated")
	} else {
		logger.Infof("%d existing project(s) were updated:", len(result.UpdatedProjects))
		for _, name := range result.UpdatedProjects {
			logger.Info(name)
		}
	}
}
