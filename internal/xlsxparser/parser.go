// =============================================================================
// WhiteSource CSV Agent - XLSX Parser Module
// =============================================================================
//
// This module reads dependency rows from an Excel workbook. It is the
// spreadsheet counterpart of the CSV parser: same three columns (group,
// artifact, version), same row validation, same submission output.
//
// WORKBOOK LAYOUT:
//   - Rows are read from the first sheet only
//   - No header row; every non-empty row is a candidate dependency
//   - Completely empty rows are ignored
//
// NOTE:
//   Excel drops trailing empty cells, so a row whose version cell is empty
//   arrives with two fields and is reported as an invalid entry.
//
// =============================================================================

package xlsxparser

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/ginjaninja78/wss-csv-agent/internal/types"
	"github.com/ginjaninja78/wss-csv-agent/internal/validation"
	"github.com/ginjaninja78/wss-csv-agent/pkg/utils"
)

// =============================================================================
// PARSER FUNCTIONS
// =============================================================================

// Parse reads the first sheet of an XLSX workbook and returns the submission
// for projectToken.
//
// PARAMETERS:
//   - filePath: The path to the workbook.
//   - projectToken: The token placed on the returned submission.
//   - logger: Receives skip and debug messages for each row.
//
// RETURNS:
//   - The submission holding every valid row, in sheet order.
//   - An error wrapping utils.ErrInputNotFound or utils.ErrInputRead.
func Parse(filePath, projectToken string, logger *zap.SugaredLogger) (*types.ProjectSubmission, error) {
	f, err := excelize.OpenFile(filePath)
	if err != nil {
		return nil, utils.ClassifyOpenError(filePath, err)
	}
	defer f.Close()

	sheetName := f.GetSheetName(0)
	if sheetName == "" {
		return nil, fmt.Errorf("%w %s: workbook has no sheets", utils.ErrInputRead, filePath)
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", utils.ErrInputRead, filePath, err)
	}

	submission := types.NewProjectSubmission(projectToken)
	for i, row := range rows {
		if isRowEmpty(row) {
			continue
		}
		if dep, ok := validation.Row(row, i+1, logger); ok {
			submission.Add(dep)
		}
	}

	return submission, nil
}

// isRowEmpty checks if a row contains only empty values.
func isRowEmpty(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
