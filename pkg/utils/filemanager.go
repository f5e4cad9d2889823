// =============================================================================
// WhiteSource CSV Agent - File Utilities
// =============================================================================
//
// This module provides the file helpers shared by the input readers:
//   - Input format detection (CSV or XLSX) by file extension
//   - Common "not found" / "read error" classification for input files
//   - A file size helper used for debug output
//
// =============================================================================

package utils

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// =============================================================================
// INPUT FORMATS
// =============================================================================

// Format identifies how an input file is read.
type Format int

const (
	// FormatCSV is a comma-separated text file. This is the default.
	FormatCSV Format = iota

	// FormatXLSX is an Excel workbook; rows come from the first sheet.
	FormatXLSX
)

// String returns the lower-case name of the format.
func (f Format) String() string {
	switch f {
	case FormatXLSX:
		return "xlsx"
	default:
		return "csv"
	}
}

// DetectFormat chooses the input format from the file extension.
// Anything that is not .xlsx is treated as CSV.
func DetectFormat(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return FormatXLSX
	}
	return FormatCSV
}

// =============================================================================
// INPUT ERRORS
// =============================================================================

var (
	// ErrInputNotFound is returned when the input file does not exist.
	ErrInputNotFound = errors.New("input file not found")

	// ErrInputRead is returned when the input file exists but cannot be read
	// or parsed.
	ErrInputRead = errors.New("error reading input file")
)

// ClassifyOpenError wraps an error from opening path with ErrInputNotFound
// or ErrInputRead. It returns nil for a nil error.
func ClassifyOpenError(path string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("%w: %s", ErrInputNotFound, path)
	default:
		return fmt.Errorf("%w %s: %w", ErrInputRead, path, err)
	}
}

// =============================================================================
// UTILITY FUNCTIONS
// =============================================================================

// GetFileSize returns the size of a file in bytes.
func GetFileSize(path string) (int64, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, err
	}
	return info.Size(), nil
}
