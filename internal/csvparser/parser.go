// =============================================================================
// WhiteSource CSV Agent - CSV Parser Module
// =============================================================================
//
// This module reads the dependency CSV file and builds the ProjectSubmission
// that is sent to the inventory service.
//
// FILE FORMAT:
//   - One dependency per row: group,artifact,version
//   - No header row
//   - Standard CSV quoting ("org.example","lib, with comma","1.0")
//   - Rows with a different number of fields are skipped, not rejected
//   - A blank line is an entry with one empty field, so it is skipped as
//     invalid and counted in the line numbers
//
// FEATURES:
//   - Row-by-row streaming; the file is never held in memory as a whole
//   - Shared row validation (see internal/validation)
//   - The file handle is closed on every exit path
//
// =============================================================================

package csvparser

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/ginjaninja78/wss-csv-agent/internal/types"
	"github.com/ginjaninja78/wss-csv-agent/internal/validation"
	"github.com/ginjaninja78/wss-csv-agent/pkg/utils"
)

// =============================================================================
// ERRORS
// =============================================================================

var (
	// ErrInputNotFound is returned when the input file does not exist.
	// The run ends gracefully: nothing is sent to the service.
	ErrInputNotFound = utils.ErrInputNotFound

	// ErrInputRead is returned when the input file exists but cannot be read
	// or parsed.
	ErrInputRead = utils.ErrInputRead
)

// =============================================================================
// PARSER FUNCTIONS
// =============================================================================

// Parse reads a CSV file and returns the submission for projectToken.
//
// PARAMETERS:
//   - filePath: The path to the CSV file.
//   - projectToken: The token placed on the returned submission.
//   - logger: Receives skip and debug messages for each row.
//
// RETURNS:
//   - The submission holding every valid row, in file order.
//   - An error wrapping ErrInputNotFound or ErrInputRead. No partial
//     submission is returned alongside an error.
func Parse(filePath, projectToken string, logger *zap.SugaredLogger) (*types.ProjectSubmission, error) {
	parser, err := NewStreamingParser(filePath)
	if err != nil {
		return nil, err
	}
	defer parser.Close()

	submission := types.NewProjectSubmission(projectToken)
	for parser.Next() {
		if dep, ok := validation.Row(parser.Row(), parser.RowNumber(), logger); ok {
			submission.Add(dep)
		}
	}
	if err := parser.Err(); err != nil {
		return nil, err
	}

	return submission, nil
}

// configureReader sets up the CSV reader for dependency rows.
func configureReader(reader *csv.Reader) {
	reader.Comma = ','

	// Rows with the wrong field count are skipped by validation, so the
	// reader must not reject them.
	reader.FieldsPerRecord = -1

	reader.LazyQuotes = true
}

// =============================================================================
// STREAMING PARSER
// =============================================================================

// StreamingParser reads CSV records one at a time.
//
// encoding/csv drops blank lines. The parser puts them back as one-field
// records so that RowNumber counts every entry in the file.
//
// USAGE:
//
//	parser, err := NewStreamingParser(filePath)
//	if err != nil {
//	    return err
//	}
//	defer parser.Close()
//
//	for parser.Next() {
//	    row := parser.Row()
//	    // Process the row...
//	}
//
//	if err := parser.Err(); err != nil {
//	    return err
//	}
type StreamingParser struct {
	file       *os.File
	path       string
	lines      *lineCounter
	reader     *csv.Reader
	pending    [][]string
	lastLine   int
	done       bool
	currentRow []string
	rowNumber  int
	err        error
}

// NewStreamingParser opens filePath for reading.
func NewStreamingParser(filePath string) (*StreamingParser, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, utils.ClassifyOpenError(filePath, err)
	}

	lines := &lineCounter{r: file}
	reader := csv.NewReader(bufio.NewReader(lines))
	configureReader(reader)

	return &StreamingParser{
		file:   file,
		path:   filePath,
		lines:  lines,
		reader: reader,
	}, nil
}

// Next advances to the next record. Returns false at end of file or on error.
func (p *StreamingParser) Next() bool {
	if p.err != nil {
		return false
	}

	if len(p.pending) == 0 && !p.done {
		p.fill()
	}
	if len(p.pending) == 0 {
		return false
	}

	p.currentRow = p.pending[0]
	p.pending = p.pending[1:]
	p.rowNumber++
	return true
}

// fill reads one record and queues it behind the blank lines that precede
// it. At end of file it queues any trailing blank lines.
func (p *StreamingParser) fill() {
	row, err := p.reader.Read()
	if err == io.EOF {
		p.done = true
		p.queueBlank(p.lines.count() - p.lastLine)
		return
	}
	if err != nil {
		p.err = fmt.Errorf("%w %s: row %d: %w", ErrInputRead, p.path, p.rowNumber+len(p.pending)+1, err)
		return
	}

	first, _ := p.reader.FieldPos(0)
	p.queueBlank(first - p.lastLine - 1)
	p.pending = append(p.pending, row)

	// A quoted last field may span several lines.
	last := len(row) - 1
	lastStart, _ := p.reader.FieldPos(last)
	p.lastLine = lastStart + strings.Count(row[last], "\n")
}

func (p *StreamingParser) queueBlank(n int) {
	for i := 0; i < n; i++ {
		p.pending = append(p.pending, []string{""})
	}
}

// Row returns the fields of the current record.
func (p *StreamingParser) Row() []string {
	return p.currentRow
}

// RowNumber returns the current record number (1-indexed).
func (p *StreamingParser) RowNumber() int {
	return p.rowNumber
}

// Err returns any error that occurred during parsing.
func (p *StreamingParser) Err() error {
	return p.err
}

// Close closes the underlying file.
func (p *StreamingParser) Close() error {
	return p.file.Close()
}

// lineCounter counts the physical lines read through it.
type lineCounter struct {
	r        io.Reader
	newlines int
	last     byte
	read     bool
}

func (l *lineCounter) Read(b []byte) (int, error) {
	n, err := l.r.Read(b)
	if n > 0 {
		l.newlines += bytes.Count(b[:n], []byte{'\n'})
		l.last = b[n-1]
		l.read = true
	}
	return n, err
}

// count returns the number of lines seen so far. A final line without a
// terminating newline still counts.
func (l *lineCounter) count() int {
	if l.read && l.last != '\n' {
		return l.newlines + 1
	}
	return l.newlines
}
