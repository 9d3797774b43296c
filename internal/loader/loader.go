// Package loader reads the StormData delimited file into raw records.
//
// The loader validates column presence and nothing else: malformed numeric or
// text fields pass through leniently for later stages to handle. The only
// fatal conditions are a file that cannot be opened or decompressed and a
// header missing one of the required columns.
package loader

import (
	"compress/bzip2"
	"compress/gzip"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/couchcryptid/storm-damage-report/internal/domain"
)

// RequiredColumns are the exact header names the pipeline consumes. A file
// missing any of them cannot produce a report.
var RequiredColumns = []string{
	"EVTYPE",
	"BGN_DATE",
	"FATALITIES",
	"INJURIES",
	"PROPDMG",
	"PROPDMGEXP",
	"CROPDMG",
	"CROPDMGEXP",
	"REMARKS",
}

// MalformedInputError is the single fatal error kind: the input file is
// unusable as a whole (unreadable, undecompressable, or missing required
// columns). Field-level anomalies never raise it.
type MalformedInputError struct {
	Path    string
	Reason  string
	Missing []string
	Err     error
}

func (e *MalformedInputError) Error() string {
	msg := "malformed input"
	if e.Path != "" {
		msg += " " + e.Path
	}
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	if len(e.Missing) > 0 {
		msg += ": missing columns " + strings.Join(e.Missing, ", ")
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *MalformedInputError) Unwrap() error { return e.Err }

// Open opens path for reading, transparently decompressing gzip and bzip2
// files by extension. The caller must close the returned reader.
func Open(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &MalformedInputError{Path: path, Reason: "open", Err: err}
	}

	switch {
	case strings.HasSuffix(path, ".gz"):
		zr, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, &MalformedInputError{Path: path, Reason: "gzip", Err: err}
		}
		return &compressedReader{Reader: zr, closers: []io.Closer{zr, f}}, nil
	case strings.HasSuffix(path, ".bz2"):
		return &compressedReader{Reader: bzip2.NewReader(f), closers: []io.Closer{f}}, nil
	default:
		return f, nil
	}
}

// compressedReader pairs a decompressing reader with the closers beneath it.
type compressedReader struct {
	io.Reader
	closers []io.Closer
}

func (c *compressedReader) Close() error {
	var firstErr error
	for _, cl := range c.closers {
		if err := cl.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// FileSource adapts a file path to the pipeline's extractor stage.
type FileSource struct {
	path   string
	logger *slog.Logger
}

// NewFileSource creates a FileSource for path.
func NewFileSource(path string, logger *slog.Logger) *FileSource {
	return &FileSource{path: path, logger: logger}
}

// Extract loads the whole file into memory. The dataset is held at once by
// design; there is no streaming requirement at this scope.
func (s *FileSource) Extract(ctx context.Context) ([]domain.RawRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.logger.Debug("loading input file", "path", s.path)
	return LoadFile(s.path)
}

// LoadFile opens path and loads every row, preserving file order.
func LoadFile(path string) ([]domain.RawRecord, error) {
	r, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	records, err := Load(r)
	if err != nil {
		if me, ok := err.(*MalformedInputError); ok && me.Path == "" {
			me.Path = path
		}
		return nil, err
	}
	return records, nil
}

// Load decodes CSV rows from r into raw records, preserving input order.
// The header row must contain every column in RequiredColumns; extra columns
// are ignored. Short data rows are padded with empty fields rather than
// rejected; the source file has ragged rows and the report policy is to
// degrade silently on anything below the file level.
func Load(r io.Reader) ([]domain.RawRecord, error) {
	cr := csv.NewReader(r)
	cr.LazyQuotes = true
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, &MalformedInputError{Reason: "read header", Err: err}
	}

	idx, missing := indexColumns(header)
	if len(missing) > 0 {
		return nil, &MalformedInputError{Reason: "header", Missing: missing}
	}

	var records []domain.RawRecord
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &MalformedInputError{Reason: fmt.Sprintf("read row %d", len(records)+2), Err: err}
		}

		records = append(records, domain.RawRecord{
			EventType:         field(row, idx["EVTYPE"]),
			BeginDateRaw:      field(row, idx["BGN_DATE"]),
			Fatalities:        parseFloatOrZero(field(row, idx["FATALITIES"])),
			Injuries:          parseFloatOrZero(field(row, idx["INJURIES"])),
			PropertyDamage:    parseFloatOrZero(field(row, idx["PROPDMG"])),
			PropertyDamageExp: field(row, idx["PROPDMGEXP"]),
			CropDamage:        parseFloatOrZero(field(row, idx["CROPDMG"])),
			CropDamageExp:     field(row, idx["CROPDMGEXP"]),
			Remarks:           field(row, idx["REMARKS"]),
		})
	}
	return records, nil
}

// indexColumns maps each required column name to its position in the header.
func indexColumns(header []string) (map[string]int, []string) {
	positions := make(map[string]int, len(header))
	for i, name := range header {
		positions[strings.TrimSpace(name)] = i
	}

	idx := make(map[string]int, len(RequiredColumns))
	var missing []string
	for _, name := range RequiredColumns {
		pos, ok := positions[name]
		if !ok {
			missing = append(missing, name)
			continue
		}
		idx[name] = pos
	}
	return idx, missing
}

// field returns row[i], or "" when the row is too short.
func field(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return row[i]
}

// parseFloatOrZero parses a string as float64, returning 0 on failure.
func parseFloatOrZero(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}
