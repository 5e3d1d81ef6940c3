package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ColumnRange is a half-open [Start, End) slice of column indices.
// A non-positive End counts back from the header width, so End: 0 means
// "through the last column" and End: -1 drops the last column.
type ColumnRange struct {
	Start int
	End   int
}

// resolve maps r onto a header of the given width.
func (r ColumnRange) resolve(width int) (int, int, error) {
	end := r.End
	if end <= 0 {
		end += width
	}
	if r.Start < 0 || end > width || r.Start >= end {
		return 0, 0, fmt.Errorf("%w: [%d:%d) over %d columns", ErrColumnRange, r.Start, r.End, width)
	}

	return r.Start, end, nil
}

// Table holds the selected feature columns.
type Table struct {
	// Labels are the header names of the selected columns.
	Labels []string

	// Series[i] holds every sample of feature i in row order.
	Series [][]float64

	// Rows is the number of samples.
	Rows int
}

// Width returns the number of features.
func (t *Table) Width() int { return len(t.Labels) }

// Option configures the reader.
type Option func(*csv.Reader)

// WithComma sets the field delimiter (default ',').
func WithComma(r rune) Option {
	return func(cr *csv.Reader) { cr.Comma = r }
}

// WithComment makes lines starting with r comments.
func WithComment(r rune) Option {
	return func(cr *csv.Reader) { cr.Comment = r }
}

// Load reads a header plus numeric records from r and returns the columns
// selected by cols. Every record must have as many fields as the header.
func Load(r io.Reader, cols ColumnRange, opts ...Option) (*Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // field counts are checked below for a clearer error
	cr.TrimLeadingSpace = true
	for _, fn := range opts {
		fn(cr)
	}

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, &FormatError{Line: 1, Column: -1, Err: ErrNoHeader}
	}
	if err != nil {
		return nil, fmt.Errorf("dataset: read header: %w", err)
	}

	start, end, err := cols.resolve(len(header))
	if err != nil {
		return nil, err
	}

	t := &Table{
		Labels: make([]string, end-start),
		Series: make([][]float64, end-start),
	}
	for i, name := range header[start:end] {
		t.Labels[i] = strings.TrimSpace(name)
	}

	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("dataset: read record: %w", err)
		}
		line, _ := cr.FieldPos(0)
		if len(rec) != len(header) {
			return nil, &FormatError{
				Line:   line,
				Column: -1,
				Err:    fmt.Errorf("%w: got %d fields, header has %d", ErrInconsistentRow, len(rec), len(header)),
			}
		}
		for j := start; j < end; j++ {
			v, perr := strconv.ParseFloat(strings.TrimSpace(rec[j]), 64)
			if perr != nil {
				return nil, &FormatError{Line: line, Column: j, Err: fmt.Errorf("%w: %q", ErrNotNumeric, rec[j])}
			}
			t.Series[j-start] = append(t.Series[j-start], v)
		}
		t.Rows++
	}

	return t, nil
}

// LoadFile opens path and calls Load.
func LoadFile(path string, cols ColumnRange, opts ...Option) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: %w", err)
	}
	defer f.Close()

	return Load(f, cols, opts...)
}
