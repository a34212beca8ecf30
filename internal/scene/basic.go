package scene

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// LoadBasic reads a basic-mode file from path.
func LoadBasic(path string, d Defaults) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return DecodeBasic(f, d)
}

// DecodeBasic parses rows of 3 (point) or 6 (vector) numbers. Lines that are
// blank or start with '#' are skipped. The whole input is first read as
// comma separated; if a value fails to parse as a number it is read again
// split on whitespace.
// The result is a single glyph-mode step.
func DecodeBasic(r io.Reader, d Defaults) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	rows, err := commaRows(data)
	if err != nil {
		// only a value that is not a number hints at another delimiter
		var numErr *strconv.NumError
		if !errors.As(err, &numErr) {
			return nil, err
		}
		rows, err = fieldRows(data)
		if err != nil {
			return nil, err
		}
	}
	var st Step
	for _, row := range rows {
		e := Entity{
			Position:    row.vals,
			Color:       White,
			Opacity:     1,
			Description: DefaultDescription,
		}
		switch len(row.vals) {
		case 3:
			e.Kind = Point
		case 6:
			e.Kind = Vector
		default:
			return nil, fmt.Errorf("%w: line %d: expected 3 or 6 values, got %d", ErrMalformedDocument, row.line, len(row.vals))
		}
		e.Radius = d.RadiusFor(e.Kind)
		st.Entities = append(st.Entities, e)
	}
	if len(st.Entities) == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrMalformedDocument)
	}
	return &Document{Steps: []Step{st}, Glyph: true, Reset: true}, nil
}

type basicRow struct {
	line int
	vals []float64
}

func commaRows(data []byte) ([]basicRow, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.Comment = '#'
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true
	var rows []basicRow
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		line, _ := r.FieldPos(0)
		vals, err := parseFloats(rec)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		if len(vals) != 3 && len(vals) != 6 {
			return nil, fmt.Errorf("%w: line %d: expected 3 or 6 values, got %d", ErrMalformedDocument, line, len(vals))
		}
		rows = append(rows, basicRow{line: line, vals: vals})
	}
	return rows, nil
}

func fieldRows(data []byte) ([]basicRow, error) {
	sc := bufio.NewScanner(bytes.NewReader(data))
	var rows []basicRow
	line := 0
	for sc.Scan() {
		line++
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		vals, err := parseFloats(strings.Fields(s))
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrMalformedDocument, line, err)
		}
		rows = append(rows, basicRow{line: line, vals: vals})
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return rows, nil
}

func parseFloats(fields []string) ([]float64, error) {
	out := make([]float64, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}
