// SPDX-License-Identifier: MIT

package reaction

import (
	"encoding/csv"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ReadFile opens path and reads it with Read.
func ReadFile(path string, columns ...string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reaction: open %s", path)
	}
	defer f.Close()

	t, err := Read(f, columns...)
	if err != nil {
		return nil, errors.Wrapf(err, "reaction: read %s", path)
	}

	return t, nil
}

// Read parses a tab-separated reaction table.
//
// Only the requested columns are considered (Reactant and Product when none
// are given). Reactant and Product must be present; the step column may be
// missing, in which case HasSteps is false and every record has Steps == 0.
// Rows with an empty requested cell are dropped and counted.
func Read(r io.Reader, columns ...string) (*Table, error) {
	if len(columns) == 0 {
		columns = ColumnsFor(false)
	}
	cr := csv.NewReader(r)
	cr.Comma = '\t'
	cr.LazyQuotes = true
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err == io.EOF {
		return nil, ErrEmptyInput
	}
	if err != nil {
		return nil, errors.Wrap(err, "reaction: header")
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.TrimSpace(name)] = i
	}

	want := make(map[string]bool, len(columns))
	for _, c := range columns {
		want[c] = true
	}
	for _, required := range []string{ColumnReactant, ColumnProduct} {
		if _, ok := index[required]; !ok {
			return nil, errors.Wrapf(ErrMissingColumn, "%q", required)
		}
	}
	stepsAt, hasSteps := index[ColumnSteps]
	hasSteps = hasSteps && want[ColumnSteps]

	t := &Table{HasSteps: hasSteps}
	line := 1
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, errors.Wrapf(err, "reaction: line %d", line)
		}

		reactant := cell(row, index[ColumnReactant])
		product := cell(row, index[ColumnProduct])
		if reactant == "" || product == "" {
			t.Dropped++
			continue
		}
		rec := Record{Reactant: reactant, Product: product}
		if hasSteps {
			raw := cell(row, stepsAt)
			if raw == "" {
				t.Dropped++
				continue
			}
			if rec.Steps, err = parseSteps(raw); err != nil {
				return nil, errors.Wrapf(err, "line %d", line)
			}
		}
		t.Records = append(t.Records, rec)
	}

	return t, nil
}

func cell(row []string, i int) string {
	if i >= len(row) {
		return ""
	}

	return strings.TrimSpace(row[i])
}

// parseSteps accepts positive integers, including integral floats ("2.0")
// as produced by spreadsheet exports.
func parseSteps(raw string) (int64, error) {
	if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
		if n < 1 {
			return 0, errors.Wrapf(ErrInvalidSteps, "%q", raw)
		}
		return n, nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || f < 1 || f != math.Trunc(f) || f > math.MaxInt64 {
		return 0, errors.Wrapf(ErrInvalidSteps, "%q", raw)
	}

	return int64(f), nil
}
