// SPDX-License-Identifier: MIT

package distribution

import (
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Reference tables of the Network of Organic Chemistry, as shipped in the
// reference directory.
const (
	RefOutDegree       = "out_degree_distribution.csv"
	RefInDegree        = "in_degree_distribution.csv"
	RefOutPDFEmpirical = "out_pdf_empirical.csv"
	RefOutPDFDiscrete  = "out_pdf_discrete.csv"
	RefInPDFEmpirical  = "in_pdf_empirical.csv"
	RefInPDFDiscrete   = "in_pdf_discrete.csv"
	RefPathLength      = "average_path_length.csv"
)

// ErrBadReference is returned for malformed reference rows.
var ErrBadReference = errors.New("distribution: malformed reference table")

// LoadReference reads the two-column, header-less CSV table name from dir.
func LoadReference(dir, name string) (Series, error) {
	f, err := os.Open(filepath.Join(dir, name))
	if err != nil {
		return Series{}, errors.Wrap(err, "distribution: open reference")
	}
	defer f.Close()

	s, err := ReadReference(f)
	if err != nil {
		return Series{}, errors.Wrapf(err, "%s", name)
	}

	return s, nil
}

// ReadReference parses a two-column, header-less CSV of floats.
func ReadReference(r io.Reader) (Series, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	var s Series
	for line := 1; ; line++ {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return Series{}, errors.Wrapf(err, "line %d", line)
		}
		if len(rec) < 2 {
			return Series{}, errors.Wrapf(ErrBadReference, "line %d: %d columns", line, len(rec))
		}
		x, errX := strconv.ParseFloat(strings.TrimSpace(rec[0]), 64)
		y, errY := strconv.ParseFloat(strings.TrimSpace(rec[1]), 64)
		if errX != nil || errY != nil {
			return Series{}, errors.Wrapf(ErrBadReference, "line %d: %q", line, rec)
		}
		s.X = append(s.X, x)
		s.Y = append(s.Y, y)
	}

	return s, nil
}
