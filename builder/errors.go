// SPDX-License-Identifier: MIT

package builder

import "github.com/pkg/errors"

// ErrUnknownChemical indicates an edge endpoint missing from the chemical
// index, i.e. the index was extracted from a different table.
var ErrUnknownChemical = errors.New("builder: chemical not in index")

// ErrNilTable indicates a nil reaction table was supplied.
var ErrNilTable = errors.New("builder: table is nil")

// ErrNilIndex indicates a nil chemical index was supplied.
var ErrNilIndex = errors.New("builder: chemical index is nil")

// ErrInvalidWeight indicates a record of a stepped table with a step count
// below 1.
var ErrInvalidWeight = errors.New("builder: number of reaction steps must be positive")

// ErrFieldOutOfRange indicates CountBy was asked for a field some tuple lacks.
var ErrFieldOutOfRange = errors.New("builder: field out of range")
