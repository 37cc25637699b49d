// SPDX-License-Identifier: MIT

// Package reaction reads tabular reaction records and prepares them for graph
// construction.
//
// A reaction table is a tab-separated file with a header row. The Reactant and
// Product columns hold one or more chemical names joined by "; ". The optional
// "Number of Reaction Steps" column holds a positive integer weight.
package reaction

import "github.com/pkg/errors"

// Column names understood by Read.
const (
	ColumnReactant = "Reactant"
	ColumnProduct  = "Product"
	ColumnSteps    = "Number of Reaction Steps"
)

// Separator joins several chemicals inside one Reactant or Product cell.
const Separator = "; "

// Sentinel errors for ingestion.
var (
	// ErrMissingColumn is returned when a required column is absent from the header.
	ErrMissingColumn = errors.New("reaction: missing column")

	// ErrInvalidSteps is returned when a step count is not a positive integer.
	ErrInvalidSteps = errors.New("reaction: invalid number of reaction steps")

	// ErrEmptyInput is returned when the input has no header row.
	ErrEmptyInput = errors.New("reaction: empty input")
)

// Record is one reaction row.
type Record struct {
	Reactant string
	Product  string
	// Steps is the number of reaction steps; zero when the table carries no
	// step column.
	Steps int64
}

// Table is an ordered collection of reaction records.
type Table struct {
	Records []Record

	// HasSteps reports whether the step column was present.
	HasSteps bool

	// Dropped counts rows discarded because a requested cell was empty.
	Dropped int
}

// Len returns the number of records.
func (t *Table) Len() int { return len(t.Records) }

// ColumnsFor returns the columns an analysis needs: weighted analyses also
// read the step column.
func ColumnsFor(weighted bool) []string {
	if weighted {
		return []string{ColumnReactant, ColumnProduct, ColumnSteps}
	}

	return []string{ColumnReactant, ColumnProduct}
}
