// SPDX-License-Identifier: MIT

package reaction

import "strings"

// Preprocess runs the preprocessing pipeline on t in place and returns it.
// The only step today lowercases chemical names.
func Preprocess(t *Table) *Table {
	lowercase(t)
	return t
}

func lowercase(t *Table) {
	for i := range t.Records {
		t.Records[i].Reactant = strings.ToLower(t.Records[i].Reactant)
		t.Records[i].Product = strings.ToLower(t.Records[i].Product)
	}
}

// Merge concatenates a and b into a new table. When exactly one side carries
// step counts, rows from the other side weigh 1.
func Merge(a, b *Table) *Table {
	out := &Table{
		Records:  make([]Record, 0, a.Len()+b.Len()),
		HasSteps: a.HasSteps || b.HasSteps,
		Dropped:  a.Dropped + b.Dropped,
	}
	for _, src := range []*Table{a, b} {
		for _, rec := range src.Records {
			if out.HasSteps && !src.HasSteps {
				rec.Steps = 1
			}
			out.Records = append(out.Records, rec)
		}
	}

	return out
}

// Split breaks a Reactant or Product cell into trimmed chemical names.
// Blank tokens, as left by a trailing separator, are skipped.
func Split(cell string) []string {
	parts := strings.Split(cell, Separator)
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}

	return out
}
