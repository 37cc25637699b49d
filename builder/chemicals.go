// SPDX-License-Identifier: MIT

package builder

import (
	"strconv"

	"github.com/katalvlaran/reactnet/reaction"
)

// ChemicalIndex maps each distinct chemical name to a 1-based index assigned
// in first-seen order. It is valid only for the table it was extracted from.
type ChemicalIndex struct {
	ids   map[string]int
	names []string
}

// ExtractChemicals scans all Reactant cells, then all Product cells, splitting
// each on "; " and trimming whitespace, and indexes every new name.
// Names are not normalized any further; lowercasing is a preprocessing step.
//
// Complexity: O(total tokens).
func ExtractChemicals(t *reaction.Table) *ChemicalIndex {
	idx := &ChemicalIndex{ids: make(map[string]int)}
	if t == nil {
		return idx
	}
	for _, rec := range t.Records {
		idx.addCell(rec.Reactant)
	}
	for _, rec := range t.Records {
		idx.addCell(rec.Product)
	}

	return idx
}

func (c *ChemicalIndex) addCell(cell string) {
	for _, name := range reaction.Split(cell) {
		if _, ok := c.ids[name]; ok {
			continue
		}
		c.names = append(c.names, name)
		c.ids[name] = len(c.names)
	}
}

// Len returns the number of distinct chemicals.
func (c *ChemicalIndex) Len() int { return len(c.names) }

// ID returns the index of name and whether it is known.
func (c *ChemicalIndex) ID(name string) (int, bool) {
	id, ok := c.ids[name]
	return id, ok
}

// Name returns the chemical with the given 1-based index.
func (c *ChemicalIndex) Name(id int) (string, bool) {
	if id < 1 || id > len(c.names) {
		return "", false
	}

	return c.names[id-1], true
}

// Names returns the chemicals in index order. The slice is a copy.
func (c *ChemicalIndex) Names() []string {
	return append([]string(nil), c.names...)
}

// Key renders name as a vertex key under mode.
func (c *ChemicalIndex) Key(name string, mode KeyMode) (string, error) {
	id, ok := c.ids[name]
	if !ok {
		return "", ErrUnknownChemical
	}
	if mode == ByName {
		return name, nil
	}

	return strconv.Itoa(id), nil
}

// Keys returns every vertex key under mode, in index order.
func (c *ChemicalIndex) Keys(mode KeyMode) []string {
	keys := make([]string, len(c.names))
	for i, name := range c.names {
		if mode == ByName {
			keys[i] = name
		} else {
			keys[i] = strconv.Itoa(i + 1)
		}
	}

	return keys
}
