// SPDX-License-Identifier: MIT

package reaction_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/reactnet/reaction"
)

const weightedTSV = "Reaction ID\tReactant\tProduct\tNumber of Reaction Steps\n" +
	"1\tCalcium; Oxygen; Nitrogen\tOxygen; Hydrogen\t2\n" +
	"2\tcarbon-dioxide\tcarbon-dioxide\t1.0\n" +
	"3\t\tnitrogen\t3\n" +
	"4\toxygen\toxygen\t\n"

func TestRead_Weighted(t *testing.T) {
	tbl, err := reaction.Read(strings.NewReader(weightedTSV), reaction.ColumnsFor(true)...)
	require.NoError(t, err)

	want := []reaction.Record{
		{Reactant: "Calcium; Oxygen; Nitrogen", Product: "Oxygen; Hydrogen", Steps: 2},
		{Reactant: "carbon-dioxide", Product: "carbon-dioxide", Steps: 1},
	}
	if diff := cmp.Diff(want, tbl.Records); diff != "" {
		t.Errorf("records mismatch (-want +got):\n%s", diff)
	}
	assert.True(t, tbl.HasSteps)
	assert.Equal(t, 2, tbl.Dropped)
}

func TestRead_StepsNotRequested(t *testing.T) {
	tbl, err := reaction.Read(strings.NewReader(weightedTSV))
	require.NoError(t, err)

	assert.False(t, tbl.HasSteps)
	assert.Equal(t, 3, tbl.Len())
	assert.Zero(t, tbl.Records[0].Steps)
}

func TestRead_StepsColumnAbsent(t *testing.T) {
	in := "Reactant\tProduct\noxygen\toxygen\n"
	tbl, err := reaction.Read(strings.NewReader(in), reaction.ColumnsFor(true)...)
	require.NoError(t, err)

	assert.False(t, tbl.HasSteps)
	assert.Equal(t, 1, tbl.Len())
}

func TestRead_Errors(t *testing.T) {
	_, err := reaction.Read(strings.NewReader(""))
	require.ErrorIs(t, err, reaction.ErrEmptyInput)

	_, err = reaction.Read(strings.NewReader("Reactant\tSomething\na\tb\n"))
	require.ErrorIs(t, err, reaction.ErrMissingColumn)

	for _, bad := range []string{"0", "-2", "2.5", "many"} {
		in := "Reactant\tProduct\tNumber of Reaction Steps\na\tb\t" + bad + "\n"
		_, err = reaction.Read(strings.NewReader(in), reaction.ColumnsFor(true)...)
		require.ErrorIs(t, err, reaction.ErrInvalidSteps, bad)
		assert.Contains(t, err.Error(), "line 2")
	}
}

func TestPreprocess(t *testing.T) {
	tbl := &reaction.Table{Records: []reaction.Record{{Reactant: "Calcium; OXYGEN", Product: "Water", Steps: 3}}}
	reaction.Preprocess(tbl)

	assert.Equal(t, reaction.Record{Reactant: "calcium; oxygen", Product: "water", Steps: 3}, tbl.Records[0])
}

func TestMerge(t *testing.T) {
	a := &reaction.Table{HasSteps: true, Records: []reaction.Record{{Reactant: "a", Product: "b", Steps: 4}}}
	b := &reaction.Table{Dropped: 1, Records: []reaction.Record{{Reactant: "c", Product: "d"}}}

	m := reaction.Merge(a, b)
	assert.True(t, m.HasSteps)
	assert.Equal(t, 1, m.Dropped)
	assert.Equal(t, []reaction.Record{
		{Reactant: "a", Product: "b", Steps: 4},
		{Reactant: "c", Product: "d", Steps: 1},
	}, m.Records)
	// inputs are untouched
	assert.Zero(t, b.Records[0].Steps)
}

func TestSplit(t *testing.T) {
	assert.Equal(t, []string{"calcium", "oxygen", "nitrogen"}, reaction.Split("calcium; oxygen ;  nitrogen"))
	assert.Equal(t, []string{"oxygen"}, reaction.Split(" oxygen "))
	assert.Equal(t, []string{"water"}, reaction.Split("water; "))
	assert.Empty(t, reaction.Split("  "))
}
