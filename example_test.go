// SPDX-License-Identifier: MIT

package reactnet_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/reactnet/builder"
	"github.com/katalvlaran/reactnet/metrics"
	"github.com/katalvlaran/reactnet/reaction"
)

// Example builds the network of a two-reaction fermentation table and finds
// its most central chemical.
func Example() {
	const tsv = "Reactant\tProduct\tNumber of Reaction Steps\n" +
		"Glucose\tEthanol; Carbon Dioxide\t2\n" +
		"Ethanol\tAcetic Acid\t1\n"

	t, err := reaction.Read(strings.NewReader(tsv), reaction.ColumnsFor(true)...)
	if err != nil {
		fmt.Println(err)
		return
	}
	g, _, err := builder.Directed(reaction.Preprocess(t), builder.WithChemicalNames())
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println(g.VertexCount(), "chemicals,", g.EdgeCount(), "reactions")
	next, _ := g.Successors("glucose")
	fmt.Println("glucose ->", strings.Join(next, ", "))
	fmt.Println("most central:", metrics.RankBetweenness(g, false)[0].Name)

	// Output:
	// 4 chemicals, 3 reactions
	// glucose -> carbon dioxide, ethanol
	// most central: ethanol
}
