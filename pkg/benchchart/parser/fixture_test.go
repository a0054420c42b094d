package parser

import (
	"fmt"
	"strings"

	"github.com/ukaji3/benchchart-go/pkg/benchchart/models"
)

var sampleHeaders = []int{10, 100, 1000}

// sampleBlock renders one record block; series k has values k+1, 2(k+1), 3(k+1)
// and, with bands, mins of value-0.5 and maxes of value+0.5.
func sampleBlock(name string, bands bool) string {
	var b strings.Builder
	b.WriteString("\tSize")
	groups := 1
	if bands {
		// band tables repeat the sizes over the min and max groups
		groups = 3
	}
	for g := 0; g < groups; g++ {
		for _, h := range sampleHeaders {
			fmt.Fprintf(&b, "\t%d", h)
		}
	}
	b.WriteString("\n")

	for k, kind := range models.AllKinds() {
		cell := ""
		if k == 0 {
			cell = name
		}
		b.WriteString(cell + "\t" + kind.String())
		deltas := []float64{0}
		if bands {
			deltas = []float64{0, -0.5, 0.5}
		}
		for _, delta := range deltas {
			for col := range sampleHeaders {
				v := float64((k+1)*(col+1)) + delta
				fmt.Fprintf(&b, "\t%s", strings.Replace(fmt.Sprintf("%g", v), ".", ",", 1))
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}

func sampleTable(bands bool) string {
	return "Benchmark results\n\nRun\tdefault\n" + sampleBlock("Add", bands) + "\n" + sampleBlock("Leaf travel", bands)
}
