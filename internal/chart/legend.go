package chart

import (
	"github.com/lucasb-eyer/go-colorful"

	"scatterplot/internal/scale"
)

// Axis and legend captions.
const (
	Title  = "Energy consumption vs GDP"
	XLabel = "GDP (in Trillion US Dollars) in 2010"
	YLabel = "Energy Consumption per Capita (in Million BTUs per person)"
)

// LegendEntry is one reference circle of the size legend.
type LegendEntry struct {
	Value float64
	Label string
	R     float64
	Color colorful.Color
}

var legendSpec = []struct {
	value float64
	label string
	hex   string
}{
	{100, "100 Trillion BTU's", "#4287f5"},
	{50, "50 Trillion BTU's", "#fa7443"},
	{10, "10 Trillion BTU's", "#29ab66"},
}

// Legend returns the size legend drawn through the base x scale, the
// same mapping marks use for their radius.
func Legend(x scale.Linear) []LegendEntry {
	out := make([]LegendEntry, len(legendSpec))
	for i, l := range legendSpec {
		c, _ := colorful.Hex(l.hex)
		out[i] = LegendEntry{Value: l.value, Label: l.label, R: radius(x, l.value), Color: c}
	}
	return out
}
