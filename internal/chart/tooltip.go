package chart

import "scatterplot/internal/data"

// Tooltip is the hover panel content for one record.
type Tooltip struct {
	Country    string
	Population string
	GDP        string
	ECC        string
	EC         string
}

// NewTooltip formats r's fields, keeping numbers as the source wrote
// them.
func NewTooltip(r data.Record) Tooltip {
	f := r.Fields()
	return Tooltip{
		Country:    r.Country,
		Population: f[1] + " Million",
		GDP:        "$" + f[0] + " Trillion",
		ECC:        f[2] + " Million BTU's",
		EC:         f[3] + " Trillion BTU's",
	}
}

// Lines returns the panel rows, country first.
func (t Tooltip) Lines() []string {
	return []string{t.Country, "Population: " + t.Population, "GDP: " + t.GDP, "EC per capita: " + t.ECC, "Total EC: " + t.EC}
}
