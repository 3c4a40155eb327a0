package data

import "strconv"

// Record is one country's row of economic and energy figures.
type Record struct {
	Country    string
	GDP        float64 // trillion USD
	Population float64 // millions
	ECC        float64 // energy consumption per capita, million BTU
	EC         float64 // total energy consumption, trillion BTU

	// Text is how the numeric fields were written in the source.
	Text RecordText
}

// RecordText holds the source spelling of a record's numeric fields.
type RecordText struct {
	GDP, Population, ECC, EC string
}

// Fields returns gdp, population, ecc and ec as display text. Source
// spelling wins; records built in code fall back to the shortest
// round-trip form.
func (r Record) Fields() [4]string {
	return [4]string{
		text(r.Text.GDP, r.GDP),
		text(r.Text.Population, r.Population),
		text(r.Text.ECC, r.ECC),
		text(r.Text.EC, r.EC),
	}
}

func text(s string, v float64) string {
	if s != "" {
		return s
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Dataset is an ordered, read-only collection of records.
type Dataset struct {
	Name string
	// Header is the header row as read, extra columns included.
	Header  []string
	Records []Record
	// Skipped counts rows dropped for malformed or duplicate values.
	Skipped int
}

// Len returns the number of records.
func (d *Dataset) Len() int {
	if d == nil {
		return 0
	}
	return len(d.Records)
}
