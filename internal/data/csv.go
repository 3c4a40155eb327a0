package data

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

var (
	ErrMissingColumn = errors.New("csv: required column missing")
	ErrNoRecords     = errors.New("csv: no valid records parsed")
)

// Columns lists the required header names in record field order.
var Columns = []string{"country", "gdp", "population", "ecc", "ec"}

// LoadCSV reads a dataset from a CSV file.
func LoadCSV(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	d, err := ParseCSV(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	d.Name = filepath.Base(path)
	return d, nil
}

// ParseCSV reads a dataset from CSV text. The header must contain the
// columns country, gdp, population, ecc and ec (any order, case
// insensitive); other columns are ignored. Rows with a non-numeric
// value or a repeated country are skipped.
func ParseCSV(r io.Reader) (*Dataset, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1
	recs, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(recs) == 0 {
		return nil, errors.New("empty csv")
	}
	header := recs[0]
	idx := make(map[string]int, len(Columns))
	for i, h := range header {
		h = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))
		if _, ok := idx[h]; !ok {
			idx[h] = i
		}
	}
	cols := make([]int, len(Columns))
	for i, c := range Columns {
		j, ok := idx[c]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, c)
		}
		cols[i] = j
	}

	d := &Dataset{Header: header}
	seen := make(map[string]bool)
	for _, row := range recs[1:] {
		rec, ok := parseRow(row, cols)
		if !ok || seen[rec.Country] {
			d.Skipped++
			continue
		}
		seen[rec.Country] = true
		d.Records = append(d.Records, rec)
	}
	if len(d.Records) == 0 {
		return nil, ErrNoRecords
	}
	return d, nil
}

func parseRow(row []string, cols []int) (Record, bool) {
	for _, c := range cols {
		if c >= len(row) {
			return Record{}, false
		}
	}
	var vals [4]float64
	var raw [4]string
	for i := range vals {
		raw[i] = strings.TrimSpace(row[cols[i+1]])
		v, err := strconv.ParseFloat(raw[i], 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return Record{}, false
		}
		vals[i] = v
	}
	country := strings.TrimSpace(row[cols[0]])
	if country == "" {
		return Record{}, false
	}
	return Record{
		Country:    country,
		GDP:        vals[0],
		Population: vals[1],
		ECC:        vals[2],
		EC:         vals[3],
		Text:       RecordText{GDP: raw[0], Population: raw[1], ECC: raw[2], EC: raw[3]},
	}, true
}
