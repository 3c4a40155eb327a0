package data

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sample = `country,gdp,population,ecc,ec
United States,14.96,310.38,317.0,98.16
China,5.93,1340.91,73.0,98.75
Germany,3.28,81.78,162.0,13.26
`

func TestParseCSV(t *testing.T) {
	d, err := ParseCSV(strings.NewReader(sample))
	if err != nil {
		t.Fatal(err)
	}
	if d.Len() != 3 || d.Skipped != 0 {
		t.Fatalf("got %d records, %d skipped", d.Len(), d.Skipped)
	}
	want := Record{
		Country: "China", GDP: 5.93, Population: 1340.91, ECC: 73, EC: 98.75,
		Text: RecordText{GDP: "5.93", Population: "1340.91", ECC: "73.0", EC: "98.75"},
	}
	if d.Records[1] != want {
		t.Errorf("record 1 = %+v, want %+v", d.Records[1], want)
	}
}

func TestRecordFields(t *testing.T) {
	d, err := ParseCSV(strings.NewReader(sample))
	if err != nil {
		t.Fatal(err)
	}
	if got, want := d.Records[0].Fields(), [4]string{"14.96", "310.38", "317.0", "98.16"}; got != want {
		t.Errorf("parsed Fields = %q, want %q", got, want)
	}
	r := Record{Country: "B", GDP: 2.5, Population: 10, ECC: 317, EC: 0.125}
	if got, want := r.Fields(), [4]string{"2.5", "10", "317", "0.125"}; got != want {
		t.Errorf("built Fields = %q, want %q", got, want)
	}
}

func TestParseCSVColumnOrder(t *testing.T) {
	in := "EC, Country ,extra,ECC,Population,GDP\n20,A,x,50,100,5\n"
	d, err := ParseCSV(strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}
	want := Record{
		Country: "A", GDP: 5, Population: 100, ECC: 50, EC: 20,
		Text: RecordText{GDP: "5", Population: "100", ECC: "50", EC: "20"},
	}
	if d.Records[0] != want {
		t.Errorf("got %+v, want %+v", d.Records[0], want)
	}
}

func TestParseCSVSkips(t *testing.T) {
	in := `country,gdp,population,ecc,ec
A,1,2,3,4
B,oops,2,3,4
A,9,9,9,9
C,1,2,3
,1,2,3,4
D,1,NaN,3,4
E,1,2,3,4
`
	d, err := ParseCSV(strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}
	var names []string
	for _, r := range d.Records {
		names = append(names, r.Country)
	}
	if got := strings.Join(names, ","); got != "A,E" {
		t.Errorf("countries = %s, want A,E", got)
	}
	if d.Skipped != 5 {
		t.Errorf("Skipped = %d, want 5", d.Skipped)
	}
}

func TestParseCSVErrors(t *testing.T) {
	for _, tc := range []struct {
		name, in string
		want     error
	}{
		{"missing column", "country,gdp,population,ecc\nA,1,2,3\n", ErrMissingColumn},
		{"no records", "country,gdp,population,ecc,ec\nA,x,x,x,x\n", ErrNoRecords},
	} {
		_, err := ParseCSV(strings.NewReader(tc.in))
		if !errors.Is(err, tc.want) {
			t.Errorf("%s: err = %v, want %v", tc.name, err, tc.want)
		}
	}
	if _, err := ParseCSV(strings.NewReader("")); err == nil {
		t.Error("empty input: expected error")
	}
}

func TestLoadCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scatterdata.csv")
	if err := os.WriteFile(path, []byte(sample), 0o644); err != nil {
		t.Fatal(err)
	}
	d, err := LoadCSV(path)
	if err != nil {
		t.Fatal(err)
	}
	if d.Name != "scatterdata.csv" || d.Len() != 3 {
		t.Errorf("LoadCSV = %q with %d records", d.Name, d.Len())
	}
	if _, err := LoadCSV(filepath.Join(t.TempDir(), "missing.csv")); err == nil {
		t.Error("missing file: expected error")
	}
}

func TestSummarize(t *testing.T) {
	d, err := ParseCSV(strings.NewReader(sample))
	if err != nil {
		t.Fatal(err)
	}
	s := d.Summarize()
	if len(s) != 4 {
		t.Fatalf("got %d summaries", len(s))
	}
	gdp := s[0]
	if gdp.Field != "gdp" || gdp.Min != 3.28 || gdp.Max != 14.96 {
		t.Errorf("gdp summary = %+v", gdp)
	}
	if want := (14.96 + 5.93 + 3.28) / 3; math.Abs(gdp.Mean-want) > 1e-9 {
		t.Errorf("gdp mean = %v, want %v", gdp.Mean, want)
	}
	var empty *Dataset
	if empty.Summarize() != nil {
		t.Error("nil dataset summary not nil")
	}
}
