// Package csvload reads wide cumulative-count tables into hac.Series.
//
// The expected layout is one row per entity with a "Province/State" and a
// "Country/Region" column, optional "Lat" and "Long" columns, and one
// integer column per calendar date. Lat and Long are dropped; every other
// column is treated as a date, in file order.
package csvload

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/TrevorS/hac"
)

const (
	ColumnProvince = "Province/State"
	ColumnCountry  = "Country/Region"
	ColumnLat      = "Lat"
	ColumnLong     = "Long"
)

// ErrMissingColumn is returned when a required label column is absent.
var ErrMissingColumn = errors.New("csvload: missing column")

// Options controls how a table is read.
type Options struct {
	// DateLayout is the time.Parse layout of the date headers.
	// Default: hac.DefaultDateLayout.
	DateLayout string
}

// LoadFile opens path and reads it with Load.
func LoadFile(path string, opts Options) ([]hac.Series, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("csvload: %w", err)
	}
	defer f.Close()
	return Load(f, opts)
}

// Load reads every row of r into a Series, in row order. A malformed date
// header or count cell fails the whole load.
func Load(r io.Reader, opts Options) ([]hac.Series, error) {
	if opts.DateLayout == "" {
		opts.DateLayout = hac.DefaultDateLayout
	}

	cr := csv.NewReader(r)
	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("%w: empty input", ErrMissingColumn)
	}
	if err != nil {
		return nil, fmt.Errorf("csvload: header: %w", err)
	}

	provinceCol, countryCol := -1, -1
	var dateCols []int
	var dates []string
	for i, name := range header {
		switch name {
		case ColumnProvince:
			provinceCol = i
		case ColumnCountry:
			countryCol = i
		case ColumnLat, ColumnLong:
		default:
			dateCols = append(dateCols, i)
			dates = append(dates, name)
		}
	}
	if provinceCol < 0 {
		return nil, fmt.Errorf("%w: %q", ErrMissingColumn, ColumnProvince)
	}
	if countryCol < 0 {
		return nil, fmt.Errorf("%w: %q", ErrMissingColumn, ColumnCountry)
	}

	var out []hac.Series
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("csvload: %w", err)
		}

		counts := make([]string, len(dateCols))
		for j, col := range dateCols {
			counts[j] = row[col]
		}
		s, err := hac.NewSeries(row[provinceCol], row[countryCol], dates, counts, opts.DateLayout)
		if err != nil {
			line, _ := cr.FieldPos(0)
			return nil, fmt.Errorf("csvload: line %d: %w", line, err)
		}
		out = append(out, s)
	}
	return out, nil
}
