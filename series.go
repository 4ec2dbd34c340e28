package hac

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DefaultDateLayout is the month/day/2-digit-year layout used by the
// cumulative count tables, e.g. "3/14/20".
const DefaultDateLayout = "1/2/06"

var (
	// ErrLengthMismatch is returned when dates and counts differ in length.
	ErrLengthMismatch = errors.New("hac: dates and counts differ in length")
	// ErrNegativeCount is returned for a cumulative count below zero.
	ErrNegativeCount = errors.New("hac: negative cumulative count")
	// ErrDuplicateDate is returned when one series names the same day twice.
	ErrDuplicateDate = errors.New("hac: duplicate date in series")
)

// Observation is one cumulative count on one calendar day.
type Observation struct {
	Date  time.Time
	Count int64
}

// Series is one entity's cumulative time series. It is immutable once
// built: NewSeries copies its input and no accessor exposes internal state.
type Series struct {
	province string
	country  string
	obs      []Observation
}

// NewSeries parses parallel date and count strings into a Series.
// Dates are parsed with layout (DefaultDateLayout if empty); counts must be
// base-10 non-negative integers. Parse failures are returned wrapped so
// errors.As still finds the underlying *time.ParseError or *strconv.NumError.
func NewSeries(province, country string, dates, counts []string, layout string) (Series, error) {
	if len(dates) != len(counts) {
		return Series{}, fmt.Errorf("%w: %d dates, %d counts", ErrLengthMismatch, len(dates), len(counts))
	}
	if layout == "" {
		layout = DefaultDateLayout
	}

	obs := make([]Observation, len(dates))
	seen := make(map[time.Time]bool, len(dates))
	for i := range dates {
		d, err := time.Parse(layout, strings.TrimSpace(dates[i]))
		if err != nil {
			return Series{}, fmt.Errorf("hac: series %q: %w", joinLabel(province, country), err)
		}
		if seen[d] {
			return Series{}, fmt.Errorf("%w: %q in series %q", ErrDuplicateDate, dates[i], joinLabel(province, country))
		}
		seen[d] = true

		c, err := strconv.ParseInt(strings.TrimSpace(counts[i]), 10, 64)
		if err != nil {
			return Series{}, fmt.Errorf("hac: series %q on %s: %w", joinLabel(province, country), dates[i], err)
		}
		if c < 0 {
			return Series{}, fmt.Errorf("%w: %d on %s in series %q", ErrNegativeCount, c, dates[i], joinLabel(province, country))
		}
		obs[i] = Observation{Date: d, Count: c}
	}

	return Series{province: province, country: country, obs: obs}, nil
}

// MustSeries is like NewSeries but panics on error. Intended for tests and
// literal fixtures.
func MustSeries(province, country string, dates, counts []string) Series {
	s, err := NewSeries(province, country, dates, counts, DefaultDateLayout)
	if err != nil {
		panic(err)
	}
	return s
}

// Province returns the first free-text label (may be empty).
func (s Series) Province() string { return s.province }

// Country returns the second free-text label.
func (s Series) Country() string { return s.country }

// Label identifies the entity for reports.
func (s Series) Label() string { return joinLabel(s.province, s.country) }

// Len returns the number of observations.
func (s Series) Len() int { return len(s.obs) }

// Observations returns a copy of the observations in input order.
func (s Series) Observations() []Observation {
	out := make([]Observation, len(s.obs))
	copy(out, s.obs)
	return out
}

func joinLabel(province, country string) string {
	if province == "" {
		return country
	}
	return country + "/" + province
}
