package hac

import (
	"sort"
	"strconv"
)

// Coord is one feature coordinate: either a defined non-negative integer
// or undefined. The zero value is undefined.
type Coord struct {
	value   int
	defined bool
}

// Defined returns a defined Coord holding v.
func Defined(v int) Coord { return Coord{value: v, defined: true} }

// Undefined returns the undefined Coord.
func Undefined() Coord { return Coord{} }

// Defined reports whether the coordinate holds a value.
func (c Coord) Defined() bool { return c.defined }

// Value returns the coordinate value and whether it is defined.
func (c Coord) Value() (int, bool) { return c.value, c.defined }

func (c Coord) String() string {
	if !c.defined {
		return "undefined"
	}
	return strconv.Itoa(c.value)
}

// FeaturePoint is the (x, y) decay-rate feature of one series.
//
// X is the number of steps back from the most recent observation until the
// cumulative count first drops to 10% of its latest value or below. Y is
// the number of further steps until it drops to 1% or below.
type FeaturePoint struct {
	X, Y Coord
}

// Usable reports whether both coordinates are defined. Points that are not
// usable never take part in clustering.
func (p FeaturePoint) Usable() bool { return p.X.defined && p.Y.defined }

// ExtractFeatures computes the FeaturePoint of s.
//
// Observations are read newest first by calendar date. The peak is the
// count on the newest date; a zero peak, or a series that never falls to
// peak/10, yields an undefined point. A series that falls to peak/10 but
// never to peak/100 yields a defined X and undefined Y.
func ExtractFeatures(s Series) FeaturePoint {
	if len(s.obs) == 0 {
		return FeaturePoint{}
	}

	order := make([]int, len(s.obs))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool {
		return s.obs[order[a]].Date.After(s.obs[order[b]].Date)
	})

	peak := s.obs[order[0]].Count
	if peak == 0 {
		return FeaturePoint{}
	}

	// For integer counts, count <= peak/divisor over the reals is the same
	// as count <= peak/divisor with integer division.
	firstAtOrBelow := func(divisor int64) Coord {
		limit := peak / divisor
		for i := 1; i < len(order); i++ {
			if s.obs[order[i]].Count <= limit {
				return Defined(i)
			}
		}
		return Undefined()
	}

	x := firstAtOrBelow(10)
	if !x.defined {
		return FeaturePoint{}
	}
	y := firstAtOrBelow(100)
	if !y.defined {
		return FeaturePoint{X: x}
	}
	return FeaturePoint{X: x, Y: Defined(y.value - x.value)}
}
