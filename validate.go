package hac

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedLinkage is returned by Validate for structural violations.
	ErrMalformedLinkage = errors.New("hac: malformed linkage")
	// ErrNotUltrametric is returned by Validate when a merge distance is
	// smaller than the one before it.
	ErrNotUltrametric = errors.New("hac: merge distances decrease")
)

// Validate checks that l is a well-formed linkage over m leaves: at most m-1
// rows, every id already exists and is consumed at most once, Left < Right,
// sizes add up, and distances never decrease.
func Validate(l Linkage, m int) error {
	if m < 0 {
		return fmt.Errorf("%w: negative leaf count %d", ErrMalformedLinkage, m)
	}
	if len(l) > max(m-1, 0) {
		return fmt.Errorf("%w: %d rows for %d leaves", ErrMalformedLinkage, len(l), m)
	}

	uf := newUnionFind(m)
	for i, mg := range l {
		limit := m + i
		if mg.Left < 0 || mg.Right >= limit {
			return fmt.Errorf("%w: row %d references id outside [0, %d)", ErrMalformedLinkage, i, limit)
		}
		if mg.Left >= mg.Right {
			return fmt.Errorf("%w: row %d has left %d >= right %d", ErrMalformedLinkage, i, mg.Left, mg.Right)
		}
		if uf.parent[mg.Left] != -1 || uf.parent[mg.Right] != -1 {
			return fmt.Errorf("%w: row %d reuses an already merged cluster", ErrMalformedLinkage, i)
		}
		if want := uf.size[mg.Left] + uf.size[mg.Right]; mg.Size != want {
			return fmt.Errorf("%w: row %d has size %d, want %d", ErrMalformedLinkage, i, mg.Size, want)
		}
		if i > 0 && mg.Distance < l[i-1].Distance {
			return fmt.Errorf("%w: row %d distance %g < %g", ErrNotUltrametric, i, mg.Distance, l[i-1].Distance)
		}
		uf.merge(mg.Left, mg.Right)
	}
	return nil
}
