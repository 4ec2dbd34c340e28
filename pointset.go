package hac

// Point is a usable FeaturePoint tied to the entity it came from.
type Point struct {
	Label string
	X, Y  int
}

// PointSet is the ordered set of usable points. A point's index in the set
// is its leaf id in every later stage.
type PointSet struct {
	points  []Point
	dropped []string
}

// BuildPointSet extracts features from every series in order and keeps the
// usable ones. Series whose point is not usable are recorded in Dropped and
// never appear in any clustering output.
func BuildPointSet(series []Series) *PointSet {
	ps := &PointSet{points: make([]Point, 0, len(series))}
	for _, s := range series {
		fp := ExtractFeatures(s)
		if !fp.Usable() {
			ps.dropped = append(ps.dropped, s.Label())
			continue
		}
		ps.points = append(ps.points, Point{Label: s.Label(), X: fp.X.value, Y: fp.Y.value})
	}
	return ps
}

// NewPointSet builds a PointSet directly from points, in order.
func NewPointSet(points []Point) *PointSet {
	ps := &PointSet{points: make([]Point, len(points))}
	copy(ps.points, points)
	return ps
}

// Len returns the number of points (m).
func (ps *PointSet) Len() int { return len(ps.points) }

// At returns the point with leaf id i.
func (ps *PointSet) At(i int) Point { return ps.points[i] }

// Labels returns the entity labels indexed by leaf id.
func (ps *PointSet) Labels() []string {
	out := make([]string, len(ps.points))
	for i, p := range ps.points {
		out[i] = p.Label
	}
	return out
}

// Dropped returns the labels of series that were filtered out, in input order.
func (ps *PointSet) Dropped() []string {
	out := make([]string, len(ps.dropped))
	copy(out, ps.dropped)
	return out
}
