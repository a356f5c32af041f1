package oracle

import (
	"fmt"

	"github.com/mooshroom4422/honours-project/grid"
)

// FirstStep returns the direction of the neighbour of s lying on a shortest
// path from s to t (spec.md §4.B "Lookup"). s and t must be the same Map's
// free tiles that were present when o was built.
func (o *Oracle) FirstStep(s, t grid.Point) (grid.Direction, error) {
	if s == t {
		return grid.Stay, nil
	}
	rects := o.bySource[idx(o.width, s)]
	if rects == nil {
		return grid.Unreachable, ErrSourceNotFree
	}
	for _, r := range rects {
		if r.Contains(t) {
			if r.Dir == grid.Unreachable {
				return grid.Unreachable, fmt.Errorf("oracle: FirstStep(%v,%v): %w", s, t, ErrCorrupt)
			}
			return r.Dir, nil
		}
	}
	return grid.Unreachable, fmt.Errorf("oracle: FirstStep(%v,%v): %w", s, t, ErrCorrupt)
}

// Dist returns the number of steps from s to t, computed by repeatedly
// following FirstStep until t is reached (spec.md §4.B "Lookup").
func (o *Oracle) Dist(s, t grid.Point) (int, error) {
	cur := s
	dist := 0
	for cur != t {
		d, err := o.FirstStep(cur, t)
		if err != nil {
			return 0, err
		}
		cur = cur.Add(d)
		dist++
	}
	return dist, nil
}
