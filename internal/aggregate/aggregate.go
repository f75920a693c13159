// Package aggregate groups per-file critical currents by field angle.
package aggregate

import "sort"

// Filter restricts which measurements enter the accumulator. Nil fields
// match everything.
type Filter struct {
	Angle *int
	Field *float64
}

// Match reports whether a measurement passes the filter. Field strength is
// an exact comparison against the filename-derived value.
func (f Filter) Match(angle int, field float64) bool {
	if f.Angle != nil && angle != *f.Angle {
		return false
	}
	if f.Field != nil && field != *f.Field {
		return false
	}
	return true
}

// Group holds the per-angle series of (field strength, critical current)
// points. The two slices are parallel.
type Group struct {
	Angle            int
	FieldStrengths   []float64
	CriticalCurrents []float64
}

// Accumulator collects one point per processed file, keyed by angle.
// Use NewAccumulator; the zero value is not ready.
type Accumulator struct {
	groups map[int]*Group
}

// NewAccumulator returns an empty accumulator.
func NewAccumulator() *Accumulator {
	return &Accumulator{groups: make(map[int]*Group)}
}

// Add appends one measurement point to its angle group. NaN critical
// currents are kept; they surface as gaps in the plotted series.
func (a *Accumulator) Add(angle int, field, ic float64) {
	g, ok := a.groups[angle]
	if !ok {
		g = &Group{Angle: angle}
		a.groups[angle] = g
	}
	g.FieldStrengths = append(g.FieldStrengths, field)
	g.CriticalCurrents = append(g.CriticalCurrents, ic)
}

// Groups finalizes the accumulated data: angle groups in ascending angle
// order, each with its points sorted by field strength.
func (a *Accumulator) Groups() []*Group {
	angles := make([]int, 0, len(a.groups))
	for angle := range a.groups {
		angles = append(angles, angle)
	}
	sort.Ints(angles)

	out := make([]*Group, 0, len(angles))
	for _, angle := range angles {
		g := a.groups[angle]
		sort.Sort(byField{g})
		out = append(out, g)
	}
	return out
}

// byField sorts a group's parallel slices by field strength.
type byField struct{ *Group }

func (s byField) Len() int { return len(s.FieldStrengths) }

func (s byField) Less(i, j int) bool { return s.FieldStrengths[i] < s.FieldStrengths[j] }

func (s byField) Swap(i, j int) {
	s.FieldStrengths[i], s.FieldStrengths[j] = s.FieldStrengths[j], s.FieldStrengths[i]
	s.CriticalCurrents[i], s.CriticalCurrents[j] = s.CriticalCurrents[j], s.CriticalCurrents[i]
}
