package board

import (
	"strconv"
	"strings"
)

// Key returns the canonical identity of the state: every vehicle's
// (id, cells, orientation) tuple in ascending id order, concatenated
// with the flattened grid contents. Two states produce equal keys iff
// their vehicle tables and grids agree, independent of the order the
// vehicle table was supplied in. Lexicographic order on keys is total,
// which makes the key double as a deterministic tie-break.
//
// Grid contents alone would under-identify a state in general, so the
// per-vehicle tuples always participate.
func (s *State) Key() string {
	var b strings.Builder
	b.Grow(len(s.grid) + 16*len(s.vehicles))
	for _, v := range s.vehicles {
		b.WriteByte(v.ID)
		b.WriteByte(':')
		for _, c := range v.Cells {
			// Decimal coordinates keep rows and columns beyond 9
			// unambiguous in the concatenation.
			b.WriteString(strconv.Itoa(c.Row))
			b.WriteByte(',')
			b.WriteString(strconv.Itoa(c.Col))
			b.WriteByte(';')
		}
		if v.Orientation == Horizontal {
			b.WriteByte('h')
		} else {
			b.WriteByte('v')
		}
		b.WriteByte('|')
	}
	b.WriteByte('#')
	b.Write(s.grid)
	return b.String()
}
