package espprc

// store holds the labels currently ending at one vertex. Among its non-dead
// entries no label dominates another (antichain). Entry order carries no meaning:
// removals swap the last entry into the freed slot.
type store struct {
	ids []labelID
}

// storeDelta reports what one insert did to a store, for Stats.
type storeDelta struct {
	dominated   int // entries removed because the candidate dominates them
	invalidated int // labels marked dead by the resulting cascades
	reclaimed   int // dead entries dropped while scanning
}

// insert offers candidate to the store.
//
// Scan:
//  1. Dead entries are skipped without comparison.
//  2. If a non-dead entry dominates candidate, insert returns false and the store
//     is unchanged. No entry removed earlier in the scan can precede this case:
//     it would be dominated by candidate and therefore by that entry, and the
//     non-dead entries form an antichain.
//  3. Every entry dominated by candidate is removed and invalidated together with
//     all of its descendants.
//
// On acceptance dead entries are reclaimed and candidate is appended.
//
// Complexity: O(k·(n/64 + nres)) for k entries, plus the cascades.
func (s *store) insert(a *arena, candidate labelID) (bool, storeDelta) {
	var (
		d    storeDelta
		c    = a.get(candidate)
		cur  *label
		i    int
		last int
	)
	for i < len(s.ids) {
		cur = a.get(s.ids[i])
		switch {
		case cur.state == stateDead:
			i++
			continue
		case dominates(cur, c):
			return false, d
		case dominates(c, cur):
			d.dominated++
			d.invalidated += a.invalidate(s.ids[i])
		default:
			i++
			continue
		}
		last = len(s.ids) - 1
		s.ids[i] = s.ids[last]
		s.ids = s.ids[:last]
	}
	d.reclaimed = s.reclaim(a)
	s.ids = append(s.ids, candidate)

	return true, d
}

// reclaim drops dead entries in place and returns how many were dropped.
func (s *store) reclaim(a *arena) int {
	var (
		kept = s.ids[:0]
		id   labelID
	)
	for _, id = range s.ids {
		if a.get(id).state != stateDead {
			kept = append(kept, id)
		}
	}
	n := len(s.ids) - len(kept)
	s.ids = kept

	return n
}

// seed appends id without any dominance scan. Used for the initial depot label.
func (s *store) seed(id labelID) {
	s.ids = append(s.ids, id)
}

// len returns the number of entries, dead ones included.
func (s *store) len() int { return len(s.ids) }
