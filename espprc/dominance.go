package espprc

import "github.com/soniakeys/bits"

// dominates reports whether label a is at least as good as label b on every
// tracked dimension: cost, length, visited set (a ⊆ b) and per-resource load.
// Whenever dominates(a, b) holds, every continuation of b is also a continuation
// of a with no worse cost, length or load, so b may be discarded.
//
// The relation is a partial order: reflexive, transitive, and antisymmetric up to
// componentwise equality. dominates(a, b) and dominates(b, a) must be checked
// separately since neither implies the other.
//
// Complexity: O(n/64 + nres).
func dominates(a, b *label) bool {
	if a.cost > b.cost || a.length > b.length {
		return false
	}
	var r int
	for r = range a.load {
		if a.load[r] > b.load[r] {
			return false
		}
	}

	return subset(a.visited, b.visited)
}

// subset reports whether every bit set in x is also set in y.
// Both sets are built from bits.New with the same Num, so the padding bits of the
// last word are zero on both sides.
func subset(x, y bits.Bits) bool {
	var (
		i int
		w uint64
	)
	for i, w = range x.Bits {
		if w&^y.Bits[i] != 0 {
			return false
		}
	}

	return true
}
