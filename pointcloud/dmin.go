package pointcloud

import "math"

// DMin is the min-distance vector: for every point i, the squared distance
// to the nearest member of the selection set built up so far. Entries start
// at +Inf and only ever decrease.
//
// DMin also tracks which indices have already been selected. Ordinary FPS
// inputs never need this — an unselected point's dmin is strictly positive
// once any selection exists, so ArgMax would never revisit a selected index
// anyway. Degenerate inputs (coincident points) break that assumption: two
// points at the same location both drop to dmin=0, and without an explicit
// "already taken" flag the tie-break would happily reselect the same index
// forever. Marking handles this without disturbing the dmin=0 value itself.
type DMin struct {
	vals  []float32
	taken []bool
}

// NewDMin allocates a DMin for n points, every entry initialized to +Inf,
// as if the selection set were still empty.
func NewDMin(n int) DMin {
	vals := make([]float32, n)
	inf := float32(math.Inf(1))
	for i := range vals {
		vals[i] = inf
	}
	return DMin{vals: vals, taken: make([]bool, n)}
}

// Get returns dmin[i].
func (d DMin) Get(i int) float32 { return d.vals[i] }

// Set forces dmin[i] to exactly v.
func (d DMin) Set(i int, v float32) { d.vals[i] = v }

// MarkSelected records that point i now belongs to the selection set: its
// dmin collapses to 0 and it is excluded from future ArgMax/SelectFarthest
// results regardless of ties. Idempotent.
func (d DMin) MarkSelected(i int) {
	d.taken[i] = true
	d.vals[i] = 0
}

// IsSelected reports whether i has been marked via MarkSelected.
func (d DMin) IsSelected(i int) bool { return d.taken[i] }

// UpdateAll performs the full-scan update rule: for every point i,
// dmin[i] <- min(dmin[i], dist²(p_i, p_q)). Used by the bucket samplers to
// apply the start set, and as the reference update against which the
// windowed variants' partial updates are an approximation (the vanilla
// sampler runs its own column-major equivalent).
//
// Complexity: O(N·D).
func (d DMin) UpdateAll(cloud Cloud, q uint64) {
	qi := int(q)
	for i := range d.vals {
		dist := cloud.SqDist(i, qi)
		if dist < d.vals[i] {
			d.vals[i] = dist
		}
	}
	d.vals[qi] = 0
}

// UpdateAt applies the update rule to a single index i against q, returning
// whether dmin[i] changed. Used by the windowed (C2/C4) and bucket
// (C5/C6 leaf scan) update rules, which touch a strict subset of indices.
func (d DMin) UpdateAt(cloud Cloud, i int, q uint64) bool {
	dist := cloud.SqDist(i, int(q))
	if dist < d.vals[i] {
		d.vals[i] = dist
		return true
	}
	return false
}

// ArgMax returns the index achieving the maximum dmin value among points not
// yet marked via MarkSelected, ties broken by smallest index; this is the
// vanilla selection rule, also used as the plain-scan selection step for the
// windowed-by-index variant.
//
// Complexity: O(N).
func (d DMin) ArgMax() uint64 {
	best := -1
	var bestVal float32
	for i, v := range d.vals {
		if d.taken[i] {
			continue
		}
		if best == -1 || v > bestVal {
			bestVal = v
			best = i
		}
	}
	return uint64(best)
}

// ArgMaxVal returns the maximum dmin value over all N points, including
// already-selected ones. Paired with ArgMax for tests that check a kd-tree's
// node_dmin invariant: node_dmin equals the max of dmin over its subtree,
// which is defined over every point, not just unselected ones.
func (d DMin) ArgMaxVal() float32 {
	max := d.vals[0]
	for _, v := range d.vals[1:] {
		if v > max {
			max = v
		}
	}
	return max
}

// Len reports the number of tracked points.
func (d DMin) Len() int { return len(d.vals) }
