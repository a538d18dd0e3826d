package kdtree

import "github.com/katalvlaran/fpsample/pointcloud"

// InitDMin computes node_dmin bottom-up from the current contents of dmin:
// leaf value is the max dmin over its points, internal value is the max
// over its children. Call this once, after dmin has been seeded and updated
// against the initial start set, and before the first
// SelectFarthest/UpdateAfter call.
//
// Complexity: O(N).
func (t *Tree) InitDMin(dmin pointcloud.DMin) {
	t.initDMin(dmin, 0)
}

func (t *Tree) initDMin(dmin pointcloud.DMin, idx int) float32 {
	nd := &t.nodes[idx]
	if nd.isLeaf() {
		max := dmin.Get(t.order[nd.lo])
		for k := nd.lo + 1; k < nd.hi; k++ {
			if v := dmin.Get(t.order[k]); v > max {
				max = v
			}
		}
		nd.dmin = max
		return max
	}

	l := t.initDMin(dmin, nd.left)
	r := t.initDMin(dmin, nd.right)
	max := l
	if r > max {
		max = r
	}
	nd.dmin = max
	return max
}

// SelectFarthest performs a branch-and-bound DFS: it returns the point
// index maximizing dmin, visiting the child with the larger node_dmin first
// and pruning the other child whenever its node_dmin cannot beat the best
// found so far. Ties are broken by smallest point index, matching the
// vanilla sampler's deterministic tie-break.
//
// Complexity: O(log N) amortized for well-balanced trees.
func (t *Tree) SelectFarthest(dmin pointcloud.DMin) uint64 {
	best, _ := t.selectFarthest(dmin, 0)
	return uint64(best)
}

func (t *Tree) selectFarthest(dmin pointcloud.DMin, idx int) (bestIdx int, bestVal float32) {
	nd := &t.nodes[idx]
	if nd.isLeaf() {
		bestIdx, bestVal = -1, -1
		for k := nd.lo; k < nd.hi; k++ {
			pi := t.order[k]
			if dmin.IsSelected(pi) {
				continue
			}
			v := dmin.Get(pi)
			if v > bestVal || (v == bestVal && pi < bestIdx) {
				bestVal = v
				bestIdx = pi
			}
		}
		return bestIdx, bestVal
	}

	first, second := nd.left, nd.right
	if t.nodes[second].dmin > t.nodes[first].dmin {
		first, second = second, first
	}

	bestIdx, bestVal = t.selectFarthest(dmin, first)

	// The unvisited child can only contain a better (or index-tying) answer
	// if its node_dmin upper bound is at least as large as what we already
	// have; otherwise every point inside it has dmin <= t.nodes[second].dmin
	// < bestVal and cannot win.
	if t.nodes[second].dmin >= bestVal {
		idx2, val2 := t.selectFarthest(dmin, second)
		if val2 > bestVal || (val2 == bestVal && idx2 < bestIdx) {
			bestIdx, bestVal = idx2, val2
		}
	}

	return bestIdx, bestVal
}

// UpdateAfter applies the update rule after q has been appended to the
// selection set: every point i with a box-distance lower bound below
// node_dmin(subtree) gets dmin[i] <- min(dmin[i], dist²(p_i, p_q));
// node_dmin is recomputed bottom-up along the visited path. Subtrees whose
// lower bound is already at least their node_dmin are skipped entirely.
//
// Complexity: O(log N) amortized for well-behaved clouds.
func (t *Tree) UpdateAfter(dmin pointcloud.DMin, q uint64) {
	t.updateAfter(dmin, 0, int(q))
}

func (t *Tree) updateAfter(dmin pointcloud.DMin, idx int, q int) {
	nd := &t.nodes[idx]
	lb2 := t.boxSqDist(nd, q)
	if lb2 >= nd.dmin {
		return
	}

	if nd.isLeaf() {
		max := float32(0)
		for k := nd.lo; k < nd.hi; k++ {
			pi := t.order[k]
			dmin.UpdateAt(t.cloud, pi, uint64(q))
			if v := dmin.Get(pi); k == nd.lo || v > max {
				max = v
			}
		}
		nd.dmin = max
		return
	}

	t.updateAfter(dmin, nd.left, q)
	t.updateAfter(dmin, nd.right, q)
	max := t.nodes[nd.left].dmin
	if t.nodes[nd.right].dmin > max {
		max = t.nodes[nd.right].dmin
	}
	nd.dmin = max
}

// boxSqDist returns the squared distance from point q's coordinates to
// node nd's bounding box (0 if q is inside), summing axes in ascending
// order for the same float32 determinism SqDist uses.
func (t *Tree) boxSqDist(nd *node, q int) float32 {
	return t.boxSqDistPoint(nd, t.cloud.Point(q))
}
