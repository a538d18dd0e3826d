package fps

import (
	"github.com/katalvlaran/fpsample/kdtree"
	"github.com/katalvlaran/fpsample/pointcloud"
)

// npduKDTreeLeafCap is the leaf capacity used for the kd-tree built
// internally by C4. C4's tree only ever answers nearest-neighbor queries
// (never a node_dmin branch-and-bound selection), so its leaf size is a
// pure performance knob, independent of any BucketKDLine height option.
const npduKDTreeLeafCap = 8

// sampleNPDUKDTree implements C4: the windowed heuristic of C2, but the
// window is the w geometric nearest neighbors of the newest pick (found via
// a kd-tree query) rather than an index-order window. This makes the
// heuristic meaningful for clouds whose natural order carries no spatial
// locality, at the cost of an O(log N) query per update in place of C2's
// O(1) window-bounds arithmetic.
//
// Complexity: O(M·(W+log N)·D) time, O(N) extra space.
func sampleNPDUKDTree(cloud pointcloud.Cloud, m int, seeds []uint64, w int) ([]uint64, error) {
	tree, err := kdtree.Build(cloud, npduKDTreeLeafCap)
	if err != nil {
		return nil, err
	}

	n := cloud.N()
	dmin := pointcloud.NewDMin(n)

	neighborUpdate := func(q uint64) {
		dmin.UpdateAt(cloud, int(q), q)
		for _, nb := range tree.NearestByIndex(q, w) {
			dmin.UpdateAt(cloud, int(nb), q)
		}
		dmin.MarkSelected(int(q))
	}

	indices := make([]uint64, 0, m)
	for _, s := range seeds {
		neighborUpdate(s)
		indices = append(indices, s)
	}
	for len(indices) < m {
		q := dmin.ArgMax()
		indices = append(indices, q)
		neighborUpdate(q)
	}
	return indices, nil
}
