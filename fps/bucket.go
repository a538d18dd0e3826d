package fps

import (
	"github.com/katalvlaran/fpsample/kdtree"
	"github.com/katalvlaran/fpsample/pointcloud"
)

// sampleBucket implements the shared engine behind C5 (BucketKDTree,
// leafCap=1) and C6 (BucketKDLine, leafCap=2^H): both are exact FPS,
// identical in output to Vanilla, computed via the kd-tree's node_dmin
// branch-and-bound selection and update instead of a linear scan. leafCap
// is the only axis of variation between the two.
//
// Complexity: O((M+N)·log N) amortized time for well-balanced clouds,
// O(N) extra space.
func sampleBucket(cloud pointcloud.Cloud, m int, seeds []uint64, leafCap int) ([]uint64, error) {
	tree, err := kdtree.Build(cloud, leafCap)
	if err != nil {
		return nil, err
	}

	n := cloud.N()
	dmin := pointcloud.NewDMin(n)

	for _, s := range seeds {
		dmin.UpdateAll(cloud, s)
	}
	for _, s := range seeds {
		dmin.MarkSelected(int(s))
	}
	tree.InitDMin(dmin)

	indices := make([]uint64, 0, m)
	indices = append(indices, seeds...)

	for len(indices) < m {
		q := tree.SelectFarthest(dmin)
		indices = append(indices, q)
		dmin.MarkSelected(int(q))
		tree.UpdateAfter(dmin, q)
	}

	return indices, nil
}
