package fps

import "github.com/katalvlaran/fpsample/pointcloud"

// sampleNPDU implements C2: the windowed heuristic. Instead of updating
// every point's dmin against the newest pick, it only touches indices
// within ±w of the pick's position in the cloud's natural ordering. This
// trades exactness for O(M·W·D) instead of O(M·N·D), and is only sound when
// the cloud's natural order correlates with spatial locality (e.g. points
// already sorted along a space-filling curve).
//
// Complexity: O(M·W·D) time, O(N) extra space.
func sampleNPDU(cloud pointcloud.Cloud, m int, seeds []uint64, w int) []uint64 {
	n := cloud.N()
	dmin := pointcloud.NewDMin(n)

	windowUpdate := func(q uint64) {
		qi := int(q)
		lo, hi := qi-w, qi+w
		if lo < 0 {
			lo = 0
		}
		if hi > n-1 {
			hi = n - 1
		}
		for i := lo; i <= hi; i++ {
			dmin.UpdateAt(cloud, i, q)
		}
		dmin.MarkSelected(qi)
	}

	indices := make([]uint64, 0, m)
	for _, s := range seeds {
		windowUpdate(s)
		indices = append(indices, s)
	}
	for len(indices) < m {
		q := dmin.ArgMax()
		indices = append(indices, q)
		windowUpdate(q)
	}
	return indices
}
