package fps

import "github.com/katalvlaran/fpsample/pointcloud"

// sampleVanilla implements C1: the exact full-scan reference algorithm.
// Every selection step re-scans every unselected point's dmin against the
// most recently picked point.
//
// The inner update loop walks the cloud's column-major (dimension-major)
// layout rather than point-major: accumulating one axis at a time over all
// N points keeps each axis sweep contiguous in memory, which is where this
// variant spends nearly all of its time. The final squared-distance value
// per point is identical to Cloud.SqDist's dimension-ascending summation,
// so this remains bit-for-bit consistent with every other algorithm here.
//
// Complexity: O(M·N·D) time, O(N) extra space.
func sampleVanilla(cloud pointcloud.Cloud, m int, seeds []uint64) []uint64 {
	n, d := cloud.N(), cloud.D()
	col := cloud.ColumnMajor()
	dmin := pointcloud.NewDMin(n)
	sq := make([]float32, n)

	updateAll := func(q uint64) {
		for i := range sq {
			sq[i] = 0
		}
		for axis := 0; axis < d; axis++ {
			base := axis * n
			qv := col[base+int(q)]
			for i := 0; i < n; i++ {
				delta := col[base+i] - qv
				sq[i] += delta * delta
			}
		}
		for i := 0; i < n; i++ {
			if sq[i] < dmin.Get(i) {
				dmin.Set(i, sq[i])
			}
		}
		dmin.MarkSelected(int(q))
	}

	indices := make([]uint64, 0, m)
	for _, s := range seeds {
		updateAll(s)
		indices = append(indices, s)
	}
	for len(indices) < m {
		q := dmin.ArgMax()
		indices = append(indices, q)
		updateAll(q)
	}
	return indices
}
