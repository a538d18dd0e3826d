// Package fps_test provides end-to-end (integration) checks for the public
// API that go beyond single-property unit tests.
// Goals:
//  1. Re-seeding a call with its own prior output reproduces that output's
//     prefix exactly (idempotence of re-seeding, spec §8 item 6).
//  2. The exact algorithms satisfy FPS's defining spread inequality: the
//     minimum pairwise distance within the selection is at least the
//     farthest any excluded point sits from the selection (spec §8 item 7).
package fps_test

import (
	"testing"

	"github.com/katalvlaran/fpsample/fps"
	"github.com/katalvlaran/fpsample/pointcloud"
	"github.com/stretchr/testify/require"
)

// TestIntegration_ReseedingIsIdempotent runs a sampling call, then feeds its
// own output back in as an explicit start list for a second, larger call.
// The first call's entire output must reappear verbatim as the second call's
// prefix, for every exact algorithm.
func TestIntegration_ReseedingIsIdempotent(t *testing.T) {
	t.Parallel()
	cloud := randomCloud(t, 101, 150, 3)

	for _, opts := range []fps.Options{
		{Algo: fps.Vanilla},
		{Algo: fps.BucketKDTree},
		{Algo: fps.BucketKDLine, H: 2},
	} {
		first, err := fps.Sample(cloud, 15, pointcloud.StartAt(4), opts)
		require.NoError(t, err, "opts=%+v", opts)

		second, err := fps.Sample(cloud, 30, pointcloud.StartWith(first.Indices), opts)
		require.NoError(t, err, "opts=%+v", opts)
		require.Equal(t, first.Indices, second.Indices[:len(first.Indices)], "opts=%+v", opts)
	}
}

// TestIntegration_SpreadLowerBound checks the defining optimality property
// of exact FPS: the minimum pairwise distance among the selected points is
// at least as large as the farthest any excluded point sits from the
// selection. If this failed, some excluded point would have been a better
// pick than one already chosen.
func TestIntegration_SpreadLowerBound(t *testing.T) {
	t.Parallel()
	cloud := randomCloud(t, 202, 120, 3)
	m := 25

	for _, opts := range []fps.Options{
		{Algo: fps.Vanilla},
		{Algo: fps.BucketKDTree},
		{Algo: fps.BucketKDLine, H: 3},
	} {
		res, err := fps.Sample(cloud, m, pointcloud.StartAt(0), opts)
		require.NoError(t, err, "opts=%+v", opts)

		selected := make(map[uint64]bool, m)
		for _, idx := range res.Indices {
			selected[idx] = true
		}

		minPairwise := minPairwiseDist(cloud, res.Indices)
		maxExcludedToSelection := maxDistToNearestSelected(cloud, selected)

		require.GreaterOrEqual(t, minPairwise, maxExcludedToSelection, "opts=%+v", opts)
	}
}

// minPairwiseDist returns the minimum squared distance between any two
// distinct points in indices.
func minPairwiseDist(cloud pointcloud.Cloud, indices []uint64) float32 {
	min := float32(-1)
	for i := 0; i < len(indices); i++ {
		for j := i + 1; j < len(indices); j++ {
			d := cloud.SqDist(int(indices[i]), int(indices[j]))
			if min < 0 || d < min {
				min = d
			}
		}
	}
	return min
}

// maxDistToNearestSelected returns, over every point not in selected, the
// squared distance to its nearest member of selected, maximized.
func maxDistToNearestSelected(cloud pointcloud.Cloud, selected map[uint64]bool) float32 {
	var max float32
	for i := 0; i < cloud.N(); i++ {
		if selected[uint64(i)] {
			continue
		}
		nearest := float32(-1)
		for s := range selected {
			d := cloud.SqDist(i, int(s))
			if nearest < 0 || d < nearest {
				nearest = d
			}
		}
		if nearest > max {
			max = nearest
		}
	}
	return max
}
