package fps_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/fpsample/fps"
	"github.com/katalvlaran/fpsample/pointcloud"
	"github.com/stretchr/testify/require"
)

func randomCloud(t *testing.T, seed int64, n, d int) pointcloud.Cloud {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	data := make([]float32, n*d)
	for i := range data {
		data[i] = float32(rng.Intn(10000)) / 100
	}
	c, err := pointcloud.NewCloud(data, n, d)
	require.NoError(t, err)
	return c
}

// TestSample_ExactVariantsAgree checks that the three exact algorithms
// (Vanilla, BucketKDTree, BucketKDLine at several heights) produce a
// bitwise-identical selection sequence on the same input, as required by
// their shared O(M·N) reference semantics.
func TestSample_ExactVariantsAgree(t *testing.T) {
	t.Parallel()
	cloud := randomCloud(t, 42, 300, 3)
	m := 60
	start := pointcloud.StartAt(5)

	reference, err := fps.Sample(cloud, m, start, fps.Options{Algo: fps.Vanilla})
	require.NoError(t, err)

	variants := []fps.Options{
		{Algo: fps.BucketKDTree},
		{Algo: fps.BucketKDLine, H: 1},
		{Algo: fps.BucketKDLine, H: 2},
		{Algo: fps.BucketKDLine, H: 4},
	}
	for _, opts := range variants {
		got, err := fps.Sample(cloud, m, start, opts)
		require.NoError(t, err)
		require.Equal(t, reference.Indices, got.Indices, "opts=%+v", opts)
	}
}

// TestSample_NPDUKDTreeMatchesVanillaAtFullWindow checks that C4 degenerates
// to the exact algorithm once its neighbor window covers the whole cloud.
func TestSample_NPDUKDTreeMatchesVanillaAtFullWindow(t *testing.T) {
	t.Parallel()
	cloud := randomCloud(t, 7, 50, 2)
	m := 20
	start := pointcloud.StartAt(0)

	reference, err := fps.Sample(cloud, m, start, fps.Options{Algo: fps.Vanilla})
	require.NoError(t, err)

	got, err := fps.Sample(cloud, m, start, fps.Options{Algo: fps.NPDUKDTree, W: cloud.N()})
	require.NoError(t, err)

	require.Equal(t, reference.Indices, got.Indices)
}

// TestSample_FullCloudIsPermutation checks that requesting M==N produces
// every index exactly once, regardless of algorithm.
func TestSample_FullCloudIsPermutation(t *testing.T) {
	t.Parallel()
	cloud := randomCloud(t, 99, 25, 3)
	n := cloud.N()

	for _, opts := range []fps.Options{
		{Algo: fps.Vanilla},
		{Algo: fps.BucketKDTree},
		{Algo: fps.NPDU},
	} {
		res, err := fps.Sample(cloud, n, pointcloud.StartAt(0), opts)
		require.NoError(t, err, "opts=%+v", opts)
		require.Len(t, res.Indices, n)

		seen := make(map[uint64]bool, n)
		for _, idx := range res.Indices {
			require.False(t, seen[idx], "duplicate index %d, opts=%+v", idx, opts)
			seen[idx] = true
		}
	}
}

// TestSample_StartPrefixPreserved checks that the returned sequence always
// begins with the normalized start descriptor, in order.
func TestSample_StartPrefixPreserved(t *testing.T) {
	t.Parallel()
	cloud := randomCloud(t, 13, 40, 2)
	start := pointcloud.StartWith([]uint64{9, 3, 17})

	res, err := fps.Sample(cloud, 10, start, fps.DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, []uint64{9, 3, 17}, res.Indices[:3])
}
