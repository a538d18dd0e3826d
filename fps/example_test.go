package fps_test

import (
	"fmt"

	"github.com/katalvlaran/fpsample/fps"
	"github.com/katalvlaran/fpsample/pointcloud"
)

// ExampleSample_unitSquare samples all four corners of a unit square
// starting from the origin. The second pick is always the diagonally
// opposite corner (distance sqrt(2), strictly farther than either adjacent
// corner); the third and fourth picks are the two remaining corners, tied
// at distance 1 from both prior picks and broken by smaller index.
func ExampleSample_unitSquare() {
	cloud, err := pointcloud.NewCloud([]float32{
		0, 0, // 0
		1, 0, // 1
		0, 1, // 2
		1, 1, // 3
	}, 4, 2)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	res, err := fps.Sample(cloud, 4, pointcloud.StartAt(0), fps.DefaultOptions())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Indices)
	// Output: [0 3 1 2]
}

// ExampleSample_collinearUnevenSpacing samples a five-point line with uneven
// gaps starting from the left end, to show the third pick tracking the
// largest remaining gap rather than a fixed midpoint.
func ExampleSample_collinearUnevenSpacing() {
	cloud, err := pointcloud.NewCloud([]float32{
		0, 1, 2, 5, 10,
	}, 5, 1)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	res, err := fps.Sample(cloud, 3, pointcloud.StartAt(0), fps.DefaultOptions())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Indices)
	// Output: [0 4 3]
}

// ExampleSample_collinear reproduces spec.md §8 scenario S2 verbatim: five
// evenly spaced points on a line, M=3, start=0. The second pick is always
// the far end (distance 4); the third is index 2, the midpoint, which sits
// at distance min(2,2)=2 from the current selection {0,4} and beats indices
// 1 and 3 (each at distance 1 from its nearer end).
func ExampleSample_collinear() {
	cloud, err := pointcloud.NewCloud([]float32{
		0, 1, 2, 3, 4,
	}, 5, 1)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	res, err := fps.Sample(cloud, 3, pointcloud.StartAt(0), fps.DefaultOptions())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Indices)
	// Output: [0 4 2]
}

// ExampleSample_multiStart seeds the selection set with an explicit ordered
// list rather than a single index; the algorithm continues from there.
func ExampleSample_multiStart() {
	cloud, err := pointcloud.NewCloud([]float32{
		0, 0, // 0
		1, 0, // 1
		0, 1, // 2
		1, 1, // 3
	}, 4, 2)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	res, err := fps.Sample(cloud, 4, pointcloud.StartWith([]uint64{2, 1}), fps.DefaultOptions())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Indices)
	// Output: [2 1 0 3]
}

// ExampleSample_coincidentPoints samples a degenerate cloud where every
// point occupies the same location. Every dmin collapses to 0 immediately,
// so the tie-break rule alone determines the order: smallest unselected
// index first.
func ExampleSample_coincidentPoints() {
	data := make([]float32, 10*2)
	cloud, err := pointcloud.NewCloud(data, 10, 2)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	res, err := fps.Sample(cloud, 5, pointcloud.StartAt(0), fps.DefaultOptions())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Indices)
	// Output: [0 1 2 3 4]
}
