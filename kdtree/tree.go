package kdtree

import (
	"sort"

	"github.com/katalvlaran/fpsample/pointcloud"
)

// node is one entry of Tree.nodes. Leaves have left == right == -1 and their
// points are order[lo:hi]; internal nodes have lo/hi spanning the union of
// their children's ranges.
type node struct {
	lo, hi         int // range into Tree.order
	bboxLo, bboxHi []float32
	axis           int
	split          float32
	left, right    int // -1 for a leaf
	dmin           float32
}

func (nd *node) isLeaf() bool { return nd.left < 0 }

// Tree is a balanced, median-split kd-tree over a pointcloud.Cloud.
type Tree struct {
	cloud   pointcloud.Cloud
	order   []int // order[k] is the cloud point index stored at tree slot k
	nodes   []node
	leafCap int
}

// Build constructs a kd-tree over every point in cloud, with at most
// leafCap points per leaf. leafCap=1 gives the single-point leaves the
// bucket-kdtree variant wants; leafCap=1<<h gives the wider kdline leaves
// the height-bucketed variant wants.
//
// Complexity: O(N log² N) time (each of O(log(N/leafCap)) levels fully
// sorts its points by the widest axis, O(k log k) per node of k points; no
// linear-time median selection is used), O(N) space.
func Build(cloud pointcloud.Cloud, leafCap int) (*Tree, error) {
	if leafCap < 1 {
		return nil, ErrBadLeafCap
	}

	n := cloud.N()
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}

	t := &Tree{cloud: cloud, order: order, leafCap: leafCap}
	t.buildRange(0, n)

	return t, nil
}

// buildRange recursively partitions order[lo:hi], appending nodes to
// t.nodes, and returns the index of the node covering that range.
func (t *Tree) buildRange(lo, hi int) int {
	idx := len(t.nodes)
	t.nodes = append(t.nodes, node{lo: lo, hi: hi, left: -1, right: -1})

	bboxLo, bboxHi := t.computeBBox(lo, hi)
	t.nodes[idx].bboxLo = bboxLo
	t.nodes[idx].bboxHi = bboxHi

	if hi-lo <= t.leafCap {
		return idx
	}

	axis := widestAxis(bboxLo, bboxHi)
	t.sortRangeByAxis(lo, hi, axis)

	mid := (lo + hi) / 2
	splitVal := t.cloud.Point(t.order[mid])[axis]

	left := t.buildRange(lo, mid)
	right := t.buildRange(mid, hi)

	t.nodes[idx].axis = axis
	t.nodes[idx].split = splitVal
	t.nodes[idx].left = left
	t.nodes[idx].right = right

	return idx
}

// computeBBox scans order[lo:hi] and returns the tight axis-aligned
// bounding box over those points.
func (t *Tree) computeBBox(lo, hi int) (bboxLo, bboxHi []float32) {
	d := t.cloud.D()
	bboxLo = make([]float32, d)
	bboxHi = make([]float32, d)
	first := t.cloud.Point(t.order[lo])
	copy(bboxLo, first)
	copy(bboxHi, first)

	for k := lo + 1; k < hi; k++ {
		p := t.cloud.Point(t.order[k])
		for axis := 0; axis < d; axis++ {
			if p[axis] < bboxLo[axis] {
				bboxLo[axis] = p[axis]
			}
			if p[axis] > bboxHi[axis] {
				bboxHi[axis] = p[axis]
			}
		}
	}

	return bboxLo, bboxHi
}

// widestAxis returns the axis of maximum extent, ties broken by smallest
// axis index.
func widestAxis(bboxLo, bboxHi []float32) int {
	best := 0
	bestExtent := bboxHi[0] - bboxLo[0]
	for axis := 1; axis < len(bboxLo); axis++ {
		extent := bboxHi[axis] - bboxLo[axis]
		if extent > bestExtent {
			bestExtent = extent
			best = axis
		}
	}
	return best
}

// sortRangeByAxis orders order[lo:hi] by coordinate on the given axis,
// ties broken by original point index, so the median split is deterministic.
func (t *Tree) sortRangeByAxis(lo, hi, axis int) {
	window := t.order[lo:hi]
	sort.Slice(window, func(i, j int) bool {
		pi := t.cloud.Point(window[i])[axis]
		pj := t.cloud.Point(window[j])[axis]
		if pi != pj {
			return pi < pj
		}
		return window[i] < window[j]
	})
}
