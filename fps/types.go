// Package fps defines common types, configuration options, and sentinel
// errors used by the exact and heuristic Farthest Point Sampling algorithms.
//
// Design goals:
//   - Mathematical rigor: precise, specialized errors; explicit invariants
//     on the returned selection.
//   - Extensibility: a single Options struct covers both exact and
//     heuristic variants.
//   - Determinism: no randomized component anywhere in the dispatch path.
//   - Zero surprises: sensible defaults (an exact, kd-tree-accelerated
//     algorithm) with heuristics available by explicit opt-in.
package fps

// Algorithm enumerates the top-level FPS strategies supported by the
// dispatcher.
type Algorithm int

const (
	// BucketKDTree: exact FPS via kd-tree branch-and-bound, single-point
	// leaves. Default.
	BucketKDTree Algorithm = iota

	// BucketKDLine: exact FPS via kd-tree branch-and-bound, 2^H-point
	// leaves (better cache locality for large N).
	BucketKDLine

	// Vanilla: exact full-scan FPS, O(M·N·D).
	Vanilla

	// NPDU: windowed heuristic FPS restricting updates to a fixed index
	// window around the newest pick.
	NPDU

	// NPDUKDTree: windowed heuristic FPS restricting updates to the
	// k-nearest geometric neighbors of the newest pick.
	NPDUKDTree
)

// Default knobs.
const (
	// DefaultWindowScale is the constant in the default window-width
	// formula W = floor(N/M * DefaultWindowScale), used by NPDU and
	// NPDUKDTree when Options.W == 0.
	DefaultWindowScale = 16

	// DefaultHeight is the default leaf-capacity exponent for
	// BucketKDLine when Options.H == 0 (leaf holds 2^DefaultHeight points).
	DefaultHeight = 3
)

// Options defines configurable parameters for FPS algorithms.
// Every field has a zero-value default: Algo selects BucketKDTree, W the
// default window formula, and H DefaultHeight (which BucketKDLine rejects
// with ErrBadHeight when the cloud has fewer than 2^DefaultHeight points).
type Options struct {
	// Algo selects the top-level algorithm (dispatcher). Default:
	// BucketKDTree.
	Algo Algorithm

	// W is the NPDU window half-width, or the NPDUKDTree nearest-neighbor
	// count. Zero selects the default
	// formula floor(N/M*16), which is then clamped to the valid range for
	// the chosen algorithm (clamping is reported via Result.Warnings).
	// Ignored by Vanilla, BucketKDTree, and BucketKDLine.
	W int

	// H is BucketKDLine's leaf-capacity exponent: a leaf holds up to 2^H
	// points. Zero selects DefaultHeight. Ignored by every other algorithm.
	H int
}

// DefaultOptions returns a fully populated Options struct with safe,
// production-ready defaults:
//   - BucketKDTree (exact, kd-tree-accelerated, single-point leaves)
//   - W=0 (only relevant once Algo is switched to a windowed heuristic)
//   - H=0 (only relevant once Algo is switched to BucketKDLine)
func DefaultOptions() Options {
	return Options{
		Algo: BucketKDTree,
		W:    0,
		H:    0,
	}
}

// Result encapsulates the output of a sampling call.
type Result struct {
	// Indices is the ordered sequence of selected point indices.
	// Invariants:
	//   len(Indices) == m
	//   every index in [0, N) appears at most once
	//   Indices[:start.Len()] equals the normalized start descriptor, in order
	Indices []uint64

	// Warnings reports non-fatal adjustments made while satisfying the
	// request, such as a window width clamped to the cloud size. Empty when
	// no adjustment was needed.
	Warnings []string
}
