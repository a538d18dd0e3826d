// Package fps provides Farthest Point Sampling over point clouds with a
// consistent API, strict sentinel errors, and deterministic behavior. The
// package exposes an exact O(M·N) reference algorithm, two heuristic
// approximations, and two exact kd-tree-accelerated variants behind a single
// dispatcher.
//
// # What & Why
//
// Given a cloud of N points and a target count M, fps selects an ordered
// sequence of M distinct point indices such that each newly selected point
// is (exactly, or approximately) the farthest from every point selected so
// far. The first point(s) come from a caller-supplied start descriptor
// rather than being chosen by the algorithm.
//
//   - Exact: Vanilla full-scan FPS (Vanilla), and two kd-tree-pruned exact
//     variants (BucketKDTree, BucketKDLine) that produce the identical
//     sequence via branch-and-bound instead of a linear scan.
//   - Heuristic: NPDU restricts the update step to a fixed-radius window
//     around the newly selected point instead of the whole cloud (NPDU),
//     and NPDUKDTree replaces the window with a kd-tree k-nearest-neighbor
//     query of the same width.
//
// # Algorithms & Complexity
//
//	Vanilla (C1, full-scan exact)
//	  Time:   O(M·N·D)     Memory: O(N)
//	  Update: every unselected point's dmin checked against the new pick.
//
//	NPDU (C2, windowed heuristic)
//	  Time:   O(M·W·D)     Memory: O(N)
//	  Update: only indices within ±W of the new pick (by index, not space).
//	  W defaults to floor(N/M·16), clamped to N-1; clamping is reported via
//	  Result.Warnings.
//
//	NPDUKDTree (C4, windowed heuristic via kd-tree)
//	  Time:   O(M·(W+log N)·D)     Memory: O(N)
//	  Update: the W geometric nearest neighbors of the new pick, found via a
//	  kd-tree query instead of an index window. W defaults the same way as
//	  NPDU and clamps to N (a point can be its own sole neighbor window).
//
//	BucketKDTree (C5, exact via single-point kd-tree leaves)
//	  Time:   O((M+N)·log N) amortized     Memory: O(N)
//	  Selection and update both branch-and-bound over node_dmin; leaf
//	  capacity is 1.
//
//	BucketKDLine (C6, exact via 2^H-point kd-tree leaves)
//	  Time:   O((M+N)·log N) amortized, better cache locality than C5 for
//	  large N     Memory: O(N)
//	  Identical traversal to BucketKDTree with leaf capacity 2^H.
//
// # Determinism & Stability
//
//   - No randomness is used by any algorithm in this package; output
//     depends only on the input cloud, M, the start descriptor, and Options.
//   - All squared-distance accumulation sums axis terms in dimension-ascending
//     order (pointcloud.Cloud.SqDist, and the same order in Vanilla's
//     column-major loop) for bitwise-reproducible float32 results across
//     platforms.
//   - Every tie (equal dmin value) is broken by the smaller point index,
//     uniformly across all five algorithms' selection rules.
//
// # Options
//
//	type Options struct {
//	    Algo Algorithm // Vanilla / NPDU / NPDUKDTree / BucketKDTree / BucketKDLine
//	    W    int       // NPDU window half-width / NPDUKDTree neighbor count; 0 selects the default formula
//	    H    int       // BucketKDLine leaf-capacity exponent (leaf holds 2^H points)
//	}
//
//	func DefaultOptions() Options
//
// # Errors (strict sentinels)
//
//	ErrBadM, ErrTooFewPoints, ErrStartTooLong, ErrStartOutOfRange,
//	ErrDuplicateStart, ErrEmptyStart, ErrBadWindow, ErrBadHeight,
//	ErrUnsupportedAlgorithm.
//
// Errors are never wrapped with fmt.Errorf where a sentinel suffices.
//
// # Results
//
//	type Result struct {
//	    Indices  []uint64 // len == M, the selected point indices in pick order
//	    Warnings []string // non-fatal notices (e.g. a clamped window width)
//	}
package fps
