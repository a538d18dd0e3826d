// Package kdtree implements the balanced median-split kd-tree shared by the
// bucket (QuickFPS) and windowed kNN sampling routines in the sibling fps
// package.
//
// The tree is stored array-of-structs, nodes []node indexed by node id, with
// child links as indices rather than pointers: this collocates each node's
// bbox with its node_dmin cache and avoids an owning pointer graph. Leaf
// capacity is a build-time parameter: 1 yields
// the single-point-leaf tree C5 uses, 2^h yields the kdline tree C6 uses —
// both forms share every traversal in this package.
//
// Tree shape depends only on input coordinates; it never changes after
// Build returns. Only the per-node node_dmin cache mutates, via InitDMin and
// UpdateAfter, as the caller's pointcloud.DMin evolves.
package kdtree

import "errors"

// ErrBadLeafCap indicates a non-positive leaf capacity was requested.
var ErrBadLeafCap = errors.New("kdtree: leaf capacity must be >= 1")
