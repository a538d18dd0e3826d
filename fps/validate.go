// Package fps - validation utilities shared by every algorithm variant.
//
// This file contains small, tight helpers that:
//  1. Validate Options in isolation (algorithm choice, W, H).
//  2. Validate the (cloud, m) pair.
//  3. Normalize the start descriptor into a concrete seed slice and
//     translate pointcloud's sentinel errors into this package's own.
//
// Design principles:
//   - Deterministic, side-effect free functions.
//   - No logging, no panics on user input - only sentinel errors from
//     errors.go.
package fps

import (
	"math"

	"github.com/katalvlaran/fpsample/pointcloud"
)

// validateAll verifies Options, the (cloud, m) pair, and the start
// descriptor, returning the normalized seed slice on success.
//
// Complexity: O(k) time, k = start.Len(), beyond the O(1) option checks.
func validateAll(cloud pointcloud.Cloud, m int, start pointcloud.Start, opts Options) ([]uint64, error) {
	n := cloud.N()

	if err := validateOptionsStandalone(opts, n); err != nil {
		return nil, err
	}

	if m < 1 {
		return nil, ErrBadM
	}
	if n < m {
		return nil, ErrTooFewPoints
	}
	if start.Len() > m {
		return nil, ErrStartTooLong
	}

	seeds, err := start.Seeds(n)
	if err != nil {
		return nil, translateStartErr(err)
	}

	return seeds, nil
}

// validateOptionsStandalone checks internal consistency of Options without
// referencing the cloud's contents, only its size n.
//
// Complexity: O(1).
func validateOptionsStandalone(opts Options, n int) error {
	switch opts.Algo {
	case Vanilla, NPDU, NPDUKDTree, BucketKDTree, BucketKDLine:
		// ok
	default:
		return ErrUnsupportedAlgorithm
	}

	if opts.W < 0 {
		return ErrBadWindow
	}

	if opts.Algo == BucketKDLine {
		h := opts.H
		if h == 0 {
			h = DefaultHeight
		}
		if h < 1 || (1<<uint(h)) > n {
			return ErrBadHeight
		}
	}

	return nil
}

// translateStartErr maps pointcloud's Start.Seeds sentinel errors onto this
// package's own, matching fps's self-contained error surface: range and
// duplicate checks happen at the pointcloud layer, but callers of fps should
// only ever see fps errors.
func translateStartErr(err error) error {
	switch err {
	case pointcloud.ErrEmptyStart:
		return ErrEmptyStart
	case pointcloud.ErrOutOfRange:
		return ErrStartOutOfRange
	case pointcloud.ErrDuplicateIndex:
		return ErrDuplicateStart
	default:
		return err
	}
}

// resolveWindow applies the default window-width formula and clamps it into
// the range the given algorithm tolerates, returning the final width and an
// optional warning describing any clamp that occurred.
//
// Complexity: O(1).
func resolveWindow(opts Options, n, m, maxW int) (int, string) {
	w := opts.W
	if w == 0 {
		w = int(math.Floor(float64(n) / float64(m) * float64(DefaultWindowScale)))
	}
	if w >= maxW {
		return maxW, "window width clamped to cloud size"
	}
	return w, ""
}
