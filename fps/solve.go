// Package fps - unified dispatcher for Farthest Point Sampling algorithms.
//
// This file provides the single public entry point, Sample, which validates
// inputs and routes to the requested algorithm (Vanilla / NPDU / NPDUKDTree /
// BucketKDTree / BucketKDLine).
//
// Design principles:
//   - Deterministic: no time- or randomness-based behavior anywhere.
//   - Strict sentinels: only errors from errors.go; no fmt.Errorf where a
//     sentinel suffices.
//   - Algorithmic clarity: doc strings with complexity and contracts.
package fps

import "github.com/katalvlaran/fpsample/pointcloud"

// Sample selects m distinct point indices from cloud, ordered by pick
// sequence, seeded by start and computed per opts.Algo.
//
// Contracts:
//   - m must be positive and no greater than cloud.N().
//   - start must name no more than m indices, each in [0, cloud.N()), with
//     no duplicates.
//   - Result.Indices[:start.Len()] equals the normalized start sequence, in
//     order; the remaining entries are the algorithm's own picks.
//
// Errors: strict sentinels from errors.go (e.g. ErrBadM, ErrTooFewPoints,
// ErrStartTooLong, ErrStartOutOfRange, ErrDuplicateStart, ErrBadWindow,
// ErrBadHeight, ErrUnsupportedAlgorithm).
//
// Complexity: per algorithm; see doc.go's "Algorithms & Complexity" section.
func Sample(cloud pointcloud.Cloud, m int, start pointcloud.Start, opts Options) (Result, error) {
	seeds, err := validateAll(cloud, m, start, opts)
	if err != nil {
		return Result{}, err
	}

	n := cloud.N()
	var warnings []string

	switch opts.Algo {
	case Vanilla:
		return Result{Indices: sampleVanilla(cloud, m, seeds)}, nil

	case NPDU:
		w, warn := resolveWindow(opts, n, m, n-1)
		if warn != "" {
			warnings = append(warnings, warn)
		}
		return Result{Indices: sampleNPDU(cloud, m, seeds, w), Warnings: warnings}, nil

	case NPDUKDTree:
		w, warn := resolveWindow(opts, n, m, n)
		if warn != "" {
			warnings = append(warnings, warn)
		}
		indices, err := sampleNPDUKDTree(cloud, m, seeds, w)
		if err != nil {
			return Result{}, err
		}
		return Result{Indices: indices, Warnings: warnings}, nil

	case BucketKDTree:
		indices, err := sampleBucket(cloud, m, seeds, 1)
		if err != nil {
			return Result{}, err
		}
		return Result{Indices: indices}, nil

	case BucketKDLine:
		h := opts.H
		if h == 0 {
			h = DefaultHeight
		}
		indices, err := sampleBucket(cloud, m, seeds, 1<<uint(h))
		if err != nil {
			return Result{}, err
		}
		return Result{Indices: indices}, nil

	default:
		return Result{}, ErrUnsupportedAlgorithm
	}
}
