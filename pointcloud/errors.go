// Package pointcloud: sentinel error set. All constructors and validators in
// this package return one of these directly; none are wrapped with
// fmt.Errorf where the sentinel alone identifies the failure, so callers can
// rely on errors.Is.
package pointcloud

import "errors"

var (
	// ErrBadShape indicates a flat coordinate slice does not reshape to N×D,
	// or that N or D is non-positive.
	ErrBadShape = errors.New("pointcloud: invalid shape")

	// ErrOutOfRange indicates a point index outside [0, N).
	ErrOutOfRange = errors.New("pointcloud: index out of range")

	// ErrDuplicateIndex indicates a start list contains the same index twice.
	ErrDuplicateIndex = errors.New("pointcloud: duplicate index in start list")

	// ErrNaNInf indicates a non-finite coordinate was encountered under the
	// default (validating) ingestion policy; see WithAllowNonFinite.
	ErrNaNInf = errors.New("pointcloud: NaN or Inf coordinate")

	// ErrEmptyStart indicates a Multi start list has zero entries.
	ErrEmptyStart = errors.New("pointcloud: empty start list")
)
