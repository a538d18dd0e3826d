package fps

import "errors"

// Validation / input-shape errors. Do not wrap with fmt.Errorf where a
// sentinel suffices.
var (
	// ErrBadM indicates the requested sample count m is not positive.
	ErrBadM = errors.New("fps: sample count must be positive")

	// ErrTooFewPoints indicates the cloud has fewer points than requested
	// samples (N < M).
	ErrTooFewPoints = errors.New("fps: fewer points than requested samples")

	// ErrStartTooLong indicates the start descriptor names more indices
	// than the requested sample count m.
	ErrStartTooLong = errors.New("fps: start descriptor longer than sample count")

	// ErrEmptyStart indicates the start descriptor names no indices.
	ErrEmptyStart = errors.New("fps: start descriptor is empty")

	// ErrStartOutOfRange indicates a start index is outside [0, N).
	ErrStartOutOfRange = errors.New("fps: start index out of range")

	// ErrDuplicateStart indicates the same index appears twice in the start
	// descriptor.
	ErrDuplicateStart = errors.New("fps: duplicate start index")

	// ErrBadWindow indicates Options.W is negative.
	ErrBadWindow = errors.New("fps: window width must be non-negative")

	// ErrBadHeight indicates Options.H is not a valid leaf-capacity exponent
	// for the cloud size (H must satisfy 1 <= 2^H <= N).
	ErrBadHeight = errors.New("fps: invalid bucket height for cloud size")
)

// Planner/engine governance sentinels.
var (
	// ErrUnsupportedAlgorithm is returned when Options.Algo selects an
	// unavailable strategy.
	ErrUnsupportedAlgorithm = errors.New("fps: unsupported algorithm")
)
