package pointcloud

import "math"

// Cloud is an immutable N×D matrix of float32 coordinates, stored row-major
// (point-contiguous): Data[i*D : i*D+D] is point i.
//
// Row-major is the layout C2, C4, C5, and C6 want (they touch one point's
// full coordinate vector at a time); C1 wants the opposite locality when it
// reduces over all N points per iteration, so it reads through ColumnMajor
// instead of duplicating the inner-loop logic per layout.
type Cloud struct {
	data []float32 // len == N*D, row-major
	n    int
	d    int
}

// Option configures NewCloud's ingestion policy.
type Option func(*options)

type options struct {
	allowNonFinite bool
}

// WithAllowNonFinite disables the default NaN/±Inf rejection on ingestion.
// Mirrors matrix's WithNoValidateNaNInf: the default is strict, and this
// opts out for callers who sanitize data downstream.
func WithAllowNonFinite() Option {
	return func(o *options) { o.allowNonFinite = true }
}

// NewCloud builds a Cloud from a flat, row-major coordinate slice.
//
// Preconditions: n >= 1, d >= 1, len(data) == n*d. Every coordinate must be
// finite unless WithAllowNonFinite is supplied.
//
// Complexity: O(N·D) for the finiteness scan, O(1) otherwise (data is not
// copied; the caller must not mutate it afterward).
func NewCloud(data []float32, n, d int, opts ...Option) (Cloud, error) {
	if n <= 0 || d <= 0 {
		return Cloud{}, ErrBadShape
	}
	if len(data) != n*d {
		return Cloud{}, ErrBadShape
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}

	if !o.allowNonFinite {
		for _, v := range data {
			f := float64(v)
			if math.IsNaN(f) || math.IsInf(f, 0) {
				return Cloud{}, ErrNaNInf
			}
		}
	}

	return Cloud{data: data, n: n, d: d}, nil
}

// N is the number of points.
func (c Cloud) N() int { return c.n }

// D is the dimensionality of each point.
func (c Cloud) D() int { return c.d }

// Point returns the coordinate slice for point i, row-major (length D).
// The returned slice aliases the Cloud's backing array and must not be
// mutated.
func (c Cloud) Point(i int) []float32 {
	return c.data[i*c.d : i*c.d+c.d]
}

// ColumnMajor returns a copy of this cloud's coordinates transposed into
// dimension-contiguous order: Data[axis*N+i] is coordinate `axis` of point i.
// The vanilla full-scan sampler uses this for axis-major inner-loop locality.
func (c Cloud) ColumnMajor() []float32 {
	out := make([]float32, c.n*c.d)
	for i := 0; i < c.n; i++ {
		base := i * c.d
		for axis := 0; axis < c.d; axis++ {
			out[axis*c.n+i] = c.data[base+axis]
		}
	}
	return out
}

// SqDist returns the squared Euclidean distance between points i and j,
// summing axis terms in ascending dimension order so the result is bitwise
// reproducible across platforms regardless of evaluation order elsewhere.
func (c Cloud) SqDist(i, j int) float32 {
	pi := c.Point(i)
	pj := c.Point(j)
	var sum float32
	for axis := 0; axis < c.d; axis++ {
		delta := pi[axis] - pj[axis]
		sum += delta * delta
	}
	return sum
}

// SqDistToPoint returns the squared distance from point i to an arbitrary
// D-dimensional coordinate vector, with the same fixed summation order as
// SqDist. Used by the kd-tree nearest-neighbor search.
func (c Cloud) SqDistToPoint(i int, p []float32) float32 {
	pi := c.Point(i)
	var sum float32
	for axis := 0; axis < c.d; axis++ {
		delta := pi[axis] - p[axis]
		sum += delta * delta
	}
	return sum
}
