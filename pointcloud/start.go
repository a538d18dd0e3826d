package pointcloud

// Start is a tagged variant describing how a sampling call seeds its
// selection set S: either a single index, or an ordered, duplicate-free
// list of indices.
//
// The zero value is not meaningful; construct via StartAt or StartWith.
type Start struct {
	multi []uint64 // non-nil iff this Start was built via StartWith
	single uint64
	isSingle bool
}

// StartAt builds a single-index Start, equivalent to a one-element list.
func StartAt(idx uint64) Start {
	return Start{single: idx, isSingle: true}
}

// StartWith builds a Start from an ordered, nonempty list of indices. The
// slice is not retained by reference beyond Seeds' own copy semantics; the
// caller's slice may be reused afterward.
func StartWith(idxs []uint64) Start {
	cp := make([]uint64, len(idxs))
	copy(cp, idxs)
	return Start{multi: cp}
}

// Seeds normalizes this Start into a uniform seed sequence against a cloud
// of n points, validating range and uniqueness.
//
// Errors: ErrEmptyStart if a Multi list has zero entries, ErrOutOfRange if
// any index is outside [0, n), ErrDuplicateIndex if the same index appears
// twice.
//
// Complexity: O(k) time and space, k = len(seeds).
func (s Start) Seeds(n int) ([]uint64, error) {
	var raw []uint64
	if s.isSingle {
		raw = []uint64{s.single}
	} else {
		raw = s.multi
	}

	if len(raw) == 0 {
		return nil, ErrEmptyStart
	}

	seen := make(map[uint64]struct{}, len(raw))
	out := make([]uint64, len(raw))
	for i, idx := range raw {
		if idx >= uint64(n) {
			return nil, ErrOutOfRange
		}
		if _, dup := seen[idx]; dup {
			return nil, ErrDuplicateIndex
		}
		seen[idx] = struct{}{}
		out[i] = idx
	}

	return out, nil
}

// Len reports how many indices this Start will seed, without validating
// them against any particular cloud size.
func (s Start) Len() int {
	if s.isSingle {
		return 1
	}
	return len(s.multi)
}
