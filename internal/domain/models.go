package domain

// MaxDigits is the largest digit count whose range [10^(n-1), 10^n) fits
// entirely in a uint64.
const MaxDigits = 19

// Range is a candidate interval [Lo, Hi). When Closed is set the upper bound
// was clamped by overflow and Hi itself is a candidate.
type Range struct {
	Lo     uint64
	Hi     uint64
	Closed bool
}

// Empty reports whether the range holds no candidates.
func (r Range) Empty() bool {
	if r.Closed {
		return r.Lo > r.Hi
	}
	return r.Lo >= r.Hi
}
