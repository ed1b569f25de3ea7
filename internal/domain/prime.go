package domain

import (
	"context"
	"fmt"
	"math"
	"math/bits"
)

// Context checks happen every checkEvery candidates and every
// divisorCheckEvery trial divisors.
const (
	checkEvery        = 1 << 12
	divisorCheckEvery = 1 << 16
)

// Pow10 returns 10^exp using exact integer arithmetic. ok is false when the
// result does not fit in a uint64.
func Pow10(exp int) (v uint64, ok bool) {
	if exp < 0 {
		return 0, false
	}
	v = 1
	for range exp {
		hi, lo := bits.Mul64(v, 10)
		if hi != 0 {
			return 0, false
		}
		v = lo
	}
	return v, true
}

// DigitRange returns the candidates with exactly n decimal digits, truncated
// to what a uint64 can represent.
func DigitRange(n int) (Range, error) {
	if n < 1 {
		return Range{}, ErrInvalidDigits
	}
	lo, ok := Pow10(n - 1)
	if !ok {
		return Range{Lo: 1, Hi: 0}, nil
	}
	hi, ok := Pow10(n)
	if !ok {
		return Range{Lo: lo, Hi: math.MaxUint64, Closed: true}, nil
	}
	return Range{Lo: lo, Hi: hi}, nil
}

// IsPrime reports whether d has no divisor in [2, sqrt(d)].
func IsPrime(d uint64) bool {
	p, _ := isPrimeCtx(context.Background(), d)
	return p
}

// isPrimeCtx is IsPrime with a cancellation point every divisorCheckEvery
// divisors. A single 19-digit candidate costs about 1e9 divisions.
func isPrimeCtx(ctx context.Context, d uint64) (bool, error) {
	if d < 2 {
		return false, nil
	}
	// i <= d/i is i*i <= d without the overflow near MaxUint64.
	for i := uint64(2); i <= d/i; i++ {
		if d%i == 0 {
			return false, nil
		}
		if i%divisorCheckEvery == 0 {
			if err := ctx.Err(); err != nil {
				return false, fmt.Errorf("primality check of %d cancelled at divisor %d: %w", d, i, err)
			}
		}
	}
	return true, nil
}

// FirstPrime returns the smallest prime with exactly n decimal digits.
func FirstPrime(ctx context.Context, n int) (uint64, error) {
	r, err := DigitRange(n)
	if err != nil {
		return 0, err
	}
	p, err := SearchRange(ctx, r)
	if err != nil {
		return 0, fmt.Errorf("%d-digit search: %w", n, err)
	}
	return p, nil
}

// SearchRange scans r in increasing order and returns the first prime.
func SearchRange(ctx context.Context, r Range) (uint64, error) {
	if r.Empty() {
		return 0, ErrRangeExhausted
	}
	var tested uint64
	for d := r.Lo; ; d++ {
		if !r.Closed && d >= r.Hi {
			break
		}
		if tested%checkEvery == 0 {
			if err := ctx.Err(); err != nil {
				return 0, fmt.Errorf("search cancelled at %d: %w", d, err)
			}
		}
		tested++
		prime, err := isPrimeCtx(ctx, d)
		if err != nil {
			return 0, err
		}
		if prime {
			return d, nil
		}
		if r.Closed && d == r.Hi {
			break
		}
	}
	return 0, ErrRangeExhausted
}
