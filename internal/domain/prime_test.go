package domain_test

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/randomtoy/ndprime/internal/domain"
)

func TestFirstPrime_KnownValues(t *testing.T) {
	tests := []struct {
		n    int
		want uint64
	}{
		{1, 2},
		{2, 11},
		{3, 101},
		{4, 1009},
		{5, 10007},
		{6, 100003},
		{7, 1000003},
		{8, 10000019},
		{9, 100000007},
		{10, 1000000007},
		{11, 10000000019},
		{12, 100000000003},
	}

	for _, tt := range tests {
		got, err := domain.FirstPrime(context.Background(), tt.n)
		if err != nil {
			t.Fatalf("n=%d: unexpected error: %v", tt.n, err)
		}
		if got != tt.want {
			t.Errorf("n=%d: expected %d, got %d", tt.n, tt.want, got)
		}
	}
}

func TestFirstPrime_Idempotent(t *testing.T) {
	first, err := domain.FirstPrime(context.Background(), 6)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := domain.FirstPrime(context.Background(), 6)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first != second {
		t.Errorf("expected identical results, got %d and %d", first, second)
	}
}

func TestFirstPrime_IsMinimum(t *testing.T) {
	for n := 1; n <= 6; n++ {
		p, err := domain.FirstPrime(context.Background(), n)
		if err != nil {
			t.Fatalf("n=%d: unexpected error: %v", n, err)
		}
		lo, _ := domain.Pow10(n - 1)
		hi, _ := domain.Pow10(n)
		if p < lo || p >= hi {
			t.Fatalf("n=%d: %d outside [%d, %d)", n, p, lo, hi)
		}
		for d := lo; d < p; d++ {
			if domain.IsPrime(d) {
				t.Errorf("n=%d: skipped smaller prime %d", n, d)
			}
		}
	}
}

func TestFirstPrime_InvalidDigits(t *testing.T) {
	for _, n := range []int{0, -1, -19} {
		_, err := domain.FirstPrime(context.Background(), n)
		if !errors.Is(err, domain.ErrInvalidDigits) {
			t.Errorf("n=%d: expected ErrInvalidDigits, got %v", n, err)
		}
	}
}

func TestFirstPrime_LowerBoundOverflow(t *testing.T) {
	_, err := domain.FirstPrime(context.Background(), 21)
	if !errors.Is(err, domain.ErrRangeExhausted) {
		t.Errorf("expected ErrRangeExhausted, got %v", err)
	}
}

func TestFirstPrime_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := domain.FirstPrime(ctx, 3)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestFirstPrime_TwentyDigitsClamped(t *testing.T) {
	if testing.Short() {
		t.Skip("20-digit search runs about 3e9 divisions")
	}

	got, err := domain.FirstPrime(context.Background(), 20)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 10000000000000000051 {
		t.Errorf("expected 10000000000000000051, got %d", got)
	}
}

func TestSearchRange_DeadlineDuringSingleCandidate(t *testing.T) {
	// 10^18+3 is prime, so its check alone runs about 1e9 divisions.
	ctx, cancel := context.WithTimeout(context.Background(), time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := domain.SearchRange(ctx, domain.Range{Lo: 1000000000000000003, Hi: 1000000000000000004})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected context.DeadlineExceeded, got %v", err)
	}
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Errorf("search stopped %v after start, expected prompt cancellation", elapsed)
	}
}

func TestIsPrime(t *testing.T) {
	primes := []uint64{2, 3, 5, 7, 11, 13, 97, 7919, 1000000007}
	for _, p := range primes {
		if !domain.IsPrime(p) {
			t.Errorf("%d: expected prime", p)
		}
	}

	composites := []uint64{0, 1, 4, 6, 9, 15, 25, 49, 1001, 1000000008, 999999999989 * 3}
	for _, c := range composites {
		if domain.IsPrime(c) {
			t.Errorf("%d: expected composite", c)
		}
	}
}

func TestIsPrime_NearMaxUint64(t *testing.T) {
	// MaxUint64 = 3 * 5 * 17 * 257 * 641 * 65537 * 6700417.
	if domain.IsPrime(math.MaxUint64) {
		t.Error("MaxUint64 is composite")
	}
	if domain.IsPrime(math.MaxUint64 - 1) {
		t.Error("MaxUint64-1 is even")
	}
}

func TestPow10(t *testing.T) {
	v, ok := domain.Pow10(0)
	if !ok || v != 1 {
		t.Errorf("10^0: expected 1, got %d (ok=%v)", v, ok)
	}
	v, ok = domain.Pow10(19)
	if !ok || v != 10000000000000000000 {
		t.Errorf("10^19: expected 10000000000000000000, got %d (ok=%v)", v, ok)
	}
	if _, ok := domain.Pow10(20); ok {
		t.Error("10^20: expected overflow")
	}
	if _, ok := domain.Pow10(-1); ok {
		t.Error("10^-1: expected failure")
	}
}

func TestDigitRange(t *testing.T) {
	r, err := domain.DigitRange(1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Lo != 1 || r.Hi != 10 || r.Closed {
		t.Errorf("n=1: unexpected range %+v", r)
	}

	r, err = domain.DigitRange(20)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Lo != 10000000000000000000 || r.Hi != math.MaxUint64 || !r.Closed {
		t.Errorf("n=20: expected clamped range, got %+v", r)
	}

	r, err = domain.DigitRange(21)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !r.Empty() {
		t.Errorf("n=21: expected empty range, got %+v", r)
	}
}

func TestSearchRange_Exhausted(t *testing.T) {
	// 24..28 holds no primes.
	_, err := domain.SearchRange(context.Background(), domain.Range{Lo: 24, Hi: 29})
	if !errors.Is(err, domain.ErrRangeExhausted) {
		t.Errorf("expected ErrRangeExhausted, got %v", err)
	}

	_, err = domain.SearchRange(context.Background(), domain.Range{Lo: 10, Hi: 10})
	if !errors.Is(err, domain.ErrRangeExhausted) {
		t.Errorf("empty range: expected ErrRangeExhausted, got %v", err)
	}
}

func TestSearchRange_HalfOpen(t *testing.T) {
	// 29 is prime but sits on the excluded upper bound.
	_, err := domain.SearchRange(context.Background(), domain.Range{Lo: 24, Hi: 29})
	if err == nil {
		t.Fatal("expected upper bound to be excluded")
	}

	got, err := domain.SearchRange(context.Background(), domain.Range{Lo: 24, Hi: 29, Closed: true})
	if err != nil {
		t.Fatalf("closed range: unexpected error: %v", err)
	}
	if got != 29 {
		t.Errorf("closed range: expected 29, got %d", got)
	}
}

func TestSearchRange_ClosedAtMaxUint64(t *testing.T) {
	r := domain.Range{Lo: math.MaxUint64 - 1, Hi: math.MaxUint64, Closed: true}
	_, err := domain.SearchRange(context.Background(), r)
	if !errors.Is(err, domain.ErrRangeExhausted) {
		t.Errorf("expected ErrRangeExhausted without wraparound, got %v", err)
	}
}
