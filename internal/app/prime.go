package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/randomtoy/ndprime/internal/domain"
	"github.com/randomtoy/ndprime/internal/ports"
)

// FindRequest is the application-level input.
type FindRequest struct {
	Digits int
}

// FindResponse is the application-level output.
type FindResponse struct {
	Digits    int
	Prime     uint64
	Cached    bool
	LatencyMS int64
}

// PrimeService answers first-prime lookups, consulting the cache before
// running the search.
type PrimeService struct {
	cache    ports.ResultCache
	recorder ports.SearchRecorder
	logger   *slog.Logger
}

func NewPrimeService(cache ports.ResultCache, rec ports.SearchRecorder, logger *slog.Logger) *PrimeService {
	if logger == nil {
		logger = slog.Default()
	}
	if rec == nil {
		rec = nopRecorder{}
	}
	return &PrimeService{
		cache:    cache,
		recorder: rec,
		logger:   logger,
	}
}

func (s *PrimeService) Find(ctx context.Context, req FindRequest) (FindResponse, error) {
	if req.Digits < 1 {
		s.recorder.ObserveSearch(ports.OutcomeInvalid, 0)
		return FindResponse{}, domain.ErrInvalidDigits
	}

	if p, ok := s.lookup(ctx, req.Digits); ok {
		return FindResponse{Digits: req.Digits, Prime: p, Cached: true}, nil
	}

	start := time.Now()
	p, err := domain.FirstPrime(ctx, req.Digits)
	elapsed := time.Since(start)
	s.recorder.ObserveSearch(outcomeOf(err), elapsed)

	if err != nil {
		return FindResponse{}, fmt.Errorf("find: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, req.Digits, p); err != nil {
			s.logger.Warn("cache store failed", "digits", req.Digits, "error", err)
		}
	}

	return FindResponse{
		Digits:    req.Digits,
		Prime:     p,
		LatencyMS: elapsed.Milliseconds(),
	}, nil
}

func (s *PrimeService) lookup(ctx context.Context, digits int) (uint64, bool) {
	if s.cache == nil {
		return 0, false
	}
	p, ok, err := s.cache.Get(ctx, digits)
	if err != nil {
		s.logger.Warn("cache lookup failed", "digits", digits, "error", err)
		s.recorder.CacheMiss()
		return 0, false
	}
	if !ok {
		s.recorder.CacheMiss()
		return 0, false
	}
	s.recorder.CacheHit()
	return p, true
}

func outcomeOf(err error) string {
	switch {
	case err == nil:
		return ports.OutcomeFound
	case errors.Is(err, domain.ErrRangeExhausted):
		return ports.OutcomeExhausted
	case errors.Is(err, domain.ErrInvalidDigits):
		return ports.OutcomeInvalid
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return ports.OutcomeCancelled
	default:
		return ports.OutcomeError
	}
}

type nopRecorder struct{}

func (nopRecorder) ObserveSearch(string, time.Duration) {}
func (nopRecorder) CacheHit()                           {}
func (nopRecorder) CacheMiss()                          {}
