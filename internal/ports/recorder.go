package ports

import "time"

// Search outcomes reported to a SearchRecorder.
const (
	OutcomeFound     = "found"
	OutcomeExhausted = "exhausted"
	OutcomeInvalid   = "invalid"
	OutcomeCancelled = "cancelled"
	OutcomeError     = "error"
)

// SearchRecorder receives search telemetry.
type SearchRecorder interface {
	ObserveSearch(outcome string, d time.Duration)
	CacheHit()
	CacheMiss()
}
