package ports

import "context"

// ResultCache stores the first prime found for each digit count.
type ResultCache interface {
	// Get returns the cached prime for digits. ok is false on a miss.
	Get(ctx context.Context, digits int) (prime uint64, ok bool, err error)
	Set(ctx context.Context, digits int, prime uint64) error
}
