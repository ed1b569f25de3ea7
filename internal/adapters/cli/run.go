// Package cli reads a digit count from standard input and prints the first
// prime with that many digits.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/randomtoy/ndprime/internal/app"
	"github.com/randomtoy/ndprime/internal/domain"
)

// Process exit codes.
const (
	ExitOK             = 0
	ExitRangeExhausted = 1
	ExitInvalidInput   = 2
	ExitInternal       = 3
)

// Finder is the subset of app.PrimeService the CLI needs.
type Finder interface {
	Find(ctx context.Context, req app.FindRequest) (app.FindResponse, error)
}

// Run executes one lookup and returns the process exit code. Nothing is
// written to stdout unless a prime was found.
func Run(ctx context.Context, stdin io.Reader, stdout io.Writer, svc Finder, logger *slog.Logger) int {
	n, err := ReadDigits(stdin)
	if err != nil {
		logger.Error("invalid input", "error", err)
		return ExitCode(err)
	}

	resp, err := svc.Find(ctx, app.FindRequest{Digits: n})
	if err != nil {
		logger.Error("search failed", "digits", n, "error", err)
		return ExitCode(err)
	}

	if _, err := io.WriteString(stdout, strconv.FormatUint(resp.Prime, 10)); err != nil {
		logger.Error("write result", "error", err)
		return ExitInternal
	}
	logger.Debug("prime found", "digits", n, "prime", resp.Prime, "latency_ms", resp.LatencyMS)
	return ExitOK
}

// ReadDigits parses the first whitespace-delimited token of r as a positive
// base-10 digit count.
func ReadDigits(r io.Reader) (int, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return 0, fmt.Errorf("read stdin: %w", err)
		}
		return 0, &domain.InvalidInputError{Input: ""}
	}

	tok := sc.Text()
	n, err := strconv.Atoi(tok)
	if err != nil {
		return 0, &domain.InvalidInputError{Input: tok, Err: err}
	}
	if n < 1 {
		return 0, &domain.InvalidInputError{Input: tok}
	}
	return n, nil
}

// ExitCode maps an error to a process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, domain.ErrInvalidDigits):
		return ExitInvalidInput
	case errors.Is(err, domain.ErrRangeExhausted):
		return ExitRangeExhausted
	default:
		return ExitInternal
	}
}
