package http

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/randomtoy/ndprime/internal/app"
	"github.com/randomtoy/ndprime/internal/domain"
)

type Handler struct {
	svc       *app.PrimeService
	gatherer  prometheus.Gatherer
	maxDigits int
	timeout   time.Duration
}

// NewHandler builds the HTTP handler. A zero timeout disables the per-request
// search deadline.
func NewHandler(svc *app.PrimeService, gatherer prometheus.Gatherer, maxDigits int, timeout time.Duration) *Handler {
	return &Handler{
		svc:       svc,
		gatherer:  gatherer,
		maxDigits: maxDigits,
		timeout:   timeout,
	}
}

func (h *Handler) Register(e *echo.Echo) {
	e.GET("/healthz", h.Healthz)
	e.GET("/v1/primes/first", h.FirstPrime)
	if h.gatherer != nil {
		e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(h.gatherer, promhttp.HandlerOpts{})))
	}
}

func (h *Handler) Healthz(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

func (h *Handler) FirstPrime(c echo.Context) error {
	raw := c.QueryParam("n")
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "n must be a positive integer"})
	}
	if n > h.maxDigits {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: fmt.Sprintf("n must be at most %d", h.maxDigits)})
	}

	ctx := c.Request().Context()
	if h.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.timeout)
		defer cancel()
	}

	resp, err := h.svc.Find(ctx, app.FindRequest{Digits: n})
	if err != nil {
		return mapError(c, err)
	}

	requestID, _ := c.Get("request_id").(string)

	return c.JSON(http.StatusOK, PrimeResponse{
		Digits: resp.Digits,
		Prime:  strconv.FormatUint(resp.Prime, 10),
		Meta: MetaResp{
			Cached:    resp.Cached,
			RequestID: requestID,
			LatencyMS: resp.LatencyMS,
		},
	})
}

func mapError(c echo.Context, err error) error {
	requestID, _ := c.Get("request_id").(string)

	switch {
	case errors.Is(err, domain.ErrInvalidDigits):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrRangeExhausted):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: domain.ErrRangeExhausted.Error()})
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		slog.Warn("search aborted", "request_id", requestID, "error", err)
		return c.JSON(http.StatusGatewayTimeout, ErrorResponse{Error: "search timed out"})
	default:
		slog.Error("internal error", "request_id", requestID, "error", err)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
}
