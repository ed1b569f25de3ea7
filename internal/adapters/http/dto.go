package http

// PrimeResponse is the JSON shape returned by GET /v1/primes/first.
type PrimeResponse struct {
	Digits int      `json:"digits"`
	Prime  string   `json:"prime"`
	Meta   MetaResp `json:"meta"`
}

type MetaResp struct {
	Cached    bool   `json:"cached"`
	RequestID string `json:"request_id"`
	LatencyMS int64  `json:"latency_ms"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
