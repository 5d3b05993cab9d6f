package wordsapi

import (
	"net/http"
	"strconv"
	"strings"
)

const (
	// HeaderRateRemaining carries the number of requests left in the current period.
	HeaderRateRemaining = "X-RateLimit-Requests-Remaining"

	// HeaderRateLimit carries the number of requests allowed per period.
	HeaderRateLimit = "X-RateLimit-Requests-Limit"
)

// RateLimit holds the quota counters reported by the API.
// They are observed only; the client never throttles on them.
type RateLimit struct {
	Remaining int `json:"remaining"`
	Limit     int `json:"limit"`
}

// ParseRateLimit reads the rate-limit headers. Absent, unparsable or
// negative values yield 0.
func ParseRateLimit(h http.Header) RateLimit {
	return RateLimit{
		Remaining: headerInt(h, HeaderRateRemaining),
		Limit:     headerInt(h, HeaderRateLimit),
	}
}

func headerInt(h http.Header, key string) int {
	raw := strings.TrimSpace(headerValue(h, key))
	if raw == "" {
		return 0
	}
	val, err := strconv.Atoi(raw)
	if err != nil || val < 0 {
		return 0
	}
	return val
}

// headerValue looks the key up canonically first, then falls back to a
// case-insensitive scan for headers built without canonicalization.
func headerValue(h http.Header, key string) string {
	if v := h.Get(key); v != "" {
		return v
	}
	for k, vals := range h {
		if strings.EqualFold(k, key) && len(vals) > 0 {
			return vals[0]
		}
	}
	return ""
}
