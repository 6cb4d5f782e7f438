package middleware

import (
	"errors"
	"jumatrek/shared"
	"jumatrek/shared/cache"
	"jumatrek/shared/constant"
	"jumatrek/transport/http/response"
	"net/http"
	"strconv"
	"strings"
)

const cacheKeyRateLimit = "limiter"

// RateLimit counts requests per client within a fixed window. A cache
// outage fails open.
func (a *appMiddleware) RateLimit() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !a.config.App.RateLimiter.Enable {
				next.ServeHTTP(w, r)

				return
			}

			maxReqs := a.config.App.RateLimiter.MaxRequests
			windowSecs := a.config.App.RateLimiter.WindowSeconds
			cacheKey := shared.BuildCacheKey(cacheKeyRateLimit, clientIP(r), userAgent(r))

			count, ok := a.windowCount(r, cacheKey)
			if !ok {
				next.ServeHTTP(w, r)

				return
			}

			if count > maxReqs {
				response.WithRequestLimitExceeded(w)

				return
			}

			if err := a.cache.Save(r.Context(), cacheKey, count, windowSecs); err != nil {
				next.ServeHTTP(w, r)

				return
			}

			w.Header().Set(constant.RequestHeaderRateLimit, strconv.Itoa(maxReqs))
			w.Header().Set(constant.RequestHeaderRateLimitRemaining, strconv.Itoa(max(0, maxReqs-count)))
			w.Header().Set(constant.RequestHeaderRateLimitWindow, strconv.Itoa(windowSecs))

			next.ServeHTTP(w, r)
		})
	}
}

// windowCount returns the incremented request count for the key. ok is
// false when the cache is unreachable.
func (a *appMiddleware) windowCount(r *http.Request, cacheKey string) (int, bool) {
	var count int

	err := a.cache.Get(r.Context(), cacheKey, &count)
	switch {
	case err == nil:
		return count + 1, true
	case errors.Is(err, cache.Nil):
		return 1, true
	default:
		return 0, false
	}
}

func userAgent(r *http.Request) string {
	if ua := r.Header.Get(constant.RequestHeaderUserAgent); ua != "" {
		return ua
	}

	return "unknown"
}

// clientIP prefers the forwarded headers set by the edge proxy. The first
// X-Forwarded-For entry is the originating client.
func clientIP(r *http.Request) string {
	if xff := r.Header.Get(constant.RequestHeaderForwardedFor); xff != "" {
		if commaIdx := strings.Index(xff, ","); commaIdx > 0 {
			return strings.TrimSpace(xff[:commaIdx])
		}

		return strings.TrimSpace(xff)
	}

	if xri := r.Header.Get(constant.RequestHeaderRealIP); xri != "" {
		return strings.TrimSpace(xri)
	}

	return r.RemoteAddr
}
