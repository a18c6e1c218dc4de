package middleware

import (
	"net"
	"net/http"

	"flightdesk/scheduler/internal/common"
	"flightdesk/scheduler/internal/constants"
	"flightdesk/scheduler/internal/errs"
	"flightdesk/scheduler/internal/logging"
	"flightdesk/scheduler/internal/metrics"
)

// RateLimitMiddleware throttles per client IP. RemoteAddr is expected to have
// been rewritten by chi's RealIP. When the limiter backend fails the request
// is let through.
func RateLimitMiddleware(limiter common.RateLimiter, metricsReg *metrics.MetricsRegistry) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip, _, err := net.SplitHostPort(r.RemoteAddr)
			if err != nil {
				ip = r.RemoteAddr
			}

			allowed, err := limiter.Allow(r.Context(), ip)
			if err != nil {
				logging.Warn("Rate limiter unavailable", "error", err)
				next.ServeHTTP(w, r)
				return
			}
			if !allowed {
				metricsReg.RateLimited()
				common.RespondError(w, errs.TooManyRequests(constants.MsgTooManyRequests))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
