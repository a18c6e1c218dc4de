package middleware

import (
	"net/http"

	"flightdesk/scheduler/internal/auth"
	"flightdesk/scheduler/internal/common"
)

// RequireCapability rejects callers whose role is below the capability's
// minimum. Must run after AuthMiddleware.
func RequireCapability(capability auth.Capability) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if err := auth.Authorize(auth.GetUserClaims(r.Context()), capability); err != nil {
				common.RespondError(w, err)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// ReadWrite guards GET/HEAD with read and every other method with write
func ReadWrite(next http.Handler) http.Handler {
	read := RequireCapability(auth.CapRead)(next)
	write := RequireCapability(auth.CapWrite)(next)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			read.ServeHTTP(w, r)
		default:
			write.ServeHTTP(w, r)
		}
	})
}
