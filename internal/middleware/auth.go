package middleware

import (
	"net/http"

	"flightdesk/scheduler/internal/auth"
	"flightdesk/scheduler/internal/common"
	"flightdesk/scheduler/internal/constants"
	"flightdesk/scheduler/internal/errs"
)

// AuthMiddleware verifies the bearer token and stores its claims in the
// request context. Missing or invalid tokens are rejected with 401.
func AuthMiddleware(tokens *auth.TokenManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw, ok := auth.BearerToken(r.Header.Get("Authorization"))
			if !ok {
				common.RespondError(w, errs.Authentication(constants.MsgUnauthenticated))
				return
			}

			claims, err := tokens.Verify(raw)
			if err != nil {
				common.RespondError(w, err)
				return
			}

			ctx := auth.SetUserClaims(r.Context(), claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
