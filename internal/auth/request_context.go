package auth

import (
	"context"
)

type contextKey string

var (
	userClaimsKey contextKey = "user_claims"
	requestIDKey  contextKey = "request_id"
	identityKey   contextKey = "request_identity"
)

// RequestIdentity is planted by outer middleware before routing and filled in
// when the token is verified further down the chain, so the outer layer can
// log the caller after the handler returns.
type RequestIdentity struct {
	UserID string
	Role   string
}

func WithRequestIdentity(ctx context.Context) (context.Context, *RequestIdentity) {
	id := &RequestIdentity{}
	return context.WithValue(ctx, identityKey, id), id
}

// SetUserClaims stores claims for handlers and records the caller on the
// request identity, when one was planted.
func SetUserClaims(ctx context.Context, claims UserClaims) context.Context {
	if id, ok := ctx.Value(identityKey).(*RequestIdentity); ok && claims != nil {
		id.UserID = claims.UserID()
		id.Role = claims.Role().String()
	}
	return context.WithValue(ctx, userClaimsKey, claims)
}

func GetUserClaims(ctx context.Context) UserClaims {
	val := ctx.Value(userClaimsKey)
	if claims, ok := val.(UserClaims); ok {
		return claims
	}
	return nil
}

// SetRequestID stores the request id used to correlate log lines
func SetRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

func GetRequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
