package auth

import (
	"flightdesk/scheduler/internal/constants"

	"github.com/golang-jwt/jwt/v5"
)

// UserClaims is the caller identity attached to every authenticated request
type UserClaims interface {
	UserID() string
	Role() constants.Role
	Source() string
}

// JWTClaims is the bearer token payload: sub, role and exp
type JWTClaims struct {
	jwt.RegisteredClaims
	RoleValue constants.Role `json:"role"`
}

func (c *JWTClaims) UserID() string       { return c.Subject }
func (c *JWTClaims) Role() constants.Role { return c.RoleValue }
func (c *JWTClaims) Source() string       { return "JWT" }
