package auth

import (
	"flightdesk/scheduler/internal/constants"
	"flightdesk/scheduler/internal/errs"
)

// Capability is an operation class guarded by a minimum role
type Capability string

const (
	CapRead  Capability = "read"
	CapWrite Capability = "write"
)

// minimumRole is evaluated once per request by the capability middleware
var minimumRole = map[Capability]constants.Role{
	CapRead:  constants.RoleUser,
	CapWrite: constants.RoleAdmin,
}

// Allows reports whether role meets the capability's minimum
func Allows(role constants.Role, capability Capability) bool {
	required, ok := minimumRole[capability]
	if !ok {
		return false
	}
	return role.Valid() && role.Rank() >= required.Rank()
}

// Authorize maps missing claims to 401 and an insufficient role to 403
func Authorize(claims UserClaims, capability Capability) error {
	if claims == nil {
		return errs.Authentication(constants.MsgUnauthenticated)
	}
	if !Allows(claims.Role(), capability) {
		return errs.Authorization(constants.MsgForbidden)
	}
	return nil
}
