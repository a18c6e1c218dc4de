package services

import (
	"time"

	"flightdesk/scheduler/internal/constants"
	"flightdesk/scheduler/internal/errs"
)

// TemporalValidator enforces the ordering and freshness rules on a flight's
// departure and arrival instants.
type TemporalValidator struct {
	now func() time.Time
}

func NewTemporalValidator(now func() time.Time) *TemporalValidator {
	if now == nil {
		now = time.Now
	}
	return &TemporalValidator{now: now}
}

// Validate checks arrival > departure when both are given, and on create that
// the departure is not in the past. Updates may touch flights that already left.
func (v *TemporalValidator) Validate(departure, arrival *time.Time, isCreate bool) error {
	if departure != nil && arrival != nil && !arrival.After(*departure) {
		return errs.Validation(constants.MsgArrivalNotAfter)
	}
	if isCreate && departure != nil && departure.Before(v.now()) {
		return errs.Validation(constants.MsgDepartureInPast)
	}
	return nil
}
