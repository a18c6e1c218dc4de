package constants

type (
	FlightEvent string
	SearchKind  string
)

const (
	// Interval query strings: "2024-05-01 09:30;2024-05-01 18:00"
	IntervalLayout    = "2006-01-02 15:04"
	IntervalSeparator = ";"
	TimeOfDayLayout   = "15:04"

	FlightEventCreated FlightEvent = "flights.created"
	FlightEventUpdated FlightEvent = "flights.updated"
	FlightEventDeleted FlightEvent = "flights.deleted"

	SearchKindDeparture SearchKind = "dept"
	SearchKindArrival   SearchKind = "arr"
	SearchKindDeptRange SearchKind = "dept_rng"

	RateLimitKeyPrefix = "ratelimit:"
)
