package constants

const (
	MsgOK                   = "OK"
	MsgCreated              = "created"
	MsgUpdated              = "updated"
	MsgDeleted              = "Deleted"
	MsgSerializerError      = "serializer error"
	MsgInvalidUUID          = "Invalid UUID"
	MsgInvalidJSON          = "Invalid request body"
	MsgAircraftNotFound     = "Aircraft Not Found."
	MsgAirportNotFound      = "Airport Not Found."
	MsgFlightNotFound       = "Flight Not Found."
	MsgNoSearchParams       = "No search parameters entered"
	MsgTooManySearchParams  = "Only one search parameter is supported"
	MsgInvalidTimeRange     = "Invalid time range"
	MsgInvalidInterval      = "Invalid interval"
	MsgArrivalNotAfter      = "arrival not after departure"
	MsgDepartureInPast      = "departure in the past"
	MsgAircraftDoubleBooked = "aircraft already scheduled in an overlapping window"
	MsgUnknownICAO          = "Airport With ICAO does not exist."
	MsgUnknownSerial        = "Aircraft with serial number does not exist."
	MsgUnauthenticated      = "Authentication credentials were not provided or are invalid"
	MsgForbidden            = "You do not have permission to perform this action"
	MsgTooManyRequests      = "Too many requests"
	MsgInternal             = "Internal server error"
)
