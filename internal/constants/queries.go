package constants

// Report queries run through sqlx; written with '?' and rebound per driver.
const (
	DistinctDeparturesInWindow = `
	SELECT DISTINCT departure_airport_id
	FROM flights
	WHERE departure_dt >= ? AND arrival_dt <= ?
	`

	DepartureHistoryForAirports = `
	SELECT ap.id AS airport_id, ap.icao, ap.name, f.departure_dt, f.arrival_dt
	FROM airports ap
	JOIN flights f ON f.departure_airport_id = ap.id
	WHERE ap.id IN (?)
	`

	FlightsFromAirportInWindow = `
	SELECT f.id, f.departure_dt, f.arrival_dt,
		a.id AS aircraft_id, a.serial_number, a.manufacturer,
		a.created_at AS aircraft_created_at, a.updated_at AS aircraft_updated_at
	FROM flights f
	LEFT JOIN aircraft a ON a.id = f.aircraft_id
	WHERE f.departure_airport_id = ? AND f.departure_dt >= ? AND f.arrival_dt <= ?
	ORDER BY f.departure_dt
	`
)
