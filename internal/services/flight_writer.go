package services

import (
	"context"
	"strings"
	"time"

	"flightdesk/scheduler/internal/constants"
	"flightdesk/scheduler/internal/db/repositories"
	"flightdesk/scheduler/internal/errs"
	"flightdesk/scheduler/internal/events"
	"flightdesk/scheduler/internal/logging"
	"flightdesk/scheduler/internal/metrics"
	"flightdesk/scheduler/internal/models/dtos"
	models "flightdesk/scheduler/internal/models/gorm"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// rejection reasons reported to metrics
const (
	rejectInvalid      = "invalid_request"
	rejectTemporal     = "temporal"
	rejectReference    = "unresolved_code"
	rejectDoubleBooked = "aircraft_double_booked"
)

// FlightWriter creates, updates and deletes flights. Every write resolves
// codes, checks the temporal rules and the aircraft schedule inside a single
// transaction, then announces the change.
type FlightWriter struct {
	db        *gorm.DB
	flights   *repositories.FlightRepository
	resolver  *CodeResolver
	temporal  *TemporalValidator
	validate  *validator.Validate
	publisher events.Publisher
	metrics   *metrics.MetricsRegistry
	now       func() time.Time
}

// NewFlightWriter creates a new flight writer. publisher and m may be nil.
func NewFlightWriter(
	db *gorm.DB,
	flights *repositories.FlightRepository,
	resolver *CodeResolver,
	temporal *TemporalValidator,
	publisher events.Publisher,
	m *metrics.MetricsRegistry,
) *FlightWriter {
	if publisher == nil {
		publisher = events.NoopPublisher{}
	}
	return &FlightWriter{
		db:        db,
		flights:   flights,
		resolver:  resolver,
		temporal:  temporal,
		validate:  newValidator(),
		publisher: publisher,
		metrics:   m,
		now:       temporal.now,
	}
}

func (w *FlightWriter) Create(ctx context.Context, req dtos.CreateFlightReq) (*models.Flight, error) {
	if err := checkStruct(w.validate, req); err != nil {
		return nil, w.reject(rejectInvalid, err)
	}
	if err := w.temporal.Validate(req.DepartureDT, req.ArrivalDT, true); err != nil {
		return nil, w.reject(rejectTemporal, err)
	}

	lookups := []CodeLookup{
		{Field: "departure", Code: req.Departure, Kind: KindAirport},
		{Field: "arrival", Code: req.Arrival, Kind: KindAirport},
	}
	if req.Aircraft != nil && strings.TrimSpace(*req.Aircraft) != "" {
		lookups = append(lookups, CodeLookup{Field: "aircraft", Code: *req.Aircraft, Kind: KindAircraft})
	}

	flight := &models.Flight{
		DepartureAt: req.DepartureDT.UTC(),
		ArrivalAt:   req.ArrivalDT.UTC(),
		Status:      constants.FlightStatusScheduled,
	}
	if req.Status != nil {
		flight.Status = constants.FlightStatus(*req.Status)
	}

	err := w.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		refs, err := w.resolver.WithTx(tx).ResolveAll(ctx, lookups)
		if err != nil {
			return w.reject(rejectReference, err)
		}
		flight.DepartureAirportID = refs["departure"].ID
		flight.ArrivalAirportID = refs["arrival"].ID
		if ref, ok := refs["aircraft"]; ok {
			flight.AircraftID = &ref.ID
		}

		flights := w.flights.WithTx(tx)
		if err := w.checkAircraftFree(ctx, flights, flight); err != nil {
			return err
		}

		flight.CreatedAt = w.now().UTC()
		return flights.Create(ctx, flight)
	})
	if err != nil {
		return nil, err
	}

	w.metrics.FlightWritten("create")
	w.announce(ctx, constants.FlightEventCreated, flight)
	return w.reload(ctx, flight.ID)
}

// Update applies a partial change. Omitted instants are taken from the stored
// flight so the ordering rule holds for the result. Codes that are present must
// resolve; an empty aircraft code detaches the aircraft.
func (w *FlightWriter) Update(ctx context.Context, id string, req dtos.UpdateFlightReq) (*models.Flight, error) {
	if err := w.checkUpdate(req); err != nil {
		return nil, w.reject(rejectInvalid, err)
	}

	var flight *models.Flight
	err := w.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		flights := w.flights.WithTx(tx)

		existing, err := flights.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if existing == nil {
			return errs.NotFound(constants.MsgFlightNotFound)
		}
		flight = existing

		departure, arrival := flight.DepartureAt, flight.ArrivalAt
		if req.DepartureDT != nil {
			departure = req.DepartureDT.UTC()
		}
		if req.ArrivalDT != nil {
			arrival = req.ArrivalDT.UTC()
		}
		if err := w.temporal.Validate(&departure, &arrival, false); err != nil {
			return w.reject(rejectTemporal, err)
		}

		var lookups []CodeLookup
		if req.Departure != nil {
			lookups = append(lookups, CodeLookup{Field: "departure", Code: *req.Departure, Kind: KindAirport})
		}
		if req.Arrival != nil {
			lookups = append(lookups, CodeLookup{Field: "arrival", Code: *req.Arrival, Kind: KindAirport})
		}
		detach := req.Aircraft != nil && strings.TrimSpace(*req.Aircraft) == ""
		if req.Aircraft != nil && !detach {
			lookups = append(lookups, CodeLookup{Field: "aircraft", Code: *req.Aircraft, Kind: KindAircraft})
		}

		refs, err := w.resolver.WithTx(tx).ResolveAll(ctx, lookups)
		if err != nil {
			return w.reject(rejectReference, err)
		}

		if ref, ok := refs["departure"]; ok {
			flight.DepartureAirportID = ref.ID
		}
		if ref, ok := refs["arrival"]; ok {
			flight.ArrivalAirportID = ref.ID
		}
		if ref, ok := refs["aircraft"]; ok {
			flight.AircraftID = &ref.ID
		}
		if detach {
			flight.AircraftID = nil
		}
		flight.DepartureAt = departure
		flight.ArrivalAt = arrival
		if req.Status != nil {
			flight.Status = constants.FlightStatus(*req.Status)
		}

		if err := w.checkAircraftFree(ctx, flights, flight); err != nil {
			return err
		}

		updated := w.now().UTC()
		flight.UpdatedAt = &updated
		return flights.Save(ctx, flight)
	})
	if err != nil {
		return nil, err
	}

	w.metrics.FlightWritten("update")
	w.announce(ctx, constants.FlightEventUpdated, flight)
	return w.reload(ctx, flight.ID)
}

func (w *FlightWriter) Delete(ctx context.Context, id string) error {
	deleted, err := w.flights.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return errs.NotFound(constants.MsgFlightNotFound)
	}

	w.metrics.FlightWritten("delete")
	w.announce(ctx, constants.FlightEventDeleted, &models.Flight{ID: id})
	return nil
}

func (w *FlightWriter) checkUpdate(req dtos.UpdateFlightReq) error {
	if err := checkStruct(w.validate, req); err != nil {
		return err
	}
	fields := errs.FieldErrors{}
	checkNotBlank(fields, "departure", req.Departure)
	checkNotBlank(fields, "arrival", req.Arrival)
	if len(fields) > 0 {
		return errs.ValidationFields(constants.MsgSerializerError, fields)
	}
	return nil
}

// checkAircraftFree rejects a flight whose aircraft already flies a
// non-cancelled flight in an overlapping [departure, arrival) window.
func (w *FlightWriter) checkAircraftFree(ctx context.Context, flights *repositories.FlightRepository, flight *models.Flight) error {
	if flight.AircraftID == nil || flight.Status == constants.FlightStatusCancelled {
		return nil
	}

	clashes, err := flights.FindOverlapping(ctx, *flight.AircraftID, flight.DepartureAt, flight.ArrivalAt, flight.ID)
	if err != nil {
		return err
	}
	if len(clashes) > 0 {
		fields := errs.FieldErrors{}
		fields.Add("aircraft", constants.MsgAircraftDoubleBooked)
		return w.reject(rejectDoubleBooked, errs.ValidationFields(constants.MsgAircraftDoubleBooked, fields))
	}
	return nil
}

func (w *FlightWriter) reject(reason string, err error) error {
	w.metrics.FlightRejected(reason)
	return err
}

// announce publishes after commit; a broker failure does not undo the write.
func (w *FlightWriter) announce(ctx context.Context, event constants.FlightEvent, flight *models.Flight) {
	evt := events.FlightEvent{
		Event:      event,
		FlightID:   flight.ID,
		Departure:  flight.DepartureAirportID,
		Arrival:    flight.ArrivalAirportID,
		OccurredAt: w.now().UTC(),
	}
	if err := w.publisher.Publish(ctx, evt); err != nil {
		logging.Warn("Failed to publish flight event", "event", event, "flight_id", flight.ID, "error", err)
	}
}

func (w *FlightWriter) reload(ctx context.Context, id string) (*models.Flight, error) {
	flight, err := w.flights.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if flight == nil {
		return nil, errs.NotFound(constants.MsgFlightNotFound)
	}
	return flight, nil
}
