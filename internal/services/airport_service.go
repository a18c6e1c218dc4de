package services

import (
	"context"
	"time"

	"flightdesk/scheduler/internal/constants"
	"flightdesk/scheduler/internal/db/repositories"
	"flightdesk/scheduler/internal/errs"
	"flightdesk/scheduler/internal/models/dtos"
	models "flightdesk/scheduler/internal/models/gorm"

	"github.com/go-playground/validator/v10"
)

const msgICAOTaken = "airport with this icao already exists."

// AirportService is the CRUD surface for airports and their owned location
type AirportService struct {
	airports *repositories.AirportRepository
	validate *validator.Validate
	now      func() time.Time
}

func NewAirportService(airports *repositories.AirportRepository, now func() time.Time) *AirportService {
	if now == nil {
		now = time.Now
	}
	return &AirportService{
		airports: airports,
		validate: newValidator(),
		now:      now,
	}
}

func (s *AirportService) List(ctx context.Context) ([]models.Airport, error) {
	return s.airports.List(ctx)
}

func (s *AirportService) Get(ctx context.Context, id string) (*models.Airport, error) {
	ap, err := s.airports.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if ap == nil {
		return nil, errs.NotFound(constants.MsgAirportNotFound)
	}
	return ap, nil
}

// Create stores the airport and its location together
func (s *AirportService) Create(ctx context.Context, req dtos.CreateAirportReq) (*models.Airport, error) {
	if err := checkStruct(s.validate, req); err != nil {
		return nil, err
	}
	fields := errs.FieldErrors{}
	checkCoordinate(fields, "location.lat", *req.Location.Lat)
	checkCoordinate(fields, "location.lng", *req.Location.Lng)
	if len(fields) > 0 {
		return nil, errs.ValidationFields(constants.MsgSerializerError, fields)
	}

	ap := &models.Airport{
		Name:      req.Name,
		ICAO:      NormalizeCode(req.ICAO),
		CreatedAt: s.now().UTC(),
		Location: &models.Location{
			Area:    req.Location.Area,
			City:    req.Location.City,
			Country: req.Location.Country,
			Lat:     *req.Location.Lat,
			Lng:     *req.Location.Lng,
		},
	}
	if err := s.ensureICAOFree(ctx, ap.ICAO, ""); err != nil {
		return nil, err
	}
	if err := s.airports.Create(ctx, ap); err != nil {
		return nil, translateDuplicate(err, "icao", msgICAOTaken)
	}
	return ap, nil
}

// Update changes name or icao; the location is fixed at creation
func (s *AirportService) Update(ctx context.Context, id string, req dtos.UpdateAirportReq) (*models.Airport, error) {
	ap, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := checkStruct(s.validate, req); err != nil {
		return nil, err
	}
	fields := errs.FieldErrors{}
	checkNotBlank(fields, "name", req.Name)
	checkNotBlank(fields, "icao", req.ICAO)
	if len(fields) > 0 {
		return nil, errs.ValidationFields(constants.MsgSerializerError, fields)
	}

	if req.Name != nil {
		ap.Name = *req.Name
	}
	if req.ICAO != nil {
		ap.ICAO = NormalizeCode(*req.ICAO)
		if err := s.ensureICAOFree(ctx, ap.ICAO, ap.ID); err != nil {
			return nil, err
		}
	}
	updated := s.now().UTC()
	ap.UpdatedAt = &updated

	if err := s.airports.Save(ctx, ap); err != nil {
		return nil, translateDuplicate(err, "icao", msgICAOTaken)
	}
	return ap, nil
}

// Delete removes the airport and its location. Flights keep their reference.
func (s *AirportService) Delete(ctx context.Context, id string) error {
	deleted, err := s.airports.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return errs.NotFound(constants.MsgAirportNotFound)
	}
	return nil
}

func (s *AirportService) ensureICAOFree(ctx context.Context, icao, selfID string) error {
	existing, err := s.airports.FindByICAO(ctx, icao)
	if err != nil {
		return err
	}
	if existing != nil && existing.ID != selfID {
		return errs.ValidationFields(constants.MsgSerializerError, errs.FieldErrors{"icao": {msgICAOTaken}})
	}
	return nil
}
