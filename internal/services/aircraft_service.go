package services

import (
	"context"
	"errors"
	"time"

	"flightdesk/scheduler/internal/constants"
	"flightdesk/scheduler/internal/db/repositories"
	"flightdesk/scheduler/internal/errs"
	"flightdesk/scheduler/internal/models/dtos"
	models "flightdesk/scheduler/internal/models/gorm"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

const msgSerialTaken = "aircraft with this serial number already exists."

// AircraftService is the CRUD surface for aircraft
type AircraftService struct {
	aircraft *repositories.AircraftRepository
	validate *validator.Validate
	now      func() time.Time
}

func NewAircraftService(aircraft *repositories.AircraftRepository, now func() time.Time) *AircraftService {
	if now == nil {
		now = time.Now
	}
	return &AircraftService{
		aircraft: aircraft,
		validate: newValidator(),
		now:      now,
	}
}

func (s *AircraftService) List(ctx context.Context) ([]models.Aircraft, error) {
	return s.aircraft.List(ctx)
}

func (s *AircraftService) Get(ctx context.Context, id string) (*models.Aircraft, error) {
	a, err := s.aircraft.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, errs.NotFound(constants.MsgAircraftNotFound)
	}
	return a, nil
}

func (s *AircraftService) Create(ctx context.Context, req dtos.CreateAircraftReq) (*models.Aircraft, error) {
	if err := checkStruct(s.validate, req); err != nil {
		return nil, err
	}

	a := &models.Aircraft{
		SerialNumber: NormalizeCode(req.SerialNumber),
		Manufacturer: req.Manufacturer,
		CreatedAt:    s.now().UTC(),
	}
	if err := s.ensureSerialFree(ctx, a.SerialNumber, ""); err != nil {
		return nil, err
	}
	if err := s.aircraft.Create(ctx, a); err != nil {
		return nil, translateDuplicate(err, "serial_number", msgSerialTaken)
	}
	return a, nil
}

func (s *AircraftService) Update(ctx context.Context, id string, req dtos.UpdateAircraftReq) (*models.Aircraft, error) {
	a, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := checkStruct(s.validate, req); err != nil {
		return nil, err
	}
	fields := errs.FieldErrors{}
	checkNotBlank(fields, "serial_number", req.SerialNumber)
	checkNotBlank(fields, "manufacturer", req.Manufacturer)
	if len(fields) > 0 {
		return nil, errs.ValidationFields(constants.MsgSerializerError, fields)
	}

	if req.SerialNumber != nil {
		a.SerialNumber = NormalizeCode(*req.SerialNumber)
		if err := s.ensureSerialFree(ctx, a.SerialNumber, a.ID); err != nil {
			return nil, err
		}
	}
	if req.Manufacturer != nil {
		a.Manufacturer = *req.Manufacturer
	}
	updated := s.now().UTC()
	a.UpdatedAt = &updated

	if err := s.aircraft.Save(ctx, a); err != nil {
		return nil, translateDuplicate(err, "serial_number", msgSerialTaken)
	}
	return a, nil
}

// Delete detaches the aircraft from its flights before removing it
func (s *AircraftService) Delete(ctx context.Context, id string) error {
	deleted, err := s.aircraft.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return errs.NotFound(constants.MsgAircraftNotFound)
	}
	return nil
}

func (s *AircraftService) ensureSerialFree(ctx context.Context, serial, selfID string) error {
	existing, err := s.aircraft.FindBySerial(ctx, serial)
	if err != nil {
		return err
	}
	if existing != nil && existing.ID != selfID {
		return errs.ValidationFields(constants.MsgSerializerError, errs.FieldErrors{"serial_number": {msgSerialTaken}})
	}
	return nil
}

// translateDuplicate turns a unique index violation that slipped past the
// pre-check into the same field error.
func translateDuplicate(err error, field, msg string) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return errs.ValidationFields(constants.MsgSerializerError, errs.FieldErrors{field: {msg}})
	}
	return err
}
