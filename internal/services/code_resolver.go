package services

import (
	"context"
	"strings"

	"flightdesk/scheduler/internal/constants"
	"flightdesk/scheduler/internal/db/repositories"
	"flightdesk/scheduler/internal/errs"

	"gorm.io/gorm"
)

// EntityKind selects which table a code is resolved against
type EntityKind int

const (
	KindAircraft EntityKind = iota
	KindAirport
)

func (k EntityKind) String() string {
	if k == KindAircraft {
		return "aircraft"
	}
	return "airport"
}

// EntityRef is the canonical reference a human-typed code resolved to
type EntityRef struct {
	Kind EntityKind
	ID   string
	Code string
}

// CodeLookup names a request field holding a code to resolve
type CodeLookup struct {
	Field string
	Code  string
	Kind  EntityKind
}

// CodeResolver maps ICAO codes and serial numbers to stored entities.
// Matching is exact on the upper-cased code, backed by the unique indexes,
// so a code can never match more than one row.
type CodeResolver struct {
	airports *repositories.AirportRepository
	aircraft *repositories.AircraftRepository
}

func NewCodeResolver(airports *repositories.AirportRepository, aircraft *repositories.AircraftRepository) *CodeResolver {
	return &CodeResolver{
		airports: airports,
		aircraft: aircraft,
	}
}

// WithTx returns a resolver reading through tx
func (r *CodeResolver) WithTx(tx *gorm.DB) *CodeResolver {
	return &CodeResolver{
		airports: r.airports.WithTx(tx),
		aircraft: r.aircraft.WithTx(tx),
	}
}

// NormalizeCode is the form codes are stored and matched in
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// Resolve returns the entity a code refers to, or a NotFound error when no
// entity has that code. Callers decide whether NotFound is fatal.
func (r *CodeResolver) Resolve(ctx context.Context, code string, kind EntityKind) (*EntityRef, error) {
	normalized := NormalizeCode(code)
	if normalized == "" {
		return nil, errs.NotFound(notFoundMessage(kind))
	}

	switch kind {
	case KindAircraft:
		a, err := r.aircraft.FindBySerial(ctx, normalized)
		if err != nil {
			return nil, err
		}
		if a == nil {
			return nil, errs.NotFound(notFoundMessage(kind))
		}
		return &EntityRef{Kind: kind, ID: a.ID, Code: a.SerialNumber}, nil
	default:
		ap, err := r.airports.FindByICAO(ctx, normalized)
		if err != nil {
			return nil, err
		}
		if ap == nil {
			return nil, errs.NotFound(notFoundMessage(kind))
		}
		return &EntityRef{Kind: kind, ID: ap.ID, Code: ap.ICAO}, nil
	}
}

// ResolveAll resolves every lookup and reports all unknown codes together as
// a ReferenceError keyed by field. Infrastructure errors abort immediately.
func (r *CodeResolver) ResolveAll(ctx context.Context, lookups []CodeLookup) (map[string]*EntityRef, error) {
	refs := make(map[string]*EntityRef, len(lookups))
	missing := errs.FieldErrors{}

	for _, l := range lookups {
		ref, err := r.Resolve(ctx, l.Code, l.Kind)
		if err != nil {
			if errs.IsNotFound(err) {
				missing.Add(l.Field, notFoundMessage(l.Kind))
				continue
			}
			return nil, err
		}
		refs[l.Field] = ref
	}

	if len(missing) > 0 {
		return nil, errs.ReferenceFields(constants.MsgSerializerError, missing)
	}
	return refs, nil
}

// ValidateAirportCode is the single-field form of ResolveAll for ICAO codes
func (r *CodeResolver) ValidateAirportCode(ctx context.Context, field, code string) error {
	_, err := r.ResolveAll(ctx, []CodeLookup{{Field: field, Code: code, Kind: KindAirport}})
	return err
}

// ValidateAircraftCode is the single-field form of ResolveAll for serial numbers
func (r *CodeResolver) ValidateAircraftCode(ctx context.Context, field, code string) error {
	_, err := r.ResolveAll(ctx, []CodeLookup{{Field: field, Code: code, Kind: KindAircraft}})
	return err
}

func notFoundMessage(kind EntityKind) string {
	if kind == KindAircraft {
		return constants.MsgUnknownSerial
	}
	return constants.MsgUnknownICAO
}
