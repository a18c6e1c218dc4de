package services

import (
	"testing"

	"flightdesk/scheduler/internal/constants"
	"flightdesk/scheduler/internal/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodeResolver_Resolve_AnyCaseVariant(t *testing.T) {
	f := newFixture(t)
	ap := f.addAirport(t, "Heathrow", "egll")
	ac := f.addAircraft(t, "msn-1234")

	for _, code := range []string{"EGLL", "egll", " EgLl "} {
		ref, err := f.resolver.Resolve(f.ctx, code, KindAirport)
		require.NoError(t, err, code)
		assert.Equal(t, ap.ID, ref.ID)
		assert.Equal(t, "EGLL", ref.Code)
	}

	ref, err := f.resolver.Resolve(f.ctx, "Msn-1234", KindAircraft)
	require.NoError(t, err)
	assert.Equal(t, ac.ID, ref.ID)
	assert.Equal(t, KindAircraft, ref.Kind)
}

func TestCodeResolver_Resolve_NoSubstringMatch(t *testing.T) {
	f := newFixture(t)
	f.addAirport(t, "Heathrow", "EGLL")
	f.addAirport(t, "Gatwick", "EGKK")

	_, err := f.resolver.Resolve(f.ctx, "EG", KindAirport)
	assert.True(t, errs.IsNotFound(err))
}

func TestCodeResolver_Resolve_Unknown(t *testing.T) {
	f := newFixture(t)

	_, err := f.resolver.Resolve(f.ctx, "ZZZZ", KindAirport)
	assert.True(t, errs.IsNotFound(err))

	_, err = f.resolver.Resolve(f.ctx, "  ", KindAircraft)
	assert.True(t, errs.IsNotFound(err))
}

func TestCodeResolver_ResolveAll_ReportsEveryMissingField(t *testing.T) {
	f := newFixture(t)
	f.addAirport(t, "Heathrow", "EGLL")

	_, err := f.resolver.ResolveAll(f.ctx, []CodeLookup{
		{Field: "departure", Code: "EGLL", Kind: KindAirport},
		{Field: "arrival", Code: "KJFK", Kind: KindAirport},
		{Field: "aircraft", Code: "NOPE", Kind: KindAircraft},
	})
	require.Error(t, err)
	assert.True(t, errs.IsReference(err))

	fields := errs.Fields(err)
	assert.Contains(t, fields, "arrival")
	assert.Contains(t, fields, "aircraft")
	assert.NotContains(t, fields, "departure")
}

func TestCodeResolver_ValidateCodes(t *testing.T) {
	f := newFixture(t)
	f.addAirport(t, "Heathrow", "EGLL")
	f.addAircraft(t, "MSN1")

	assert.NoError(t, f.resolver.ValidateAirportCode(f.ctx, "departure", "egll"))
	assert.NoError(t, f.resolver.ValidateAircraftCode(f.ctx, "aircraft", "msn1"))

	err := f.resolver.ValidateAirportCode(f.ctx, "arrival", "KJFK")
	require.Error(t, err)
	assert.Equal(t, []string{constants.MsgUnknownICAO}, errs.Fields(err)["arrival"])

	err = f.resolver.ValidateAircraftCode(f.ctx, "aircraft", "MSN2")
	require.Error(t, err)
	assert.Equal(t, []string{constants.MsgUnknownSerial}, errs.Fields(err)["aircraft"])
}

func TestNormalizeCode(t *testing.T) {
	assert.Equal(t, "1EC9", NormalizeCode(" 1ec9\n"))
}
