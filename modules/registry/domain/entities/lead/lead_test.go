package lead_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/civisafe/civisafe/modules/registry/domain/entities/lead"
)

func TestParseRefType(t *testing.T) {
	got, err := lead.ParseRefType("missing")
	require.NoError(t, err)
	assert.Equal(t, lead.RefMissing, got)

	got, err = lead.ParseRefType("criminal")
	require.NoError(t, err)
	assert.Equal(t, lead.RefCriminal, got)

	_, err = lead.ParseRefType("vehicle")
	assert.ErrorIs(t, err, lead.ErrInvalidRefType)
}

func TestCreateDTO_NormalizeDefaultsCountry(t *testing.T) {
	dto := &lead.CreateDTO{Title: "Robbery", IncidentDatetime: time.Now()}
	dto.Normalize()
	assert.Equal(t, "India", dto.Country)
	assert.NotNil(t, dto.MediaURLs)

	dto = &lead.CreateDTO{Country: "Nepal"}
	dto.Normalize()
	assert.Equal(t, "Nepal", dto.Country)
}

func TestCreateDTO_Ok_MediaLimit(t *testing.T) {
	dto := &lead.CreateDTO{
		Title:            "Robbery",
		IncidentDatetime: time.Now(),
		MediaURLs:        []string{"a", "b", "c", "d"},
	}
	errs, ok := dto.Ok()
	assert.False(t, ok)
	assert.Contains(t, errs, "MediaURLs")
}

func TestCreateDTO_Ok_IncidentRequired(t *testing.T) {
	dto := &lead.CreateDTO{Title: "Robbery"}
	errs, ok := dto.Ok()
	assert.False(t, ok)
	assert.Contains(t, errs, "IncidentDatetime")
}

func TestSightingDTO_Ok_AllFieldsRequired(t *testing.T) {
	dto := &lead.SightingDTO{Type: "missing", RefID: 1}
	errs, ok := dto.Ok()
	assert.False(t, ok)
	assert.Contains(t, errs, "UpdateText")
	assert.Contains(t, errs, "TimeOfSighting")
}
