package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rajudas/field-sales-api/internal/entity"
)

func TestApplyLocationIsIdempotent(t *testing.T) {
	var d Draft
	fix := entity.GeoFix{Latitude: 12.34, Longitude: 56.78, AccuracyM: 10, Source: "gps"}

	assert.True(t, d.ApplyLocation(fix))
	// Same fix again must not register as a change.
	assert.False(t, d.ApplyLocation(fix))
	assert.Equal(t, fix, *d.Location)

	other := entity.GeoFix{Latitude: 1, Longitude: 2, AccuracyM: 500, Source: "ip-api"}
	assert.True(t, d.ApplyLocation(other))
	assert.Equal(t, other, *d.Location)
}

func TestResetLocationIsIdempotent(t *testing.T) {
	var d Draft
	d.ApplyLocation(entity.GeoFix{Latitude: 1, Longitude: 2})

	d.ResetLocation()
	assert.Nil(t, d.Location)

	d.ResetLocation()
	assert.Nil(t, d.Location)
}
