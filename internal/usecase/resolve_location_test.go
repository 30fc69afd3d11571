package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/rajudas/field-sales-api/internal/entity"
)

func TestResolveDeviceFixShortCircuits(t *testing.T) {
	ctx := context.Background()

	provider := &MockGeoProvider{name: "ip-api"}
	uc := NewResolveLocationUseCase(provider)

	device := &entity.GeoFix{Latitude: 12.34, Longitude: 56.78, AccuracyM: 8}
	fix, err := uc.Resolve(ctx, device)

	assert.NoError(t, err)
	assert.Equal(t, 12.34, fix.Latitude)
	assert.Equal(t, 8.0, fix.AccuracyM)
	assert.Equal(t, "gps", fix.Source)
	provider.AssertNotCalled(t, "Locate", mock.Anything)
}

func TestResolveFirstProviderWins(t *testing.T) {
	ctx := context.Background()

	first := &MockGeoProvider{name: "ip-api"}
	first.On("Locate", ctx).Return(entity.GeoFix{Latitude: 1, Longitude: 2}, nil)
	second := &MockGeoProvider{name: "ipinfo"}

	uc := NewResolveLocationUseCase(first, second)
	fix, err := uc.Resolve(ctx, nil)

	assert.NoError(t, err)
	assert.Equal(t, "ip-api", fix.Source)
	assert.Equal(t, 500.0, fix.AccuracyM)
	second.AssertNotCalled(t, "Locate", mock.Anything)
}

func TestResolveFallsBackToSecondProvider(t *testing.T) {
	ctx := context.Background()

	first := &MockGeoProvider{name: "ip-api"}
	first.On("Locate", ctx).Return(entity.GeoFix{}, errors.New("timeout"))
	second := &MockGeoProvider{name: "ipinfo"}
	second.On("Locate", ctx).Return(entity.GeoFix{Latitude: 3, Longitude: 4}, nil)

	uc := NewResolveLocationUseCase(first, second)
	fix, err := uc.Resolve(ctx, nil)

	assert.NoError(t, err)
	assert.Equal(t, "ipinfo", fix.Source)
	assert.Equal(t, 3.0, fix.Latitude)
	assert.Equal(t, 500.0, fix.AccuracyM)
}

func TestResolveAllProvidersFailIsUnavailable(t *testing.T) {
	ctx := context.Background()

	first := &MockGeoProvider{name: "ip-api"}
	first.On("Locate", ctx).Return(entity.GeoFix{}, errors.New("timeout"))
	second := &MockGeoProvider{name: "ipinfo"}
	second.On("Locate", ctx).Return(entity.GeoFix{}, errors.New("dns failure"))

	uc := NewResolveLocationUseCase(first, second)
	_, err := uc.Resolve(ctx, nil)

	// Definitive unavailability, not a zero-valued fix.
	assert.ErrorIs(t, err, ErrLocationUnavailable)
	first.AssertCalled(t, "Locate", ctx)
	second.AssertCalled(t, "Locate", ctx)
}
