package usecase

import (
	"context"
	"log"

	"github.com/rajudas/field-sales-api/internal/entity"
)

// networkAccuracyM is the coarse accuracy assumed for any IP-based fix.
const networkAccuracyM = 500

// ResolveLocationUseCase walks the tiered source chain: a device-precision
// fix supplied by the client wins outright; otherwise each network provider
// is tried in order. Provider failures degrade to the next provider and
// ultimately to ErrLocationUnavailable, never to a hard failure.
type ResolveLocationUseCase struct {
	Providers []GeoProvider
}

func NewResolveLocationUseCase(providers ...GeoProvider) *ResolveLocationUseCase {
	return &ResolveLocationUseCase{Providers: providers}
}

func (uc *ResolveLocationUseCase) Resolve(ctx context.Context, deviceFix *entity.GeoFix) (entity.GeoFix, error) {
	if deviceFix != nil {
		fix := *deviceFix
		fix.Source = "gps"
		return fix, nil
	}

	for _, p := range uc.Providers {
		fix, err := p.Locate(ctx)
		if err != nil {
			log.Printf("[Geolocation] provider %s failed: %v", p.Name(), err)
			continue
		}
		fix.AccuracyM = networkAccuracyM
		fix.Source = p.Name()
		return fix, nil
	}

	return entity.GeoFix{}, ErrLocationUnavailable
}
