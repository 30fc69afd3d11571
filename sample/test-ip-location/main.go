// Manual check for the network-tier geolocation providers. Run it from a
// machine with outbound internet to see what each provider returns.
package main

import (
	"context"
	"fmt"
	"time"

	"github.com/rajudas/field-sales-api/internal/infra/integration/ipapi"
	"github.com/rajudas/field-sales-api/internal/infra/integration/ipinfo"
	"github.com/rajudas/field-sales-api/internal/usecase"
)

func main() {
	ctx := context.Background()
	timeout := 3 * time.Second

	providers := []usecase.GeoProvider{
		ipapi.NewClient("http://ip-api.com", timeout),
		ipinfo.NewClient("https://ipinfo.io", timeout),
	}

	for _, p := range providers {
		fix, err := p.Locate(ctx)
		if err != nil {
			fmt.Printf("%-8s error: %v\n", p.Name(), err)
			continue
		}
		fmt.Printf("%-8s %.4f, %.4f\n", p.Name(), fix.Latitude, fix.Longitude)
	}

	uc := usecase.NewResolveLocationUseCase(providers...)
	fix, err := uc.Resolve(ctx, nil)
	if err != nil {
		fmt.Println("resolver: unavailable")
		return
	}
	fmt.Printf("resolver: %s (%.0fm) -> https://www.google.com/maps?q=%v,%v\n",
		fix.Source, fix.AccuracyM, fix.Latitude, fix.Longitude)
}
