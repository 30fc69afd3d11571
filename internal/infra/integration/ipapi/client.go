package ipapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rajudas/field-sales-api/internal/entity"
)

// Client queries ip-api.com, the first network-tier geolocation provider.
// The short timeout is the whole budget for this tier; on failure the
// resolver moves on to the next provider.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

func (c *Client) Name() string {
	return "ip-api"
}

func (c *Client) Locate(ctx context.Context) (entity.GeoFix, error) {
	url := fmt.Sprintf("%s/json/", c.baseURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return entity.GeoFix{}, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return entity.GeoFix{}, fmt.Errorf("ip-api request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return entity.GeoFix{}, fmt.Errorf("ip-api status %d", resp.StatusCode)
	}

	var body locateResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return entity.GeoFix{}, fmt.Errorf("ip-api decode: %w", err)
	}

	if body.Status != "success" {
		return entity.GeoFix{}, fmt.Errorf("ip-api lookup failed: %s", body.Message)
	}

	return entity.GeoFix{Latitude: body.Lat, Longitude: body.Lon}, nil
}
