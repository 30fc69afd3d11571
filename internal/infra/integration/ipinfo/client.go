package ipinfo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/rajudas/field-sales-api/internal/entity"
)

// Client queries ipinfo.io, the second independent network-tier provider.
// ipinfo returns coordinates as a single "lat,lon" string.
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
	return "ipinfo"
}

func (c *Client) Locate(ctx context.Context) (entity.GeoFix, error) {
	url := fmt.Sprintf("%s/json", c.baseURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return entity.GeoFix{}, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return entity.GeoFix{}, fmt.Errorf("ipinfo request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return entity.GeoFix{}, fmt.Errorf("ipinfo status %d", resp.StatusCode)
	}

	var body locateResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return entity.GeoFix{}, fmt.Errorf("ipinfo decode: %w", err)
	}

	if body.Loc == "" {
		return entity.GeoFix{}, fmt.Errorf("ipinfo response has no loc field")
	}

	lat, lon, err := parseLoc(body.Loc)
	if err != nil {
		return entity.GeoFix{}, err
	}

	return entity.GeoFix{Latitude: lat, Longitude: lon}, nil
}

func parseLoc(loc string) (float64, float64, error) {
	parts := strings.SplitN(loc, ",", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("ipinfo malformed loc %q", loc)
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("ipinfo malformed loc %q", loc)
	}
	lon, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("ipinfo malformed loc %q", loc)
	}
	return lat, lon, nil
}
