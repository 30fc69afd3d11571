package entity

import (
	"fmt"
	"strings"
	"time"
)

const (
	VisitTypeNew = "NEW VISIT"
	VisitTypeRe  = "RE VISIT"

	CategoryMT     = "MT"
	CategoryHoReCa = "HoReCa"

	LocationRecordedYes = "YES"
	LocationRecordedNo  = "NO"
)

// LeadStatuses is the fixed set of lead classifications. Any status may be
// re-set to any other; there is no transition ordering.
var LeadStatuses = []string{"HOT", "WARM", "COLD", "DEAD"}

// ProductCatalog holds the canonical product tokens exactly as they are
// persisted inside the csv products column.
var ProductCatalog = []string{
	"CIGARETTE",
	"ROLLING PAPERS",
	"CIGARS",
	"HOOKAH",
	"ZIPPO LIGHTERS",
	"NONE",
}

// VisitRecord is the central entity. Append-only after creation except for
// LeadType, which the dashboard may overwrite.
type VisitRecord struct {
	ID                     int       `json:"id"`
	VisitDate              string    `json:"visit_date"` // YYYY-MM-DD
	VisitTime              string    `json:"visit_time"` // HH:MM:SS
	SRName                 string    `json:"sr_name"`
	Username               string    `json:"username"`
	StoreName              string    `json:"store_name"`
	VisitType              string    `json:"visit_type"`
	StoreCategory          string    `json:"store_category"`
	PhoneNumber            string    `json:"phone_number"`
	LeadType               string    `json:"lead_type"`
	FollowUpDate           string    `json:"follow_up_date,omitempty"`
	Products               string    `json:"products"` // csv of ProductCatalog tokens
	OrderDetails           string    `json:"order_details,omitempty"`
	Latitude               *float64  `json:"latitude,omitempty"`
	Longitude              *float64  `json:"longitude,omitempty"`
	MapsURL                string    `json:"maps_url,omitempty"`
	LocationRecordedAnswer string    `json:"location_recorded_answer"`
	ImageData              string    `json:"image_data"`
	CreatedAt              time.Time `json:"created_at"`
}

// GeoFix is a resolved coordinate pair. A GeoFix always carries real
// coordinates; "no location" is represented by the absence of a fix, never by
// a zero-valued one.
type GeoFix struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	AccuracyM float64 `json:"accuracy_m"`
	Source    string  `json:"source"` // gps, ip-api, ipinfo
}

// MapsURL builds the Google Maps link stored alongside a record. The format
// is fixed; the dashboard links against it verbatim.
func MapsURL(lat, lon float64) string {
	return fmt.Sprintf("https://www.google.com/maps?q=%v,%v", lat, lon)
}

// NormalizeCategory maps any stored category value onto the two display
// values. Legacy rows carry HORECA in assorted casings; everything
// unrecognized (including empty) is MT.
func NormalizeCategory(raw string) string {
	if strings.EqualFold(strings.TrimSpace(raw), "HORECA") {
		return CategoryHoReCa
	}
	return CategoryMT
}

func IsValidLeadStatus(s string) bool {
	for _, v := range LeadStatuses {
		if v == s {
			return true
		}
	}
	return false
}

func IsCatalogProduct(p string) bool {
	for _, v := range ProductCatalog {
		if v == p {
			return true
		}
	}
	return false
}

// JoinProducts serializes a product selection into the persisted csv form.
func JoinProducts(products []string) string {
	return strings.Join(products, ", ")
}

// SplitProducts parses the persisted csv form back into tokens.
func SplitProducts(csv string) []string {
	if strings.TrimSpace(csv) == "" {
		return nil
	}
	parts := strings.Split(csv, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}
