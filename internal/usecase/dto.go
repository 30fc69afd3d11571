package usecase

import "github.com/rajudas/field-sales-api/internal/entity"

type SubmitVisitInput struct {
	SRName   string `json:"sr_name"`
	Username string `json:"username"`

	StoreName     string   `json:"store_name"`
	VisitType     string   `json:"visit_type"`
	StoreCategory string   `json:"store_category"`
	PhoneNumber   string   `json:"phone_number"`
	LeadType      string   `json:"lead_type"`
	FollowUpDate  string   `json:"follow_up_date"`
	Products      []string `json:"products"`
	OrderDetails  string   `json:"order_details"`

	// CapturedPhoto wins over UploadedPhoto when both are present.
	CapturedPhoto []byte `json:"-"`
	UploadedPhoto []byte `json:"-"`

	// LocationAnswer is the submitter's YES/NO claim; Location is what the
	// resolver actually produced. YES with a nil Location is a validation error.
	LocationAnswer string         `json:"location_recorded_answer"`
	Location       *entity.GeoFix `json:"location"`
}

type SubmitVisitOutput struct {
	ID      int    `json:"id"`
	MapsURL string `json:"maps_url,omitempty"`
	Message string `json:"message"`
}

type LeadStatusEdit struct {
	ID       int    `json:"id"`
	LeadType string `json:"lead_type"`
}

type EditFailure struct {
	ID      int    `json:"id"`
	Message string `json:"message"`
}

// BatchResult reports a best-effort batch: failures never roll back the rows
// that succeeded.
type BatchResult struct {
	Updated  int           `json:"updated"`
	Failures []EditFailure `json:"failures,omitempty"`
}

type DashboardSummary struct {
	Total        int            `json:"total"`
	StatusCounts map[string]int `json:"status_counts"`
}
