package usecase

import "github.com/rajudas/field-sales-api/internal/entity"

// Draft is the per-session form state. Every mutation is an explicit
// transition; nothing here lives in ambient/global storage.
type Draft struct {
	SRName        string   `json:"sr_name"`
	StoreName     string   `json:"store_name"`
	VisitType     string   `json:"visit_type"`
	StoreCategory string   `json:"store_category"`
	PhoneNumber   string   `json:"phone_number"`
	LeadType      string   `json:"lead_type"`
	Products      []string `json:"products"`
	OrderDetails  string   `json:"order_details"`
	FollowUpDate  string   `json:"follow_up_date"`

	Location *entity.GeoFix `json:"location,omitempty"`
}

// ApplyLocation records a resolved fix. Applying the same fix twice is a
// no-op; the return value reports whether the draft actually changed.
func (d *Draft) ApplyLocation(fix entity.GeoFix) bool {
	if d.Location != nil && *d.Location == fix {
		return false
	}
	f := fix
	d.Location = &f
	return true
}

// ResetLocation clears any resolved coordinate, accuracy and source. Idempotent.
func (d *Draft) ResetLocation() {
	d.Location = nil
}

// ApplyHistory overwrites the draft with the most recent visit for a store
// and clears visit-specific fields so stale operational notes are not carried
// forward. The stored category is normalized on the way in.
func (d *Draft) ApplyHistory(v *entity.VisitRecord) {
	d.StoreName = v.StoreName
	d.SRName = v.SRName
	d.PhoneNumber = v.PhoneNumber
	d.VisitType = entity.VisitTypeRe
	d.StoreCategory = entity.NormalizeCategory(v.StoreCategory)
	d.LeadType = v.LeadType
	d.Products = entity.SplitProducts(v.Products)

	d.OrderDetails = ""
	d.FollowUpDate = ""
}
