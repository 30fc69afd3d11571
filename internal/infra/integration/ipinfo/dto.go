package ipinfo

type locateResponse struct {
	IP   string `json:"ip"`
	City string `json:"city"`
	Loc  string `json:"loc"` // "lat,lon"
}
