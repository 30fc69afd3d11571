package ipapi

type locateResponse struct {
	Status  string  `json:"status"` // "success" or "fail"
	Message string  `json:"message,omitempty"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
}
