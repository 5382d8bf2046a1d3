package office

// ========================================
// OFFICE DTOs
// ========================================

type Response struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Number string  `json:"number"`
	Lat    float64 `json:"lat"`
	Lng    float64 `json:"lng"`
}

type LocationResponse struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}
