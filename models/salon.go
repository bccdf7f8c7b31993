package models

// GeoPoint is a latitude/longitude pair in decimal degrees.
type GeoPoint struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Salon is a directory entry. Salons are read-only seed data from the
// client's perspective.
type Salon struct {
	ID        int      `json:"id"`
	Name      string   `json:"name"`
	Rating    float64  `json:"rating"`
	Reviews   int      `json:"reviews"`
	Address   string   `json:"address"`
	Location  GeoPoint `json:"location"`
	Image     string   `json:"image"`
	Services  []string `json:"services"`
	OpenTime  string   `json:"openTime"`
	CloseTime string   `json:"closeTime"`

	// DistanceKm is attached when the caller supplied a position.
	DistanceKm *float64 `json:"distance,omitempty"`
}
