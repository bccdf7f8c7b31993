// models/service.go
package models

// Category selects which half of the service catalog is shown.
type Category string

const (
	CategoryWomen Category = "women"
	CategoryMen   Category = "men"
)

// Service represents a bookable salon service from the static catalog.
type Service struct {
	ID       int      `json:"id"`
	Name     string   `json:"name"`
	Duration string   `json:"duration"` // human label, e.g. "45 min"
	Price    string   `json:"price"`    // human label, e.g. "₹800"
	Image    string   `json:"image"`
	Category Category `json:"category"`
}
