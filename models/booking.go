package models

import "time"

// CustomerDetails is the contact block attached to a booking.
type CustomerDetails struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

// BookingData is the booking-creation payload. The field set and nesting are
// wire-compatible with existing clients.
type BookingData struct {
	SalonID         int             `json:"salonId"`
	SalonName       string          `json:"salonName"`
	SalonAddress    string          `json:"salonAddress"`
	Service         Service         `json:"service"`
	Date            string          `json:"date"` // "YYYY-MM-DD"
	Time            string          `json:"time"` // "HH:MM AM/PM"
	CustomerDetails CustomerDetails `json:"customerDetails"`
}

// Booking is the persisted record: the submitted payload plus server-side
// identity and status.
type Booking struct {
	ID     string `json:"id"`
	UserID string `json:"userId"`
	BookingData
	CreatedAt time.Time `json:"createdAt"`
	Status    string    `json:"status"`
}

// BookingSummary is the compact listing shape returned for a user's bookings.
type BookingSummary struct {
	ID           string `json:"id"`
	SalonName    string `json:"salonName"`
	SalonAddress string `json:"salonAddress"`
	ServiceName  string `json:"serviceName"`
	Date         string `json:"date"`
	Time         string `json:"time"`
	Status       string `json:"status"`
	Price        string `json:"price"`
}

// HistoryService is a line item within a booking-history entry.
type HistoryService struct {
	Name     string `json:"name"`
	Price    int    `json:"price"`
	Duration int    `json:"duration"` // minutes
}

// BookingHistoryEntry is the detailed history shape consumed by the profile
// screen, including the loyalty points the visit earned.
type BookingHistoryEntry struct {
	ID                  string           `json:"id"`
	SalonName           string           `json:"salonName"`
	SalonImage          string           `json:"salonImage,omitempty"`
	SalonAddress        string           `json:"salonAddress"`
	Services            []HistoryService `json:"services"`
	Date                string           `json:"date"`
	Time                string           `json:"time"`
	Status              string           `json:"status"`
	TotalAmount         int              `json:"totalAmount"`
	Rating              int              `json:"rating,omitempty"`
	Review              string           `json:"review,omitempty"`
	LoyaltyPointsEarned int              `json:"loyaltyPointsEarned"`
}
