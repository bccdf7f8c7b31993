package models

import "time"

// BookingStep identifies where a wizard session currently is.
type BookingStep string

const (
	StepServices     BookingStep = "services"
	StepDateTime     BookingStep = "datetime"
	StepDetails      BookingStep = "details"
	StepConfirmation BookingStep = "confirmation"
)

// BookingSession holds the in-progress booking draft between wizard steps.
// It lives in the session cache with a short TTL and is discarded on
// completion or cancellation.
type BookingSession struct {
	SessionID    string      `json:"sessionId"`
	UserID       string      `json:"userId"`
	SalonID      int         `json:"salonId"`
	SalonName    string      `json:"salonName"`
	SalonAddress string      `json:"salonAddress"`
	SalonImage   string      `json:"salonImage"`
	Step         BookingStep `json:"step"`
	Category     Category    `json:"category"`

	// Draft fields, filled in step by step. Service is stored whole so later
	// steps can render price and duration without another catalog lookup.
	Service  *Service        `json:"service,omitempty"`
	Date     string          `json:"date,omitempty"`
	Time     string          `json:"time,omitempty"`
	Customer CustomerDetails `json:"customer"`

	// Booking is set once the draft has been submitted successfully.
	Booking *Booking `json:"booking,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}
