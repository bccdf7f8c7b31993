package models

import "encoding/json"

// Profile, preferences and settings are client-defined documents the server
// stores and returns whole. Keeping them schemaless matches the
// replace-whole-document contract.
type (
	Profile     map[string]interface{}
	Preferences map[string]interface{}
	Settings    map[string]interface{}
)

// ExportBundle aggregates everything known about a user for data export.
type ExportBundle struct {
	Profile     json.RawMessage   `json:"profile"`
	Loyalty     json.RawMessage   `json:"loyalty"`
	Preferences json.RawMessage   `json:"preferences"`
	Settings    json.RawMessage   `json:"settings"`
	Bookings    []json.RawMessage `json:"bookings"`
	ExportDate  string            `json:"exportDate"`
}
