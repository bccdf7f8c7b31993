package models

// ReminderPayload is the task body queued for appointment reminders.
type ReminderPayload struct {
	ReminderID string `json:"reminderId"`
	UserID     string `json:"userId"`
	Title      string `json:"title"`
	Body       string `json:"body"`
	FireDate   string `json:"fireDate"` // ISO-8601
}
