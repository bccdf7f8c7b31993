package catalog

import "time"

// DateLayout is the wire format for booking dates.
const DateLayout = "2006-01-02"

// BookingWindowDays is how far ahead a slot can be booked.
const BookingWindowDays = 7

var timeSlots = []string{
	"09:00 AM", "09:30 AM", "10:00 AM", "10:30 AM", "11:00 AM", "11:30 AM",
	"12:00 PM", "12:30 PM", "02:00 PM", "02:30 PM", "03:00 PM", "03:30 PM",
	"04:00 PM", "04:30 PM", "05:00 PM", "05:30 PM", "06:00 PM", "06:30 PM",
}

// TimeSlots returns the fixed time-of-day labels. The 01:00–01:30 PM gap is
// the lunch break.
func TimeSlots() []string {
	out := make([]string, len(timeSlots))
	copy(out, timeSlots)
	return out
}

// ValidTimeSlot reports whether t is one of the offered labels.
func ValidTimeSlot(t string) bool {
	for _, s := range timeSlots {
		if s == t {
			return true
		}
	}
	return false
}

// UpcomingDates returns the next n calendar days starting from now, encoded
// as "YYYY-MM-DD".
func UpcomingDates(now time.Time, n int) []string {
	dates := make([]string, 0, n)
	for i := 0; i < n; i++ {
		dates = append(dates, now.AddDate(0, 0, i).Format(DateLayout))
	}
	return dates
}

// ValidBookingDate reports whether date falls within the booking window
// starting at now.
func ValidBookingDate(now time.Time, date string) bool {
	for _, d := range UpcomingDates(now, BookingWindowDays) {
		if d == date {
			return true
		}
	}
	return false
}

// SlotTime resolves a date string and a time-of-day label into a concrete
// local time, e.g. for scheduling reminders.
func SlotTime(date, slot string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(DateLayout+" 03:04 PM", date+" "+slot, loc)
}
