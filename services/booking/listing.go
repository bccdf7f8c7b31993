package booking

import (
	"context"
	"encoding/json"
	"fmt"

	"groomer/database/repository/kv"
	"groomer/models"
	"groomer/utils"
)

// ListUserBookings returns compact summaries of a user's bookings. Users with
// no bookings yet get the demo sample set, matching the legacy backend.
func (s *DefaultBookingService) ListUserBookings(ctx context.Context, userID string) ([]models.BookingSummary, error) {
	bookings, err := s.loadBookings(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(bookings) == 0 {
		return sampleSummaries(), nil
	}

	summaries := make([]models.BookingSummary, 0, len(bookings))
	for _, b := range bookings {
		status := b.Status
		if status == "" {
			status = "confirmed"
		}
		price := b.Service.Price
		if price == "" {
			price = "N/A"
		}
		summaries = append(summaries, models.BookingSummary{
			ID:           b.ID,
			SalonName:    b.SalonName,
			SalonAddress: b.SalonAddress,
			ServiceName:  b.Service.Name,
			Date:         b.Date,
			Time:         b.Time,
			Status:       status,
			Price:        price,
		})
	}
	return summaries, nil
}

// BookingHistory returns the detailed history view, including the loyalty
// points each visit earned (one point per currency unit).
func (s *DefaultBookingService) BookingHistory(ctx context.Context, userID string) ([]models.BookingHistoryEntry, error) {
	bookings, err := s.loadBookings(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(bookings) == 0 {
		return sampleHistory(), nil
	}

	entries := make([]models.BookingHistoryEntry, 0, len(bookings))
	for _, b := range bookings {
		amount := priceToAmount(b.Service.Price)
		status := b.Status
		if status == "" {
			status = "completed"
		}
		entries = append(entries, models.BookingHistoryEntry{
			ID:           b.ID,
			SalonName:    b.SalonName,
			SalonAddress: b.SalonAddress,
			Services: []models.HistoryService{{
				Name:     b.Service.Name,
				Price:    amount,
				Duration: durationToMinutes(b.Service.Duration),
			}},
			Date:                b.Date,
			Time:                b.Time,
			Status:              status,
			TotalAmount:         amount,
			LoyaltyPointsEarned: amount,
		})
	}
	return entries, nil
}

func (s *DefaultBookingService) loadBookings(ctx context.Context, userID string) ([]models.Booking, error) {
	var ids []string
	err := s.Store.Get(ctx, utils.UserBookingsKey(userID), &ids)
	if err == kv.ErrNotFound || len(ids) == 0 {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch bookings: %w", err)
	}

	raws, err := s.Store.GetMulti(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch bookings: %w", err)
	}
	bookings := make([]models.Booking, 0, len(raws))
	for _, raw := range raws {
		var b models.Booking
		if err := json.Unmarshal(raw, &b); err != nil {
			// Skip records written by older deployments rather than failing
			// the whole listing.
			continue
		}
		bookings = append(bookings, b)
	}
	return bookings, nil
}

func sampleSummaries() []models.BookingSummary {
	return []models.BookingSummary{
		{
			ID:           "sample_1",
			SalonName:    "Glamour Studio",
			SalonAddress: "123 Fashion Street, Mumbai, Maharashtra",
			ServiceName:  "Hair Cut & Styling",
			Date:         "2025-01-15",
			Time:         "10:00 AM",
			Status:       "upcoming",
			Price:        "₹800",
		},
		{
			ID:           "sample_2",
			SalonName:    "Elite Beauty Salon",
			SalonAddress: "456 Beauty Avenue, Delhi, Delhi",
			ServiceName:  "Facial Treatment",
			Date:         "2024-12-28",
			Time:         "02:00 PM",
			Status:       "completed",
			Price:        "₹1,200",
		},
		{
			ID:           "sample_3",
			SalonName:    "Men's Grooming Hub",
			SalonAddress: "789 Gents Corner, Bangalore, Karnataka",
			ServiceName:  "Beard Trim",
			Date:         "2024-12-20",
			Time:         "04:30 PM",
			Status:       "completed",
			Price:        "₹300",
		},
	}
}

func sampleHistory() []models.BookingHistoryEntry {
	return []models.BookingHistoryEntry{
		{
			ID:           "hist_1",
			SalonName:    "Glamour Studio",
			SalonAddress: "123 Fashion Street, Mumbai",
			Services: []models.HistoryService{
				{Name: "Hair Cut & Styling", Price: 50, Duration: 60},
				{Name: "Hair Color", Price: 80, Duration: 120},
			},
			Date:                "2024-12-15",
			Time:                "10:00 AM",
			Status:              "completed",
			TotalAmount:         130,
			Rating:              5,
			Review:              "Excellent service! Very professional and friendly staff.",
			LoyaltyPointsEarned: 130,
		},
		{
			ID:           "hist_2",
			SalonName:    "Elite Beauty Salon",
			SalonAddress: "456 Beauty Avenue, Delhi",
			Services: []models.HistoryService{
				{Name: "Facial Treatment", Price: 60, Duration: 90},
			},
			Date:                "2024-11-28",
			Time:                "02:00 PM",
			Status:              "completed",
			TotalAmount:         60,
			Rating:              4,
			LoyaltyPointsEarned: 60,
		},
		{
			ID:           "hist_3",
			SalonName:    "Men's Grooming Hub",
			SalonAddress: "789 Gents Corner, Bangalore",
			Services: []models.HistoryService{
				{Name: "Hair Cut", Price: 25, Duration: 30},
				{Name: "Beard Trim", Price: 15, Duration: 15},
			},
			Date:                "2024-11-10",
			Time:                "04:30 PM",
			Status:              "completed",
			TotalAmount:         40,
			Rating:              5,
			Review:              "Great barber, exactly what I wanted!",
			LoyaltyPointsEarned: 40,
		},
	}
}
