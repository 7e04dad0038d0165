package service

import (
	"time"

	"innkeep/internal/domains/booking/model"
	"innkeep/shared/timezone"
)

// Candidate is the date range a create or update wants to occupy.
type Candidate struct {
	RoomID    string
	StartDate time.Time
	EndDate   time.Time
}

// DetectOverlap returns the first existing booking whose inclusive date range
// shares at least one day with the candidate on the same room, or nil when the
// range is free. The booking identified by editingID is skipped so an edit
// never conflicts with itself. Bookings that share only a boundary day count
// as overlapping: there is no same-day turnover.
func DetectOverlap(candidate Candidate, editingID string, existing []model.Booking) *model.Booking {
	candStart := timezone.DayStart(candidate.StartDate)
	candEnd := timezone.DayStart(candidate.EndDate)

	for i := range existing {
		booking := existing[i]

		if booking.ID == editingID || booking.RoomID != candidate.RoomID {
			continue
		}

		exStart := timezone.DayStart(booking.StartDate)
		exEnd := timezone.DayStart(booking.EndDate)

		if !candStart.After(exEnd) && !candEnd.Before(exStart) {
			return &booking
		}
	}

	return nil
}
