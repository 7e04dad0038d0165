package model

import (
	"time"

	"innkeep/shared/model"
	"innkeep/shared/timezone"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID        = "id"
	FieldRoomID    = "room_id"
	FieldGuestName = "guest_name"
	FieldStartDate = "start_date"
	FieldEndDate   = "end_date"
	FieldStatus    = "status"
)

const (
	StatusBooked      = "booked"
	StatusPending     = "pending"
	StatusMaintenance = "maintenance"
)

// Booking occupies a room for an inclusive range of calendar days. Time of day
// carries no meaning; StartDate and EndDate are kept at start of day so date
// comparisons never trip over clock components.
type Booking struct {
	ID        string    `db:"id"`
	RoomID    string    `db:"room_id"`
	GuestName string    `db:"guest_name"`
	StartDate time.Time `db:"start_date"`
	EndDate   time.Time `db:"end_date"`
	Status    string    `db:"status"`
	model.Metadata
}

// Normalize strips clock components from both endpoints.
func (b Booking) Normalize() Booking {
	b.StartDate = timezone.DayStart(b.StartDate)
	b.EndDate = timezone.DayStart(b.EndDate)

	return b
}

// CoversDay reports whether day falls inside the booking's inclusive range.
func (b Booking) CoversDay(day time.Time) bool {
	day = timezone.DayStart(day)
	start := timezone.DayStart(b.StartDate)
	end := timezone.DayStart(b.EndDate)

	return !day.Before(start) && !day.After(end)
}
