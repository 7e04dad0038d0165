// Package calendar derives the per-room, per-day occupancy grid shown on the
// admin console. Building a grid is a pure computation over the room and
// booking sets; nothing here caches, mutates input, or touches storage. The
// grid is recomputed wholesale whenever rooms, bookings, or the visible week
// change, never patched incrementally.
package calendar

import (
	"time"

	bookingModel "innkeep/internal/domains/booking/model"
	roomModel "innkeep/internal/domains/room/model"
	"innkeep/shared/constant"
	"innkeep/shared/timezone"
)

type Status string

const (
	StatusAvailable   Status = "available"
	StatusBooked      Status = bookingModel.StatusBooked
	StatusPending     Status = bookingModel.StatusPending
	StatusMaintenance Status = bookingModel.StatusMaintenance
)

// statusPriority orders the displayed status when several bookings with
// different statuses cover the same day. The admin relies on seeing the most
// serious condition first.
var statusPriority = []Status{StatusBooked, StatusMaintenance, StatusPending}

// Cell is the derived occupancy of one room on one day. Booking references the
// first booking carrying the winning status, in stable input order.
type Cell struct {
	Date    time.Time
	RoomID  string
	Status  Status
	Booking *bookingModel.Booking
}

type RoomRow struct {
	Room  roomModel.Room
	Cells []Cell
}

type Grid struct {
	WeekStart time.Time
	Days      []time.Time
	Rows      []RoomRow
}

// NoRooms reports whether the grid has nothing to display. Callers render an
// explicit empty state rather than an empty table.
func (g Grid) NoRooms() bool {
	return len(g.Rows) == 0
}

// BuildGrid maps the room and booking sets onto a 7-day week starting at
// weekStart. All endpoints are normalized to start of day before comparison;
// a booking spanning multiple weeks renders correctly in every visible week
// because containment is evaluated per cell.
func BuildGrid(rooms []roomModel.Room, bookings []bookingModel.Booking, weekStart time.Time) Grid {
	start := timezone.DayStart(weekStart)

	days := make([]time.Time, constant.DaysPerWeek)
	for i := range days {
		days[i] = start.AddDate(0, 0, i)
	}

	grid := Grid{
		WeekStart: start,
		Days:      days,
		Rows:      make([]RoomRow, len(rooms)),
	}

	for i, room := range rooms {
		row := RoomRow{
			Room:  room,
			Cells: make([]Cell, len(days)),
		}

		for j, day := range days {
			row.Cells[j] = buildCell(room.ID, day, bookings)
		}

		grid.Rows[i] = row
	}

	return grid
}

func buildCell(roomID string, day time.Time, bookings []bookingModel.Booking) Cell {
	cell := Cell{
		Date:   day,
		RoomID: roomID,
		Status: StatusAvailable,
	}

	var covering []bookingModel.Booking

	for _, booking := range bookings {
		if booking.RoomID == roomID && booking.CoversDay(day) {
			covering = append(covering, booking)
		}
	}

	if len(covering) == 0 {
		return cell
	}

	for _, status := range statusPriority {
		for i := range covering {
			if Status(covering[i].Status) == status {
				cell.Status = status
				cell.Booking = &covering[i]

				return cell
			}
		}
	}

	// Unknown statuses should not happen; fall back to the first covering
	// booking without claiming a known status.
	cell.Status = Status(covering[0].Status)
	cell.Booking = &covering[0]

	return cell
}
