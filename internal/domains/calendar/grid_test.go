package calendar_test

import (
	"testing"
	"time"

	bookingModel "innkeep/internal/domains/booking/model"
	"innkeep/internal/domains/calendar"
	roomModel "innkeep/internal/domains/room/model"

	"github.com/stretchr/testify/assert"
)

func day(n int) time.Time {
	return time.Date(2026, time.March, n, 0, 0, 0, 0, time.UTC)
}

func booking(id, roomID, status string, start, end int) bookingModel.Booking {
	return bookingModel.Booking{
		ID:        id,
		RoomID:    roomID,
		GuestName: "Guest " + id,
		StartDate: day(start),
		EndDate:   day(end),
		Status:    status,
	}
}

func TestBuildGrid_BookedRangeAndAvailableEdges(t *testing.T) {
	rooms := []roomModel.Room{{ID: "room-1", Name: "Room 1"}}
	bookings := []bookingModel.Booking{
		booking("b1", "room-1", bookingModel.StatusBooked, 3, 5),
	}

	// Week starting day 2: day 2 free, days 3-5 booked, days 6-8 free.
	grid := calendar.BuildGrid(rooms, bookings, day(2))

	assert.False(t, grid.NoRooms())
	assert.Len(t, grid.Days, 7)
	assert.Len(t, grid.Rows, 1)

	cells := grid.Rows[0].Cells
	assert.Equal(t, calendar.StatusAvailable, cells[0].Status)

	for i := 1; i <= 3; i++ {
		assert.Equal(t, calendar.StatusBooked, cells[i].Status)
		assert.NotNil(t, cells[i].Booking)
		assert.Equal(t, "b1", cells[i].Booking.ID)
	}

	assert.Equal(t, calendar.StatusAvailable, cells[4].Status)
	assert.Nil(t, cells[4].Booking)
	assert.Equal(t, calendar.StatusAvailable, cells[5].Status)
	assert.Equal(t, calendar.StatusAvailable, cells[6].Status)
}

func TestBuildGrid_StatusPriority(t *testing.T) {
	tests := []struct {
		name       string
		statuses   []string
		wantStatus calendar.Status
		wantID     string
	}{
		{
			name:       "booked wins over pending",
			statuses:   []string{bookingModel.StatusPending, bookingModel.StatusBooked},
			wantStatus: calendar.StatusBooked,
			wantID:     "b2",
		},
		{
			name:       "booked wins over maintenance",
			statuses:   []string{bookingModel.StatusMaintenance, bookingModel.StatusBooked},
			wantStatus: calendar.StatusBooked,
			wantID:     "b2",
		},
		{
			name:       "maintenance wins over pending",
			statuses:   []string{bookingModel.StatusPending, bookingModel.StatusMaintenance},
			wantStatus: calendar.StatusMaintenance,
			wantID:     "b2",
		},
		{
			name:       "first booking wins on equal status",
			statuses:   []string{bookingModel.StatusBooked, bookingModel.StatusBooked},
			wantStatus: calendar.StatusBooked,
			wantID:     "b1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rooms := []roomModel.Room{{ID: "room-1"}}

			bookings := make([]bookingModel.Booking, len(tt.statuses))
			for i, status := range tt.statuses {
				bookings[i] = booking([]string{"b1", "b2"}[i], "room-1", status, 3, 5)
			}

			grid := calendar.BuildGrid(rooms, bookings, day(2))

			cell := grid.Rows[0].Cells[2]
			assert.Equal(t, tt.wantStatus, cell.Status)
			assert.Equal(t, tt.wantID, cell.Booking.ID)
		})
	}
}

func TestBuildGrid_BookingOfOtherRoomIgnored(t *testing.T) {
	rooms := []roomModel.Room{{ID: "room-1"}, {ID: "room-2"}}
	bookings := []bookingModel.Booking{
		booking("b1", "room-2", bookingModel.StatusBooked, 2, 8),
	}

	grid := calendar.BuildGrid(rooms, bookings, day(2))

	for _, cell := range grid.Rows[0].Cells {
		assert.Equal(t, calendar.StatusAvailable, cell.Status)
	}

	for _, cell := range grid.Rows[1].Cells {
		assert.Equal(t, calendar.StatusBooked, cell.Status)
	}
}

func TestBuildGrid_MultiWeekSpanRendersInEveryWeek(t *testing.T) {
	rooms := []roomModel.Room{{ID: "room-1"}}
	bookings := []bookingModel.Booking{
		booking("b1", "room-1", bookingModel.StatusMaintenance, 1, 20),
	}

	for _, weekStart := range []int{2, 9, 16} {
		grid := calendar.BuildGrid(rooms, bookings, day(weekStart))

		for _, cell := range grid.Rows[0].Cells {
			if !cell.Date.After(day(20)) {
				assert.Equal(t, calendar.StatusMaintenance, cell.Status)
			} else {
				assert.Equal(t, calendar.StatusAvailable, cell.Status)
			}
		}
	}
}

func TestBuildGrid_TimeOfDayComponentsNormalized(t *testing.T) {
	rooms := []roomModel.Room{{ID: "room-1"}}
	bookings := []bookingModel.Booking{
		{
			ID:        "b1",
			RoomID:    "room-1",
			StartDate: day(3).Add(23 * time.Hour),
			EndDate:   day(5).Add(1 * time.Minute),
			Status:    bookingModel.StatusBooked,
		},
	}

	grid := calendar.BuildGrid(rooms, bookings, day(2).Add(6*time.Hour))

	cells := grid.Rows[0].Cells
	assert.Equal(t, calendar.StatusAvailable, cells[0].Status)
	assert.Equal(t, calendar.StatusBooked, cells[1].Status)
	assert.Equal(t, calendar.StatusBooked, cells[3].Status)
	assert.Equal(t, calendar.StatusAvailable, cells[4].Status)
}

func TestBuildGrid_EmptyRoomList(t *testing.T) {
	grid := calendar.BuildGrid(nil, []bookingModel.Booking{
		booking("b1", "room-1", bookingModel.StatusBooked, 3, 5),
	}, day(2))

	assert.True(t, grid.NoRooms())
	assert.Len(t, grid.Days, 7)
}

func TestBuildGrid_RoomWithoutBookingsAllAvailable(t *testing.T) {
	rooms := []roomModel.Room{{ID: "room-1"}}

	grid := calendar.BuildGrid(rooms, nil, day(2))

	for _, cell := range grid.Rows[0].Cells {
		assert.Equal(t, calendar.StatusAvailable, cell.Status)
		assert.Nil(t, cell.Booking)
	}
}

func TestBuildGrid_Deterministic(t *testing.T) {
	rooms := []roomModel.Room{{ID: "room-1"}, {ID: "room-2"}}
	bookings := []bookingModel.Booking{
		booking("b1", "room-1", bookingModel.StatusBooked, 3, 5),
		booking("b2", "room-1", bookingModel.StatusPending, 4, 6),
		booking("b3", "room-2", bookingModel.StatusMaintenance, 2, 3),
	}

	first := calendar.BuildGrid(rooms, bookings, day(2))
	second := calendar.BuildGrid(rooms, bookings, day(2))

	assert.Equal(t, first, second)
}
