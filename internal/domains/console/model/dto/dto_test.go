package dto_test

import (
	"testing"
	"time"

	bookingModel "innkeep/internal/domains/booking/model"
	"innkeep/internal/domains/calendar"
	"innkeep/internal/domains/console/model/dto"
	roomModel "innkeep/internal/domains/room/model"

	"github.com/stretchr/testify/assert"
)

func TestGridResponse_FromGrid(t *testing.T) {
	weekStart := time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC)

	rooms := []roomModel.Room{
		{ID: "room-1", Name: "Room 1", LocationID: "loc-1"},
	}
	bookings := []bookingModel.Booking{
		{
			ID:        "b1",
			RoomID:    "room-1",
			GuestName: "Alice",
			StartDate: weekStart.AddDate(0, 0, 1),
			EndDate:   weekStart.AddDate(0, 0, 2),
			Status:    bookingModel.StatusBooked,
		},
	}

	grid := calendar.BuildGrid(rooms, bookings, weekStart)

	var res dto.GridResponse
	res.FromGrid(grid)

	assert.Equal(t, "2026-03-02", res.WeekStart)
	assert.Len(t, res.Days, 7)
	assert.Equal(t, "2026-03-02", res.Days[0])
	assert.Equal(t, "2026-03-08", res.Days[6])
	assert.False(t, res.NoRooms)

	assert.Len(t, res.Rows, 1)
	assert.Equal(t, "room-1", res.Rows[0].RoomID)
	assert.Equal(t, "Room 1", res.Rows[0].RoomName)
	assert.Len(t, res.Rows[0].Cells, 7)

	assert.Equal(t, string(calendar.StatusAvailable), res.Rows[0].Cells[0].Status)
	assert.Empty(t, res.Rows[0].Cells[0].BookingID)

	assert.Equal(t, string(calendar.StatusBooked), res.Rows[0].Cells[1].Status)
	assert.Equal(t, "b1", res.Rows[0].Cells[1].BookingID)
	assert.Equal(t, "Alice", res.Rows[0].Cells[1].GuestName)
	assert.Equal(t, "2026-03-03", res.Rows[0].Cells[1].Date)
}

func TestGridResponse_FromGridNoRooms(t *testing.T) {
	grid := calendar.BuildGrid(nil, nil, time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC))

	var res dto.GridResponse
	res.FromGrid(grid)

	assert.True(t, res.NoRooms)
	assert.Empty(t, res.Rows)
	assert.Len(t, res.Days, 7)
}
