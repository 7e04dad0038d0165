package dto_test

import (
	"testing"
	"time"

	"innkeep/internal/domains/booking/model"
	"innkeep/internal/domains/booking/model/dto"
	gModel "innkeep/shared/model"
	"innkeep/shared/timezone"

	"github.com/stretchr/testify/assert"
)

func TestCreateBookingRequest_ToModel(t *testing.T) {
	req := dto.CreateBookingRequest{
		RoomID:    "room-1",
		GuestName: "Alice",
		StartDate: "2026-03-05",
		EndDate:   "2026-03-07",
	}

	userID := "test-user-id"
	booking, err := req.ToModel(userID)

	assert.NoError(t, err)
	assert.NotEmpty(t, booking.ID, "expected ID to be generated")
	assert.Equal(t, req.RoomID, booking.RoomID)
	assert.Equal(t, req.GuestName, booking.GuestName)
	assert.Equal(t, model.StatusBooked, booking.Status, "expected status to default to booked")
	assert.Equal(t, userID, booking.CreatedBy)
	assert.Equal(t, userID, booking.ModifiedBy)

	assert.Equal(t, 2026, booking.StartDate.Year())
	assert.Equal(t, time.March, booking.StartDate.Month())
	assert.Equal(t, 5, booking.StartDate.Day())
	assert.Equal(t, 0, booking.StartDate.Hour(), "expected start date at start of day")
	assert.Equal(t, 7, booking.EndDate.Day())
}

func TestCreateBookingRequest_ToModelExplicitStatus(t *testing.T) {
	req := dto.CreateBookingRequest{
		RoomID:    "room-1",
		GuestName: "Maintenance crew",
		StartDate: "2026-03-05",
		EndDate:   "2026-03-05",
		Status:    model.StatusMaintenance,
	}

	booking, err := req.ToModel("test-user-id")

	assert.NoError(t, err)
	assert.Equal(t, model.StatusMaintenance, booking.Status)
}

func TestCreateBookingRequest_ToModelBadDate(t *testing.T) {
	req := dto.CreateBookingRequest{
		RoomID:    "room-1",
		GuestName: "Alice",
		StartDate: "05-03-2026",
		EndDate:   "2026-03-07",
	}

	_, err := req.ToModel("test-user-id")

	assert.Error(t, err)
}

func TestBookingResponse_FromModel(t *testing.T) {
	now := timezone.Now()
	bookingModel := model.Booking{
		ID:        "test-id",
		RoomID:    "room-1",
		GuestName: "Alice",
		StartDate: time.Date(2026, time.March, 5, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, time.March, 7, 0, 0, 0, 0, time.UTC),
		Status:    model.StatusBooked,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  "test-user",
			ModifiedBy: "test-user",
		},
	}

	var response dto.BookingResponse
	response.FromModel(bookingModel)

	assert.Equal(t, bookingModel.ID, response.ID)
	assert.Equal(t, bookingModel.RoomID, response.RoomID)
	assert.Equal(t, bookingModel.GuestName, response.GuestName)
	assert.Equal(t, "2026-03-05", response.StartDate)
	assert.Equal(t, "2026-03-07", response.EndDate)
	assert.Equal(t, bookingModel.Status, response.Status)
	assert.Equal(t, bookingModel.CreatedBy, response.CreatedBy)
}

func TestGetBookingsResponse_FromModels(t *testing.T) {
	models := []model.Booking{
		{ID: "b1", RoomID: "room-1", GuestName: "Alice"},
		{ID: "b2", RoomID: "room-1", GuestName: "Bob"},
	}

	var response dto.GetBookingsResponse
	response.FromModels(models, 12, 5)

	assert.Len(t, response.Bookings, 2)
	assert.Equal(t, 12, response.TotalData)
	assert.Equal(t, 3, response.TotalPage)
	assert.Equal(t, "b1", response.Bookings[0].ID)
	assert.Equal(t, "b2", response.Bookings[1].ID)
}
