package dto

import (
	"time"

	"innkeep/internal/domains/booking/model"
	"innkeep/shared"
	"innkeep/shared/constant"
	gDto "innkeep/shared/dto"
	gModel "innkeep/shared/model"
	"innkeep/shared/timezone"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	RoomID         string `json:"room_id"         validate:"required,uuid4"`
	GuestName      string `json:"guest_name"      validate:"required,max=100"`
	StartDate      string `json:"start_date"      validate:"required,calendardate"`
	EndDate        string `json:"end_date"        validate:"required,calendardate"`
	Status         string `json:"status"          validate:"omitempty,oneof=booked pending maintenance"`
	ConfirmOverlap bool   `json:"confirm_overlap" validate:"omitempty"`
}

func (c *CreateBookingRequest) ToModel(user string) (model.Booking, error) {
	startDate, err := time.Parse(constant.CalendarDateFormat, c.StartDate)
	if err != nil {
		return model.Booking{}, err
	}

	endDate, err := time.Parse(constant.CalendarDateFormat, c.EndDate)
	if err != nil {
		return model.Booking{}, err
	}

	status := model.StatusBooked
	if c.Status != constant.Empty {
		status = c.Status
	}

	return model.Booking{
		ID:        uuid.NewString(),
		RoomID:    c.RoomID,
		GuestName: c.GuestName,
		StartDate: timezone.DayStart(startDate),
		EndDate:   timezone.DayStart(endDate),
		Status:    status,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}, nil
}

type UpdateBookingRequest struct {
	RoomID         string `db:"room_id"    json:"room_id"    validate:"omitempty,uuid4"`
	GuestName      string `db:"guest_name" json:"guest_name" validate:"omitempty,max=100"`
	StartDate      string `json:"start_date"                 validate:"omitempty,calendardate"`
	EndDate        string `json:"end_date"                   validate:"omitempty,calendardate"`
	Status         string `db:"status"     json:"status"     validate:"omitempty,oneof=booked pending maintenance"`
	ConfirmOverlap bool   `json:"confirm_overlap"            validate:"omitempty"`
}

type BookingResponse struct {
	ID        string `json:"id"`
	RoomID    string `json:"room_id"`
	GuestName string `json:"guest_name"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Status    string `json:"status"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.RoomID = model.RoomID
	r.GuestName = model.GuestName
	r.StartDate = model.StartDate.Format(constant.CalendarDateFormat)
	r.EndDate = model.EndDate.Format(constant.CalendarDateFormat)
	r.Status = model.Status
	r.Metadata.FromModel(model.Metadata)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}
