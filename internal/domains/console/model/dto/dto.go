package dto

import (
	"innkeep/internal/domains/calendar"
	"innkeep/shared/constant"
)

type SelectLocationRequest struct {
	LocationID string `json:"location_id" validate:"required,uuid4"`
}

type GridCellResponse struct {
	Date      string `json:"date"`
	Status    string `json:"status"`
	BookingID string `json:"booking_id,omitempty"`
	GuestName string `json:"guest_name,omitempty"`
}

type GridRowResponse struct {
	RoomID   string             `json:"room_id"`
	RoomName string             `json:"room_name"`
	Cells    []GridCellResponse `json:"cells"`
}

type GridResponse struct {
	WeekStart string            `json:"week_start"`
	Days      []string          `json:"days"`
	Rows      []GridRowResponse `json:"rows"`
	NoRooms   bool              `json:"no_rooms"`
}

func (r *GridResponse) FromGrid(grid calendar.Grid) {
	r.WeekStart = grid.WeekStart.Format(constant.CalendarDateFormat)
	r.NoRooms = grid.NoRooms()

	r.Days = make([]string, len(grid.Days))
	for i, day := range grid.Days {
		r.Days[i] = day.Format(constant.CalendarDateFormat)
	}

	r.Rows = make([]GridRowResponse, len(grid.Rows))
	for i, row := range grid.Rows {
		cells := make([]GridCellResponse, len(row.Cells))
		for j, cell := range row.Cells {
			cells[j] = GridCellResponse{
				Date:   cell.Date.Format(constant.CalendarDateFormat),
				Status: string(cell.Status),
			}

			if cell.Booking != nil {
				cells[j].BookingID = cell.Booking.ID
				cells[j].GuestName = cell.Booking.GuestName
			}
		}

		r.Rows[i] = GridRowResponse{
			RoomID:   row.Room.ID,
			RoomName: row.Room.Name,
			Cells:    cells,
		}
	}
}
