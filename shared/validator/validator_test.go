package validator_test

import (
	"strings"
	"testing"

	"innkeep/shared/failure"
	"innkeep/shared/validator"

	"github.com/stretchr/testify/assert"
)

type createBookingBody struct {
	RoomID    string `json:"room_id"    validate:"required"`
	GuestName string `json:"guest_name" validate:"required,max=100"`
	StartDate string `json:"start_date" validate:"required,calendardate"`
	EndDate   string `json:"end_date"   validate:"required,calendardate"`
	Status    string `json:"status"     validate:"omitempty,oneof=booked pending maintenance"`
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{
			name:    "valid body",
			body:    `{"room_id":"r1","guest_name":"Jane Doe","start_date":"2025-03-03","end_date":"2025-03-05"}`,
			wantErr: false,
		},
		{
			name:    "missing guest name",
			body:    `{"room_id":"r1","start_date":"2025-03-03","end_date":"2025-03-05"}`,
			wantErr: true,
		},
		{
			name:    "malformed date",
			body:    `{"room_id":"r1","guest_name":"Jane","start_date":"03/03/2025","end_date":"2025-03-05"}`,
			wantErr: true,
		},
		{
			name:    "unknown status",
			body:    `{"room_id":"r1","guest_name":"Jane","start_date":"2025-03-03","end_date":"2025-03-05","status":"tentative"}`,
			wantErr: true,
		},
		{
			name:    "not json",
			body:    `room_id=r1`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := createBookingBody{}
			err := validator.Validate(strings.NewReader(tt.body), &req)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, 400, failure.GetCode(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateStruct_FieldMessage(t *testing.T) {
	req := createBookingBody{RoomID: "r1", StartDate: "2025-03-03", EndDate: "2025-03-05"}

	err := validator.ValidateStruct(&req)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "GuestName")
}

func TestValidateVar(t *testing.T) {
	assert.NoError(t, validator.ValidateVar("2025-03-03", "calendardate"))
	assert.Error(t, validator.ValidateVar("yesterday", "calendardate"))
}
