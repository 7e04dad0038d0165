package model

import (
	bookingModel "innkeep/internal/domains/booking/model"
	locationModel "innkeep/internal/domains/location/model"
	roomModel "innkeep/internal/domains/room/model"
)

type Phase string

const (
	PhaseIdle                Phase = "idle"
	PhaseSeeding             Phase = "seeding"
	PhaseLoadingLocations    Phase = "loading_locations"
	PhaseLoadingLocationData Phase = "loading_location_data"
	PhaseReady               Phase = "ready"
	PhaseFailed              Phase = "failed"
)

// Snapshot is a wholesale copy of the console state. Rooms and Bookings always
// belong to SelectedLocationID; the two lists are swapped in together, so a
// snapshot can never pair one location's rooms with another's bookings.
type Snapshot struct {
	Locations          []locationModel.Location `json:"locations"`
	SelectedLocationID string                   `json:"selected_location_id"`
	Rooms              []roomModel.Room         `json:"rooms"`
	Bookings           []bookingModel.Booking   `json:"bookings"`
	Phase              Phase                    `json:"phase"`
	LastError          string                   `json:"last_error,omitempty"`
}
