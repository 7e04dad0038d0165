package model

import "innkeep/shared/model"

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID         = "id"
	FieldName       = "name"
	FieldLocationID = "location_id"
	FieldCapacity   = "capacity"
	FieldImage      = "image"
)

type Room struct {
	ID         string `db:"id"`
	Name       string `db:"name"`
	LocationID string `db:"location_id"`
	Capacity   int    `db:"capacity"`
	Image      string `db:"image"`
	model.Metadata
}
