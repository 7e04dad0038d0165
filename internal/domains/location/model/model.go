package model

import "innkeep/shared/model"

const (
	TableName  = "locations"
	EntityName = "location"

	FieldID   = "id"
	FieldName = "name"
)

type Location struct {
	ID   string `db:"id"`
	Name string `db:"name"`
	model.Metadata
}
