package model

import "inn/shared/model"

const (
	TableName  = "room_types"
	EntityName = "room_type"

	FieldID            = "id"
	FieldName          = "name"
	FieldDescription   = "description"
	FieldPricePerNight = "price_per_night"
	FieldMaxCapacity   = "max_capacity"
	FieldTotalUnits    = "total_units"
	FieldImage         = "image"
	FieldActive        = "active"
)

// RoomType is a category of room sharing price and capacity. Physical room
// units are tracked only as a count; reservations book one unit at a time.
type RoomType struct {
	ID            string `db:"id"`
	Name          string `db:"name"`
	Description   string `db:"description"`
	PricePerNight int64  `db:"price_per_night"`
	MaxCapacity   int    `db:"max_capacity"`
	TotalUnits    int    `db:"total_units"`
	Image         string `db:"image"`
	Active        bool   `db:"active"`
	model.Metadata
}
