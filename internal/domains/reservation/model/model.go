package model

import (
	"time"

	"inn/shared/model"
)

const (
	TableName  = "reservations"
	EntityName = "reservation"

	FieldID         = "id"
	FieldRoomTypeID = "room_type_id"
	FieldGuestID    = "guest_id"
	FieldGuestName  = "guest_name"
	FieldGuestEmail = "guest_email"
	FieldGuestPhone = "guest_phone"
	FieldCheckin    = "checkin"
	FieldCheckout   = "checkout"
	FieldNights     = "nights"
	FieldTotalPrice = "total_price"
	FieldStatus     = "status"
	FieldCreatedBy  = "created_by"
)

// Reservation books exactly one physical room unit of a room type for a stay.
// Multi-room bookings are represented as multiple rows.
type Reservation struct {
	ID         string    `db:"id"`
	RoomTypeID string    `db:"room_type_id"`
	GuestID    string    `db:"guest_id"`
	GuestName  string    `db:"guest_name"`
	GuestEmail string    `db:"guest_email"`
	GuestPhone string    `db:"guest_phone"`
	Checkin    time.Time `db:"checkin"`
	Checkout   time.Time `db:"checkout"`
	Nights     int       `db:"nights"`
	TotalPrice int64     `db:"total_price"`
	Status     string    `db:"status"`
	model.Metadata
}
