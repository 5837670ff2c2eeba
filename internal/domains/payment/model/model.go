package model

import (
	"time"

	"inn/shared/model"
)

const (
	TableName  = "payments"
	EntityName = "payment"

	FieldID            = "id"
	FieldReservationID = "reservation_id"
	FieldAmount        = "amount"
	FieldMethod        = "method"
	FieldStatus        = "status"
	FieldPaidAt        = "paid_at"
)

type Payment struct {
	ID            string     `db:"id"`
	ReservationID string     `db:"reservation_id"`
	Amount        int64      `db:"amount"`
	Method        string     `db:"method"`
	Status        string     `db:"status"`
	PaidAt        *time.Time `db:"paid_at"`
	model.Metadata
}
