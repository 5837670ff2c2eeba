package dto

import (
	"time"

	"inn/internal/domains/reservation/model"
	"inn/shared"
	"inn/shared/constant"
	gDto "inn/shared/dto"
	gModel "inn/shared/model"
	"inn/shared/timezone"

	"github.com/google/uuid"
)

type CreateReservationRequest struct {
	RoomTypeID string `json:"room_type_id" validate:"required"`
	GuestID    string `json:"guest_id"     validate:"omitempty"`
	GuestName  string `json:"guest_name"   validate:"required,max=100"`
	GuestEmail string `json:"guest_email"  validate:"omitempty,email,max=100"`
	GuestPhone string `json:"guest_phone"  validate:"omitempty,max=20"`
	Checkin    string `json:"checkin"      validate:"required"`
	Checkout   string `json:"checkout"     validate:"required"`
}

func (c *CreateReservationRequest) ToModel(user string, checkin, checkout time.Time, nights int, totalPrice int64) model.Reservation {
	return model.Reservation{
		ID:         uuid.NewString(),
		RoomTypeID: c.RoomTypeID,
		GuestID:    c.GuestID,
		GuestName:  c.GuestName,
		GuestEmail: c.GuestEmail,
		GuestPhone: c.GuestPhone,
		Checkin:    checkin,
		Checkout:   checkout,
		Nights:     nights,
		TotalPrice: totalPrice,
		Status:     constant.ReservationStatusPending,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateReservationRequest struct {
	GuestName  string `db:"guest_name"  json:"guest_name"  validate:"omitempty,max=100"`
	GuestEmail string `db:"guest_email" json:"guest_email" validate:"omitempty,email,max=100"`
	GuestPhone string `db:"guest_phone" json:"guest_phone" validate:"omitempty,max=20"`
	Status     string `db:"status"      json:"status"      validate:"omitempty,oneof=pending confirmed checked_in checked_out cancelled"`
}

type ReservationResponse struct {
	ID         string `json:"id"`
	RoomTypeID string `json:"room_type_id"`
	GuestID    string `json:"guest_id"`
	GuestName  string `json:"guest_name"`
	GuestEmail string `json:"guest_email"`
	GuestPhone string `json:"guest_phone"`
	Checkin    string `json:"checkin"`
	Checkout   string `json:"checkout"`
	Nights     int    `json:"nights"`
	TotalPrice int64  `json:"total_price"`
	Status     string `json:"status"`
	gDto.Metadata
}

func (r *ReservationResponse) FromModel(model model.Reservation) {
	r.ID = model.ID
	r.RoomTypeID = model.RoomTypeID
	r.GuestID = model.GuestID
	r.GuestName = model.GuestName
	r.GuestEmail = model.GuestEmail
	r.GuestPhone = model.GuestPhone
	r.Checkin = model.Checkin.Format(constant.DateOnlyFormat)
	r.Checkout = model.Checkout.Format(constant.DateOnlyFormat)
	r.Nights = model.Nights
	r.TotalPrice = model.TotalPrice
	r.Status = model.Status
	r.Metadata.FromModel(model.Metadata)
}

type GetReservationsResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
	TotalPage    int                   `json:"total_page"`
	TotalData    int                   `json:"total_data"`
}

func (r *GetReservationsResponse) FromModels(models []model.Reservation, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Reservations = make([]ReservationResponse, len(models))
	for i, mod := range models {
		r.Reservations[i].FromModel(mod)
	}
}

// Offer is a room type's priced, capacity-bounded availability for one stay.
// AvailableCount is a point-in-time snapshot, valid until the next search.
type Offer struct {
	RoomTypeID     string `json:"room_type_id"`
	TypeName       string `json:"type_name"`
	PricePerNight  int64  `json:"price_per_night"`
	MaxCapacity    int    `json:"max_capacity"`
	AvailableCount int    `json:"available_count"`
}

type AvailabilityResponse struct {
	Checkin  string  `json:"checkin"`
	Checkout string  `json:"checkout"`
	Nights   int     `json:"nights"`
	Offers   []Offer `json:"offers"`
}
