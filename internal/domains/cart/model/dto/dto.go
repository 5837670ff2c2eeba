package dto

import (
	"inn/internal/domains/cart/model"
	"inn/shared/constant"
)

type StartCartRequest struct {
	Checkin  string `json:"checkin"  validate:"required"`
	Checkout string `json:"checkout" validate:"required"`
	Guests   int    `json:"guests"   validate:"omitempty,min=1"`
}

type AdjustLineRequest struct {
	RoomTypeID string `json:"room_type_id" validate:"required"`
	Delta      int    `json:"delta"        validate:"required,oneof=-1 1"`
}

type CheckoutRequest struct {
	GuestID    string `json:"guest_id"    validate:"omitempty"`
	GuestName  string `json:"guest_name"  validate:"required,max=100"`
	GuestEmail string `json:"guest_email" validate:"omitempty,email,max=100"`
	GuestPhone string `json:"guest_phone" validate:"omitempty,max=20"`
}

func (c *CheckoutRequest) ToGuestInfo() model.GuestInfo {
	return model.GuestInfo{
		GuestID: c.GuestID,
		Name:    c.GuestName,
		Email:   c.GuestEmail,
		Phone:   c.GuestPhone,
	}
}

type CartResponse struct {
	ID           string        `json:"id"`
	Checkin      string        `json:"checkin"`
	Checkout     string        `json:"checkout"`
	Nights       int           `json:"nights"`
	Offers       []model.Offer `json:"offers"`
	Lines        []model.Line  `json:"lines"`
	HasSelection bool          `json:"has_selection"`
	Summary      model.Summary `json:"summary"`
}

func (r *CartResponse) FromCart(cart model.Cart) {
	r.ID = cart.ID
	r.Checkin = cart.Stay.Checkin.Format(constant.DateOnlyFormat)
	r.Checkout = cart.Stay.Checkout.Format(constant.DateOnlyFormat)
	r.Nights = cart.Stay.Nights
	r.Offers = cart.Offers
	r.Lines = cart.Lines
	r.HasSelection = cart.HasSelection()
	r.Summary = cart.GetSummary()
}

// FailedDraft pairs one rejected reservation draft with the reason it failed.
type FailedDraft struct {
	Draft model.Draft `json:"draft"`
	Error string      `json:"error"`
}

// CheckoutResponse reports the per-draft outcome of a checkout. Submission is
// never atomic: some rooms may book while others fail.
type CheckoutResponse struct {
	Succeeded      int           `json:"succeeded"`
	ReservationIDs []string      `json:"reservation_ids"`
	Failed         []FailedDraft `json:"failed"`
}
