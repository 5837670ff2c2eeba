package model

import (
	"errors"
	"time"

	"inn/shared/constant"
	"inn/shared/daterange"
)

var (
	ErrMissingDate             = errors.New("checkin and checkout dates are required")
	ErrCheckinInPast           = errors.New("checkin date must not be in the past")
	ErrCheckoutNotAfterCheckin = errors.New("checkout date must be after checkin date")
)

// Stay is a validated check-in/check-out date pair. Both dates are normalized
// to midnight; Nights is always at least 1.
type Stay struct {
	Checkin  time.Time `json:"checkin"`
	Checkout time.Time `json:"checkout"`
	Nights   int       `json:"nights"`
}

// ValidateStay parses and validates raw date inputs against the caller's
// current date. The reference date is injected so validation stays a pure
// function.
func ValidateStay(checkinRaw, checkoutRaw string, today time.Time) (Stay, error) {
	if checkinRaw == constant.Empty || checkoutRaw == constant.Empty {
		return Stay{}, ErrMissingDate
	}

	checkin, err := time.ParseInLocation(constant.DateOnlyFormat, checkinRaw, today.Location())
	if err != nil {
		return Stay{}, ErrMissingDate
	}

	checkout, err := time.ParseInLocation(constant.DateOnlyFormat, checkoutRaw, today.Location())
	if err != nil {
		return Stay{}, ErrMissingDate
	}

	checkin = daterange.Midnight(checkin)
	checkout = daterange.Midnight(checkout)

	if checkin.Before(daterange.Midnight(today)) {
		return Stay{}, ErrCheckinInPast
	}

	if !checkout.After(checkin) {
		return Stay{}, ErrCheckoutNotAfterCheckin
	}

	return Stay{
		Checkin:  checkin,
		Checkout: checkout,
		Nights:   daterange.Nights(checkin, checkout),
	}, nil
}
