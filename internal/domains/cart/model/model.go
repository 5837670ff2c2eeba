package model

import (
	"errors"
	"math"

	"inn/shared/constant"
)

const EntityName = "cart"

var ErrUnknownRoomType = errors.New("unknown room type for current offers")

// Offer is a room type's priced availability snapshot for the cart's stay.
// Offers are supplied fresh on every search and never mutated by the cart.
type Offer struct {
	RoomTypeID     string `json:"room_type_id"`
	TypeName       string `json:"type_name"`
	PricePerNight  int64  `json:"price_per_night"`
	MaxCapacity    int    `json:"max_capacity"`
	AvailableCount int    `json:"available_count"`
}

// Line is the selected quantity for one room type. A line with quantity zero
// is logically absent: it carries no cost and does not count as a selection.
type Line struct {
	RoomTypeID     string `json:"room_type_id"`
	TypeName       string `json:"type_name"`
	PricePerNight  int64  `json:"price_per_night"`
	MaxCapacity    int    `json:"max_capacity"`
	AvailableCount int    `json:"available_count"`
	Quantity       int    `json:"quantity"`
}

// Summary is the cost breakdown of the current selection, recomputed on every
// read and never stored.
type Summary struct {
	Subtotal   int64 `json:"subtotal"`
	TaxAmount  int64 `json:"tax_amount"`
	GrandTotal int64 `json:"grand_total"`
}

// GuestInfo identifies the booking guest. It is injected by the caller and
// passed through to drafts untouched.
type GuestInfo struct {
	GuestID string `json:"guest_id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
}

// Draft is one physical-room booking request derived from a cart line, ready
// for submission to the reservation service.
type Draft struct {
	RoomTypeID string    `json:"room_type_id"`
	TypeName   string    `json:"type_name"`
	Stay       Stay      `json:"stay"`
	Guest      GuestInfo `json:"guest"`
}

// Cart holds the selection state for one browsing session. It is created
// empty for a validated stay and must be discarded wholesale when the stay
// changes; lines never survive a date change.
type Cart struct {
	ID      string  `json:"id"`
	Stay    Stay    `json:"stay"`
	TaxRate float64 `json:"tax_rate"`
	Offers  []Offer `json:"offers"`
	Lines   []Line  `json:"lines"`
}

// NewCart creates an empty cart for a validated stay. A non-positive tax rate
// falls back to the default rate.
func NewCart(id string, stay Stay, taxRate float64, offers []Offer) Cart {
	if taxRate <= 0 {
		taxRate = constant.DefaultTaxRate
	}

	cart := Cart{
		ID:      id,
		Stay:    stay,
		TaxRate: taxRate,
	}
	cart.SetOffers(offers)

	return cart
}

// SetOffers replaces the known offers for the current stay. Lines whose room
// type no longer appears are dropped: the cart never prices a room type it
// cannot confirm availability for. Calling it twice with the same offers is a
// no-op.
func (c *Cart) SetOffers(offers []Offer) {
	c.Offers = make([]Offer, len(offers))
	copy(c.Offers, offers)

	kept := c.Lines[:0]

	for _, line := range c.Lines {
		if _, ok := c.findOffer(line.RoomTypeID); ok {
			kept = append(kept, line)
		}
	}

	c.Lines = kept
}

// Adjust changes the quantity of a room type by delta (+1 or -1). The result
// is clamped to [0, AvailableCount]; pushing past either bound is a silent
// no-op, matching disabled stepper buttons in the UI. Adjusting a room type
// absent from the current offers fails with ErrUnknownRoomType.
func (c *Cart) Adjust(roomTypeID string, delta int) error {
	offer, ok := c.findOffer(roomTypeID)
	if !ok {
		return ErrUnknownRoomType
	}

	idx := c.lineIndex(roomTypeID)
	if idx == -1 {
		c.Lines = append(c.Lines, Line{
			RoomTypeID:     offer.RoomTypeID,
			TypeName:       offer.TypeName,
			PricePerNight:  offer.PricePerNight,
			MaxCapacity:    offer.MaxCapacity,
			AvailableCount: offer.AvailableCount,
		})
		idx = len(c.Lines) - 1
	}

	quantity := c.Lines[idx].Quantity + delta
	if quantity < 0 {
		quantity = 0
	}

	if quantity > c.Lines[idx].AvailableCount {
		quantity = c.Lines[idx].AvailableCount
	}

	c.Lines[idx].Quantity = quantity

	return nil
}

// HasSelection reports whether any line holds at least one room. It gates the
// proceed-to-booking action.
func (c *Cart) HasSelection() bool {
	for _, line := range c.Lines {
		if line.Quantity > 0 {
			return true
		}
	}

	return false
}

// GetSummary recomputes the cost breakdown over lines with positive quantity.
// Tax is rounded to the nearest minor unit.
func (c *Cart) GetSummary() Summary {
	var subtotal int64

	for _, line := range c.Lines {
		if line.Quantity > 0 {
			subtotal += int64(line.Quantity) * line.PricePerNight * int64(c.Stay.Nights)
		}
	}

	taxAmount := int64(math.Round(float64(subtotal) * c.TaxRate))

	return Summary{
		Subtotal:   subtotal,
		TaxAmount:  taxAmount,
		GrandTotal: subtotal + taxAmount,
	}
}

// Drafts expands the cart into one reservation draft per physical room unit:
// a line with quantity 3 yields 3 drafts. Expansion is deterministic and
// follows line insertion order; the total draft count equals the summed
// quantities.
func (c *Cart) Drafts(guest GuestInfo) []Draft {
	drafts := []Draft{}

	for _, line := range c.Lines {
		for range line.Quantity {
			drafts = append(drafts, Draft{
				RoomTypeID: line.RoomTypeID,
				TypeName:   line.TypeName,
				Stay:       c.Stay,
				Guest:      guest,
			})
		}
	}

	return drafts
}

func (c *Cart) findOffer(roomTypeID string) (Offer, bool) {
	for _, offer := range c.Offers {
		if offer.RoomTypeID == roomTypeID {
			return offer, true
		}
	}

	return Offer{}, false
}

func (c *Cart) lineIndex(roomTypeID string) int {
	for i, line := range c.Lines {
		if line.RoomTypeID == roomTypeID {
			return i
		}
	}

	return -1
}
