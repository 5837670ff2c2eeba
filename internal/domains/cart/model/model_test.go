package model_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"inn/internal/domains/cart/model"
)

func testStay(t *testing.T, checkin, checkout string) model.Stay {
	t.Helper()

	today := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	stay, err := model.ValidateStay(checkin, checkout, today)
	assert.NoError(t, err)

	return stay
}

func testOffers() []model.Offer {
	return []model.Offer{
		{RoomTypeID: "standard", TypeName: "Standard", PricePerNight: 500_000, MaxCapacity: 2, AvailableCount: 3},
		{RoomTypeID: "deluxe", TypeName: "Deluxe", PricePerNight: 900_000, MaxCapacity: 4, AvailableCount: 1},
	}
}

func TestValidateStay(t *testing.T) {
	today := time.Date(2026, 1, 15, 13, 45, 0, 0, time.UTC)

	tests := []struct {
		name     string
		checkin  string
		checkout string
		wantErr  error
	}{
		{
			name:     "valid stay",
			checkin:  "2026-01-20",
			checkout: "2026-01-23",
		},
		{
			name:     "checkin today is allowed",
			checkin:  "2026-01-15",
			checkout: "2026-01-16",
		},
		{
			name:     "missing checkin",
			checkin:  "",
			checkout: "2026-01-23",
			wantErr:  model.ErrMissingDate,
		},
		{
			name:     "missing checkout",
			checkin:  "2026-01-20",
			checkout: "",
			wantErr:  model.ErrMissingDate,
		},
		{
			name:     "unparseable date",
			checkin:  "20/01/2026",
			checkout: "2026-01-23",
			wantErr:  model.ErrMissingDate,
		},
		{
			name:     "checkin in the past",
			checkin:  "2026-01-14",
			checkout: "2026-01-23",
			wantErr:  model.ErrCheckinInPast,
		},
		{
			name:     "checkout equals checkin",
			checkin:  "2026-01-20",
			checkout: "2026-01-20",
			wantErr:  model.ErrCheckoutNotAfterCheckin,
		},
		{
			name:     "checkout before checkin",
			checkin:  "2026-01-23",
			checkout: "2026-01-20",
			wantErr:  model.ErrCheckoutNotAfterCheckin,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stay, err := model.ValidateStay(tt.checkin, tt.checkout, today)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}

			assert.NoError(t, err)
			assert.GreaterOrEqual(t, stay.Nights, 1)
			assert.True(t, stay.Checkout.After(stay.Checkin))
		})
	}
}

func TestValidateStay_Nights(t *testing.T) {
	stay := testStay(t, "2026-01-20", "2026-01-23")
	assert.Equal(t, 3, stay.Nights)

	oneNight := testStay(t, "2026-01-20", "2026-01-21")
	assert.Equal(t, 1, oneNight.Nights)
}

func TestNewCart_DefaultTaxRate(t *testing.T) {
	stay := testStay(t, "2026-01-20", "2026-01-22")

	cart := model.NewCart("cart-1", stay, 0, testOffers())
	assert.Equal(t, 0.10, cart.TaxRate)

	custom := model.NewCart("cart-2", stay, 0.21, testOffers())
	assert.Equal(t, 0.21, custom.TaxRate)
}

func TestCart_Adjust(t *testing.T) {
	stay := testStay(t, "2026-01-20", "2026-01-22")

	t.Run("increment creates a line", func(t *testing.T) {
		cart := model.NewCart("cart-1", stay, 0.10, testOffers())

		err := cart.Adjust("standard", 1)
		assert.NoError(t, err)
		assert.Len(t, cart.Lines, 1)
		assert.Equal(t, 1, cart.Lines[0].Quantity)
	})

	t.Run("quantity clamps at available count", func(t *testing.T) {
		cart := model.NewCart("cart-1", stay, 0.10, testOffers())

		for range 5 {
			assert.NoError(t, cart.Adjust("deluxe", 1))
		}

		assert.Equal(t, 1, cart.Lines[0].Quantity)
	})

	t.Run("quantity clamps at zero", func(t *testing.T) {
		cart := model.NewCart("cart-1", stay, 0.10, testOffers())

		assert.NoError(t, cart.Adjust("standard", 1))
		assert.NoError(t, cart.Adjust("standard", -1))
		assert.NoError(t, cart.Adjust("standard", -1))

		assert.Equal(t, 0, cart.Lines[0].Quantity)
		assert.False(t, cart.HasSelection())
	})

	t.Run("unknown room type", func(t *testing.T) {
		cart := model.NewCart("cart-1", stay, 0.10, testOffers())

		err := cart.Adjust("penthouse", 1)
		assert.ErrorIs(t, err, model.ErrUnknownRoomType)
		assert.Empty(t, cart.Lines)
	})
}

func TestCart_SetOffers_DropsStaleLines(t *testing.T) {
	stay := testStay(t, "2026-01-20", "2026-01-22")
	cart := model.NewCart("cart-1", stay, 0.10, testOffers())

	assert.NoError(t, cart.Adjust("standard", 1))
	assert.NoError(t, cart.Adjust("deluxe", 1))

	cart.SetOffers([]model.Offer{
		{RoomTypeID: "deluxe", TypeName: "Deluxe", PricePerNight: 900_000, MaxCapacity: 4, AvailableCount: 1},
	})

	assert.Len(t, cart.Lines, 1)
	assert.Equal(t, "deluxe", cart.Lines[0].RoomTypeID)
}

func TestCart_SetOffers_Idempotent(t *testing.T) {
	stay := testStay(t, "2026-01-20", "2026-01-22")
	cart := model.NewCart("cart-1", stay, 0.10, testOffers())

	assert.NoError(t, cart.Adjust("standard", 1))

	before := cart
	cart.SetOffers(testOffers())

	assert.Equal(t, before.Lines, cart.Lines)
	assert.Equal(t, before.Offers, cart.Offers)
}

func TestCart_HasSelection(t *testing.T) {
	stay := testStay(t, "2026-01-20", "2026-01-22")
	cart := model.NewCart("cart-1", stay, 0.10, testOffers())

	assert.False(t, cart.HasSelection())

	assert.NoError(t, cart.Adjust("standard", 1))
	assert.True(t, cart.HasSelection())

	assert.NoError(t, cart.Adjust("standard", -1))
	assert.False(t, cart.HasSelection())
}

func TestCart_GetSummary(t *testing.T) {
	stay := testStay(t, "2026-01-20", "2026-01-22") // 2 nights
	cart := model.NewCart("cart-1", stay, 0.10, testOffers())

	assert.Equal(t, model.Summary{}, cart.GetSummary())

	assert.NoError(t, cart.Adjust("standard", 1))
	assert.NoError(t, cart.Adjust("standard", 1))
	assert.NoError(t, cart.Adjust("deluxe", 1))

	// 2*500000*2 + 1*900000*2 = 2900000
	summary := cart.GetSummary()
	assert.Equal(t, int64(2_900_000), summary.Subtotal)
	assert.Equal(t, int64(290_000), summary.TaxAmount)
	assert.Equal(t, int64(3_190_000), summary.GrandTotal)
}

func TestCart_GetSummary_RoundsTax(t *testing.T) {
	stay := testStay(t, "2026-01-20", "2026-01-21") // 1 night
	cart := model.NewCart("cart-1", stay, 0.10, []model.Offer{
		{RoomTypeID: "odd", TypeName: "Odd", PricePerNight: 5, MaxCapacity: 2, AvailableCount: 1},
	})

	assert.NoError(t, cart.Adjust("odd", 1))

	// 5 * 0.10 = 0.5, rounds to 1
	summary := cart.GetSummary()
	assert.Equal(t, int64(5), summary.Subtotal)
	assert.Equal(t, int64(1), summary.TaxAmount)
	assert.Equal(t, int64(6), summary.GrandTotal)
}

func TestCart_Drafts(t *testing.T) {
	stay := testStay(t, "2026-01-20", "2026-01-22")
	cart := model.NewCart("cart-1", stay, 0.10, testOffers())

	assert.NoError(t, cart.Adjust("standard", 1))
	assert.NoError(t, cart.Adjust("standard", 1))
	assert.NoError(t, cart.Adjust("deluxe", 1))

	guest := model.GuestInfo{GuestID: "guest-1", Name: "Jane Doe", Email: "jane@example.com"}

	drafts := cart.Drafts(guest)
	assert.Len(t, drafts, 3)

	// One draft per room unit, in line insertion order.
	assert.Equal(t, "standard", drafts[0].RoomTypeID)
	assert.Equal(t, "standard", drafts[1].RoomTypeID)
	assert.Equal(t, "deluxe", drafts[2].RoomTypeID)

	for _, draft := range drafts {
		assert.Equal(t, guest, draft.Guest)
		assert.Equal(t, stay, draft.Stay)
	}
}

func TestCart_Drafts_EmptySelection(t *testing.T) {
	stay := testStay(t, "2026-01-20", "2026-01-22")
	cart := model.NewCart("cart-1", stay, 0.10, testOffers())

	assert.Empty(t, cart.Drafts(model.GuestInfo{Name: "Jane Doe"}))
}
