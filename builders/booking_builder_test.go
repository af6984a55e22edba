package builders

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campusrent/constants"
	"campusrent/dto"
	"campusrent/models"
)

func Test_BookingBuilder(t *testing.T) {
	room := models.Room{
		ID:            "r1",
		RoomName:      "Sunny single",
		PricePerMonth: 15000,
		Images:        []string{"a", "b"},
		OwnerContact:  models.OwnerContact{OwnerID: "o1"},
	}
	start := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	quote := dto.Quote{
		BookingType: constants.KindRoom, UnitPrice: 15000, Duration: 3,
		DurationUnit: constants.DurationUnitMonth, StartDate: start, EndDate: start.AddDate(0, 3, 0),
		TotalAmount: 45000,
	}

	booking := NewBookingBuilder().
		WithUser("u1").
		FromListing(room).
		WithQuote(quote).
		WithPaymentMethod(constants.PaymentMethodCard).
		WithStatus(constants.BookingStatusPending).
		Build()

	require.NotEmpty(t, booking.ID)
	assert.Equal(t, "u1", booking.UserID)
	assert.Equal(t, constants.KindRoom, booking.BookingType)
	assert.Equal(t, "r1", booking.ItemID)
	assert.Equal(t, "Sunny single", booking.ItemName)
	assert.Equal(t, "o1", booking.OwnerID)
	assert.Equal(t, 45000.0, booking.TotalAmount)
	assert.Equal(t, 3, booking.Duration)
	assert.Equal(t, start.AddDate(0, 3, 0), booking.EndDate)

	room.Images[0] = "changed"
	assert.Equal(t, "a", booking.ItemImages[0], "images are copied, not shared")
}

func Test_BookingBuilder_KeepsExplicitID(t *testing.T) {
	b := NewBookingBuilder()
	b.booking.ID = "fixed"
	assert.Equal(t, "fixed", b.Build().ID)
}
