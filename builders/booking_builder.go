package builders

import (
	"campusrent/dto"
	"campusrent/models"

	"github.com/google/uuid"
)

// BookingBuilder assembles a booking snapshot step by step
type BookingBuilder struct {
	booking *models.Booking
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		booking: &models.Booking{},
	}
}

func (b *BookingBuilder) WithUser(userID string) *BookingBuilder {
	b.booking.UserID = userID
	return b
}

// FromListing copies the listing fields the booking keeps for good. The image
// slice is copied so later listing edits cannot reach the booking.
func (b *BookingBuilder) FromListing(listing models.Listing) *BookingBuilder {
	b.booking.BookingType = listing.Kind()
	b.booking.ItemID = listing.ListingID()
	b.booking.ItemName = listing.DisplayName()
	b.booking.ItemImages = append([]string(nil), listing.ImageRefs()...)
	b.booking.OwnerID = listing.OwnerRef()
	return b
}

func (b *BookingBuilder) WithQuote(q dto.Quote) *BookingBuilder {
	b.booking.StartDate = q.StartDate
	b.booking.EndDate = q.EndDate
	b.booking.UnitPrice = q.UnitPrice
	b.booking.Duration = q.Duration
	b.booking.DurationUnit = q.DurationUnit
	b.booking.TotalAmount = q.TotalAmount
	return b
}

func (b *BookingBuilder) WithPaymentMethod(method string) *BookingBuilder {
	b.booking.PaymentMethod = method
	return b
}

func (b *BookingBuilder) WithStatus(status string) *BookingBuilder {
	b.booking.Status = status
	return b
}

// Build assigns an id when none was set and returns the booking
func (b *BookingBuilder) Build() *models.Booking {
	if b.booking.ID == "" {
		b.booking.ID = uuid.NewString()
	}
	return b.booking
}
