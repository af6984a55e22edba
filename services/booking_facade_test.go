package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campusrent/constants"
	"campusrent/dto"
	apperrors "campusrent/errors"
	"campusrent/models"
	"campusrent/services"
)

func Test_BookingFacade_QuoteRoom(t *testing.T) {
	f := newFixture(t)
	f.addRoom(t, "r1", 15000)

	quote, err := f.facade.Quote(context.Background(), dto.BookingRequest{
		BookingType: "room", ItemID: "r1", StartDate: "2024-07-15", Months: 3,
	})
	require.NoError(t, err)
	assert.Equal(t, 45000.0, quote.TotalAmount)
	assert.Equal(t, "2024-07-15", quote.StartDate)
	assert.Equal(t, "2024-10-15", quote.EndDate)
	assert.Equal(t, "Room r1", quote.ItemName)
}

func Test_BookingFacade_CreateBookingSnapshotsListing(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	room := f.addRoom(t, "r1", 15000)

	booking, err := f.facade.CreateBooking(ctx, "u1", dto.BookingRequest{
		BookingType: "room", ItemID: "r1", StartDate: "2024-06-15", Months: 2, PaymentMethod: "cash",
	})
	require.NoError(t, err)
	assert.Equal(t, constants.BookingStatusConfirmed, booking.Status)
	assert.Equal(t, 30000.0, booking.TotalAmount)
	assert.Equal(t, "cash", booking.PaymentMethod)
	assert.Equal(t, "owner-1", booking.OwnerID)
	assert.Equal(t, []string(room.Images), []string(booking.ItemImages))
	assert.Equal(t, []string{services.EventBookingConfirmed + ":" + booking.ID}, f.notifier.Events())

	// the owner edits the listing afterwards
	room.PricePerMonth = 99999
	room.RoomName = "Renamed"
	room.Images = []string{"rooms/new"}
	require.NoError(t, f.store.UpdateRoom(room))

	buckets, err := f.facade.UserBookings(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, buckets.Upcoming, 1)
	stored := buckets.Upcoming[0]
	assert.Equal(t, "Room r1", stored.ItemName)
	assert.Equal(t, 15000.0, stored.UnitPrice)
	assert.Equal(t, 30000.0, stored.TotalAmount)
	assert.Equal(t, []string{"rooms/r1-1", "rooms/r1-2"}, []string(stored.ItemImages))
}

func Test_BookingFacade_CreateVehicleBookingDefaultsToCard(t *testing.T) {
	f := newFixture(t)
	f.addVehicle(t, "v1", 5000)

	booking, err := f.facade.CreateBooking(context.Background(), "u1", dto.BookingRequest{
		BookingType: "vehicle", ItemID: "v1", StartDate: "2024-06-11", EndDate: "2024-06-14",
	})
	require.NoError(t, err)
	assert.Equal(t, 3, booking.Duration)
	assert.Equal(t, 15000.0, booking.TotalAmount)
	assert.Equal(t, constants.PaymentMethodCard, booking.PaymentMethod)
	assert.Equal(t, "Toyota Corolla v1", booking.ItemName)
}

func Test_BookingFacade_CreateBookingRejects(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.addRoom(t, "r1", 15000)
	f.addRoom(t, "taken", 15000, func(r *models.Room) { r.IsAvailable = false })
	f.addVehicle(t, "v1", 5000)

	tests := []struct {
		name  string
		user  string
		req   dto.BookingRequest
		check func(error) bool
	}{
		{
			name:  "anonymous_user",
			user:  "",
			req:   dto.BookingRequest{BookingType: "room", ItemID: "r1", StartDate: "2024-06-15", Months: 1},
			check: func(err error) bool { return apperrors.GetAppError(err).Code == apperrors.ErrCodeUnauthorized },
		},
		{
			name:  "start_in_the_past",
			user:  "u1",
			req:   dto.BookingRequest{BookingType: "room", ItemID: "r1", StartDate: "2024-06-09", Months: 1},
			check: apperrors.IsValidation,
		},
		{
			name:  "zero_months",
			user:  "u1",
			req:   dto.BookingRequest{BookingType: "room", ItemID: "r1", StartDate: "2024-06-15"},
			check: apperrors.IsValidation,
		},
		{
			name:  "end_before_start",
			user:  "u1",
			req:   dto.BookingRequest{BookingType: "vehicle", ItemID: "v1", StartDate: "2024-06-15", EndDate: "2024-06-12"},
			check: apperrors.IsValidation,
		},
		{
			name:  "unknown_type",
			user:  "u1",
			req:   dto.BookingRequest{BookingType: "boat", ItemID: "r1", StartDate: "2024-06-15", Months: 1},
			check: apperrors.IsValidation,
		},
		{
			name:  "unknown_payment_method",
			user:  "u1",
			req:   dto.BookingRequest{BookingType: "room", ItemID: "r1", StartDate: "2024-06-15", Months: 1, PaymentMethod: "crypto"},
			check: apperrors.IsValidation,
		},
		{
			name:  "missing_listing",
			user:  "u1",
			req:   dto.BookingRequest{BookingType: "room", ItemID: "nope", StartDate: "2024-06-15", Months: 1},
			check: apperrors.IsNotFound,
		},
		{
			name:  "unavailable_listing",
			user:  "u1",
			req:   dto.BookingRequest{BookingType: "room", ItemID: "taken", StartDate: "2024-06-15", Months: 1},
			check: apperrors.IsInvalidOperation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.facade.CreateBooking(ctx, tt.user, tt.req)
			require.Error(t, err)
			assert.True(t, tt.check(err), "unexpected error %v", err)
		})
	}

	buckets, err := f.facade.UserBookings(ctx, "u1")
	require.NoError(t, err)
	assert.Zero(t, buckets.Len())
	assert.Empty(t, f.notifier.Events())
}

func Test_BookingFacade_CancelAndComplete(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.addRoom(t, "r1", 15000)

	newBooking := func() *models.Booking {
		b, err := f.facade.CreateBooking(ctx, "u1", dto.BookingRequest{
			BookingType: "room", ItemID: "r1", StartDate: "2024-06-20", Months: 1,
		})
		require.NoError(t, err)
		return b
	}

	t.Run("cancel_confirmed", func(t *testing.T) {
		b := newBooking()
		cancelled, err := f.facade.CancelBooking(ctx, "u1", b.ID)
		require.NoError(t, err)
		assert.Equal(t, constants.BookingStatusCancelled, cancelled.Status)

		_, err = f.facade.CancelBooking(ctx, "u1", b.ID)
		assert.True(t, apperrors.IsInvalidOperation(err), "cancelled is terminal")

		_, err = f.facade.CompleteBooking(ctx, "u1", b.ID)
		assert.True(t, apperrors.IsInvalidOperation(err))
	})

	t.Run("complete_confirmed", func(t *testing.T) {
		b := newBooking()
		done, err := f.facade.CompleteBooking(ctx, "owner-1", b.ID)
		require.NoError(t, err)
		assert.Equal(t, constants.BookingStatusCompleted, done.Status)

		_, err = f.facade.CancelBooking(ctx, "u1", b.ID)
		assert.True(t, apperrors.IsInvalidOperation(err))
	})

	t.Run("other_users_cannot_see_it", func(t *testing.T) {
		b := newBooking()
		_, err := f.facade.CancelBooking(ctx, "u2", b.ID)
		assert.True(t, apperrors.IsNotFound(err))
	})

	t.Run("cancelled_future_booking_is_past", func(t *testing.T) {
		buckets, err := f.facade.UserBookings(ctx, "u1")
		require.NoError(t, err)
		for _, b := range buckets.Upcoming {
			assert.NotEqual(t, constants.BookingStatusCancelled, b.Status)
		}
		assert.Equal(t, 3, buckets.Len())
	})
}

func Test_BookingFacade_CompleteElapsed(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	insert := func(id, status string, start, end string) {
		require.NoError(t, f.store.Insert(ctx, &models.Booking{
			ID: id, UserID: "u1", BookingType: "room", ItemID: "r1", Status: status,
			StartDate: mustDate(t, start), EndDate: mustDate(t, end), TotalAmount: 1,
		}))
	}
	insert("ended", constants.BookingStatusConfirmed, "2024-04-01", "2024-06-01")
	insert("ends-today", constants.BookingStatusConfirmed, "2024-05-10", "2024-06-10")
	insert("running", constants.BookingStatusConfirmed, "2024-06-01", "2024-07-01")
	insert("cancelled", constants.BookingStatusCancelled, "2024-04-01", "2024-05-01")

	n, err := f.facade.CompleteElapsed(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	ended, err := f.store.GetByID(ctx, "ended")
	require.NoError(t, err)
	assert.Equal(t, constants.BookingStatusCompleted, ended.Status)

	for _, id := range []string{"ends-today", "running"} {
		b, err := f.store.GetByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, constants.BookingStatusConfirmed, b.Status, id)
	}
	assert.Equal(t, []string{services.EventBookingCompleted + ":ended"}, f.notifier.Events())
}

func Test_BookingFacade_UserBookingsStoreDown(t *testing.T) {
	f := newFixture(t)
	f.store.FailBookings(errors.New("timeout"))

	buckets, err := f.facade.UserBookings(context.Background(), "u1")
	assert.True(t, apperrors.IsTransient(err))
	assert.NotNil(t, buckets.Upcoming)
	assert.NotNil(t, buckets.Past)
}

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	v, err := services.ParseDate("date", s)
	require.NoError(t, err)
	return v
}
