package services

import (
	"time"

	"campusrent/constants"
	"campusrent/dto"
	"campusrent/models"
)

// IsUpcoming compares calendar days: a booking starting today is still upcoming.
func IsUpcoming(booking models.Booking, now time.Time) bool {
	if booking.Status == constants.BookingStatusCancelled {
		return false
	}
	return !DateOnly(booking.StartDate).Before(DateOnly(now))
}

// ClassifyBookings splits bookings into upcoming and past. Every booking lands in
// exactly one bucket and input order is kept inside each bucket.
func ClassifyBookings(bookings []models.Booking, now time.Time) dto.BookingBuckets {
	buckets := dto.BookingBuckets{
		Upcoming: make([]models.Booking, 0),
		Past:     make([]models.Booking, 0),
	}
	for _, b := range bookings {
		if IsUpcoming(b, now) {
			buckets.Upcoming = append(buckets.Upcoming, b)
		} else {
			buckets.Past = append(buckets.Past, b)
		}
	}
	return buckets
}

// IsElapsed reports whether a booking's end date is before today.
func IsElapsed(booking models.Booking, now time.Time) bool {
	return DateOnly(booking.EndDate).Before(DateOnly(now))
}
