package constants

import "time"

// Booking status
const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCompleted = "completed"
	BookingStatusCancelled = "cancelled"
)

// Booking / favorite item kinds
const (
	KindRoom    = "room"
	KindVehicle = "vehicle"
)

// Payment method (payment itself is mocked)
const (
	PaymentMethodCard = "card"
	PaymentMethodCash = "cash"
)

// Duration units stored on the booking snapshot
const (
	DurationUnitMonth = "month"
	DurationUnitDay   = "day"
)

// DateLayout is the ISO-8601 calendar date used on the wire and in the store.
const DateLayout = "2006-01-02"

const (
	FeaturedLimit    = 3
	ReviewMinRating  = 1
	ReviewMaxRating  = 5
	DefaultCacheTTL  = 10 * time.Minute
	LastFiltersTTL   = 30 * time.Minute
	CacheKeyRooms    = "listings:room"
	CacheKeyVehicles = "listings:vehicle"
)
