package dto

import (
	"time"

	"campusrent/models"
)

// BookingRequest is what the booking modal submits. Rooms use StartDate+Months,
// vehicles use StartDate+EndDate.
type BookingRequest struct {
	BookingType   string `json:"bookingType" validate:"required,oneof=room vehicle"`
	ItemID        string `json:"itemId" validate:"required"`
	StartDate     string `json:"startDate" validate:"required"`
	EndDate       string `json:"endDate"`
	Months        int    `json:"months"`
	PaymentMethod string `json:"paymentMethod" validate:"omitempty,oneof=card cash"`
}

// Quote is the priced view of a booking request.
type Quote struct {
	BookingType  string    `json:"bookingType"`
	UnitPrice    float64   `json:"unitPrice"`
	Duration     int       `json:"duration"`
	DurationUnit string    `json:"durationUnit"`
	StartDate    time.Time `json:"startDate"`
	EndDate      time.Time `json:"endDate"`
	TotalAmount  float64   `json:"totalAmount"`
}

type QuoteResponse struct {
	Quote
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	ItemName  string `json:"itemName"`
}

// BookingBuckets partitions one user's bookings.
type BookingBuckets struct {
	Upcoming []models.Booking `json:"upcoming"`
	Past     []models.Booking `json:"past"`
}

func (b BookingBuckets) Len() int {
	return len(b.Upcoming) + len(b.Past)
}
