package models

import (
	"time"

	"github.com/lib/pq"
)

// Booking is written once at confirmation time. Item name, images, unit price and
// total are a snapshot of the listing at that moment; only Status changes afterwards.
type Booking struct {
	ID            string         `json:"id" gorm:"primaryKey;type:uuid"`
	UserID        string         `json:"user_id" gorm:"index"`
	BookingType   string         `json:"booking_type"`
	ItemID        string         `json:"item_id" gorm:"index"`
	ItemName      string         `json:"item_name"`
	ItemImages    pq.StringArray `json:"item_images" gorm:"type:text[]"`
	StartDate     time.Time      `json:"start_date" gorm:"type:date"`
	EndDate       time.Time      `json:"end_date" gorm:"type:date"`
	UnitPrice     float64        `json:"unit_price"`
	Duration      int            `json:"duration"`
	DurationUnit  string         `json:"duration_unit"`
	TotalAmount   float64        `json:"total_amount"`
	PaymentMethod string         `json:"payment_method"`
	Status        string         `json:"status" gorm:"index"`
	OwnerID       string         `json:"owner_id" gorm:"index"`
	CreatedAt     time.Time      `json:"created_at" gorm:"autoCreateTime"`
}

func (Booking) TableName() string {
	return "bookings"
}
