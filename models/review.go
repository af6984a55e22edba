package models

import (
	"fmt"
	"time"

	"campusrent/constants"
)

type Review struct {
	ID          string    `json:"id" db:"id" gorm:"primaryKey;type:uuid"`
	UserID      string    `json:"user_id" db:"user_id"`
	UserName    string    `json:"user_name" db:"user_name"`
	BookingType string    `json:"booking_type" db:"booking_type"`
	ItemID      string    `json:"item_id" db:"item_id"`
	Rating      int       `json:"rating" db:"rating"`
	Comment     *string   `json:"comment,omitempty" db:"comment"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

func (Review) TableName() string {
	return "reviews"
}

func (r *Review) ValidateRating() error {
	if r.Rating < constants.ReviewMinRating || r.Rating > constants.ReviewMaxRating {
		return fmt.Errorf("invalid rating: %d, must be between %d and %d",
			r.Rating, constants.ReviewMinRating, constants.ReviewMaxRating)
	}
	return nil
}
