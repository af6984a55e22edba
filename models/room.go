package models

import (
	"fmt"
	"time"

	"campusrent/constants"

	"github.com/lib/pq"
)

type Room struct {
	ID            string         `json:"id" gorm:"primaryKey;type:uuid"`
	RoomName      string         `json:"room_name"`
	RoomType      string         `json:"room_type" gorm:"index"`
	Location      string         `json:"location" gorm:"index"`
	Address       string         `json:"address"`
	PricePerMonth float64        `json:"price_per_month"`
	Images        pq.StringArray `json:"images" gorm:"type:text[]"`
	Amenities     pq.StringArray `json:"amenities" gorm:"type:text[]"`
	Description   string         `json:"description,omitempty"`
	AvailableFrom string         `json:"available_from"`
	OwnerContact  `gorm:"embedded"`
	Latitude      *float64  `json:"latitude,omitempty"`
	Longitude     *float64  `json:"longitude,omitempty"`
	IsAvailable   bool      `json:"is_available" gorm:"default:true;index"`
	CreatedAt     time.Time `json:"created_at" gorm:"autoCreateTime"`
}

func (Room) TableName() string {
	return "rooms"
}

func (r Room) ListingID() string     { return r.ID }
func (r Room) Kind() string          { return constants.KindRoom }
func (r Room) Category() string      { return r.RoomType }
func (r Room) Place() string         { return r.Location }
func (r Room) UnitPrice() float64    { return r.PricePerMonth }
func (r Room) Available() bool       { return r.IsAvailable }
func (r Room) AmenityList() []string { return r.Amenities }

func (r Room) DisplayName() string { return r.RoomName }
func (r Room) ImageRefs() []string { return r.Images }
func (r Room) OwnerRef() string    { return r.OwnerID }

func (r Room) SearchText() []string {
	return []string{r.RoomName, r.Location, r.Description}
}

func (r *Room) ValidatePrice() error {
	if r.PricePerMonth < 0 {
		return fmt.Errorf("invalid price_per_month: %v, must be >= 0", r.PricePerMonth)
	}
	return nil
}
