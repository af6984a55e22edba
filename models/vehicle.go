package models

import (
	"database/sql/driver"
	"fmt"
	"time"

	"campusrent/constants"

	"github.com/goccy/go-json"
	"github.com/lib/pq"
)

// VehicleSpecifications is stored as a JSON column.
type VehicleSpecifications struct {
	Year         string `json:"year,omitempty"`
	Transmission string `json:"transmission,omitempty"`
	Fuel         string `json:"fuel,omitempty"`
	Seats        string `json:"seats,omitempty"`
	AC           string `json:"ac,omitempty"`
	Engine       string `json:"engine,omitempty"`
}

func (s VehicleSpecifications) Value() (driver.Value, error) {
	return json.Marshal(s)
}

func (s *VehicleSpecifications) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*s = VehicleSpecifications{}
		return nil
	case []byte:
		return json.Unmarshal(v, s)
	case string:
		return json.Unmarshal([]byte(v), s)
	default:
		return fmt.Errorf("cannot scan %T into VehicleSpecifications", value)
	}
}

type Vehicle struct {
	ID                string                `json:"id" gorm:"primaryKey;type:uuid"`
	Brand             string                `json:"brand"`
	Model             string                `json:"model"`
	VehicleType       string                `json:"vehicle_type" gorm:"index"`
	RentalPricePerDay float64               `json:"rental_price_per_day"`
	Images            pq.StringArray        `json:"images" gorm:"type:text[]"`
	Address           string                `json:"address"`
	Location          string                `json:"location" gorm:"index"`
	Specifications    VehicleSpecifications `json:"specifications" gorm:"type:jsonb"`
	Description       string                `json:"description,omitempty"`
	OwnerContact      `gorm:"embedded"`
	IsAvailable       bool      `json:"is_available" gorm:"default:true;index"`
	CreatedAt         time.Time `json:"created_at" gorm:"autoCreateTime"`
}

func (Vehicle) TableName() string {
	return "vehicles"
}

func (v Vehicle) ListingID() string   { return v.ID }
func (v Vehicle) Kind() string        { return constants.KindVehicle }
func (v Vehicle) Category() string    { return v.VehicleType }
func (v Vehicle) Place() string       { return v.Location }
func (v Vehicle) UnitPrice() float64  { return v.RentalPricePerDay }
func (v Vehicle) Available() bool     { return v.IsAvailable }
func (v Vehicle) ImageRefs() []string { return v.Images }
func (v Vehicle) OwnerRef() string    { return v.OwnerID }

// DisplayName is what a booking snapshot records as item_name.
func (v Vehicle) DisplayName() string {
	return v.Brand + " " + v.Model
}

func (v Vehicle) SearchText() []string {
	return []string{v.Brand, v.Model, v.Location, v.Description}
}

func (v *Vehicle) ValidatePrice() error {
	if v.RentalPricePerDay < 0 {
		return fmt.Errorf("invalid rental_price_per_day: %v, must be >= 0", v.RentalPricePerDay)
	}
	return nil
}
