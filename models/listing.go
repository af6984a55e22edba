package models

// Listing is the read-only view the filter engine works on. Room and Vehicle implement it.
type Listing interface {
	ListingID() string
	Kind() string
	Category() string
	Place() string
	UnitPrice() float64
	SearchText() []string
	Available() bool
	DisplayName() string
	ImageRefs() []string
	OwnerRef() string
}

// AmenityHolder is implemented by listings that carry an amenity set.
type AmenityHolder interface {
	AmenityList() []string
}

// OwnerContact is copied onto listings so the detail page can show it without a join.
type OwnerContact struct {
	OwnerID    string `json:"owner_id" gorm:"column:owner_id;index"`
	OwnerName  string `json:"owner_name" gorm:"column:owner_name"`
	OwnerPhone string `json:"owner_phone" gorm:"column:owner_phone"`
	OwnerEmail string `json:"owner_email" gorm:"column:owner_email"`
}
