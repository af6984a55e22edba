package models

import "time"

// Favorite is unique per (user_id, item_type, item_id).
type Favorite struct {
	ID        string    `json:"id" gorm:"primaryKey;type:uuid"`
	UserID    string    `json:"user_id" gorm:"not null;uniqueIndex:idx_favorite_tuple"`
	ItemType  string    `json:"item_type" gorm:"not null;uniqueIndex:idx_favorite_tuple"`
	ItemID    string    `json:"item_id" gorm:"not null;uniqueIndex:idx_favorite_tuple"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

func (Favorite) TableName() string {
	return "favorites"
}

// FavoriteKey is the composite identity of a favorite.
type FavoriteKey struct {
	UserID   string
	ItemType string
	ItemID   string
}

func (f Favorite) Key() FavoriteKey {
	return FavoriteKey{UserID: f.UserID, ItemType: f.ItemType, ItemID: f.ItemID}
}

func (k FavoriteKey) String() string {
	return k.UserID + "|" + k.ItemType + "|" + k.ItemID
}
