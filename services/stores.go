package services

import (
	"context"

	"campusrent/models"
)

// ListingStore reads the rooms and vehicles collections. Get* return a NotFound
// AppError when the id has no row.
type ListingStore interface {
	FindRooms(ctx context.Context, onlyAvailable bool, limit int) ([]models.Room, error)
	FindVehicles(ctx context.Context, onlyAvailable bool, limit int) ([]models.Vehicle, error)
	GetRoom(ctx context.Context, id string) (*models.Room, error)
	GetVehicle(ctx context.Context, id string) (*models.Vehicle, error)
}

// BookingStore never updates snapshot columns; UpdateStatus is the only mutation.
type BookingStore interface {
	Insert(ctx context.Context, booking *models.Booking) error
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	FindByUser(ctx context.Context, userID string) ([]models.Booking, error)
	FindByStatus(ctx context.Context, status string) ([]models.Booking, error)
	// UpdateStatus moves a booking from one status to another and reports false
	// when the stored status was no longer `from`.
	UpdateStatus(ctx context.Context, id, from, to string) (bool, error)
}

type ReviewStore interface {
	FindByItem(ctx context.Context, bookingType, itemID string) ([]models.Review, error)
	Insert(ctx context.Context, review *models.Review) error
}

// FavoriteStore must make Insert and DeleteByKey atomic on the composite key.
type FavoriteStore interface {
	Exists(ctx context.Context, key models.FavoriteKey) (bool, error)
	// Insert reports false when the tuple already existed.
	Insert(ctx context.Context, favorite *models.Favorite) (bool, error)
	// DeleteByKey reports false when there was nothing to delete.
	DeleteByKey(ctx context.Context, key models.FavoriteKey) (bool, error)
	FindByUser(ctx context.Context, userID, itemType string) ([]models.Favorite, error)
}
