package repository

import (
	"context"

	"campusrent/models"

	"gorm.io/gorm"
)

type ListingRepository struct {
	db *gorm.DB
}

func NewListingRepository(db *gorm.DB) *ListingRepository {
	return &ListingRepository{db: db}
}

// listingQuery orders newest first; limit <= 0 means no limit.
func (r *ListingRepository) listingQuery(ctx context.Context, onlyAvailable bool, limit int) *gorm.DB {
	tx := r.db.WithContext(ctx).Order("created_at DESC")
	if onlyAvailable {
		tx = tx.Where("is_available = ?", true)
	}
	if limit > 0 {
		tx = tx.Limit(limit)
	}
	return tx
}

func (r *ListingRepository) FindRooms(ctx context.Context, onlyAvailable bool, limit int) ([]models.Room, error) {
	rooms := make([]models.Room, 0)
	if err := r.listingQuery(ctx, onlyAvailable, limit).Find(&rooms).Error; err != nil {
		return nil, storeError("ListingRepository.FindRooms", err)
	}
	return rooms, nil
}

func (r *ListingRepository) FindVehicles(ctx context.Context, onlyAvailable bool, limit int) ([]models.Vehicle, error) {
	vehicles := make([]models.Vehicle, 0)
	if err := r.listingQuery(ctx, onlyAvailable, limit).Find(&vehicles).Error; err != nil {
		return nil, storeError("ListingRepository.FindVehicles", err)
	}
	return vehicles, nil
}

func (r *ListingRepository) GetRoom(ctx context.Context, id string) (*models.Room, error) {
	var room models.Room
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&room).Error; err != nil {
		return nil, storeError("ListingRepository.GetRoom", err)
	}
	return &room, nil
}

func (r *ListingRepository) GetVehicle(ctx context.Context, id string) (*models.Vehicle, error) {
	var vehicle models.Vehicle
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&vehicle).Error; err != nil {
		return nil, storeError("ListingRepository.GetVehicle", err)
	}
	return &vehicle, nil
}
