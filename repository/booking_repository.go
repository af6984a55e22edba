package repository

import (
	"context"

	"campusrent/models"

	"gorm.io/gorm"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

func (r *BookingRepository) Insert(ctx context.Context, booking *models.Booking) error {
	return storeError("BookingRepository.Insert", r.db.WithContext(ctx).Create(booking).Error)
}

func (r *BookingRepository) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	var booking models.Booking
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&booking).Error; err != nil {
		return nil, storeError("BookingRepository.GetByID", err)
	}
	return &booking, nil
}

// FindByUser returns the user's bookings, newest first.
func (r *BookingRepository) FindByUser(ctx context.Context, userID string) ([]models.Booking, error) {
	bookings := make([]models.Booking, 0)
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&bookings).Error
	if err != nil {
		return nil, storeError("BookingRepository.FindByUser", err)
	}
	return bookings, nil
}

func (r *BookingRepository) FindByStatus(ctx context.Context, status string) ([]models.Booking, error) {
	bookings := make([]models.Booking, 0)
	err := r.db.WithContext(ctx).
		Where("status = ?", status).
		Order("end_date ASC").
		Find(&bookings).Error
	if err != nil {
		return nil, storeError("BookingRepository.FindByStatus", err)
	}
	return bookings, nil
}

// UpdateStatus only touches the status column, and only while it still holds `from`.
func (r *BookingRepository) UpdateStatus(ctx context.Context, id, from, to string) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where("id = ? AND status = ?", id, from).
		Update("status", to)
	if res.Error != nil {
		return false, storeError("BookingRepository.UpdateStatus", res.Error)
	}
	return res.RowsAffected == 1, nil
}
