package repository

import (
	"context"

	"campusrent/models"

	"github.com/jmoiron/sqlx"
)

// ReviewRepository talks SQL directly through sqlx. It shares the connection
// pool opened by gorm.
type ReviewRepository struct {
	db *sqlx.DB
}

func NewReviewRepository(db *sqlx.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

// FindByItem returns an item's reviews, newest first.
func (r *ReviewRepository) FindByItem(ctx context.Context, bookingType, itemID string) ([]models.Review, error) {
	const selectQuery = `
		SELECT id, user_id, user_name, booking_type, item_id, rating, comment, created_at
		FROM reviews
		WHERE booking_type = $1 AND item_id = $2
		ORDER BY created_at DESC
	`
	reviews := make([]models.Review, 0)
	if err := r.db.SelectContext(ctx, &reviews, selectQuery, bookingType, itemID); err != nil {
		return nil, storeError("ReviewRepository.FindByItem", err)
	}
	return reviews, nil
}

func (r *ReviewRepository) Insert(ctx context.Context, review *models.Review) error {
	const insertQuery = `
		INSERT INTO reviews (id, user_id, user_name, booking_type, item_id, rating, comment, created_at)
		VALUES (:id, :user_id, :user_name, :booking_type, :item_id, :rating, :comment, :created_at)
	`
	_, err := r.db.NamedExecContext(ctx, insertQuery, review)
	return storeError("ReviewRepository.Insert", err)
}
