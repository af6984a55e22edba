package repository

import (
	"context"

	"campusrent/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type FavoriteRepository struct {
	db *gorm.DB
}

func NewFavoriteRepository(db *gorm.DB) *FavoriteRepository {
	return &FavoriteRepository{db: db}
}

func (r *FavoriteRepository) keyScope(ctx context.Context, key models.FavoriteKey) *gorm.DB {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND item_type = ? AND item_id = ?", key.UserID, key.ItemType, key.ItemID)
}

func (r *FavoriteRepository) Exists(ctx context.Context, key models.FavoriteKey) (bool, error) {
	var count int64
	if err := r.keyScope(ctx, key).Model(&models.Favorite{}).Count(&count).Error; err != nil {
		return false, storeError("FavoriteRepository.Exists", err)
	}
	return count > 0, nil
}

// Insert relies on idx_favorite_tuple: a concurrent duplicate is dropped, not stored.
func (r *FavoriteRepository) Insert(ctx context.Context, favorite *models.Favorite) (bool, error) {
	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "item_type"}, {Name: "item_id"}},
			DoNothing: true,
		}).
		Create(favorite)
	if res.Error != nil {
		return false, storeError("FavoriteRepository.Insert", res.Error)
	}
	return res.RowsAffected == 1, nil
}

func (r *FavoriteRepository) DeleteByKey(ctx context.Context, key models.FavoriteKey) (bool, error) {
	res := r.keyScope(ctx, key).Delete(&models.Favorite{})
	if res.Error != nil {
		return false, storeError("FavoriteRepository.DeleteByKey", res.Error)
	}
	return res.RowsAffected > 0, nil
}

func (r *FavoriteRepository) FindByUser(ctx context.Context, userID, itemType string) ([]models.Favorite, error) {
	favorites := make([]models.Favorite, 0)
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND item_type = ?", userID, itemType).
		Order("created_at DESC").
		Find(&favorites).Error
	if err != nil {
		return nil, storeError("FavoriteRepository.FindByUser", err)
	}
	return favorites, nil
}
