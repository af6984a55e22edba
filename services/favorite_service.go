package services

import (
	"context"
	"fmt"
	"strings"

	"campusrent/constants"
	"campusrent/dto"
	apperrors "campusrent/errors"
	"campusrent/models"
	"campusrent/services/logger"

	"github.com/google/uuid"
)

// FavoriteService toggles favorite membership. Toggles on the same
// (user, item type, item id) tuple run one at a time in this process; the store's
// guarded delete and conflict-ignoring insert cover other processes.
type FavoriteService struct {
	store  FavoriteStore
	locks  *keyedMutex
	logger logger.Logger
}

func NewFavoriteService(store FavoriteStore, log logger.Logger) *FavoriteService {
	return &FavoriteService{
		store:  store,
		locks:  newKeyedMutex(),
		logger: log,
	}
}

func newFavoriteKey(userID, itemType, itemID string) (models.FavoriteKey, error) {
	key := models.FavoriteKey{
		UserID:   strings.TrimSpace(userID),
		ItemType: strings.TrimSpace(itemType),
		ItemID:   strings.TrimSpace(itemID),
	}
	if key.UserID == "" || key.ItemID == "" {
		return key, apperrors.NewAppError(apperrors.ErrCodeRequiredField, "user id and item id are required", nil)
	}
	if key.ItemType != constants.KindRoom && key.ItemType != constants.KindVehicle {
		return key, apperrors.NewValidationError("item type must be room or vehicle")
	}
	return key, nil
}

// Toggle removes the tuple when it is a member and adds it otherwise.
// It returns the membership after the toggle.
func (s *FavoriteService) Toggle(ctx context.Context, userID, itemType, itemID string) (bool, error) {
	key, err := newFavoriteKey(userID, itemType, itemID)
	if err != nil {
		return false, err
	}

	unlock := s.locks.Lock(key.String())
	defer unlock()

	removed, err := s.store.DeleteByKey(ctx, key)
	if err != nil {
		return false, wrapStoreError("remove favorite", err)
	}
	if removed {
		s.logger.Debug("favorite removed %s", key)
		return false, nil
	}

	inserted, err := s.store.Insert(ctx, &models.Favorite{
		ID:       uuid.NewString(),
		UserID:   key.UserID,
		ItemType: key.ItemType,
		ItemID:   key.ItemID,
	})
	if err != nil {
		return false, wrapStoreError("add favorite", err)
	}
	if !inserted {
		s.logger.Debug("favorite %s already present, insert skipped", key)
	} else {
		s.logger.Debug("favorite added %s", key)
	}
	return true, nil
}

// Favorites returns the ids the user favorited for one item type.
func (s *FavoriteService) Favorites(ctx context.Context, userID, itemType string) (dto.FavoriteSet, error) {
	if itemType != constants.KindRoom && itemType != constants.KindVehicle {
		return nil, apperrors.NewValidationError("item type must be room or vehicle")
	}
	favorites, err := s.store.FindByUser(ctx, userID, itemType)
	if err != nil {
		return nil, wrapStoreError("load favorites", err)
	}
	set := make(dto.FavoriteSet, len(favorites))
	for _, f := range favorites {
		set[f.ItemID] = struct{}{}
	}
	return set, nil
}

func (s *FavoriteService) IsFavorite(ctx context.Context, userID, itemType, itemID string) (bool, error) {
	key, err := newFavoriteKey(userID, itemType, itemID)
	if err != nil {
		return false, err
	}
	ok, err := s.store.Exists(ctx, key)
	if err != nil {
		return false, wrapStoreError("check favorite", err)
	}
	return ok, nil
}

// wrapStoreError keeps AppErrors as they are and marks anything else as transient.
func wrapStoreError(action string, err error) error {
	if apperrors.IsAppError(err) {
		return err
	}
	return apperrors.NewTransientError(fmt.Sprintf("%s failed", action), err)
}
