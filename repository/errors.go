package repository

import (
	"errors"
	"fmt"

	apperrors "campusrent/errors"

	"gorm.io/gorm"
)

// storeError maps driver errors onto the app's error kinds. A missing row is
// NotFound; anything else may succeed on retry.
func storeError(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.NewAppError(apperrors.ErrCodeDBNotFound, op+": not found", err)
	}
	return apperrors.NewTransientError(op+" failed", fmt.Errorf("%s: %w", op, err))
}
