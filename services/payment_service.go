package services

import (
	"context"

	"campusrent/constants"
	apperrors "campusrent/errors"
	"campusrent/models"
)

// PaymentProcessor captures payment for a booking before it is stored.
type PaymentProcessor interface {
	Process(ctx context.Context, booking *models.Booking) error
}

// MockPayment accepts every card or cash payment; there is no gateway behind it.
type MockPayment struct{}

func (MockPayment) Process(ctx context.Context, booking *models.Booking) error {
	switch booking.PaymentMethod {
	case constants.PaymentMethodCard, constants.PaymentMethodCash:
	default:
		return apperrors.NewValidationError("payment method must be card or cash")
	}
	if booking.TotalAmount <= 0 {
		return apperrors.NewAppError(apperrors.ErrCodeValidation, "nothing to pay", apperrors.ErrPaymentFailed)
	}
	return ctx.Err()
}
