package services

import (
	"fmt"
	"math"
	"strings"
	"time"

	"campusrent/constants"
	"campusrent/dto"
	apperrors "campusrent/errors"
	"campusrent/models"
)

const day = 24 * time.Hour

// ParseDate reads an ISO-8601 calendar date.
func ParseDate(field, value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, apperrors.NewAppError(apperrors.ErrCodeRequiredField, field+" is required", nil)
	}
	t, err := time.Parse(constants.DateLayout, value)
	if err != nil {
		return time.Time{}, apperrors.NewAppError(apperrors.ErrCodeInvalidFormat,
			fmt.Sprintf("%s must be a date formatted as YYYY-MM-DD", field), err)
	}
	return t, nil
}

// QuoteRoom prices a monthly room booking. The end date is start plus `months`
// calendar months.
func QuoteRoom(unitPrice float64, start time.Time, months int) (dto.Quote, error) {
	if err := validateUnitPrice(unitPrice); err != nil {
		return dto.Quote{}, err
	}
	if months < 1 {
		return dto.Quote{}, apperrors.NewValidationError("duration must be at least 1 month")
	}
	start = DateOnly(start)
	return dto.Quote{
		BookingType:  constants.KindRoom,
		UnitPrice:    unitPrice,
		Duration:     months,
		DurationUnit: constants.DurationUnitMonth,
		StartDate:    start,
		EndDate:      start.AddDate(0, months, 0),
		TotalAmount:  unitPrice * float64(months),
	}, nil
}

// QuoteVehicle prices a daily vehicle booking; a partial day is billed as a full day.
func QuoteVehicle(unitPrice float64, start, end time.Time) (dto.Quote, error) {
	if err := validateUnitPrice(unitPrice); err != nil {
		return dto.Quote{}, err
	}
	if end.Before(start) {
		return dto.Quote{}, apperrors.NewValidationError("end date must not be before start date")
	}
	days := int(math.Ceil(float64(end.Sub(start)) / float64(day)))
	if days < 1 {
		return dto.Quote{}, apperrors.NewValidationError("rental must last at least 1 day")
	}
	return dto.Quote{
		BookingType:  constants.KindVehicle,
		UnitPrice:    unitPrice,
		Duration:     days,
		DurationUnit: constants.DurationUnitDay,
		StartDate:    start,
		EndDate:      end,
		TotalAmount:  unitPrice * float64(days),
	}, nil
}

// QuoteListing prices a request against the listing it names.
func QuoteListing(listing models.Listing, req dto.BookingRequest) (dto.Quote, error) {
	if listing.Kind() != req.BookingType {
		return dto.Quote{}, apperrors.NewValidationError("booking type does not match the listing")
	}
	start, err := ParseDate("startDate", req.StartDate)
	if err != nil {
		return dto.Quote{}, err
	}

	switch listing.Kind() {
	case constants.KindRoom:
		return QuoteRoom(listing.UnitPrice(), start, req.Months)
	case constants.KindVehicle:
		end, err := ParseDate("endDate", req.EndDate)
		if err != nil {
			return dto.Quote{}, err
		}
		return QuoteVehicle(listing.UnitPrice(), start, end)
	default:
		return dto.Quote{}, apperrors.NewValidationError("unknown booking type " + listing.Kind())
	}
}

func validateUnitPrice(unitPrice float64) error {
	if math.IsNaN(unitPrice) || unitPrice <= 0 {
		return apperrors.NewValidationError("unit price must be greater than 0")
	}
	return nil
}
