package services

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campusrent/constants"
	"campusrent/dto"
	apperrors "campusrent/errors"
	"campusrent/models"
)

func date(s string) time.Time {
	t, err := time.Parse(constants.DateLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

func Test_QuoteRoom(t *testing.T) {
	q, err := QuoteRoom(15000, date("2024-01-15"), 3)
	require.NoError(t, err)
	assert.Equal(t, 45000.0, q.TotalAmount)
	assert.Equal(t, date("2024-04-15"), q.EndDate)
	assert.Equal(t, 3, q.Duration)
	assert.Equal(t, constants.DurationUnitMonth, q.DurationUnit)
	assert.Equal(t, constants.KindRoom, q.BookingType)
}

func Test_QuoteRoom_MonthOverflowNormalises(t *testing.T) {
	q, err := QuoteRoom(1000, date("2024-01-31"), 1)
	require.NoError(t, err)
	assert.Equal(t, date("2024-03-02"), q.EndDate)
}

func Test_QuoteRoom_Rejects(t *testing.T) {
	tests := []struct {
		name   string
		price  float64
		months int
	}{
		{name: "zero_months", price: 1000, months: 0},
		{name: "negative_months", price: 1000, months: -2},
		{name: "zero_price", price: 0, months: 1},
		{name: "negative_price", price: -5, months: 1},
		{name: "nan_price", price: math.NaN(), months: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := QuoteRoom(tt.price, date("2024-01-15"), tt.months)
			assert.True(t, apperrors.IsValidation(err), "got %v", err)
		})
	}
}

func Test_QuoteVehicle(t *testing.T) {
	q, err := QuoteVehicle(5000, date("2024-03-01"), date("2024-03-04"))
	require.NoError(t, err)
	assert.Equal(t, 3, q.Duration)
	assert.Equal(t, 15000.0, q.TotalAmount)
	assert.Equal(t, constants.DurationUnitDay, q.DurationUnit)
}

func Test_QuoteVehicle_PartialDayRoundsUp(t *testing.T) {
	start := date("2024-03-01").Add(10 * time.Hour)
	end := date("2024-03-02").Add(12 * time.Hour)
	q, err := QuoteVehicle(100, start, end)
	require.NoError(t, err)
	assert.Equal(t, 2, q.Duration)
	assert.Equal(t, 200.0, q.TotalAmount)
}

func Test_QuoteVehicle_Rejects(t *testing.T) {
	_, err := QuoteVehicle(5000, date("2024-03-04"), date("2024-03-01"))
	assert.True(t, apperrors.IsValidation(err))

	_, err = QuoteVehicle(5000, date("2024-03-04"), date("2024-03-04"))
	assert.True(t, apperrors.IsValidation(err), "same-day rental has no billable day")

	_, err = QuoteVehicle(0, date("2024-03-01"), date("2024-03-04"))
	assert.True(t, apperrors.IsValidation(err))
}

func Test_QuoteListing(t *testing.T) {
	room := models.Room{ID: "r1", PricePerMonth: 15000}
	vehicle := models.Vehicle{ID: "v1", RentalPricePerDay: 5000}

	q, err := QuoteListing(room, dto.BookingRequest{BookingType: "room", ItemID: "r1", StartDate: "2024-01-15", Months: 3})
	require.NoError(t, err)
	assert.Equal(t, 45000.0, q.TotalAmount)

	q, err = QuoteListing(vehicle, dto.BookingRequest{BookingType: "vehicle", ItemID: "v1", StartDate: "2024-03-01", EndDate: "2024-03-04"})
	require.NoError(t, err)
	assert.Equal(t, 15000.0, q.TotalAmount)

	_, err = QuoteListing(room, dto.BookingRequest{BookingType: "vehicle", StartDate: "2024-01-15", Months: 1})
	assert.True(t, apperrors.IsValidation(err), "kind mismatch")

	_, err = QuoteListing(vehicle, dto.BookingRequest{BookingType: "vehicle", StartDate: "2024-03-01"})
	assert.True(t, apperrors.IsValidation(err), "missing end date")

	_, err = QuoteListing(room, dto.BookingRequest{BookingType: "room", StartDate: "15/01/2024", Months: 1})
	assert.True(t, apperrors.IsValidation(err), "bad date format")
}
