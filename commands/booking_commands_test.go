package commands

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campusrent/models"
)

type fakeBookings struct {
	inserted []*models.Booking
	status   map[string]string
}

func (f *fakeBookings) Insert(_ context.Context, b *models.Booking) error {
	f.inserted = append(f.inserted, b)
	return nil
}

func (f *fakeBookings) UpdateStatus(_ context.Context, id, from, to string) (bool, error) {
	if f.status[id] != from {
		return false, nil
	}
	f.status[id] = to
	return true, nil
}

func Test_CreateBookingCommand(t *testing.T) {
	store := &fakeBookings{}
	b := &models.Booking{ID: "b1"}
	require.NoError(t, NewCreateBookingCommand(b, store).Execute(context.Background()))
	assert.Equal(t, []*models.Booking{b}, store.inserted)
}

func Test_UpdateBookingStatusCommand(t *testing.T) {
	store := &fakeBookings{status: map[string]string{"b1": "confirmed"}}

	cmd := NewUpdateBookingStatusCommand("b1", "confirmed", "cancelled", store)
	require.NoError(t, cmd.Execute(context.Background()))
	assert.True(t, cmd.Applied)

	stale := NewUpdateBookingStatusCommand("b1", "confirmed", "completed", store)
	require.NoError(t, stale.Execute(context.Background()))
	assert.False(t, stale.Applied)
	assert.Equal(t, "cancelled", store.status["b1"])
}
