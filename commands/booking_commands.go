package commands

import (
	"context"

	"campusrent/models"
)

// BookingCommand is one write against the bookings collection
type BookingCommand interface {
	Execute(ctx context.Context) error
}

type BookingInserter interface {
	Insert(ctx context.Context, booking *models.Booking) error
}

type BookingStatusUpdater interface {
	UpdateStatus(ctx context.Context, id, from, to string) (bool, error)
}

// CreateBookingCommand stores a new booking
type CreateBookingCommand struct {
	booking *models.Booking
	store   BookingInserter
}

func NewCreateBookingCommand(booking *models.Booking, store BookingInserter) *CreateBookingCommand {
	return &CreateBookingCommand{
		booking: booking,
		store:   store,
	}
}

func (c *CreateBookingCommand) Execute(ctx context.Context) error {
	return c.store.Insert(ctx, c.booking)
}

// UpdateBookingStatusCommand persists a status transition. Applied reports
// whether the stored status still matched when the update ran.
type UpdateBookingStatusCommand struct {
	id      string
	from    string
	to      string
	store   BookingStatusUpdater
	Applied bool
}

func NewUpdateBookingStatusCommand(id, from, to string, store BookingStatusUpdater) *UpdateBookingStatusCommand {
	return &UpdateBookingStatusCommand{
		id:    id,
		from:  from,
		to:    to,
		store: store,
	}
}

func (c *UpdateBookingStatusCommand) Execute(ctx context.Context) error {
	applied, err := c.store.UpdateStatus(ctx, c.id, c.from, c.to)
	c.Applied = applied
	return err
}
