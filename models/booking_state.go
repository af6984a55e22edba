package models

import (
	"fmt"

	"campusrent/constants"
)

// BookingState is the set of transitions allowed from one status.
type BookingState interface {
	Confirm(booking *Booking) error
	Cancel(booking *Booking) error
	Complete(booking *Booking) error
	Terminal() bool
}

func transitionError(from, action string) error {
	return fmt.Errorf("cannot %s a %s booking", action, from)
}

// PendingState: waiting for payment capture
type PendingState struct{}

func (s *PendingState) Confirm(booking *Booking) error {
	booking.Status = constants.BookingStatusConfirmed
	return nil
}

func (s *PendingState) Cancel(booking *Booking) error {
	booking.Status = constants.BookingStatusCancelled
	return nil
}

func (s *PendingState) Complete(booking *Booking) error {
	return transitionError(constants.BookingStatusPending, "complete")
}

func (s *PendingState) Terminal() bool { return false }

// ConfirmedState: paid, stay/rental not finished yet
type ConfirmedState struct{}

func (s *ConfirmedState) Confirm(booking *Booking) error {
	return transitionError(constants.BookingStatusConfirmed, "confirm")
}

func (s *ConfirmedState) Cancel(booking *Booking) error {
	booking.Status = constants.BookingStatusCancelled
	return nil
}

func (s *ConfirmedState) Complete(booking *Booking) error {
	booking.Status = constants.BookingStatusCompleted
	return nil
}

func (s *ConfirmedState) Terminal() bool { return false }

type CompletedState struct{}

func (s *CompletedState) Confirm(booking *Booking) error {
	return transitionError(constants.BookingStatusCompleted, "confirm")
}

func (s *CompletedState) Cancel(booking *Booking) error {
	return transitionError(constants.BookingStatusCompleted, "cancel")
}

func (s *CompletedState) Complete(booking *Booking) error {
	return transitionError(constants.BookingStatusCompleted, "complete")
}

func (s *CompletedState) Terminal() bool { return true }

type CancelledState struct{}

func (s *CancelledState) Confirm(booking *Booking) error {
	return transitionError(constants.BookingStatusCancelled, "confirm")
}

func (s *CancelledState) Cancel(booking *Booking) error {
	return transitionError(constants.BookingStatusCancelled, "cancel")
}

func (s *CancelledState) Complete(booking *Booking) error {
	return transitionError(constants.BookingStatusCancelled, "complete")
}

func (s *CancelledState) Terminal() bool { return true }

// GetBookingState returns the state for a status string. Unknown statuses are
// treated as terminal so nothing can move them.
func GetBookingState(status string) BookingState {
	switch status {
	case constants.BookingStatusPending:
		return &PendingState{}
	case constants.BookingStatusConfirmed:
		return &ConfirmedState{}
	case constants.BookingStatusCompleted:
		return &CompletedState{}
	default:
		return &CancelledState{}
	}
}

func IsValidBookingStatus(status string) bool {
	switch status {
	case constants.BookingStatusPending, constants.BookingStatusConfirmed,
		constants.BookingStatusCompleted, constants.BookingStatusCancelled:
		return true
	}
	return false
}
