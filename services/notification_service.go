package services

import (
	"campusrent/models"
	"campusrent/services/logger"

	"github.com/goccy/go-json"
	"github.com/olahol/melody"
)

const (
	EventBookingConfirmed = "booking.confirmed"
	EventBookingCancelled = "booking.cancelled"
	EventBookingCompleted = "booking.completed"
)

// Notifier publishes booking events. Failures are the notifier's problem; booking
// operations never fail because of them.
type Notifier interface {
	Notify(event string, booking models.Booking)
}

type BookingEvent struct {
	Event     string  `json:"event"`
	BookingID string  `json:"bookingId"`
	UserID    string  `json:"userId"`
	OwnerID   string  `json:"ownerId"`
	ItemName  string  `json:"itemName"`
	Status    string  `json:"status"`
	Total     float64 `json:"totalAmount"`
}

// MelodyNotifier pushes events to the websocket sessions of the booking's user and owner.
type MelodyNotifier struct {
	m      *melody.Melody
	logger logger.Logger
}

func NewMelodyNotifier(m *melody.Melody, log logger.Logger) *MelodyNotifier {
	return &MelodyNotifier{m: m, logger: log}
}

func (n *MelodyNotifier) Notify(event string, booking models.Booking) {
	msg, err := json.Marshal(BookingEvent{
		Event:     event,
		BookingID: booking.ID,
		UserID:    booking.UserID,
		OwnerID:   booking.OwnerID,
		ItemName:  booking.ItemName,
		Status:    booking.Status,
		Total:     booking.TotalAmount,
	})
	if err != nil {
		n.logger.Error("cannot encode %s event: %v", event, err)
		return
	}
	err = n.m.BroadcastFilter(msg, func(s *melody.Session) bool {
		userID, ok := s.Get("userID")
		if !ok {
			return false
		}
		return userID == booking.UserID || userID == booking.OwnerID
	})
	if err != nil {
		n.logger.Error("broadcast %s for booking %s failed: %v", event, booking.ID, err)
	}
}

// LogNotifier only logs; used when no websocket hub exists.
type LogNotifier struct {
	logger logger.Logger
}

func NewLogNotifier(log logger.Logger) *LogNotifier {
	return &LogNotifier{logger: log}
}

func (n *LogNotifier) Notify(event string, booking models.Booking) {
	n.logger.Info("%s booking=%s user=%s status=%s", event, booking.ID, booking.UserID, booking.Status)
}
