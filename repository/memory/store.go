// Package memory keeps every collection in process memory. It backs
// STORE_DRIVER=memory and the tests.
package memory

import (
	"context"
	"sort"
	"sync"

	apperrors "campusrent/errors"
	"campusrent/models"
)

type Store struct {
	mu        sync.RWMutex
	rooms     []models.Room
	vehicles  []models.Vehicle
	bookings  []models.Booking
	reviews   []models.Review
	favorites map[models.FavoriteKey]models.Favorite

	listingErr error
	bookingErr error
	reviewErr  error
}

func NewStore() *Store {
	return &Store{favorites: make(map[models.FavoriteKey]models.Favorite)}
}

// FailListings makes every listing read return err until called with nil.
func (s *Store) FailListings(err error) {
	s.mu.Lock()
	s.listingErr = err
	s.mu.Unlock()
}

func (s *Store) FailBookings(err error) {
	s.mu.Lock()
	s.bookingErr = err
	s.mu.Unlock()
}

func (s *Store) FailReviews(err error) {
	s.mu.Lock()
	s.reviewErr = err
	s.mu.Unlock()
}

func (s *Store) AddRoom(room models.Room) error {
	if err := room.ValidatePrice(); err != nil {
		return apperrors.NewAppError(apperrors.ErrCodeValidation, "invalid room", err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rooms = append(s.rooms, room)
	return nil
}

func (s *Store) AddVehicle(vehicle models.Vehicle) error {
	if err := vehicle.ValidatePrice(); err != nil {
		return apperrors.NewAppError(apperrors.ErrCodeValidation, "invalid vehicle", err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.vehicles = append(s.vehicles, vehicle)
	return nil
}

// UpdateRoom replaces a stored room, as an owner edit would.
func (s *Store) UpdateRoom(room models.Room) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.rooms {
		if s.rooms[i].ID == room.ID {
			s.rooms[i] = room
			return nil
		}
	}
	return apperrors.NewNotFoundError("room not found")
}

func (s *Store) FindRooms(ctx context.Context, onlyAvailable bool, limit int) ([]models.Room, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.readErr(ctx, s.listingErr); err != nil {
		return nil, err
	}
	out := make([]models.Room, 0, len(s.rooms))
	for i := len(s.rooms) - 1; i >= 0; i-- {
		if onlyAvailable && !s.rooms[i].IsAvailable {
			continue
		}
		out = append(out, cloneRoom(s.rooms[i]))
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return truncate(out, limit), nil
}

func (s *Store) FindVehicles(ctx context.Context, onlyAvailable bool, limit int) ([]models.Vehicle, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.readErr(ctx, s.listingErr); err != nil {
		return nil, err
	}
	out := make([]models.Vehicle, 0, len(s.vehicles))
	for i := len(s.vehicles) - 1; i >= 0; i-- {
		if onlyAvailable && !s.vehicles[i].IsAvailable {
			continue
		}
		out = append(out, cloneVehicle(s.vehicles[i]))
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return truncate(out, limit), nil
}

func (s *Store) GetRoom(ctx context.Context, id string) (*models.Room, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.readErr(ctx, s.listingErr); err != nil {
		return nil, err
	}
	for _, r := range s.rooms {
		if r.ID == id {
			room := cloneRoom(r)
			return &room, nil
		}
	}
	return nil, apperrors.NewAppError(apperrors.ErrCodeDBNotFound, "room not found", apperrors.ErrListingNotFound)
}

func (s *Store) GetVehicle(ctx context.Context, id string) (*models.Vehicle, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.readErr(ctx, s.listingErr); err != nil {
		return nil, err
	}
	for _, v := range s.vehicles {
		if v.ID == id {
			vehicle := cloneVehicle(v)
			return &vehicle, nil
		}
	}
	return nil, apperrors.NewAppError(apperrors.ErrCodeDBNotFound, "vehicle not found", apperrors.ErrListingNotFound)
}

func (s *Store) Insert(ctx context.Context, booking *models.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.readErr(ctx, s.bookingErr); err != nil {
		return err
	}
	for _, b := range s.bookings {
		if b.ID == booking.ID {
			return apperrors.NewAppError(apperrors.ErrCodeDBDuplicate, "booking already exists", nil)
		}
	}
	s.bookings = append(s.bookings, cloneBooking(*booking))
	return nil
}

func (s *Store) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.readErr(ctx, s.bookingErr); err != nil {
		return nil, err
	}
	for _, b := range s.bookings {
		if b.ID == id {
			booking := cloneBooking(b)
			return &booking, nil
		}
	}
	return nil, apperrors.NewAppError(apperrors.ErrCodeDBNotFound, "booking not found", apperrors.ErrBookingNotFound)
}

func (s *Store) FindByUser(ctx context.Context, userID string) ([]models.Booking, error) {
	return s.findBookings(ctx, func(b models.Booking) bool { return b.UserID == userID })
}

func (s *Store) FindByStatus(ctx context.Context, status string) ([]models.Booking, error) {
	return s.findBookings(ctx, func(b models.Booking) bool { return b.Status == status })
}

func (s *Store) findBookings(ctx context.Context, match func(models.Booking) bool) ([]models.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.readErr(ctx, s.bookingErr); err != nil {
		return nil, err
	}
	out := make([]models.Booking, 0)
	for i := len(s.bookings) - 1; i >= 0; i-- {
		if match(s.bookings[i]) {
			out = append(out, cloneBooking(s.bookings[i]))
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (s *Store) UpdateStatus(ctx context.Context, id, from, to string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.readErr(ctx, s.bookingErr); err != nil {
		return false, err
	}
	for i := range s.bookings {
		if s.bookings[i].ID != id {
			continue
		}
		if s.bookings[i].Status != from {
			return false, nil
		}
		s.bookings[i].Status = to
		return true, nil
	}
	return false, apperrors.NewAppError(apperrors.ErrCodeDBNotFound, "booking not found", apperrors.ErrBookingNotFound)
}

// Reviews and favorites have method names that clash with bookings, so they
// hang off small views of the same store.

func (s *Store) Reviews() *ReviewView {
	return &ReviewView{s: s}
}

func (s *Store) Favorites() *FavoriteView {
	return &FavoriteView{s: s}
}

type ReviewView struct {
	s *Store
}

func (v *ReviewView) FindByItem(ctx context.Context, bookingType, itemID string) ([]models.Review, error) {
	v.s.mu.RLock()
	defer v.s.mu.RUnlock()
	if err := v.s.readErr(ctx, v.s.reviewErr); err != nil {
		return nil, err
	}
	out := make([]models.Review, 0)
	for i := len(v.s.reviews) - 1; i >= 0; i-- {
		r := v.s.reviews[i]
		if r.BookingType == bookingType && r.ItemID == itemID {
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (v *ReviewView) Insert(ctx context.Context, review *models.Review) error {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	if err := v.s.readErr(ctx, v.s.reviewErr); err != nil {
		return err
	}
	if err := review.ValidateRating(); err != nil {
		return apperrors.NewAppError(apperrors.ErrCodeValidation, "invalid review", err)
	}
	v.s.reviews = append(v.s.reviews, *review)
	return nil
}

type FavoriteView struct {
	s *Store
}

func (v *FavoriteView) Exists(ctx context.Context, key models.FavoriteKey) (bool, error) {
	v.s.mu.RLock()
	defer v.s.mu.RUnlock()
	if err := ctx.Err(); err != nil {
		return false, err
	}
	_, ok := v.s.favorites[key]
	return ok, nil
}

func (v *FavoriteView) Insert(ctx context.Context, favorite *models.Favorite) (bool, error) {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	if err := ctx.Err(); err != nil {
		return false, err
	}
	key := favorite.Key()
	if _, ok := v.s.favorites[key]; ok {
		return false, nil
	}
	v.s.favorites[key] = *favorite
	return true, nil
}

func (v *FavoriteView) DeleteByKey(ctx context.Context, key models.FavoriteKey) (bool, error) {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	if err := ctx.Err(); err != nil {
		return false, err
	}
	if _, ok := v.s.favorites[key]; !ok {
		return false, nil
	}
	delete(v.s.favorites, key)
	return true, nil
}

func (v *FavoriteView) FindByUser(ctx context.Context, userID, itemType string) ([]models.Favorite, error) {
	v.s.mu.RLock()
	defer v.s.mu.RUnlock()
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]models.Favorite, 0)
	for key, f := range v.s.favorites {
		if key.UserID == userID && key.ItemType == itemType {
			out = append(out, f)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ItemID < out[j].ItemID })
	return out, nil
}

// Count returns how many favorites are stored in total.
func (v *FavoriteView) Count() int {
	v.s.mu.RLock()
	defer v.s.mu.RUnlock()
	return len(v.s.favorites)
}

func (s *Store) readErr(ctx context.Context, injected error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return injected
}

func truncate[T any](items []T, limit int) []T {
	if limit > 0 && len(items) > limit {
		return items[:limit]
	}
	return items
}

func cloneRoom(r models.Room) models.Room {
	r.Images = append([]string(nil), r.Images...)
	r.Amenities = append([]string(nil), r.Amenities...)
	return r
}

func cloneVehicle(v models.Vehicle) models.Vehicle {
	v.Images = append([]string(nil), v.Images...)
	return v
}

func cloneBooking(b models.Booking) models.Booking {
	b.ItemImages = append([]string(nil), b.ItemImages...)
	return b
}
