package services_test

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"campusrent/models"
	"campusrent/repository/memory"
	"campusrent/services"
)

var testNow = time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC)

type recordingNotifier struct {
	mu     sync.Mutex
	events []string
}

func (n *recordingNotifier) Notify(event string, booking models.Booking) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = append(n.events, event+":"+booking.ID)
}

func (n *recordingNotifier) Events() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string(nil), n.events...)
}

type fixture struct {
	store     *memory.Store
	cache     *services.MemoryCache
	favorites *services.FavoriteService
	catalog   *services.CatalogService
	facade    *services.BookingFacade
	notifier  *recordingNotifier
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := memory.NewStore()
	cache := services.NewMemoryCache()
	log := testLogger()
	clock := services.FixedClock(testNow)

	favorites := services.NewFavoriteService(store.Favorites(), log)
	catalog := services.NewCatalogService(services.CatalogServiceOptions{
		Listings:  store,
		Reviews:   store.Reviews(),
		Favorites: favorites,
		Cache:     cache,
		CacheTTL:  time.Minute,
		Clock:     clock,
		Logger:    log,
	})
	notifier := &recordingNotifier{}
	facade := services.NewBookingFacade(catalog, store, services.MockPayment{}, notifier, clock, log)

	return &fixture{
		store:     store,
		cache:     cache,
		favorites: favorites,
		catalog:   catalog,
		facade:    facade,
		notifier:  notifier,
	}
}

func (f *fixture) addRoom(t *testing.T, id string, price float64, mutate ...func(*models.Room)) models.Room {
	t.Helper()
	room := models.Room{
		ID:            id,
		RoomName:      "Room " + id,
		RoomType:      "Single",
		Location:      "Gulberg",
		PricePerMonth: price,
		Images:        []string{"rooms/" + id + "-1", "rooms/" + id + "-2"},
		Amenities:     []string{"WiFi"},
		OwnerContact:  models.OwnerContact{OwnerID: "owner-1", OwnerName: "Owner"},
		IsAvailable:   true,
		CreatedAt:     testNow,
	}
	for _, m := range mutate {
		m(&room)
	}
	require.NoError(t, f.store.AddRoom(room))
	return room
}

func (f *fixture) addVehicle(t *testing.T, id string, price float64) models.Vehicle {
	t.Helper()
	vehicle := models.Vehicle{
		ID:                id,
		Brand:             "Toyota",
		Model:             fmt.Sprintf("Corolla %s", id),
		VehicleType:       "Car",
		Location:          "DHA",
		RentalPricePerDay: price,
		Images:            []string{"vehicles/" + id},
		OwnerContact:      models.OwnerContact{OwnerID: "owner-2"},
		IsAvailable:       true,
		CreatedAt:         testNow,
	}
	require.NoError(t, f.store.AddVehicle(vehicle))
	return vehicle
}
