package memory

import (
	"time"

	"campusrent/models"

	"github.com/google/uuid"
)

// SeedDemo fills an empty store with a handful of listings for local runs.
func SeedDemo(s *Store) error {
	now := time.Now().UTC()
	owner := models.OwnerContact{
		OwnerID:    uuid.NewString(),
		OwnerName:  "Demo Owner",
		OwnerPhone: "0300 0000000",
		OwnerEmail: "owner@example.com",
	}

	rooms := []models.Room{
		{
			ID: uuid.NewString(), RoomName: "Sunny single near campus", RoomType: "Single",
			Location: "Gulberg", Address: "12 Main Blvd", PricePerMonth: 15000,
			Images:       []string{"campusrent/rooms/single-1"},
			Amenities:    []string{"WiFi", "AC", "Attached Bath"},
			Description:  "Quiet room, five minutes from the university gate",
			OwnerContact: owner, IsAvailable: true, CreatedAt: now.Add(-48 * time.Hour),
		},
		{
			ID: uuid.NewString(), RoomName: "Shared double", RoomType: "Shared",
			Location: "Johar Town", Address: "4 Canal Rd", PricePerMonth: 9000,
			Images:       []string{"campusrent/rooms/shared-1"},
			Amenities:    []string{"WiFi", "Kitchen"},
			Description:  "Two beds, shared kitchen",
			OwnerContact: owner, IsAvailable: true, CreatedAt: now.Add(-24 * time.Hour),
		},
		{
			ID: uuid.NewString(), RoomName: "Studio apartment", RoomType: "Studio",
			Location: "DHA", Address: "88 Phase 5", PricePerMonth: 32000,
			Images:       []string{"campusrent/rooms/studio-1"},
			Amenities:    []string{"WiFi", "AC", "Parking", "Kitchen"},
			Description:  "Furnished studio with parking",
			OwnerContact: owner, IsAvailable: true, CreatedAt: now,
		},
	}
	for _, r := range rooms {
		if err := s.AddRoom(r); err != nil {
			return err
		}
	}

	vehicles := []models.Vehicle{
		{
			ID: uuid.NewString(), Brand: "Honda", Model: "CD 70", VehicleType: "Bike",
			RentalPricePerDay: 800, Location: "Gulberg", Images: []string{"campusrent/vehicles/cd70"},
			Specifications: models.VehicleSpecifications{Year: "2022", Fuel: "Petrol"},
			OwnerContact:   owner, IsAvailable: true, CreatedAt: now.Add(-12 * time.Hour),
		},
		{
			ID: uuid.NewString(), Brand: "Toyota", Model: "Corolla", VehicleType: "Car",
			RentalPricePerDay: 5000, Location: "DHA", Images: []string{"campusrent/vehicles/corolla"},
			Specifications: models.VehicleSpecifications{Year: "2020", Transmission: "Automatic", Seats: "5", AC: "Yes"},
			OwnerContact:   owner, IsAvailable: true, CreatedAt: now,
		},
	}
	for _, v := range vehicles {
		if err := s.AddVehicle(v); err != nil {
			return err
		}
	}
	return nil
}
