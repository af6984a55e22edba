package dto

import "campusrent/models"

// RatingSummary: Count == 0 means "no reviews", not "rated 0".
type RatingSummary struct {
	Average float64 `json:"average"`
	Count   int     `json:"count"`
}

type CreateReviewRequest struct {
	BookingType string `json:"bookingType" validate:"required,oneof=room vehicle"`
	ItemID      string `json:"itemId" validate:"required"`
	Rating      int    `json:"rating" validate:"required,min=1,max=5"`
	Comment     string `json:"comment" validate:"max=2000"`
	UserName    string `json:"userName" validate:"max=120"`
}

type ReviewsResponse struct {
	Summary RatingSummary   `json:"summary"`
	Reviews []models.Review `json:"reviews"`
}

// ListingDetail is a listing plus its auxiliary per-item state.
type ListingDetail[T any] struct {
	Listing    T               `json:"listing"`
	Rating     RatingSummary   `json:"rating"`
	Reviews    []models.Review `json:"reviews"`
	IsFavorite bool            `json:"isFavorite"`
}
