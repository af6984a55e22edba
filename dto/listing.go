package dto

import (
	"math"
	"strconv"
	"strings"

	apperrors "campusrent/errors"
	"campusrent/models"
)

// ListingFilter is a full snapshot of the filter panel. Zero value matches everything.
type ListingFilter struct {
	SearchTerm        string   `json:"searchTerm"`
	Categories        []string `json:"categories"`
	Locations         []string `json:"locations"`
	MinPrice          *float64 `json:"minPrice,omitempty"`
	MaxPrice          *float64 `json:"maxPrice,omitempty"`
	RequiredAmenities []string `json:"requiredAmenities"`
}

// IsEmpty reports whether no predicate is active.
func (f ListingFilter) IsEmpty() bool {
	return strings.TrimSpace(f.SearchTerm) == "" &&
		len(f.Categories) == 0 &&
		len(f.Locations) == 0 &&
		f.MinPrice == nil &&
		f.MaxPrice == nil &&
		len(f.RequiredAmenities) == 0
}

func (f ListingFilter) Validate() error {
	if f.MinPrice != nil && *f.MinPrice < 0 {
		return apperrors.NewValidationError("minPrice must not be negative")
	}
	if f.MaxPrice != nil && *f.MaxPrice < 0 {
		return apperrors.NewValidationError("maxPrice must not be negative")
	}
	if f.MinPrice != nil && f.MaxPrice != nil && *f.MinPrice > *f.MaxPrice {
		return apperrors.NewValidationError("minPrice must not be greater than maxPrice")
	}
	return nil
}

// ListingQuery carries the raw query string values of a listing request.
type ListingQuery struct {
	Search    string
	Types     []string
	Locations []string
	MinPrice  string
	MaxPrice  string
	Amenities []string
}

// ParseListingFilter turns raw query values into a validated ListingFilter.
// Multi-valued params accept both repeated keys and comma separated values.
func ParseListingFilter(q ListingQuery) (ListingFilter, error) {
	filter := ListingFilter{
		SearchTerm:        strings.TrimSpace(q.Search),
		Categories:        splitValues(q.Types),
		Locations:         splitValues(q.Locations),
		RequiredAmenities: splitValues(q.Amenities),
	}

	var err error
	if filter.MinPrice, err = parsePrice("minPrice", q.MinPrice); err != nil {
		return ListingFilter{}, err
	}
	if filter.MaxPrice, err = parsePrice("maxPrice", q.MaxPrice); err != nil {
		return ListingFilter{}, err
	}
	if err := filter.Validate(); err != nil {
		return ListingFilter{}, err
	}
	return filter, nil
}

func parsePrice(name, raw string) (*float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeValidation, name+" must be a number", err)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil, apperrors.NewValidationError(name + " must be a finite number")
	}
	return &v, nil
}

func splitValues(values []string) []string {
	var out []string
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

// ListingPage is the payload of the listing endpoints.
type ListingPage[T any] struct {
	Items       []T      `json:"items"`
	Total       int      `json:"total"`
	FavoriteIDs []string `json:"favoriteIds,omitempty"`
	Suggestions []string `json:"suggestions,omitempty"`
}

type FeaturedResponse struct {
	Rooms    []models.Room    `json:"rooms"`
	Vehicles []models.Vehicle `json:"vehicles"`
}
