package services

import (
	"context"

	"campusrent/constants"
	"campusrent/dto"
)

func lastFiltersKey(sessionID, kind string) string {
	return "last_filters:" + kind + ":" + sessionID
}

func SaveLastFilters(ctx context.Context, cache Cache, sessionID, kind string, filter dto.ListingFilter) error {
	return cache.Set(ctx, lastFiltersKey(sessionID, kind), filter, constants.LastFiltersTTL)
}

// GetLastFilters returns nil when the session has no stored filters.
func GetLastFilters(ctx context.Context, cache Cache, sessionID, kind string) (*dto.ListingFilter, error) {
	var filter dto.ListingFilter
	ok, err := cache.Get(ctx, lastFiltersKey(sessionID, kind), &filter)
	if err != nil || !ok {
		return nil, err
	}
	return &filter, nil
}

func ClearLastFilters(ctx context.Context, cache Cache, sessionID, kind string) error {
	return cache.Delete(ctx, lastFiltersKey(sessionID, kind))
}

// MergeFilters fills the unset parts of next from prev. Amenities accumulate.
func MergeFilters(prev, next dto.ListingFilter) dto.ListingFilter {
	merged := next
	merged.SearchTerm = orString(next.SearchTerm, prev.SearchTerm)
	merged.Categories = orStrings(next.Categories, prev.Categories)
	merged.Locations = orStrings(next.Locations, prev.Locations)
	merged.RequiredAmenities = mergeUniqueStrings(prev.RequiredAmenities, next.RequiredAmenities)

	// a new bound that contradicts the remembered opposite bound drops the remembered one
	if next.MinPrice != nil && prev.MaxPrice != nil && next.MaxPrice == nil && *next.MinPrice > *prev.MaxPrice {
		merged.MaxPrice = nil
	} else {
		merged.MaxPrice = orFloatPointer(next.MaxPrice, prev.MaxPrice)
	}
	if next.MaxPrice != nil && prev.MinPrice != nil && next.MinPrice == nil && *next.MaxPrice < *prev.MinPrice {
		merged.MinPrice = nil
	} else {
		merged.MinPrice = orFloatPointer(next.MinPrice, prev.MinPrice)
	}
	return merged
}

func orString(newVal, oldVal string) string {
	if newVal != "" {
		return newVal
	}
	return oldVal
}

func orStrings(newVal, oldVal []string) []string {
	if len(newVal) > 0 {
		return newVal
	}
	return oldVal
}

func orFloatPointer(newVal, oldVal *float64) *float64 {
	if newVal != nil {
		return newVal
	}
	return oldVal
}

func mergeUniqueStrings(a, b []string) []string {
	seen := make(map[string]bool)
	var result []string
	for _, val := range append(append([]string{}, a...), b...) {
		if !seen[val] {
			seen[val] = true
			result = append(result, val)
		}
	}
	return result
}
