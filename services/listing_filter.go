package services

import (
	"strings"

	"campusrent/dto"
	"campusrent/models"
)

// ListingPredicate is one filter dimension.
type ListingPredicate func(models.Listing) bool

// BuildPredicates returns only the predicates the filter activates.
func BuildPredicates(filter dto.ListingFilter) []ListingPredicate {
	var predicates []ListingPredicate

	if term := normalizeInput(filter.SearchTerm); term != "" {
		predicates = append(predicates, searchPredicate(term))
	}
	if len(filter.Categories) > 0 {
		categories := toSet(filter.Categories)
		predicates = append(predicates, func(l models.Listing) bool {
			_, ok := categories[l.Category()]
			return ok
		})
	}
	if len(filter.Locations) > 0 {
		locations := toSet(filter.Locations)
		predicates = append(predicates, func(l models.Listing) bool {
			_, ok := locations[l.Place()]
			return ok
		})
	}
	if filter.MinPrice != nil || filter.MaxPrice != nil {
		predicates = append(predicates, pricePredicate(filter.MinPrice, filter.MaxPrice))
	}
	if len(filter.RequiredAmenities) > 0 {
		predicates = append(predicates, amenityPredicate(filter.RequiredAmenities))
	}
	return predicates
}

// FilterListings keeps the listings that satisfy every active predicate, in input order.
func FilterListings[L models.Listing](listings []L, filter dto.ListingFilter) []L {
	predicates := BuildPredicates(filter)
	filtered := make([]L, 0, len(listings))
	for _, listing := range listings {
		if matchesAll(listing, predicates) {
			filtered = append(filtered, listing)
		}
	}
	return filtered
}

func matchesAll(listing models.Listing, predicates []ListingPredicate) bool {
	for _, p := range predicates {
		if !p(listing) {
			return false
		}
	}
	return true
}

func searchPredicate(term string) ListingPredicate {
	return func(l models.Listing) bool {
		for _, field := range l.SearchText() {
			if field != "" && strings.Contains(normalizeInput(field), term) {
				return true
			}
		}
		return false
	}
}

func pricePredicate(min, max *float64) ListingPredicate {
	return func(l models.Listing) bool {
		price := l.UnitPrice()
		if min != nil && price < *min {
			return false
		}
		if max != nil && price > *max {
			return false
		}
		return true
	}
}

// Amenities are conjunctive. Listings without an amenity set (vehicles) are not constrained.
func amenityPredicate(required []string) ListingPredicate {
	return func(l models.Listing) bool {
		holder, ok := l.(models.AmenityHolder)
		if !ok {
			return true
		}
		have := toSet(holder.AmenityList())
		for _, amenity := range required {
			if _, ok := have[amenity]; !ok {
				return false
			}
		}
		return true
	}
}

func toSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}
