package dto

import "sort"

type ToggleFavoriteRequest struct {
	ItemType string `json:"itemType" validate:"required,oneof=room vehicle"`
	ItemID   string `json:"itemId" validate:"required"`
}

type ToggleFavoriteResponse struct {
	ItemType   string `json:"itemType"`
	ItemID     string `json:"itemId"`
	IsFavorite bool   `json:"isFavorite"`
}

// FavoriteSet holds the favorited item ids of one user and item type.
type FavoriteSet map[string]struct{}

func NewFavoriteSet(ids ...string) FavoriteSet {
	set := make(FavoriteSet, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

func (s FavoriteSet) Has(id string) bool {
	_, ok := s[id]
	return ok
}

func (s FavoriteSet) IDs() []string {
	ids := make([]string, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
