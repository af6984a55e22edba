package services

import (
	"campusrent/dto"
	"campusrent/models"
)

// SummarizeRatings returns the unrounded mean rating and the review count.
func SummarizeRatings(reviews []models.Review) dto.RatingSummary {
	if len(reviews) == 0 {
		return dto.RatingSummary{}
	}
	sum := 0
	for _, r := range reviews {
		sum += r.Rating
	}
	return dto.RatingSummary{
		Average: float64(sum) / float64(len(reviews)),
		Count:   len(reviews),
	}
}
