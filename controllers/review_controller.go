package controllers

import (
	"campusrent/dto"
	"campusrent/middleware"
	"campusrent/models"
	"campusrent/response"
	"campusrent/services"
	"campusrent/validator"

	"github.com/gin-gonic/gin"
)

type ReviewController struct {
	catalog *services.CatalogService
}

func NewReviewController(catalog *services.CatalogService) *ReviewController {
	return &ReviewController{catalog: catalog}
}

// GetReviews: GET /reviews?type=room&itemId=...
func (ctl *ReviewController) GetReviews(c *gin.Context) {
	reviews, err := ctl.catalog.Reviews(c.Request.Context(), c.Query("type"), c.Query("itemId"))
	if err != nil {
		response.FromError(c, err, dto.ReviewsResponse{Reviews: []models.Review{}})
		return
	}
	response.Success(c, reviews)
}

func (ctl *ReviewController) CreateReview(c *gin.Context) {
	var req dto.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if err := validator.ValidateReview(&req); err != nil {
		response.FromError(c, err, nil)
		return
	}
	review, err := ctl.catalog.AddReview(c.Request.Context(), middleware.CurrentUserID(c), req)
	if err != nil {
		response.FromError(c, err, nil)
		return
	}
	response.Created(c, review)
}
