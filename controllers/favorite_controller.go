package controllers

import (
	"campusrent/dto"
	"campusrent/middleware"
	"campusrent/response"
	"campusrent/services"
	"campusrent/validator"

	"github.com/gin-gonic/gin"
)

type FavoriteController struct {
	favorites *services.FavoriteService
}

func NewFavoriteController(favorites *services.FavoriteService) *FavoriteController {
	return &FavoriteController{favorites: favorites}
}

func (ctl *FavoriteController) GetFavorites(c *gin.Context) {
	set, err := ctl.favorites.Favorites(c.Request.Context(), middleware.CurrentUserID(c), c.Query("type"))
	if err != nil {
		response.FromError(c, err, []string{})
		return
	}
	ids := set.IDs()
	response.SuccessWithTotal(c, ids, len(ids))
}

func (ctl *FavoriteController) ToggleFavorite(c *gin.Context) {
	var req dto.ToggleFavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if err := validator.ValidateToggleFavorite(&req); err != nil {
		response.FromError(c, err, nil)
		return
	}
	member, err := ctl.favorites.Toggle(c.Request.Context(), middleware.CurrentUserID(c), req.ItemType, req.ItemID)
	if err != nil {
		response.FromError(c, err, nil)
		return
	}
	response.Success(c, dto.ToggleFavoriteResponse{
		ItemType:   req.ItemType,
		ItemID:     req.ItemID,
		IsFavorite: member,
	})
}
