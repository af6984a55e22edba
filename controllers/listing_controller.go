package controllers

import (
	"context"
	"net/http"

	"campusrent/constants"
	"campusrent/dto"
	"campusrent/middleware"
	"campusrent/models"
	"campusrent/response"
	"campusrent/services"
	"campusrent/services/logger"

	"github.com/gin-gonic/gin"
)

type ListingController struct {
	catalog   *services.CatalogService
	favorites *services.FavoriteService
	cache     services.Cache
	images    *services.ImageResolver
	logger    logger.Logger
}

func NewListingController(catalog *services.CatalogService, favorites *services.FavoriteService,
	cache services.Cache, images *services.ImageResolver, log logger.Logger) *ListingController {
	if cache == nil {
		cache = services.NoopCache{}
	}
	return &ListingController{
		catalog:   catalog,
		favorites: favorites,
		cache:     cache,
		images:    images,
		logger:    log,
	}
}

func listingQuery(c *gin.Context) dto.ListingQuery {
	return dto.ListingQuery{
		Search:    c.Query("search"),
		Types:     c.QueryArray("types"),
		Locations: c.QueryArray("locations"),
		MinPrice:  c.Query("minPrice"),
		MaxPrice:  c.Query("maxPrice"),
		Amenities: c.QueryArray("amenities"),
	}
}

// effectiveFilter applies the session's remembered filters. `merge=true` fills
// unset parts from the last filters; `reset=true` forgets them first.
func (ctl *ListingController) effectiveFilter(c *gin.Context, kind string) (dto.ListingFilter, error) {
	filter, err := dto.ParseListingFilter(listingQuery(c))
	if err != nil {
		return dto.ListingFilter{}, err
	}

	ctx := c.Request.Context()
	sessionID := c.GetString(middleware.SessionIDKey)
	if sessionID == "" {
		return filter, nil
	}

	if c.Query("reset") == "true" {
		if err := services.ClearLastFilters(ctx, ctl.cache, sessionID, kind); err != nil {
			ctl.logger.Error("clear last filters: %v", err)
		}
	} else if c.Query("merge") == "true" {
		prev, err := services.GetLastFilters(ctx, ctl.cache, sessionID, kind)
		if err != nil {
			ctl.logger.Error("read last filters: %v", err)
		} else if prev != nil {
			filter = services.MergeFilters(*prev, filter)
		}
	}

	if !filter.IsEmpty() {
		if err := services.SaveLastFilters(ctx, ctl.cache, sessionID, kind, filter); err != nil {
			ctl.logger.Error("save last filters: %v", err)
		}
	}
	return filter, nil
}

func (ctl *ListingController) favoriteIDs(ctx context.Context, userID, kind string) []string {
	if userID == "" || ctl.favorites == nil {
		return nil
	}
	set, err := ctl.favorites.Favorites(ctx, userID, kind)
	if err != nil {
		ctl.logger.Error("favorites of %s: %v", userID, err)
		return nil
	}
	return set.IDs()
}

func (ctl *ListingController) suggestions(ctx context.Context, kind string, filter dto.ListingFilter, hits int) []string {
	if hits > 0 || filter.SearchTerm == "" {
		return nil
	}
	suggestions, err := ctl.catalog.Suggest(ctx, kind, filter.SearchTerm)
	if err != nil {
		ctl.logger.Error("suggest %s %q: %v", kind, filter.SearchTerm, err)
		return nil
	}
	return suggestions
}

func (ctl *ListingController) GetRooms(c *gin.Context) {
	empty := dto.ListingPage[models.Room]{Items: []models.Room{}}
	filter, err := ctl.effectiveFilter(c, constants.KindRoom)
	if err != nil {
		response.FromError(c, err, empty)
		return
	}

	ctx := c.Request.Context()
	rooms, err := ctl.catalog.SearchRooms(ctx, filter)
	if err != nil {
		response.FromError(c, err, empty)
		return
	}

	response.Success(c, dto.ListingPage[models.Room]{
		Items:       ctl.roomsWithURLs(rooms),
		Total:       len(rooms),
		FavoriteIDs: ctl.favoriteIDs(ctx, middleware.CurrentUserID(c), constants.KindRoom),
		Suggestions: ctl.suggestions(ctx, constants.KindRoom, filter, len(rooms)),
	})
}

func (ctl *ListingController) GetVehicles(c *gin.Context) {
	empty := dto.ListingPage[models.Vehicle]{Items: []models.Vehicle{}}
	filter, err := ctl.effectiveFilter(c, constants.KindVehicle)
	if err != nil {
		response.FromError(c, err, empty)
		return
	}

	ctx := c.Request.Context()
	vehicles, err := ctl.catalog.SearchVehicles(ctx, filter)
	if err != nil {
		response.FromError(c, err, empty)
		return
	}

	response.Success(c, dto.ListingPage[models.Vehicle]{
		Items:       ctl.vehiclesWithURLs(vehicles),
		Total:       len(vehicles),
		FavoriteIDs: ctl.favoriteIDs(ctx, middleware.CurrentUserID(c), constants.KindVehicle),
		Suggestions: ctl.suggestions(ctx, constants.KindVehicle, filter, len(vehicles)),
	})
}

func (ctl *ListingController) GetRoomDetail(c *gin.Context) {
	detail, err := ctl.catalog.RoomDetail(c.Request.Context(), c.Param("id"), middleware.CurrentUserID(c))
	if err != nil {
		response.FromError(c, err, nil)
		return
	}
	detail.Listing = ctl.roomsWithURLs([]models.Room{detail.Listing})[0]
	response.Success(c, detail)
}

func (ctl *ListingController) GetVehicleDetail(c *gin.Context) {
	detail, err := ctl.catalog.VehicleDetail(c.Request.Context(), c.Param("id"), middleware.CurrentUserID(c))
	if err != nil {
		response.FromError(c, err, nil)
		return
	}
	detail.Listing = ctl.vehiclesWithURLs([]models.Vehicle{detail.Listing})[0]
	response.Success(c, detail)
}

func (ctl *ListingController) GetFeatured(c *gin.Context) {
	featured := ctl.catalog.Featured(c.Request.Context())
	featured.Rooms = ctl.roomsWithURLs(featured.Rooms)
	featured.Vehicles = ctl.vehiclesWithURLs(featured.Vehicles)
	response.Success(c, featured)
}

func (ctl *ListingController) Suggest(c *gin.Context) {
	suggestions, err := ctl.catalog.Suggest(c.Request.Context(), c.Query("type"), c.Query("q"))
	if err != nil {
		response.FromError(c, err, []string{})
		return
	}
	if suggestions == nil {
		suggestions = []string{}
	}
	response.Success(c, suggestions)
}

// InvalidateCache drops the cached listing sets.
func (ctl *ListingController) InvalidateCache(c *gin.Context) {
	if err := ctl.catalog.InvalidateListings(c.Request.Context()); err != nil {
		ctl.logger.Error("invalidate listings: %v", err)
		response.ServerError(c)
		return
	}
	c.Status(http.StatusNoContent)
}

func (ctl *ListingController) roomsWithURLs(rooms []models.Room) []models.Room {
	out := make([]models.Room, len(rooms))
	for i, r := range rooms {
		r.Images = ctl.images.ResolveAll(r.Images)
		out[i] = r
	}
	return out
}

func (ctl *ListingController) vehiclesWithURLs(vehicles []models.Vehicle) []models.Vehicle {
	out := make([]models.Vehicle, len(vehicles))
	for i, v := range vehicles {
		v.Images = ctl.images.ResolveAll(v.Images)
		out[i] = v
	}
	return out
}
