package services

import (
	"context"
	"strings"
	"time"

	"campusrent/constants"
	"campusrent/dto"
	apperrors "campusrent/errors"
	"campusrent/models"
	"campusrent/services/logger"

	"github.com/google/uuid"
)

type CatalogServiceOptions struct {
	Listings  ListingStore
	Reviews   ReviewStore
	Favorites *FavoriteService
	Cache     Cache
	CacheTTL  time.Duration
	Clock     Clock
	Logger    logger.Logger
}

// CatalogService serves listings, listing details and reviews. Listing sets are
// cached; a refresh that has been overtaken by a newer one does not write the cache.
type CatalogService struct {
	listings  ListingStore
	reviews   ReviewStore
	favorites *FavoriteService
	cache     Cache
	cacheTTL  time.Duration
	clock     Clock
	seq       *RequestSequencer
	logger    logger.Logger
}

func NewCatalogService(opts CatalogServiceOptions) *CatalogService {
	s := &CatalogService{
		listings:  opts.Listings,
		reviews:   opts.Reviews,
		favorites: opts.Favorites,
		cache:     opts.Cache,
		cacheTTL:  opts.CacheTTL,
		clock:     opts.Clock,
		seq:       NewRequestSequencer(),
		logger:    opts.Logger,
	}
	if s.cache == nil {
		s.cache = NoopCache{}
	}
	if s.cacheTTL <= 0 {
		s.cacheTTL = constants.DefaultCacheTTL
	}
	if s.clock == nil {
		s.clock = SystemClock{}
	}
	return s
}

func loadCached[T any](ctx context.Context, s *CatalogService, key string, fetch func(context.Context) ([]T, error)) ([]T, error) {
	var cached []T
	hit, err := s.cache.Get(ctx, key, &cached)
	if err != nil {
		s.logger.Error("cache read %s: %v", key, err)
	} else if hit {
		return cached, nil
	}

	ticket := s.seq.Begin(key)
	items, err := fetch(ctx)
	if err != nil {
		return nil, wrapStoreError("load "+key, err)
	}

	if !s.seq.IsLatest(key, ticket) {
		s.logger.Debug("stale refresh of %s discarded", key)
		return items, nil
	}
	if err := s.cache.Set(ctx, key, items, s.cacheTTL); err != nil {
		s.logger.Error("cache write %s: %v", key, err)
	}
	return items, nil
}

// Rooms returns the available rooms, newest first.
func (s *CatalogService) Rooms(ctx context.Context) ([]models.Room, error) {
	return loadCached(ctx, s, constants.CacheKeyRooms, func(ctx context.Context) ([]models.Room, error) {
		return s.listings.FindRooms(ctx, true, 0)
	})
}

// Vehicles returns the available vehicles, newest first.
func (s *CatalogService) Vehicles(ctx context.Context) ([]models.Vehicle, error) {
	return loadCached(ctx, s, constants.CacheKeyVehicles, func(ctx context.Context) ([]models.Vehicle, error) {
		return s.listings.FindVehicles(ctx, true, 0)
	})
}

func (s *CatalogService) SearchRooms(ctx context.Context, filter dto.ListingFilter) ([]models.Room, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}
	rooms, err := s.Rooms(ctx)
	if err != nil {
		return nil, err
	}
	return FilterListings(rooms, filter), nil
}

func (s *CatalogService) SearchVehicles(ctx context.Context, filter dto.ListingFilter) ([]models.Vehicle, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}
	vehicles, err := s.Vehicles(ctx)
	if err != nil {
		return nil, err
	}
	return FilterListings(vehicles, filter), nil
}

// InvalidateListings drops cached listing sets, e.g. after an owner edit.
// Refreshes already in flight lose their ticket and will not re-cache old data.
func (s *CatalogService) InvalidateListings(ctx context.Context) error {
	s.seq.Begin(constants.CacheKeyRooms)
	s.seq.Begin(constants.CacheKeyVehicles)
	return s.cache.Delete(ctx, constants.CacheKeyRooms, constants.CacheKeyVehicles)
}

// Featured returns a few available rooms and vehicles for the home page. Either
// half may come back empty when its store is down.
func (s *CatalogService) Featured(ctx context.Context) dto.FeaturedResponse {
	featured := dto.FeaturedResponse{Rooms: []models.Room{}, Vehicles: []models.Vehicle{}}
	if rooms, err := s.listings.FindRooms(ctx, true, constants.FeaturedLimit); err != nil {
		s.logger.Error("featured rooms: %v", err)
	} else {
		featured.Rooms = rooms
	}
	if vehicles, err := s.listings.FindVehicles(ctx, true, constants.FeaturedLimit); err != nil {
		s.logger.Error("featured vehicles: %v", err)
	} else {
		featured.Vehicles = vehicles
	}
	return featured
}

// Listing fetches one listing of either kind.
func (s *CatalogService) Listing(ctx context.Context, kind, id string) (models.Listing, error) {
	if strings.TrimSpace(id) == "" {
		return nil, apperrors.NewAppError(apperrors.ErrCodeRequiredField, "item id is required", nil)
	}
	switch kind {
	case constants.KindRoom:
		room, err := s.listings.GetRoom(ctx, id)
		if err != nil {
			return nil, wrapStoreError("load room", err)
		}
		return *room, nil
	case constants.KindVehicle:
		vehicle, err := s.listings.GetVehicle(ctx, id)
		if err != nil {
			return nil, wrapStoreError("load vehicle", err)
		}
		return *vehicle, nil
	default:
		return nil, apperrors.NewValidationError("item type must be room or vehicle")
	}
}

func (s *CatalogService) RoomDetail(ctx context.Context, id, userID string) (dto.ListingDetail[models.Room], error) {
	room, err := s.listings.GetRoom(ctx, id)
	if err != nil {
		return dto.ListingDetail[models.Room]{}, wrapStoreError("load room", err)
	}
	detail := dto.ListingDetail[models.Room]{Listing: *room}
	detail.Reviews, detail.Rating = s.itemReviews(ctx, constants.KindRoom, id)
	detail.IsFavorite = s.isFavorite(ctx, userID, constants.KindRoom, id)
	return detail, nil
}

func (s *CatalogService) VehicleDetail(ctx context.Context, id, userID string) (dto.ListingDetail[models.Vehicle], error) {
	vehicle, err := s.listings.GetVehicle(ctx, id)
	if err != nil {
		return dto.ListingDetail[models.Vehicle]{}, wrapStoreError("load vehicle", err)
	}
	detail := dto.ListingDetail[models.Vehicle]{Listing: *vehicle}
	detail.Reviews, detail.Rating = s.itemReviews(ctx, constants.KindVehicle, id)
	detail.IsFavorite = s.isFavorite(ctx, userID, constants.KindVehicle, id)
	return detail, nil
}

// itemReviews degrades to "no reviews" when the review store fails; the detail
// page is still worth showing.
func (s *CatalogService) itemReviews(ctx context.Context, kind, id string) ([]models.Review, dto.RatingSummary) {
	reviews, err := s.reviews.FindByItem(ctx, kind, id)
	if err != nil {
		s.logger.Error("reviews for %s %s: %v", kind, id, err)
		return []models.Review{}, dto.RatingSummary{}
	}
	return reviews, SummarizeRatings(reviews)
}

func (s *CatalogService) isFavorite(ctx context.Context, userID, kind, id string) bool {
	if userID == "" || s.favorites == nil {
		return false
	}
	ok, err := s.favorites.IsFavorite(ctx, userID, kind, id)
	if err != nil {
		s.logger.Error("favorite flag for %s %s: %v", kind, id, err)
		return false
	}
	return ok
}

// Reviews returns the reviews of one item, newest first, with their summary.
func (s *CatalogService) Reviews(ctx context.Context, kind, itemID string) (dto.ReviewsResponse, error) {
	if _, err := s.Listing(ctx, kind, itemID); err != nil {
		return dto.ReviewsResponse{}, err
	}
	reviews, err := s.reviews.FindByItem(ctx, kind, itemID)
	if err != nil {
		return dto.ReviewsResponse{}, wrapStoreError("load reviews", err)
	}
	return dto.ReviewsResponse{Summary: SummarizeRatings(reviews), Reviews: reviews}, nil
}

// AddReview stores a review for an existing listing.
func (s *CatalogService) AddReview(ctx context.Context, userID string, req dto.CreateReviewRequest) (*models.Review, error) {
	if _, err := s.Listing(ctx, req.BookingType, req.ItemID); err != nil {
		return nil, err
	}
	review := &models.Review{
		ID:          uuid.NewString(),
		UserID:      userID,
		UserName:    strings.TrimSpace(req.UserName),
		BookingType: req.BookingType,
		ItemID:      req.ItemID,
		Rating:      req.Rating,
		CreatedAt:   s.clock.Now().UTC(),
	}
	if comment := strings.TrimSpace(req.Comment); comment != "" {
		review.Comment = &comment
	}
	if err := review.ValidateRating(); err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeValidation, "rating must be between 1 and 5", err)
	}
	if err := s.reviews.Insert(ctx, review); err != nil {
		return nil, wrapStoreError("save review", err)
	}
	s.logger.Info("review %s added for %s %s", review.ID, review.BookingType, review.ItemID)
	return review, nil
}

// Suggest offers close categories and locations for a search term.
func (s *CatalogService) Suggest(ctx context.Context, kind, term string) ([]string, error) {
	var candidates []string
	switch kind {
	case constants.KindRoom:
		rooms, err := s.Rooms(ctx)
		if err != nil {
			return nil, err
		}
		for _, r := range rooms {
			candidates = append(candidates, r.RoomType, r.Location)
		}
	case constants.KindVehicle:
		vehicles, err := s.Vehicles(ctx)
		if err != nil {
			return nil, err
		}
		for _, v := range vehicles {
			candidates = append(candidates, v.VehicleType, v.Location, v.Brand)
		}
	default:
		return nil, apperrors.NewValidationError("item type must be room or vehicle")
	}
	return Suggest(term, candidates), nil
}
