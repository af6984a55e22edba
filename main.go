package main

import (
	"log"

	"campusrent/config"
	"campusrent/controllers"
	"campusrent/jobs"
	"campusrent/repository"
	"campusrent/repository/memory"
	"campusrent/routes"
	"campusrent/services"
	"campusrent/services/logger"
	"campusrent/utils"
)

type stores struct {
	listings  services.ListingStore
	bookings  services.BookingStore
	reviews   services.ReviewStore
	favorites services.FavoriteStore
}

func openStores(cfg *config.AppConfig, appLogger logger.Logger) (stores, error) {
	if cfg.StoreDriver == config.StoreDriverMemory {
		store := memory.NewStore()
		if err := memory.SeedDemo(store); err != nil {
			return stores{}, err
		}
		appLogger.Info("using in-memory store with demo data")
		return stores{
			listings:  store,
			bookings:  store,
			reviews:   store.Reviews(),
			favorites: store.Favorites(),
		}, nil
	}

	db, sqlxDB, err := config.ConnectDB(cfg.DatabaseDSN)
	if err != nil {
		return stores{}, err
	}
	return stores{
		listings:  repository.NewListingRepository(db),
		bookings:  repository.NewBookingRepository(db),
		reviews:   repository.NewReviewRepository(sqlxDB),
		favorites: repository.NewFavoriteRepository(db),
	}, nil
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	logFile, err := utils.TeeStandardLog(cfg.LogDir)
	if err != nil {
		log.Fatalf("Failed to open log file: %v", err)
	}
	defer logFile.Close()
	appLogger := logger.NewDefaultLogger(logger.ParseLevel(cfg.LogLevel))

	router, m, c := config.InitApp()

	st, err := openStores(cfg, appLogger)
	if err != nil {
		log.Fatalf("Failed to open stores: %v", err)
	}

	var cache services.Cache = services.NewMemoryCache()
	rdb, err := config.ConnectRedis(cfg)
	if err != nil {
		appLogger.Error("redis unavailable, caching in process memory: %v", err)
	} else if rdb != nil {
		cache = services.NewRedisCache(rdb)
	}

	cld, err := config.ConnectCloudinary(cfg)
	if err != nil {
		appLogger.Error("cloudinary config invalid, serving raw image refs: %v", err)
	}
	images := services.NewImageResolver(cld, appLogger)

	favorites := services.NewFavoriteService(st.favorites, appLogger)
	catalog := services.NewCatalogService(services.CatalogServiceOptions{
		Listings:  st.listings,
		Reviews:   st.reviews,
		Favorites: favorites,
		Cache:     cache,
		CacheTTL:  cfg.ListingCacheTTL,
		Logger:    appLogger,
	})
	facade := services.NewBookingFacade(catalog, st.bookings, services.MockPayment{},
		services.NewMelodyNotifier(m, appLogger), services.SystemClock{}, appLogger)

	if err := jobs.InitCronJobs(c, cfg.CompletionCron, facade, appLogger); err != nil {
		log.Fatalf("Failed to initialize cron jobs: %v", err)
	}
	defer c.Stop()

	routes.SetupRoutes(router, routes.Handlers{
		Listings:  controllers.NewListingController(catalog, favorites, cache, images, appLogger),
		Bookings:  controllers.NewBookingController(facade, images),
		Reviews:   controllers.NewReviewController(catalog),
		Favorites: controllers.NewFavoriteController(favorites),
	}, cfg.JWTSecret, m)

	log.Println("Server starting on port " + cfg.Port + "...")
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
