package main

import (
	"context"
	"io"
	"log"
	"os"
	"time"

	"github.com/tripverse/travel-api/internal/config"
	"github.com/tripverse/travel-api/internal/logging"
	"github.com/tripverse/travel-api/internal/media"
	miniorepo "github.com/tripverse/travel-api/internal/repository/minio"
	"github.com/tripverse/travel-api/internal/repository/postgres"
	"github.com/tripverse/travel-api/internal/service"
	transport "github.com/tripverse/travel-api/internal/transport/http"
	"github.com/tripverse/travel-api/internal/util"
)

func main() {
	cfg := config.Load()

	if cfg.LogstashTCPAddr != "" {
		writer, err := logging.NewLogstashWriter(cfg.LogstashTCPAddr, logging.Config{})
		if err != nil {
			log.Printf("logstash disabled: %v", err)
		} else {
			defer writer.Close()
			log.SetOutput(io.MultiWriter(os.Stdout, writer))
		}
	}

	db, err := postgres.New(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("connect database: %v", err)
	}
	defer db.Close()

	minioClient, err := miniorepo.NewClient(cfg.MinIOEndpoint, cfg.MinIOAccessKey, cfg.MinIOSecretKey, cfg.MinIOUseSSL)
	if err != nil {
		log.Fatalf("connect minio: %v", err)
	}
	publicURL := cfg.MinIOPublicURL
	if publicURL == "" {
		scheme := "http"
		if cfg.MinIOUseSSL {
			scheme = "https"
		}
		publicURL = scheme + "://" + cfg.MinIOEndpoint
	}
	storage := miniorepo.NewStorage(minioClient, publicURL)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := storage.EnsureBucket(ctx, cfg.MinIOBucket); err != nil {
		log.Fatalf("ensure bucket: %v", err)
	}
	cancel()

	tokens := util.NewJWTManager(cfg.JWTSecret, cfg.JWTTTL)

	tours := postgres.NewTourRepo(db)
	hotels := postgres.NewHotelRepo(db)
	cars := postgres.NewCarRepo(db)
	activities := postgres.NewActivityRepo(db)
	tickets := postgres.NewTicketRepo(db)
	categories := postgres.NewCategoryRepo(db)
	users := postgres.NewUserRepo(db)
	bookings := postgres.NewBookingRepo(db)
	reviews := postgres.NewReviewRepo(db)
	wishlist := postgres.NewWishlistRepo(db)

	searchService := service.NewSearchService(tours, hotels, cars, activities, tickets)
	catalogService := service.NewCatalogService(tours, hotels, cars, activities, tickets, categories)
	authService := service.NewAuthService(users, tokens, cfg.GoogleAudience)
	bookingService := service.NewBookingService(bookings, tours, hotels, cars, activities, tickets)
	reviewService := service.NewReviewService(reviews, bookings, tours, hotels, cars, activities)
	wishlistService := service.NewWishlistService(wishlist, catalogService)
	processor := media.NewFFMPEGProcessor(media.FFMPEGConfig{MaxDimension: cfg.ImageMaxDim})
	mediaService := service.NewMediaService(storage, processor, tours, hotels, cars, activities, service.MediaServiceConfig{
		Bucket:        cfg.MinIOBucket,
		MaxImageBytes: cfg.ImageMaxBytes,
		MaxDimension:  cfg.ImageMaxDim,
	})

	e := transport.NewRouter(cfg.AllowOrigins)
	transport.RegisterPages(e, cfg.FrontendBaseURL)
	transport.RegisterSwagger(e)
	transport.RegisterSearch(e, searchService, tokens)
	transport.RegisterContent(e, catalogService)
	transport.RegisterAuth(e, authService, tokens)
	transport.RegisterBookings(e, bookingService, tokens)
	transport.RegisterReviews(e, reviewService, tokens)
	transport.RegisterWishlist(e, wishlistService, tokens)
	transport.RegisterAdmin(e, mediaService, tokens)

	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
