package app

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campuskit/facility-booking-backend/internal/api"
	"github.com/campuskit/facility-booking-backend/internal/auth"
	"github.com/campuskit/facility-booking-backend/internal/booking"
	"github.com/campuskit/facility-booking-backend/internal/campus"
	"github.com/campuskit/facility-booking-backend/internal/config"
	"github.com/campuskit/facility-booking-backend/internal/facility"
	"github.com/campuskit/facility-booking-backend/internal/facilitytype"
	"github.com/campuskit/facility-booking-backend/internal/feedback"
	"github.com/campuskit/facility-booking-backend/internal/jobs"
	"github.com/campuskit/facility-booking-backend/internal/notification"
	"github.com/campuskit/facility-booking-backend/internal/pkg/storage"
	"github.com/campuskit/facility-booking-backend/internal/slot"
	"github.com/campuskit/facility-booking-backend/internal/user"
)

// Container holds the initialized components that are needed externally.
type Container struct {
	Router        *gin.Engine
	JWTManager    *auth.JWTManager
	ExpirySweeper *jobs.ExpirySweeper
}

// NewContainer initializes all modules and returns the container.
func NewContainer(cfg *config.Config, pool *pgxpool.Pool) (*Container, error) {
	// Init Components
	passwordHasher := auth.NewBcryptPasswordHasherWithCost(cfg.BcryptCost)
	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTAccessTokenTTL)

	photoStore, err := storage.NewLocalStorage(cfg.PhotoDir)
	if err != nil {
		return nil, fmt.Errorf("failed to init photo storage: %w", err)
	}

	// User Module
	userRepo := user.NewPgxRepository(pool)
	userService := user.NewService(userRepo, passwordHasher)

	// Campus Module
	campusRepo := campus.NewPgxRepository(pool)
	campusService := campus.NewService(campusRepo)

	// FacilityType Module
	typeRepo := facilitytype.NewPgxRepository(pool)
	typeService := facilitytype.NewService(typeRepo)

	// Facility Module
	facilityRepo := facility.NewPgxRepository(pool)
	facilityService := facility.NewService(facilityRepo, campusService, typeService)
	photoService := facility.NewPhotoService(facilityRepo, photoStore)

	// Slot Module
	slotRepo := slot.NewPgxRepository(pool)
	slotService := slot.NewService(slotRepo)

	// Notification Module
	notificationRepo := notification.NewPgxRepository(pool)
	notificationService := notification.NewService(notificationRepo)
	emailSender := notification.NewSendGridSender(cfg.SendGridAPIKey, cfg.EmailFrom, cfg.EmailFromName)
	decisionNotifier := notification.NewBookingNotifier(notificationService, userService, emailSender)

	// Booking Module
	bookingRepo := booking.NewPgxRepository(pool)
	bookingService := booking.NewService(bookingRepo, facilityService, slotService, decisionNotifier, cfg.BookingWindowDays)

	// Feedback Module
	feedbackRepo := feedback.NewPgxRepository(pool)
	feedbackService := feedback.NewService(feedbackRepo, facilityService)

	// Background Jobs
	expirySweeper := jobs.NewExpirySweeper(bookingRepo, cfg.ExpirySweepSpec)

	// Router
	router := api.NewRouter(api.Config{
		IsProduction:        cfg.IsProduction,
		ProdOrigins:         cfg.ProdOrigins,
		UserService:         userService,
		CampusService:       campusService,
		FacilityTypeService: typeService,
		FacilityService:     facilityService,
		PhotoService:        photoService,
		SlotService:         slotService,
		BookingService:      bookingService,
		FeedbackService:     feedbackService,
		NotificationService: notificationService,
		JWTManager:          jwtManager,
		AuthRateLimit:       cfg.AuthRateLimit,
		AuthRateBurst:       cfg.AuthRateBurst,
	})

	return &Container{
		Router:        router,
		JWTManager:    jwtManager,
		ExpirySweeper: expirySweeper,
	}, nil
}
