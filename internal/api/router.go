package api

import (
	"net/http"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/campuskit/facility-booking-backend/internal/auth"
	"github.com/campuskit/facility-booking-backend/internal/booking"
	bookingHttp "github.com/campuskit/facility-booking-backend/internal/booking/http"
	"github.com/campuskit/facility-booking-backend/internal/campus"
	campusHttp "github.com/campuskit/facility-booking-backend/internal/campus/http"
	"github.com/campuskit/facility-booking-backend/internal/facility"
	facilityHttp "github.com/campuskit/facility-booking-backend/internal/facility/http"
	"github.com/campuskit/facility-booking-backend/internal/facilitytype"
	facilitytypeHttp "github.com/campuskit/facility-booking-backend/internal/facilitytype/http"
	"github.com/campuskit/facility-booking-backend/internal/feedback"
	feedbackHttp "github.com/campuskit/facility-booking-backend/internal/feedback/http"
	"github.com/campuskit/facility-booking-backend/internal/notification"
	notificationHttp "github.com/campuskit/facility-booking-backend/internal/notification/http"
	"github.com/campuskit/facility-booking-backend/internal/slot"
	slotHttp "github.com/campuskit/facility-booking-backend/internal/slot/http"
	"github.com/campuskit/facility-booking-backend/internal/user"
	userHttp "github.com/campuskit/facility-booking-backend/internal/user/http"
)

// Config holds everything the router needs to assemble the API.
type Config struct {
	IsProduction bool
	ProdOrigins  string

	UserService         user.Service
	CampusService       campus.Service
	FacilityTypeService facilitytype.Service
	FacilityService     facility.Service
	PhotoService        facility.PhotoService
	SlotService         slot.Service
	BookingService      booking.Service
	FeedbackService     feedback.Service
	NotificationService notification.Service

	JWTManager *auth.JWTManager

	AuthRateLimit float64
	AuthRateBurst int
}

// NewRouter initializes the HTTP router engine.
// It assembles middleware (CORS, Logger, Auth) and registers routes for every module.
func NewRouter(cfg Config) *gin.Engine {
	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	// Configure CORS (Cross-Origin Resource Sharing).
	corsConfig := cors.DefaultConfig()
	if cfg.IsProduction && cfg.ProdOrigins != "" {
		corsConfig.AllowOrigins = strings.Split(cfg.ProdOrigins, ",")
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	// authMiddleware: Validates if the request contains a valid JWT.
	authMiddleware := auth.AuthRequired(cfg.JWTManager)
	// adminMiddleware: Further checks if the authenticated user is an admin.
	adminMiddleware := RequireAdmin()
	// rateLimitMiddleware: Throttles login/register per client IP.
	rateLimitMiddleware := NewRateLimiter(cfg.AuthRateLimit, cfg.AuthRateBurst).Limit()

	// Initialize HTTP handlers for each module (injecting Service dependencies).
	userHandler := userHttp.NewHandler(cfg.UserService, cfg.JWTManager)
	campusHandler := campusHttp.NewHandler(cfg.CampusService)
	typeHandler := facilitytypeHttp.NewHandler(cfg.FacilityTypeService)
	facilityHandler := facilityHttp.NewHandler(cfg.FacilityService, cfg.PhotoService)
	slotHandler := slotHttp.NewHandler(cfg.SlotService, cfg.BookingService)
	bookingHandler := bookingHttp.NewHandler(cfg.BookingService)
	feedbackHandler := feedbackHttp.NewHandler(cfg.FeedbackService)
	notificationHandler := notificationHttp.NewHandler(cfg.NotificationService)

	// Register API routes under /api (the path the existing client calls).
	apiGroup := r.Group("/api")
	{
		userHttp.RegisterRoutes(apiGroup, userHandler, authMiddleware, adminMiddleware, rateLimitMiddleware)
		campusHttp.RegisterRoutes(apiGroup, campusHandler, authMiddleware, adminMiddleware)
		facilitytypeHttp.RegisterRoutes(apiGroup, typeHandler, authMiddleware, adminMiddleware)
		facilityHttp.RegisterRoutes(apiGroup, facilityHandler, authMiddleware, adminMiddleware)
		slotHttp.RegisterRoutes(apiGroup, slotHandler, authMiddleware)
		bookingHttp.RegisterRoutes(apiGroup, bookingHandler, authMiddleware)
		feedbackHttp.RegisterRoutes(apiGroup, feedbackHandler, authMiddleware)
		notificationHttp.RegisterRoutes(apiGroup, notificationHandler, authMiddleware)
	}

	// Operational endpoints.
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return r
}
