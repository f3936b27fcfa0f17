package api

import (
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/sportbook/field-booking-backend/internal/auth"
	"github.com/sportbook/field-booking-backend/internal/availability"
	availabilityHttp "github.com/sportbook/field-booking-backend/internal/availability/http"
	"github.com/sportbook/field-booking-backend/internal/booking"
	bookingHttp "github.com/sportbook/field-booking-backend/internal/booking/http"
	"github.com/sportbook/field-booking-backend/internal/field"
	fieldHttp "github.com/sportbook/field-booking-backend/internal/field/http"
	"github.com/sportbook/field-booking-backend/internal/fieldtype"
	fieldtypeHttp "github.com/sportbook/field-booking-backend/internal/fieldtype/http"
	"github.com/sportbook/field-booking-backend/internal/location"
	locationHttp "github.com/sportbook/field-booking-backend/internal/location/http"
	"github.com/sportbook/field-booking-backend/internal/photo"
	photoHttp "github.com/sportbook/field-booking-backend/internal/photo/http"
	"github.com/sportbook/field-booking-backend/internal/pricing"
	pricingHttp "github.com/sportbook/field-booking-backend/internal/pricing/http"
	"github.com/sportbook/field-booking-backend/internal/schedule"
	scheduleHttp "github.com/sportbook/field-booking-backend/internal/schedule/http"
	"github.com/sportbook/field-booking-backend/internal/sporttype"
	sporttypeHttp "github.com/sportbook/field-booking-backend/internal/sporttype/http"
	"github.com/sportbook/field-booking-backend/internal/user"
	userHttp "github.com/sportbook/field-booking-backend/internal/user/http"
)

// Config carries the services and settings the router needs.
type Config struct {
	IsProduction bool
	ProdOrigins  string

	UserService         user.Service
	LocationService     location.Service
	FieldTypeService    fieldtype.Service
	SportTypeService    sporttype.Service
	FieldService        field.Service
	ScheduleService     schedule.Service
	PricingService      pricing.Service
	BookingService      booking.Service
	AvailabilityService availability.Service
	PhotoService        photo.Service

	JWTManager *auth.JWTManager
}

// NewRouter assembles middleware (logging, recovery, CORS, request IDs)
// and registers every module's routes under /api.
func NewRouter(cfg Config) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery(), RequestID())

	corsConfig := cors.DefaultConfig()
	if cfg.IsProduction {
		corsConfig.AllowOrigins = strings.Split(cfg.ProdOrigins, ",")
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	authMiddleware := auth.AuthRequired(cfg.JWTManager)

	userHandler := userHttp.NewHandler(cfg.UserService)
	locationHandler := locationHttp.NewHandler(cfg.LocationService)
	fieldTypeHandler := fieldtypeHttp.NewHandler(cfg.FieldTypeService)
	sportTypeHandler := sporttypeHttp.NewHandler(cfg.SportTypeService)
	fieldHandler := fieldHttp.NewHandler(cfg.FieldService)
	scheduleHandler := scheduleHttp.NewHandler(cfg.ScheduleService)
	pricingHandler := pricingHttp.NewHandler(cfg.PricingService)
	bookingHandler := bookingHttp.NewHandler(cfg.BookingService)
	availabilityHandler := availabilityHttp.NewHandler(cfg.AvailabilityService)
	photoHandler := photoHttp.NewHandler(cfg.PhotoService)

	api := r.Group("/api")
	{
		userHttp.RegisterRoutes(api, userHandler)
		locationHttp.RegisterRoutes(api, locationHandler, authMiddleware)
		fieldtypeHttp.RegisterRoutes(api, fieldTypeHandler, authMiddleware)
		sporttypeHttp.RegisterRoutes(api, sportTypeHandler, authMiddleware)
		fieldHttp.RegisterRoutes(api, fieldHandler, authMiddleware)
		availabilityHttp.RegisterRoutes(api, availabilityHandler)
		scheduleHttp.RegisterRoutes(api, scheduleHandler, authMiddleware)
		pricingHttp.RegisterRoutes(api, pricingHandler, authMiddleware)
		bookingHttp.RegisterRoutes(api, bookingHandler, authMiddleware)
		photoHttp.RegisterRoutes(api, photoHandler, authMiddleware)
	}

	return r
}
