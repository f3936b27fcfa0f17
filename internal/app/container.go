package app

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sportbook/field-booking-backend/internal/api"
	"github.com/sportbook/field-booking-backend/internal/auth"
	"github.com/sportbook/field-booking-backend/internal/availability"
	"github.com/sportbook/field-booking-backend/internal/billing"
	"github.com/sportbook/field-booking-backend/internal/booking"
	"github.com/sportbook/field-booking-backend/internal/field"
	"github.com/sportbook/field-booking-backend/internal/fieldtype"
	"github.com/sportbook/field-booking-backend/internal/location"
	"github.com/sportbook/field-booking-backend/internal/photo"
	"github.com/sportbook/field-booking-backend/internal/pkg/storage"
	"github.com/sportbook/field-booking-backend/internal/pricing"
	"github.com/sportbook/field-booking-backend/internal/schedule"
	"github.com/sportbook/field-booking-backend/internal/sporttype"
	"github.com/sportbook/field-booking-backend/internal/user"
)

// Config holds the dependencies and settings required to start the application.
type Config struct {
	IsProduction bool
	ProdOrigins  string
	DBPool       *pgxpool.Pool
	JWTSecret    string
	JWTTTL       time.Duration
	BcryptCost   int
	UploadDir    string
}

// Container holds the initialized components that are needed externally.
type Container struct {
	Router     *gin.Engine
	JWTManager *auth.JWTManager
}

// NewContainer initializes all modules and returns the container.
func NewContainer(cfg Config) (*Container, error) {
	passwordHasher := auth.NewBcryptPasswordHasherWithCost(cfg.BcryptCost)
	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTTTL)

	store, err := storage.NewLocalStorage(cfg.UploadDir)
	if err != nil {
		return nil, err
	}

	// User module
	userRepo := user.NewPgxRepository(cfg.DBPool)
	userService := user.NewService(userRepo, passwordHasher, jwtManager)

	// Reference data
	locRepo := location.NewPgxRepository(cfg.DBPool)
	locService := location.NewService(locRepo)

	ftRepo := fieldtype.NewPgxRepository(cfg.DBPool)
	ftService := fieldtype.NewService(ftRepo)

	stRepo := sporttype.NewPgxRepository(cfg.DBPool)
	stService := sporttype.NewService(stRepo)

	// Field module
	fieldRepo := field.NewPgxRepository(cfg.DBPool)
	fieldService := field.NewService(fieldRepo, ftService, stService, locService)

	// Schedule module
	scheduleRepo := schedule.NewPgxRepository(cfg.DBPool)
	scheduleService := schedule.NewService(scheduleRepo, fieldService, ftService)

	// Pricing module
	priceCatalog := pricing.NewPgxCatalog(cfg.DBPool)
	pricingService := pricing.NewService(priceCatalog, cfg.DBPool, ftService)

	// Billing
	billIssuer := billing.NewPgxIssuer(cfg.DBPool)

	// Booking module. The repository composes the bill issuer and price
	// catalog so amendments run in one transaction.
	bookingRepo := booking.NewPgxRepository(cfg.DBPool, billIssuer, priceCatalog)
	bookingService := booking.NewService(bookingRepo, fieldService, scheduleService, pricingService, billIssuer)

	// Availability module
	availRepo := availability.NewPgxRepository(cfg.DBPool)
	availService := availability.NewService(availRepo)

	// Photo module
	photoRepo := photo.NewPgxRepository(cfg.DBPool)
	photoService := photo.NewService(photoRepo, fieldService, store)

	router := api.NewRouter(api.Config{
		IsProduction:        cfg.IsProduction,
		ProdOrigins:         cfg.ProdOrigins,
		UserService:         userService,
		LocationService:     locService,
		FieldTypeService:    ftService,
		SportTypeService:    stService,
		FieldService:        fieldService,
		ScheduleService:     scheduleService,
		PricingService:      pricingService,
		BookingService:      bookingService,
		AvailabilityService: availService,
		PhotoService:        photoService,
		JWTManager:          jwtManager,
	})

	return &Container{
		Router:     router,
		JWTManager: jwtManager,
	}, nil
}
