package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"gowheels/api/handler"
	apiMiddleware "gowheels/api/middleware"
	"gowheels/api/routes"
	"gowheels/config"
	"gowheels/internal/entity"
	"gowheels/internal/repository"
	"gowheels/internal/service"
	"gowheels/internal/utils"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"
)

func main() {
	db := config.ConnectionDb()
	validate := validator.New()

	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetOutput(os.Stdout)

	if err := db.AutoMigrate(
		&entity.User{},
		&entity.UserProfile{},
		&entity.OTPChallenge{},
		&entity.Bike{},
		&entity.Booking{},
		&entity.AuditLog{},
	); err != nil {
		logger.WithError(err).Fatal("database migration failed")
	}

	secret := []byte(os.Getenv("JWT_SECRET"))
	if len(secret) == 0 {
		logger.Fatal("JWT_SECRET is required")
	}
	tokens := &utils.JWTManager{
		Secret:          secret,
		Issuer:          os.Getenv("JWT_ISSUER"),
		AccessTokenTTL:  time.Hour,
		RefreshTokenTTL: 7 * 24 * time.Hour,
	}

	smsSender, err := service.NewTwilioSMSSender(service.TwilioConfig{
		AccountSID: os.Getenv("TWILIO_ACCOUNT_SID"),
		AuthToken:  os.Getenv("TWILIO_AUTH_TOKEN"),
		FromNumber: os.Getenv("TWILIO_FROM_NUMBER"),
	})
	if err != nil {
		logger.WithError(err).Fatal("twilio sender init failed")
	}

	blobStore, err := service.NewS3BlobStore(context.Background(), service.S3Config{
		Region:        os.Getenv("AWS_REGION"),
		Bucket:        os.Getenv("S3_BUCKET"),
		PublicBaseURL: os.Getenv("S3_PUBLIC_BASE_URL"),
	})
	if err != nil {
		logger.WithError(err).Fatal("blob store init failed")
	}

	userRepo := repository.NewUserRepository(db)
	profileRepo := repository.NewUserProfileRepository(db)
	otpRepo := repository.NewOTPChallengeRepository(db)
	bikeRepo := repository.NewBikeRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	auditRepo := repository.NewAuditLogRepository(db)

	authService := service.NewAuthService(userRepo, service.BcryptPasswordHasher{}, tokens)
	verificationService := service.NewVerificationService(
		profileRepo, otpRepo, auditRepo, smsSender, blobStore, service.RealClock{},
	)
	bikeService := service.NewBikeService(bikeRepo, auditRepo)
	bookingService := service.NewBookingService(bookingRepo, bikeRepo, auditRepo)

	app := echo.New()
	app.HideBanner = true
	app.HidePort = true
	app.Use(echoMiddleware.Recover())
	app.Use(echoMiddleware.CORS())
	app.Use(echoMiddleware.RequestLoggerWithConfig(echoMiddleware.RequestLoggerConfig{
		LogStatus:   true,
		LogMethod:   true,
		LogURI:      true,
		LogRemoteIP: true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v echoMiddleware.RequestLoggerValues) error {
			entry := logger.WithFields(logrus.Fields{
				"status": v.Status,
				"method": v.Method,
				"uri":    v.URI,
				"ip":     v.RemoteIP,
			})
			if v.Error != nil {
				entry.WithError(v.Error).Error("request")
				return nil
			}
			entry.Info("request")
			return nil
		},
	}))

	authMiddleware := apiMiddleware.AuthMiddleware{JWT: tokens}
	router := routes.NewRouter(
		app,
		handler.NewAuthHandler(authService, validate),
		handler.NewVerificationHandler(verificationService, validate),
		handler.NewBikeHandler(bikeService, blobStore, validate),
		handler.NewBookingHandler(bookingService, validate),
		handler.NewAdminHandler(verificationService, bikeService, bookingService, validate),
		authMiddleware,
	)
	router.RegisterRoutes()

	addr := os.Getenv("HTTP_ADDR")
	if addr == "" {
		addr = ":8080"
	}
	server := &http.Server{
		Addr:              addr,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.WithField("addr", addr).Info("server started")
	if err := app.StartServer(server); err != nil {
		logger.WithError(err).Fatal("server stopped")
	}
}
