package routes

import (
	"time"

	"gowheels/api/handler"
	"gowheels/api/middleware"
	"gowheels/internal/entity"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

type Router struct {
	Echo           *echo.Echo
	Auth           *handler.AuthHandler
	Verification   *handler.VerificationHandler
	Bikes          *handler.BikeHandler
	Bookings       *handler.BookingHandler
	Admin          *handler.AdminHandler
	AuthMiddleware middleware.AuthMiddleware
	OTPRate        *middleware.RateLimiter
}

func NewRouter(
	e *echo.Echo,
	auth *handler.AuthHandler,
	verification *handler.VerificationHandler,
	bikes *handler.BikeHandler,
	bookings *handler.BookingHandler,
	admin *handler.AdminHandler,
	authMiddleware middleware.AuthMiddleware,
) *Router {
	return &Router{
		Echo:           e,
		Auth:           auth,
		Verification:   verification,
		Bikes:          bikes,
		Bookings:       bookings,
		Admin:          admin,
		AuthMiddleware: authMiddleware,
		OTPRate:        middleware.NewRateLimiter(rate.Limit(1), 3, 10*time.Minute),
	}
}

func (r *Router) RegisterRoutes() {
	e := r.Echo
	requireAuth := r.AuthMiddleware.RequireAuth

	e.POST("/auth/register", r.Auth.Register)
	e.POST("/auth/login", r.Auth.Login)
	e.POST("/auth/token/refresh", r.Auth.Refresh)
	e.GET("/auth/profile", r.Auth.Me, requireAuth)

	e.POST("/send-otp", r.Verification.SendOTP, r.OTPRate.Middleware())
	e.POST("/verify-otp", r.Verification.VerifyOTP, r.AuthMiddleware.OptionalAuth, r.OTPRate.Middleware())
	e.POST("/upload-aadhaar", r.Verification.UploadAadhaar, requireAuth)
	e.GET("/user-profile", r.Verification.Profile, requireAuth)

	e.GET("/bikes", r.Bikes.List)
	e.GET("/bikes/my_bikes", r.Bikes.MyBikes, requireAuth)
	e.GET("/bikes/:id", r.Bikes.Get)
	e.POST("/bikes", r.Bikes.Create, requireAuth)
	e.PUT("/bikes/:id", r.Bikes.Update, requireAuth)

	e.POST("/bookings", r.Bookings.Create, requireAuth)
	e.GET("/bookings", r.Bookings.MyBookings, requireAuth)
	e.GET("/bookings/my_bookings", r.Bookings.MyBookings, requireAuth)
	e.GET("/bookings/my_rentals", r.Bookings.MyRentals, requireAuth)
	e.POST("/bookings/:id/status", r.Bookings.Transition, requireAuth)

	admin := e.Group("/admin", requireAuth, middleware.RequireRole(entity.UserRoleAdmin))
	admin.POST("/bikes/:id/review", r.Admin.ReviewBike)
	admin.POST("/users/:id/document", r.Admin.ReviewDocument)
	admin.POST("/bookings/status", r.Admin.BulkTransitionBookings)
}
