package handler

import (
	"errors"
	"net/http"
	"time"

	"gowheels/api/middleware"
	"gowheels/internal/dto"
	"gowheels/internal/entity"
	"gowheels/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type BookingHandler struct {
	Service  *service.BookingService
	Validate *validator.Validate
}

func NewBookingHandler(svc *service.BookingService, validate *validator.Validate) *BookingHandler {
	return &BookingHandler{Service: svc, Validate: validate}
}

func (h *BookingHandler) Create(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return writeError(c, http.StatusUnauthorized, errors.New("unauthorized"))
	}

	var req dto.CreateBookingRequest
	if err := decodeJSON(c, &req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	if err := h.Validate.Struct(req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}

	bikeID, err := uuid.Parse(req.BikeID)
	if err != nil {
		return writeError(c, http.StatusBadRequest, errors.New("invalid bike id"))
	}
	startDate, err := time.Parse(dto.DateLayout, req.StartDate)
	if err != nil {
		return writeError(c, http.StatusBadRequest, errors.New("invalid start date"))
	}
	endDate, err := time.Parse(dto.DateLayout, req.EndDate)
	if err != nil {
		return writeError(c, http.StatusBadRequest, errors.New("invalid end date"))
	}

	booking, err := h.Service.Create(c.Request().Context(), userID, service.CreateBookingInput{
		BikeID:    bikeID,
		StartDate: startDate,
		EndDate:   endDate,
	})
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, dto.BookingResponseFromEntity(booking))
}

func (h *BookingHandler) Transition(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return writeError(c, http.StatusUnauthorized, errors.New("unauthorized"))
	}
	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return writeError(c, http.StatusBadRequest, errors.New("invalid booking id"))
	}

	var req dto.TransitionBookingRequest
	if err := decodeJSON(c, &req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	if err := h.Validate.Struct(req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}

	booking, err := h.Service.Transition(c.Request().Context(), userID, bookingID, entity.BookingStatus(req.Status))
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.BookingResponseFromEntity(booking))
}

func (h *BookingHandler) MyBookings(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return writeError(c, http.StatusUnauthorized, errors.New("unauthorized"))
	}
	bookings, err := h.Service.ListForRenter(c.Request().Context(), userID)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.BookingResponsesFromEntities(bookings))
}

// MyRentals lists bookings other users made against the caller's bikes.
func (h *BookingHandler) MyRentals(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return writeError(c, http.StatusUnauthorized, errors.New("unauthorized"))
	}
	bookings, err := h.Service.ListForOwner(c.Request().Context(), userID)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.BookingResponsesFromEntities(bookings))
}
