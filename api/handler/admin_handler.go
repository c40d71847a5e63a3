package handler

import (
	"errors"
	"net/http"

	"gowheels/api/middleware"
	"gowheels/internal/dto"
	"gowheels/internal/entity"
	"gowheels/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// AdminHandler exposes the review and bulk actions behind the admin role
// guard. Each action is the privileged variant of a normal single-entity
// operation.
type AdminHandler struct {
	Verification *service.VerificationService
	Bikes        *service.BikeService
	Bookings     *service.BookingService
	Validate     *validator.Validate
}

func NewAdminHandler(
	verification *service.VerificationService,
	bikes *service.BikeService,
	bookings *service.BookingService,
	validate *validator.Validate,
) *AdminHandler {
	return &AdminHandler{
		Verification: verification,
		Bikes:        bikes,
		Bookings:     bookings,
		Validate:     validate,
	}
}

func (h *AdminHandler) ReviewBike(c echo.Context) error {
	adminID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return writeError(c, http.StatusUnauthorized, errors.New("unauthorized"))
	}
	bikeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return writeError(c, http.StatusBadRequest, errors.New("invalid bike id"))
	}

	var req dto.ReviewBikeRequest
	if err := decodeJSON(c, &req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	if err := h.Validate.Struct(req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}

	if err := h.Bikes.Review(c.Request().Context(), adminID, bikeID, entity.BikeVerificationStatus(req.Status)); err != nil {
		return writeServiceError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *AdminHandler) ReviewDocument(c echo.Context) error {
	adminID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return writeError(c, http.StatusUnauthorized, errors.New("unauthorized"))
	}
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return writeError(c, http.StatusBadRequest, errors.New("invalid user id"))
	}

	var req dto.ReviewDocumentRequest
	if err := decodeJSON(c, &req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	if err := h.Validate.Struct(req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}

	if err := h.Verification.ReviewDocument(c.Request().Context(), adminID, userID, *req.Verified); err != nil {
		return writeServiceError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *AdminHandler) BulkTransitionBookings(c echo.Context) error {
	adminID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return writeError(c, http.StatusUnauthorized, errors.New("unauthorized"))
	}

	var req dto.BulkTransitionRequest
	if err := decodeJSON(c, &req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	if err := h.Validate.Struct(req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}

	ids := make([]uuid.UUID, 0, len(req.BookingIDs))
	for _, raw := range req.BookingIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			return writeError(c, http.StatusBadRequest, errors.New("invalid booking id"))
		}
		ids = append(ids, id)
	}

	result := h.Bookings.BulkTransition(c.Request().Context(), adminID, ids, entity.BookingStatus(req.Status))

	response := dto.BulkTransitionResponse{Failed: make(map[string]string)}
	for _, id := range result.Transitioned {
		response.Transitioned = append(response.Transitioned, id.String())
	}
	for id, itemErr := range result.Failed {
		response.Failed[id.String()] = itemErr.Error()
	}
	return c.JSON(http.StatusOK, response)
}
