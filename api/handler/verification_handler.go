package handler

import (
	"errors"
	"net/http"

	"gowheels/api/middleware"
	"gowheels/internal/dto"
	"gowheels/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type VerificationHandler struct {
	Service  *service.VerificationService
	Validate *validator.Validate
}

func NewVerificationHandler(svc *service.VerificationService, validate *validator.Validate) *VerificationHandler {
	return &VerificationHandler{Service: svc, Validate: validate}
}

func (h *VerificationHandler) SendOTP(c echo.Context) error {
	var req dto.SendOTPRequest
	if err := decodeJSON(c, &req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	if err := h.Validate.Struct(req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	if err := h.Service.SendOTP(c.Request().Context(), req.PhoneNumber); err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "OTP sent successfully"})
}

// VerifyOTP confirms a challenge. The caller's identity is bound only when
// the request carries a valid bearer token; anonymous confirmation verifies
// the challenge without touching any profile.
func (h *VerificationHandler) VerifyOTP(c echo.Context) error {
	var req dto.VerifyOTPRequest
	if err := decodeJSON(c, &req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	if err := h.Validate.Struct(req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}

	var userID *uuid.UUID
	if id, ok := middleware.UserIDFromContext(c); ok {
		userID = &id
	}

	if err := h.Service.VerifyOTP(c.Request().Context(), req.PhoneNumber, req.OTP, userID); err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Phone number verified successfully"})
}

func (h *VerificationHandler) UploadAadhaar(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return writeError(c, http.StatusUnauthorized, errors.New("unauthorized"))
	}

	fileHeader, err := c.FormFile("aadhaar_card")
	if err != nil {
		return writeError(c, http.StatusBadRequest, errors.New("aadhaar_card file is required"))
	}
	file, err := fileHeader.Open()
	if err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	defer file.Close()

	url, err := h.Service.UploadAadhaar(
		c.Request().Context(),
		userID,
		fileHeader.Filename,
		fileHeader.Header.Get("Content-Type"),
		file,
	)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.UploadResponse{URL: url})
}

func (h *VerificationHandler) Profile(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return writeError(c, http.StatusUnauthorized, errors.New("unauthorized"))
	}
	profile, err := h.Service.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.VerificationProfileFromEntity(profile))
}
