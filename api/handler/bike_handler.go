package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"gowheels/api/middleware"
	"gowheels/internal/dto"
	"gowheels/internal/entity"
	"gowheels/internal/repository"
	"gowheels/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

type BikeHandler struct {
	Service  *service.BikeService
	Blobs    service.BlobStore
	Validate *validator.Validate
}

func NewBikeHandler(svc *service.BikeService, blobs service.BlobStore, validate *validator.Validate) *BikeHandler {
	return &BikeHandler{Service: svc, Blobs: blobs, Validate: validate}
}

// Create accepts either a JSON body with image URLs or a multipart form
// whose image and number_plate_image files are pushed through the blob
// store first.
func (h *BikeHandler) Create(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return writeError(c, http.StatusUnauthorized, errors.New("unauthorized"))
	}

	var req dto.CreateBikeRequest
	contentType := c.Request().Header.Get(echo.HeaderContentType)
	if strings.HasPrefix(contentType, echo.MIMEMultipartForm) {
		if err := h.bindMultipartCreate(c, userID, &req); err != nil {
			return writeError(c, http.StatusBadRequest, err)
		}
	} else {
		if err := decodeJSON(c, &req); err != nil {
			return writeError(c, http.StatusBadRequest, err)
		}
	}
	if err := h.Validate.Struct(req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}

	bike, err := h.Service.Create(c.Request().Context(), userID, service.CreateBikeInput{
		Title:               req.Title,
		Description:         req.Description,
		BikeType:            entity.BikeType(req.BikeType),
		PricePerDay:         req.PricePerDay,
		Location:            req.Location,
		ImageURL:            req.ImageURL,
		NumberPlate:         req.NumberPlate,
		NumberPlateImageURL: req.NumberPlateImageURL,
	})
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, dto.BikeResponseFromEntity(bike))
}

func (h *BikeHandler) bindMultipartCreate(c echo.Context, userID uuid.UUID, req *dto.CreateBikeRequest) error {
	req.Title = c.FormValue("title")
	req.Description = c.FormValue("description")
	req.BikeType = c.FormValue("bike_type")
	req.Location = c.FormValue("location")
	if plate := c.FormValue("number_plate"); plate != "" {
		req.NumberPlate = &plate
	}

	price, err := decimal.NewFromString(c.FormValue("price_per_day"))
	if err != nil {
		return errors.New("invalid price_per_day")
	}
	req.PricePerDay = price

	imageURL, err := h.storeFormFile(c, "image", "bikes")
	if err != nil {
		return err
	}
	req.ImageURL = imageURL

	plateImageURL, err := h.storeFormFile(c, "number_plate_image", "bikes/plates")
	if err != nil {
		return err
	}
	req.NumberPlateImageURL = plateImageURL
	return nil
}

// storeFormFile uploads the named form file and returns its URL; an absent
// file is not an error.
func (h *BikeHandler) storeFormFile(c echo.Context, field string, prefix string) (*string, error) {
	fileHeader, err := c.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, nil
		}
		return nil, err
	}
	file, err := fileHeader.Open()
	if err != nil {
		return nil, err
	}
	defer file.Close()

	key := fmt.Sprintf("%s/%s/%s", prefix, uuid.NewString(), fileHeader.Filename)
	url, err := h.Blobs.Put(c.Request().Context(), key, fileHeader.Header.Get("Content-Type"), file)
	if err != nil {
		return nil, err
	}
	return &url, nil
}

func (h *BikeHandler) Update(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return writeError(c, http.StatusUnauthorized, errors.New("unauthorized"))
	}
	bikeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return writeError(c, http.StatusBadRequest, errors.New("invalid bike id"))
	}

	var req dto.UpdateBikeRequest
	if err := decodeJSON(c, &req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	if err := h.Validate.Struct(req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}

	input := service.UpdateBikeInput{
		Title:       req.Title,
		Description: req.Description,
		PricePerDay: req.PricePerDay,
		Location:    req.Location,
		ImageURL:    req.ImageURL,
		Available:   req.Available,
	}
	if req.BikeType != nil {
		bikeType := entity.BikeType(*req.BikeType)
		input.BikeType = &bikeType
	}

	bike, err := h.Service.Update(c.Request().Context(), bikeID, userID, input)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.BikeResponseFromEntity(bike))
}

func (h *BikeHandler) Get(c echo.Context) error {
	bikeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return writeError(c, http.StatusBadRequest, errors.New("invalid bike id"))
	}
	bike, err := h.Service.Get(c.Request().Context(), bikeID)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.BikeResponseFromEntity(bike))
}

func (h *BikeHandler) List(c echo.Context) error {
	bikes, err := h.Service.List(c.Request().Context(), repository.BikeFilter{
		BikeType: c.QueryParam("bike_type"),
		Location: c.QueryParam("location"),
	})
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.BikeResponsesFromEntities(bikes))
}

func (h *BikeHandler) MyBikes(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return writeError(c, http.StatusUnauthorized, errors.New("unauthorized"))
	}
	bikes, err := h.Service.ListByOwner(c.Request().Context(), userID)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.BikeResponsesFromEntities(bikes))
}
