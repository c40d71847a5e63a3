package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"gowheels/api/middleware"
	"gowheels/internal/dto"
	"gowheels/internal/entity"
	"gowheels/internal/repository"
	"gowheels/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type bikeStore struct {
	bikes map[uuid.UUID]*entity.Bike
}

func newBikeStore() *bikeStore {
	return &bikeStore{bikes: make(map[uuid.UUID]*entity.Bike)}
}

func (s *bikeStore) Create(_ context.Context, bike *entity.Bike) error {
	bike.ID = uuid.New()
	s.bikes[bike.ID] = bike
	return nil
}

func (s *bikeStore) FindByID(_ context.Context, id uuid.UUID) (*entity.Bike, error) {
	if bike, ok := s.bikes[id]; ok {
		copied := *bike
		return &copied, nil
	}
	return nil, nil
}

func (s *bikeStore) FindByNumberPlate(_ context.Context, plate string) (*entity.Bike, error) {
	for _, bike := range s.bikes {
		if bike.NumberPlate != nil && *bike.NumberPlate == plate {
			copied := *bike
			return &copied, nil
		}
	}
	return nil, nil
}

func (s *bikeStore) Update(_ context.Context, bike *entity.Bike) error {
	copied := *bike
	s.bikes[bike.ID] = &copied
	return nil
}

func (s *bikeStore) List(_ context.Context, _ repository.BikeFilter) ([]entity.Bike, error) {
	var out []entity.Bike
	for _, bike := range s.bikes {
		out = append(out, *bike)
	}
	return out, nil
}

func (s *bikeStore) ListByOwner(_ context.Context, ownerID uuid.UUID) ([]entity.Bike, error) {
	var out []entity.Bike
	for _, bike := range s.bikes {
		if bike.OwnerID == ownerID {
			out = append(out, *bike)
		}
	}
	return out, nil
}

func (s *bikeStore) SetVerification(_ context.Context, id uuid.UUID, status entity.BikeVerificationStatus) error {
	if bike, ok := s.bikes[id]; ok {
		bike.VerificationStatus = status
		bike.IsVerified = status == entity.BikeVerificationVerified
	}
	return nil
}

type blobStub struct {
	keys []string
}

func (s *blobStub) Put(_ context.Context, key string, _ string, body io.Reader) (string, error) {
	if _, err := io.Copy(io.Discard, body); err != nil {
		return "", err
	}
	s.keys = append(s.keys, key)
	return "https://blobs.test/" + key, nil
}

func newBikeHandlerFixture() (*BikeHandler, *bikeStore, *blobStub) {
	store := newBikeStore()
	blobs := &blobStub{}
	svc := service.NewBikeService(store, nil)
	return NewBikeHandler(svc, blobs, validator.New()), store, blobs
}

func doJSON(h echo.HandlerFunc, method string, target string, body string, userID *uuid.UUID) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if userID != nil {
		middleware.SetAuthContext(c, *userID, "user")
	}
	_ = h(c)
	return rec
}

func TestBikeHandlerCreate_IgnoresClientVerificationFields(t *testing.T) {
	h, store, _ := newBikeHandlerFixture()
	ownerID := uuid.New()

	body := `{
		"title": "Trek Marlin 7",
		"bike_type": "mountain",
		"price_per_day": "250.00",
		"location": "Bengaluru",
		"is_verified": true,
		"verification_status": "verified"
	}`
	rec := doJSON(h.Create, http.MethodPost, "/bikes", body, &ownerID)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var resp dto.BikeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.IsVerified)
	assert.Equal(t, "pending", resp.VerificationStatus)
	assert.Equal(t, ownerID.String(), resp.OwnerID)

	require.Len(t, store.bikes, 1)
	for _, bike := range store.bikes {
		assert.False(t, bike.IsVerified)
		assert.Equal(t, entity.BikeVerificationPending, bike.VerificationStatus)
	}
}

func TestBikeHandlerCreate_MultipartUploadsImages(t *testing.T) {
	h, store, blobs := newBikeHandlerFixture()
	ownerID := uuid.New()

	var buf bytes.Buffer
	form := multipart.NewWriter(&buf)
	require.NoError(t, form.WriteField("title", "Royal Enfield"))
	require.NoError(t, form.WriteField("bike_type", "cruiser"))
	require.NoError(t, form.WriteField("price_per_day", "500.00"))
	require.NoError(t, form.WriteField("location", "Pune"))
	require.NoError(t, form.WriteField("number_plate", "KA01AB1234"))
	imagePart, err := form.CreateFormFile("image", "bike.jpg")
	require.NoError(t, err)
	_, err = imagePart.Write([]byte("jpeg bytes"))
	require.NoError(t, err)
	platePart, err := form.CreateFormFile("number_plate_image", "plate.jpg")
	require.NoError(t, err)
	_, err = platePart.Write([]byte("jpeg bytes"))
	require.NoError(t, err)
	require.NoError(t, form.Close())

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/bikes", &buf)
	req.Header.Set(echo.HeaderContentType, form.FormDataContentType())
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	middleware.SetAuthContext(c, ownerID, "user")

	require.NoError(t, h.Create(c))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	require.Len(t, blobs.keys, 2)
	assert.True(t, strings.HasPrefix(blobs.keys[0], "bikes/"))
	assert.True(t, strings.HasPrefix(blobs.keys[1], "bikes/plates/"))

	require.Len(t, store.bikes, 1)
	for _, bike := range store.bikes {
		require.NotNil(t, bike.ImageURL)
		assert.True(t, strings.HasPrefix(*bike.ImageURL, "https://blobs.test/bikes/"))
		require.NotNil(t, bike.NumberPlateImageURL)
		assert.True(t, strings.HasPrefix(*bike.NumberPlateImageURL, "https://blobs.test/bikes/plates/"))
		require.NotNil(t, bike.NumberPlate)
		assert.Equal(t, "KA01AB1234", *bike.NumberPlate)
	}
}

func TestBikeHandlerCreate_MultipartWithoutImages(t *testing.T) {
	h, store, blobs := newBikeHandlerFixture()
	ownerID := uuid.New()

	var buf bytes.Buffer
	form := multipart.NewWriter(&buf)
	require.NoError(t, form.WriteField("title", "City cruiser"))
	require.NoError(t, form.WriteField("bike_type", "hybrid"))
	require.NoError(t, form.WriteField("price_per_day", "120.00"))
	require.NoError(t, form.Close())

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/bikes", &buf)
	req.Header.Set(echo.HeaderContentType, form.FormDataContentType())
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	middleware.SetAuthContext(c, ownerID, "user")

	require.NoError(t, h.Create(c))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Empty(t, blobs.keys)
	require.Len(t, store.bikes, 1)
	for _, bike := range store.bikes {
		assert.Nil(t, bike.ImageURL)
	}
}

func TestBikeHandlerCreate_RequiresAuth(t *testing.T) {
	h, _, _ := newBikeHandlerFixture()

	rec := doJSON(h.Create, http.MethodPost, "/bikes", `{}`, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestBikeHandlerCreate_RejectsUnknownBikeType(t *testing.T) {
	h, _, _ := newBikeHandlerFixture()
	ownerID := uuid.New()

	body := `{"title": "Unicycle", "bike_type": "unicycle", "price_per_day": "10.00"}`
	rec := doJSON(h.Create, http.MethodPost, "/bikes", body, &ownerID)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestBikeHandlerCreate_DuplicatePlateConflicts(t *testing.T) {
	h, _, _ := newBikeHandlerFixture()
	ownerID := uuid.New()

	body := `{"title": "Royal Enfield", "bike_type": "cruiser", "price_per_day": "500.00", "number_plate": "KA01AB1234"}`
	rec := doJSON(h.Create, http.MethodPost, "/bikes", body, &ownerID)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = doJSON(h.Create, http.MethodPost, "/bikes", body, &ownerID)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestBikeHandlerUpdate_NonOwnerForbidden(t *testing.T) {
	h, store, _ := newBikeHandlerFixture()
	ownerID := uuid.New()

	bike := &entity.Bike{
		OwnerID:            ownerID,
		Title:              "City cruiser",
		BikeType:           entity.BikeTypeCruiser,
		PricePerDay:        decimal.RequireFromString("100.00"),
		VerificationStatus: entity.BikeVerificationPending,
	}
	require.NoError(t, store.Create(context.Background(), bike))

	stranger := uuid.New()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPut, "/bikes/"+bike.ID.String(), strings.NewReader(`{"title": "Hijacked"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(bike.ID.String())
	middleware.SetAuthContext(c, stranger, "user")

	require.NoError(t, h.Update(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "City cruiser", store.bikes[bike.ID].Title)
}
