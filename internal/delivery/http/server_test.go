package http

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"marketplace/config"
	httpmiddleware "marketplace/internal/delivery/http/middleware"
	"marketplace/internal/delivery/http/router"
	"marketplace/internal/delivery/http/router/handler"
	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/geo"
	"marketplace/internal/domain/service"
	mockSvc "marketplace/internal/mocks/service"
	mockUC "marketplace/internal/mocks/usecase"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testToken = "access-token"

type envelope struct {
	Success bool            `json:"success"`
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Details string `json:"details"`
	} `json:"error"`
}

type apiFixture struct {
	e           *echo.Echo
	userID      uuid.UUID
	userUC      *mockUC.MockUserUsecase
	listingUC   *mockUC.MockListingUsecase
	proximityUC *mockUC.MockProximityUsecase
	imageUC     *mockUC.MockImageUsecase
	tokenSvc    *mockSvc.MockTokenService
}

func newAPIFixture(t *testing.T) *apiFixture {
	t.Helper()

	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "1MB"
	cfg.ApplyDefaults()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	f := &apiFixture{
		e:           NewEcho(cfg, logger),
		userID:      uuid.Must(uuid.NewV7()),
		userUC:      mockUC.NewMockUserUsecase(t),
		listingUC:   mockUC.NewMockListingUsecase(t),
		proximityUC: mockUC.NewMockProximityUsecase(t),
		imageUC:     mockUC.NewMockImageUsecase(t),
		tokenSvc:    mockSvc.NewMockTokenService(t),
	}

	router.NewRouter(router.RouterParams{
		UserHandler: handler.NewUserHandler(handler.UserHandlerParams{UserUC: f.userUC, Logger: logger}),
		ListingHandler: handler.NewListingHandler(handler.ListingHandlerParams{
			ListingUC:   f.listingUC,
			ProximityUC: f.proximityUC,
			Logger:      logger,
		}),
		ImageHandler:   handler.NewImageHandler(handler.ImageHandlerParams{ImageUC: f.imageUC, Logger: logger}),
		AuthMiddleware: httpmiddleware.NewAuthMiddleware(httpmiddleware.AuthMiddlewareParams{TokenService: f.tokenSvc}),
	}).RegisterRoutes(f.e)

	return f
}

// authorize makes testToken resolve to f.userID.
func (f *apiFixture) authorize() {
	f.tokenSvc.EXPECT().ValidateAccessToken(testToken).
		Return(&service.Claims{UserID: f.userID, Type: service.TokenTypeAccess}, nil).Maybe()
}

func (f *apiFixture) do(t *testing.T, method, target string, body io.Reader, contentType string, authed bool) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, target, body)
	if contentType != "" {
		req.Header.Set(echo.HeaderContentType, contentType)
	}
	if authed {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+testToken)
	}
	rec := httptest.NewRecorder()
	f.e.ServeHTTP(rec, req)

	return rec
}

func (f *apiFixture) doJSON(t *testing.T, method, target, body string, authed bool) *httptest.ResponseRecorder {
	t.Helper()

	return f.do(t, method, target, strings.NewReader(body), echo.MIMEApplicationJSON, authed)
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())

	return env
}

func assertError(t *testing.T, rec *httptest.ResponseRecorder, status int, code string) envelope {
	t.Helper()

	assert.Equal(t, status, rec.Code, rec.Body.String())
	env := decode(t, rec)
	assert.False(t, env.Success)
	require.NotNil(t, env.Error)
	assert.Equal(t, code, env.Error.Code)

	return env
}

func TestHealthCheck(t *testing.T) {
	f := newAPIFixture(t)

	rec := f.do(t, http.MethodGet, "/health", nil, "", false)

	assert.Equal(t, http.StatusOK, rec.Code)
	env := decode(t, rec)
	assert.True(t, env.Success)
	assert.JSONEq(t, `{"status":"ok"}`, string(env.Data))
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))
}

func TestAuthRoutes(t *testing.T) {
	t.Run("register", func(t *testing.T) {
		f := newAPIFixture(t)
		user := &entity.User{ID: f.userID, Email: "mona@example.com", Name: "Mona"}
		f.userUC.EXPECT().Register(mock.Anything, &usecase.RegisterInput{
			Name:     "Mona",
			Email:    "mona@example.com",
			Password: "correct horse",
		}).Return(&usecase.RegisterOutput{User: user}, nil).Once()

		rec := f.doJSON(t, http.MethodPost, "/auth/register",
			`{"name":"Mona","email":"mona@example.com","password":"correct horse"}`, false)

		assert.Equal(t, http.StatusCreated, rec.Code)
		env := decode(t, rec)
		assert.True(t, env.Success)
		assert.Contains(t, string(env.Data), `"email":"mona@example.com"`)
		assert.NotContains(t, string(env.Data), "password")
	})

	t.Run("register validation", func(t *testing.T) {
		f := newAPIFixture(t)

		rec := f.doJSON(t, http.MethodPost, "/auth/register",
			`{"name":"Mona","email":"not-an-email","password":"short"}`, false)

		env := assertError(t, rec, http.StatusBadRequest, "VALIDATION_FAILED")
		assert.Contains(t, env.Error.Details, "email")
		assert.Contains(t, env.Error.Details, "password")
	})

	t.Run("register malformed body", func(t *testing.T) {
		f := newAPIFixture(t)

		rec := f.doJSON(t, http.MethodPost, "/auth/register", `{"name":`, false)

		assertError(t, rec, http.StatusBadRequest, "INVALID_INPUT")
	})

	t.Run("email taken", func(t *testing.T) {
		f := newAPIFixture(t)
		f.userUC.EXPECT().Register(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrUserAlreadyExists).Once()

		rec := f.doJSON(t, http.MethodPost, "/auth/register",
			`{"name":"Mona","email":"mona@example.com","password":"correct horse"}`, false)

		assertError(t, rec, http.StatusConflict, "USER_ALREADY_EXISTS")
	})

	t.Run("login", func(t *testing.T) {
		f := newAPIFixture(t)
		f.userUC.EXPECT().Login(mock.Anything, &usecase.LoginInput{Email: "mona@example.com", Password: "correct horse"}).
			Return(&usecase.LoginOutput{AccessToken: "a", RefreshToken: "r", User: &entity.User{ID: f.userID}}, nil).Once()

		rec := f.doJSON(t, http.MethodPost, "/auth/login", `{"email":"mona@example.com","password":"correct horse"}`, false)

		assert.Equal(t, http.StatusOK, rec.Code)
		var tokens handler.TokenResponse
		require.NoError(t, json.Unmarshal(decode(t, rec).Data, &tokens))
		assert.Equal(t, "a", tokens.AccessToken)
		assert.Equal(t, "r", tokens.RefreshToken)
	})

	t.Run("bad credentials", func(t *testing.T) {
		f := newAPIFixture(t)
		f.userUC.EXPECT().Login(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrInvalidCredentials).Once()

		rec := f.doJSON(t, http.MethodPost, "/auth/login", `{"email":"mona@example.com","password":"nope"}`, false)

		assertError(t, rec, http.StatusUnauthorized, "INVALID_CREDENTIALS")
	})

	t.Run("refresh", func(t *testing.T) {
		f := newAPIFixture(t)
		f.userUC.EXPECT().RefreshToken(mock.Anything, &usecase.RefreshTokenInput{RefreshToken: "old"}).
			Return(&usecase.RefreshTokenOutput{AccessToken: "a2", RefreshToken: "r2"}, nil).Once()

		rec := f.doJSON(t, http.MethodPost, "/auth/refresh", `{"refresh_token":"old"}`, false)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, string(decode(t, rec).Data), `"refresh_token":"r2"`)
	})

	t.Run("logout", func(t *testing.T) {
		f := newAPIFixture(t)
		f.userUC.EXPECT().Logout(mock.Anything, &usecase.LogoutInput{RefreshToken: "old"}).Return(nil).Once()

		rec := f.doJSON(t, http.MethodPost, "/auth/logout", `{"refresh_token":"old"}`, false)

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestMeRoutes(t *testing.T) {
	t.Run("delete account", func(t *testing.T) {
		f := newAPIFixture(t)
		f.authorize()
		f.userUC.EXPECT().DeleteAccount(mock.Anything, f.userID).Return(nil).Once()

		rec := f.do(t, http.MethodDelete, "/me", nil, "", true)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("requires token", func(t *testing.T) {
		f := newAPIFixture(t)

		rec := f.do(t, http.MethodDelete, "/me", nil, "", false)

		assertError(t, rec, http.StatusUnauthorized, "UNAUTHORIZED")
	})

	t.Run("own listings", func(t *testing.T) {
		f := newAPIFixture(t)
		f.authorize()
		f.listingUC.EXPECT().ListListings(mock.Anything, mock.MatchedBy(func(in *usecase.ListListingsInput) bool {
			return in.OwnerID != nil && *in.OwnerID == f.userID && in.Limit == 5
		})).Return(&usecase.ListingPage{Items: []*entity.Listing{}, Total: 0, Limit: 5}, nil).Once()

		rec := f.do(t, http.MethodGet, "/me/listings?limit=5", nil, "", true)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"items":[],"total":0,"limit":5,"offset":0}`, string(decode(t, rec).Data))
	})
}

func TestListingRoutes(t *testing.T) {
	listingID := uuid.Must(uuid.NewV7())

	t.Run("create resolves location", func(t *testing.T) {
		f := newAPIFixture(t)
		f.authorize()
		f.listingUC.EXPECT().CreateListing(mock.Anything, &usecase.CreateListingInput{
			OwnerID:     f.userID,
			Name:        "Bike",
			Description: "<p>red</p>",
			Price:       120,
			Location:    "Cairo, Egypt",
		}).Return(&entity.Listing{
			ID:          listingID,
			OwnerID:     f.userID,
			Name:        "Bike",
			Price:       120,
			Location:    "Cairo, Egypt",
			Coordinates: &geo.Coordinates{Latitude: 30.0444, Longitude: 31.2357},
		}, nil).Once()

		// Client supplied coordinates are not part of the request and are dropped.
		rec := f.doJSON(t, http.MethodPost, "/listings",
			`{"name":"Bike","description":"<p>red</p>","price":120,"location":"Cairo, Egypt","coordinates":{"latitude":1,"longitude":2}}`, true)

		assert.Equal(t, http.StatusCreated, rec.Code)
		var listing entity.Listing
		require.NoError(t, json.Unmarshal(decode(t, rec).Data, &listing))
		require.NotNil(t, listing.Coordinates)
		assert.InDelta(t, 30.0444, listing.Coordinates.Latitude, 1e-9)
	})

	t.Run("create requires token", func(t *testing.T) {
		f := newAPIFixture(t)

		rec := f.doJSON(t, http.MethodPost, "/listings", `{"name":"Bike","price":1}`, false)

		assertError(t, rec, http.StatusUnauthorized, "UNAUTHORIZED")
	})

	t.Run("create with negative price", func(t *testing.T) {
		f := newAPIFixture(t)
		f.authorize()

		rec := f.doJSON(t, http.MethodPost, "/listings", `{"name":"Bike","price":-1}`, true)

		assertError(t, rec, http.StatusBadRequest, "VALIDATION_FAILED")
	})

	t.Run("create while geocoder is down", func(t *testing.T) {
		f := newAPIFixture(t)
		f.authorize()
		f.listingUC.EXPECT().CreateListing(mock.Anything, mock.Anything).
			Return(nil, domainerrors.ErrGeocodingUnavailable.WrapMessage("failed to resolve listing location")).Once()

		rec := f.doJSON(t, http.MethodPost, "/listings", `{"name":"Bike","price":1,"location":"Cairo"}`, true)

		env := assertError(t, rec, http.StatusServiceUnavailable, "GEOCODING_UNAVAILABLE")
		assert.Contains(t, env.Message, "try again")
	})

	t.Run("partial update", func(t *testing.T) {
		f := newAPIFixture(t)
		f.authorize()
		f.listingUC.EXPECT().UpdateListing(mock.Anything, mock.MatchedBy(func(in *usecase.UpdateListingInput) bool {
			return in.ListingID == listingID && in.RequesterID == f.userID &&
				in.Name != nil && *in.Name == "Blue bike" &&
				in.Location == nil && in.Price == nil && in.Description == nil
		})).Return(&entity.Listing{ID: listingID, Name: "Blue bike"}, nil).Once()

		rec := f.doJSON(t, http.MethodPatch, "/listings/"+listingID.String(), `{"name":"Blue bike"}`, true)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("clear location", func(t *testing.T) {
		f := newAPIFixture(t)
		f.authorize()
		f.listingUC.EXPECT().UpdateListing(mock.Anything, mock.MatchedBy(func(in *usecase.UpdateListingInput) bool {
			return in.Location != nil && *in.Location == ""
		})).Return(&entity.Listing{ID: listingID}, nil).Once()

		rec := f.doJSON(t, http.MethodPatch, "/listings/"+listingID.String(), `{"location":""}`, true)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.NotContains(t, string(decode(t, rec).Data), "coordinates")
	})

	t.Run("update by someone else", func(t *testing.T) {
		f := newAPIFixture(t)
		f.authorize()
		f.listingUC.EXPECT().UpdateListing(mock.Anything, mock.Anything).
			Return(nil, domainerrors.ErrListingOwnershipViolation).Once()

		rec := f.doJSON(t, http.MethodPatch, "/listings/"+listingID.String(), `{"name":"Mine now"}`, true)

		assertError(t, rec, http.StatusForbidden, "LISTING_OWNERSHIP_VIOLATION")
	})

	t.Run("malformed id", func(t *testing.T) {
		f := newAPIFixture(t)

		rec := f.do(t, http.MethodGet, "/listings/not-a-uuid", nil, "", false)

		assertError(t, rec, http.StatusBadRequest, "INVALID_INPUT")
	})

	t.Run("show missing", func(t *testing.T) {
		f := newAPIFixture(t)
		f.listingUC.EXPECT().GetListing(mock.Anything, listingID).Return(nil, domainerrors.ErrListingNotFound).Once()

		rec := f.do(t, http.MethodGet, "/listings/"+listingID.String(), nil, "", false)

		assertError(t, rec, http.StatusNotFound, "LISTING_NOT_FOUND")
	})

	t.Run("delete", func(t *testing.T) {
		f := newAPIFixture(t)
		f.authorize()
		f.listingUC.EXPECT().DeleteListing(mock.Anything, listingID, f.userID).Return(nil).Once()

		rec := f.do(t, http.MethodDelete, "/listings/"+listingID.String(), nil, "", true)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("index filters", func(t *testing.T) {
		f := newAPIFixture(t)
		f.listingUC.EXPECT().ListListings(mock.Anything, mock.MatchedBy(func(in *usecase.ListListingsInput) bool {
			return in.OwnerID == nil && in.Keyword == "bike" &&
				in.MinPrice != nil && *in.MinPrice == 10 && in.MaxPrice == nil &&
				in.Limit == 2 && in.Offset == 4
		})).Return(&usecase.ListingPage{Items: []*entity.Listing{{ID: listingID}}, Total: 5, Limit: 2, Offset: 4}, nil).Once()

		rec := f.do(t, http.MethodGet, "/listings?q=bike&min_price=10&limit=2&offset=4", nil, "", false)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, string(decode(t, rec).Data), `"total":5`)
	})

	t.Run("index with bad price", func(t *testing.T) {
		f := newAPIFixture(t)

		rec := f.do(t, http.MethodGet, "/listings?max_price=cheap", nil, "", false)

		env := assertError(t, rec, http.StatusBadRequest, "INVALID_INPUT")
		assert.Contains(t, env.Error.Details, "max_price")
	})
}

func TestProximityRoutes(t *testing.T) {
	cairo := geo.Coordinates{Latitude: 30.0444, Longitude: 31.2357}

	t.Run("near", func(t *testing.T) {
		f := newAPIFixture(t)
		f.proximityUC.EXPECT().FindNear(mock.Anything, mock.MatchedBy(func(q *usecase.NearQuery) bool {
			return q.Latitude == 30.0444 && q.Longitude == 31.2357 && q.RadiusKm == 5 &&
				q.Filter.Keyword == "bike" && q.Limit == 10
		})).Return(&usecase.NearResult{
			Items: []*entity.NearbyListing{{
				Listing:    &entity.Listing{ID: uuid.Must(uuid.NewV7()), Coordinates: &cairo},
				DistanceKm: 0.75,
			}},
			Total:    1,
			Center:   cairo,
			RadiusKm: 5,
			Limit:    10,
		}, nil).Once()

		rec := f.do(t, http.MethodGet, "/listings/near?lat=30.0444&lng=31.2357&radius=5&keyword=bike&limit=10", nil, "", false)

		assert.Equal(t, http.StatusOK, rec.Code)
		var body handler.ProximityResponse
		require.NoError(t, json.Unmarshal(decode(t, rec).Data, &body))
		require.Len(t, body.Items, 1)
		assert.InDelta(t, 0.75, body.Items[0].DistanceKm, 1e-9)
		require.NotNil(t, body.Center)
		assert.Equal(t, cairo, *body.Center)
	})

	t.Run("near requires coordinates", func(t *testing.T) {
		f := newAPIFixture(t)

		rec := f.do(t, http.MethodGet, "/listings/near?lat=30.0444", nil, "", false)

		assertError(t, rec, http.StatusBadRequest, "INVALID_INPUT")
	})

	t.Run("near rejects bad radius", func(t *testing.T) {
		f := newAPIFixture(t)
		f.proximityUC.EXPECT().FindNear(mock.Anything, mock.Anything).
			Return(nil, domainerrors.ErrInvalidInput.WithDetails("radius must be positive")).Once()

		rec := f.do(t, http.MethodGet, "/listings/near?lat=1&lng=1&radius=-3", nil, "", false)

		env := assertError(t, rec, http.StatusBadRequest, "INVALID_INPUT")
		assert.Equal(t, "radius must be positive", env.Error.Details)
	})

	t.Run("search without a match", func(t *testing.T) {
		f := newAPIFixture(t)
		f.proximityUC.EXPECT().Search(mock.Anything, &usecase.SearchQuery{Text: "Atlantis"}).
			Return(&usecase.SearchResult{Query: "Atlantis", RadiusKm: 50, Items: []*entity.NearbyListing{}, Limit: 20}, nil).Once()

		rec := f.do(t, http.MethodGet, "/listings/search?q=Atlantis", nil, "", false)

		assert.Equal(t, http.StatusOK, rec.Code)
		env := decode(t, rec)
		assert.True(t, env.Success)
		assert.Contains(t, string(env.Data), `"center":null`)
		assert.Contains(t, string(env.Data), `"items":[]`)
	})

	t.Run("search while geocoder is down", func(t *testing.T) {
		f := newAPIFixture(t)
		f.proximityUC.EXPECT().Search(mock.Anything, mock.Anything).
			Return(nil, domainerrors.ErrGeocodingUnavailable).Once()

		rec := f.do(t, http.MethodGet, "/listings/search?q=Cairo&radius=10", nil, "", false)

		assertError(t, rec, http.StatusServiceUnavailable, "GEOCODING_UNAVAILABLE")
	})
}

func TestImageRoutes(t *testing.T) {
	listingID := uuid.Must(uuid.NewV7())
	imageID := uuid.Must(uuid.NewV7())
	png := []byte("\x89PNG\r\n\x1a\n0000")

	multipartBody := func(t *testing.T, field string) (*bytes.Buffer, string) {
		t.Helper()

		var buf bytes.Buffer
		w := multipart.NewWriter(&buf)
		part, err := w.CreateFormFile(field, "bike.png")
		require.NoError(t, err)
		_, err = part.Write(png)
		require.NoError(t, err)
		require.NoError(t, w.Close())

		return &buf, w.FormDataContentType()
	}

	t.Run("upload", func(t *testing.T) {
		f := newAPIFixture(t)
		f.authorize()
		f.imageUC.EXPECT().AttachImage(mock.Anything, &usecase.AttachImageInput{
			ListingID:   listingID,
			RequesterID: f.userID,
			Filename:    "bike.png",
			Data:        png,
		}).Return(&entity.ListingImage{ID: imageID, ListingID: listingID, ContentType: "image/png", Position: 1}, nil).Once()

		body, contentType := multipartBody(t, "image")
		rec := f.do(t, http.MethodPost, "/listings/"+listingID.String()+"/images", body, contentType, true)

		assert.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		assert.Contains(t, string(decode(t, rec).Data), imageID.String())
	})

	t.Run("upload without image field", func(t *testing.T) {
		f := newAPIFixture(t)
		f.authorize()

		body, contentType := multipartBody(t, "file")
		rec := f.do(t, http.MethodPost, "/listings/"+listingID.String()+"/images", body, contentType, true)

		assertError(t, rec, http.StatusBadRequest, "VALIDATION_FAILED")
	})

	t.Run("show streams bytes", func(t *testing.T) {
		f := newAPIFixture(t)
		f.imageUC.EXPECT().OpenImage(mock.Anything, listingID, imageID).Return(&usecase.ImageContent{
			Image: &entity.ListingImage{ID: imageID, ContentType: "image/png", SizeBytes: int64(len(png))},
			Body:  io.NopCloser(bytes.NewReader(png)),
		}, nil).Once()

		rec := f.do(t, http.MethodGet, "/listings/"+listingID.String()+"/images/"+imageID.String(), nil, "", false)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
		assert.Equal(t, png, rec.Body.Bytes())
	})

	t.Run("show missing", func(t *testing.T) {
		f := newAPIFixture(t)
		f.imageUC.EXPECT().OpenImage(mock.Anything, listingID, imageID).Return(nil, domainerrors.ErrImageNotFound).Once()

		rec := f.do(t, http.MethodGet, "/listings/"+listingID.String()+"/images/"+imageID.String(), nil, "", false)

		assertError(t, rec, http.StatusNotFound, "IMAGE_NOT_FOUND")
	})

	t.Run("delete", func(t *testing.T) {
		f := newAPIFixture(t)
		f.authorize()
		f.imageUC.EXPECT().DeleteImage(mock.Anything, listingID, imageID, f.userID).Return(nil).Once()

		rec := f.do(t, http.MethodDelete, "/listings/"+listingID.String()+"/images/"+imageID.String(), nil, "", true)

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
