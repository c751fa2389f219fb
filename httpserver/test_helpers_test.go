//nolint:unused
package httpserver_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"movieflow/auth"
	"movieflow/catalog"
	"movieflow/httpserver"
	"movieflow/pkg/config"
	"movieflow/rating"
	"movieflow/user"
	"movieflow/watchlist"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	testJWTSecret = "test-jwt-secret"
	testUserID    = "6f1d2a29-9999-4a7b-9a6c-000000000009"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Auth.JWTSecret = testJWTSecret
	return cfg
}

func signTestToken(t *testing.T) string {
	t.Helper()
	claims := jwt.MapClaims{
		"user_id": testUserID,
		"email":   "maria@mail.com",
		"type":    "access",
		"exp":     time.Now().Add(1 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(testJWTSecret))
	require.NoError(t, err)
	return signed
}

func jsonRequest(t *testing.T, server *httpserver.Server, method, target string, payload interface{}, bearer string) *httptest.ResponseRecorder {
	t.Helper()

	var body *bytes.Buffer
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewBuffer(raw)
	} else {
		body = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, target, body)
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	rec := httptest.NewRecorder()
	server.Router.ServeHTTP(rec, req)
	return rec
}

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, u user.User) (auth.TokenPair, error) {
	args := m.Called(ctx, u)
	return args.Get(0).(auth.TokenPair), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (auth.TokenPair, error) {
	args := m.Called(ctx, email, password)
	return args.Get(0).(auth.TokenPair), args.Error(1)
}

func (m *MockAuthService) Refresh(ctx context.Context, refreshToken string) (auth.TokenPair, error) {
	args := m.Called(ctx, refreshToken)
	return args.Get(0).(auth.TokenPair), args.Error(1)
}

type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) GetUserByID(ctx context.Context, id string) (user.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(user.User), args.Error(1)
}

func (m *MockUserService) GetUserByEmail(ctx context.Context, email string) (user.User, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(user.User), args.Error(1)
}

func (m *MockUserService) UpdateProfile(ctx context.Context, id, name, phone, address string) (user.User, error) {
	args := m.Called(ctx, id, name, phone, address)
	return args.Get(0).(user.User), args.Error(1)
}

func (m *MockUserService) ChangePassword(ctx context.Context, id, currentPassword, newPassword string) error {
	args := m.Called(ctx, id, currentPassword, newPassword)
	return args.Error(0)
}

func (m *MockUserService) DeleteAccount(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockWatchlistService struct {
	mock.Mock
}

func (m *MockWatchlistService) Add(ctx context.Context, userID, title string) (watchlist.Entry, error) {
	args := m.Called(ctx, userID, title)
	return args.Get(0).(watchlist.Entry), args.Error(1)
}

func (m *MockWatchlistService) Remove(ctx context.Context, userID, entryID string) error {
	args := m.Called(ctx, userID, entryID)
	return args.Error(0)
}

func (m *MockWatchlistService) List(ctx context.Context, userID string) ([]watchlist.Entry, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]watchlist.Entry), args.Error(1)
}

func (m *MockWatchlistService) Contains(ctx context.Context, userID, title string) (bool, error) {
	args := m.Called(ctx, userID, title)
	return args.Bool(0), args.Error(1)
}

type MockRatingService struct {
	mock.Mock
}

func (m *MockRatingService) Rate(ctx context.Context, userID, title string, kind rating.Kind) (rating.Outcome, error) {
	args := m.Called(ctx, userID, title, kind)
	return args.Get(0).(rating.Outcome), args.Error(1)
}

func (m *MockRatingService) RatingFor(ctx context.Context, userID, title string) (rating.Rating, error) {
	args := m.Called(ctx, userID, title)
	return args.Get(0).(rating.Rating), args.Error(1)
}

func (m *MockRatingService) AddComment(ctx context.Context, userID, title, text string) (rating.Comment, error) {
	args := m.Called(ctx, userID, title, text)
	return args.Get(0).(rating.Comment), args.Error(1)
}

func (m *MockRatingService) DeleteComment(ctx context.Context, userID, commentID string) error {
	args := m.Called(ctx, userID, commentID)
	return args.Error(0)
}

func (m *MockRatingService) CommentsFor(ctx context.Context, title string) ([]rating.Comment, error) {
	args := m.Called(ctx, title)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]rating.Comment), args.Error(1)
}

type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) HomeSections(ctx context.Context) []catalog.Section {
	args := m.Called(ctx)
	return args.Get(0).([]catalog.Section)
}

func (m *MockCatalogService) Search(ctx context.Context, query string) []catalog.Title {
	args := m.Called(ctx, query)
	return args.Get(0).([]catalog.Title)
}

func (m *MockCatalogService) DiscoverByGenre(ctx context.Context, genreID int, mediaType catalog.MediaType) []catalog.Title {
	args := m.Called(ctx, genreID, mediaType)
	return args.Get(0).([]catalog.Title)
}

func (m *MockCatalogService) Genres(ctx context.Context, mediaType catalog.MediaType) []catalog.Genre {
	args := m.Called(ctx, mediaType)
	return args.Get(0).([]catalog.Genre)
}

func (m *MockCatalogService) Details(ctx context.Context, id int, mediaType catalog.MediaType) (catalog.Title, bool) {
	args := m.Called(ctx, id, mediaType)
	return args.Get(0).(catalog.Title), args.Bool(1)
}

func (m *MockCatalogService) Trailer(ctx context.Context, id int, mediaType catalog.MediaType) string {
	args := m.Called(ctx, id, mediaType)
	return args.String(0)
}
