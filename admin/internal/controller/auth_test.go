package controller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/temizmarket/eticaret/admin/internal/service"
	"github.com/temizmarket/eticaret/internal/config"
	"github.com/temizmarket/eticaret/internal/middleware"
)

type loginEnvelope struct {
	Status     string `json:"status"`
	StatusCode int    `json:"statusCode"`
	Data       struct {
		Token string `json:"token"`
	} `json:"data"`
}

func adminRouter(t *testing.T, password string) *mux.Router {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	cfg := config.Application{
		SecretKey:         "test-secret-key",
		AdminPasswordHash: string(hash),
	}
	authService := service.NewAuthService(cfg)
	catalogService := service.NewCatalogService(nil, nil)

	router := mux.NewRouter()
	AttachAuthController(router, &authService)
	protected := router.PathPrefix("/").Subrouter()
	protected.Use(middleware.Auth(cfg))
	AttachCategoryController(protected, &catalogService)
	return router
}

func login(t *testing.T, router *mux.Router, password string) (*httptest.ResponseRecorder, loginEnvelope) {
	t.Helper()
	req := httptest.NewRequest(
		http.MethodPost,
		"/auth/login",
		strings.NewReader(`{"password":"`+password+`"}`),
	)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	envelope := loginEnvelope{}
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&envelope))
	return recorder, envelope
}

func TestLoginGivenCorrectPasswordShouldReturnToken(t *testing.T) {
	router := adminRouter(t, "sifre-123")

	recorder, envelope := login(t, router, "sifre-123")

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "success", envelope.Status)
	assert.NotEmpty(t, envelope.Data.Token)
}

func TestLoginGivenWrongPasswordShouldReturn401(t *testing.T) {
	router := adminRouter(t, "sifre-123")

	recorder, envelope := login(t, router, "yanlis-sifre")

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.Equal(t, "failed", envelope.Status)
}

func TestProtectedRouteGivenNoTokenShouldReturn401(t *testing.T) {
	router := adminRouter(t, "sifre-123")

	req := httptest.NewRequest(http.MethodGet, "/categories", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestProtectedRouteGivenGarbageTokenShouldReturn401(t *testing.T) {
	router := adminRouter(t, "sifre-123")

	req := httptest.NewRequest(http.MethodGet, "/categories", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestFindCategoryByIdGivenMalformedIdShouldReturn400(t *testing.T) {
	catalogService := service.NewCatalogService(nil, nil)
	router := mux.NewRouter()
	AttachCategoryController(router, &catalogService)

	req := httptest.NewRequest(http.MethodGet, "/categories/not-a-uuid", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestLoginRouteIsReachableWithoutToken(t *testing.T) {
	router := adminRouter(t, "sifre-123")

	recorder, _ := login(t, router, "sifre-123")

	assert.Equal(t, http.StatusOK, recorder.Code)
}
