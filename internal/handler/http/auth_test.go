package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/neverov-dev/passvault/internal/logger"
	"github.com/neverov-dev/passvault/internal/mock"
	"github.com/neverov-dev/passvault/internal/service"
	"github.com/neverov-dev/passvault/internal/store"
	"github.com/neverov-dev/passvault/models"
)

func newTestHandler(t *testing.T) (*Handler, *mock.MockAuthService, *mock.MockVaultService) {
	t.Helper()

	ctrl := gomock.NewController(t)
	auth := mock.NewMockAuthService(ctrl)
	vault := mock.NewMockVaultService(ctrl)

	handler := NewHandler(&service.Services{
		AuthService:  auth,
		VaultService: vault,
	}, logger.Nop())

	return handler, auth, vault
}

func stubToken(signed string) models.Token {
	return models.Token{SignedString: signed}
}

func TestRegister_Success(t *testing.T) {
	handler, auth, _ := newTestHandler(t)

	auth.EXPECT().
		RegisterUser(gomock.Any(), gomock.Any()).
		Return(models.User{UserID: 1, Login: "john"}, nil)
	auth.EXPECT().
		CreateToken(gomock.Any(), gomock.Any()).
		Return(stubToken("signed-jwt"), nil)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(`{"login":"john","password":"s3cret"}`))
	rec := httptest.NewRecorder()
	handler.Init().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Bearer signed-jwt", rec.Header().Get("Authorization"))
}

func TestRegister_InvalidJSON(t *testing.T) {
	handler, _, _ := newTestHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(`{not json`))
	rec := httptest.NewRecorder()
	handler.Init().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRegister_InvalidData(t *testing.T) {
	handler, auth, _ := newTestHandler(t)

	auth.EXPECT().
		RegisterUser(gomock.Any(), gomock.Any()).
		Return(models.User{}, service.ErrInvalidDataProvided)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(`{"login":"","password":""}`))
	rec := httptest.NewRecorder()
	handler.Init().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRegister_LoginTaken(t *testing.T) {
	handler, auth, _ := newTestHandler(t)

	auth.EXPECT().
		RegisterUser(gomock.Any(), gomock.Any()).
		Return(models.User{}, store.ErrLoginAlreadyExists)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(`{"login":"john","password":"s3cret"}`))
	rec := httptest.NewRecorder()
	handler.Init().ServeHTTP(rec, req)

	require.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "login already exists")
}

func TestLogin_Success(t *testing.T) {
	handler, auth, _ := newTestHandler(t)

	auth.EXPECT().
		Login(gomock.Any(), gomock.Any()).
		Return(models.User{UserID: 7, Login: "john"}, nil)
	auth.EXPECT().
		CreateToken(gomock.Any(), gomock.Any()).
		Return(stubToken("signed-jwt"), nil)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(`{"login":"john","password":"s3cret"}`))
	rec := httptest.NewRecorder()
	handler.Init().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Bearer signed-jwt", rec.Header().Get("Authorization"))
}

func TestLogin_WrongPassword(t *testing.T) {
	handler, auth, _ := newTestHandler(t)

	auth.EXPECT().
		Login(gomock.Any(), gomock.Any()).
		Return(models.User{}, service.ErrWrongPassword)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(`{"login":"john","password":"wrong"}`))
	rec := httptest.NewRecorder()
	handler.Init().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLogin_TokenCreationFails(t *testing.T) {
	handler, auth, _ := newTestHandler(t)

	auth.EXPECT().
		Login(gomock.Any(), gomock.Any()).
		Return(models.User{UserID: 7}, nil)
	auth.EXPECT().
		CreateToken(gomock.Any(), gomock.Any()).
		Return(models.Token{}, service.ErrTokenCreationFailed)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(`{"login":"john","password":"s3cret"}`))
	rec := httptest.NewRecorder()
	handler.Init().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
