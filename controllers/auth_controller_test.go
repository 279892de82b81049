package controllers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warbler-app/api-go/models"
)

func TestRegisterAndLogin(t *testing.T) {
	r, _ := setupRouter(t)

	user := registerUser(t, r, "ann")
	assert.NotEmpty(t, user.AccessToken)
	assert.NotEmpty(t, user.RefreshToken)

	w := doJSON(t, r, http.MethodPost, "/api/login", "", map[string]string{
		"username": "ann",
		"password": "password123",
	})
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.NotEmpty(t, body["access_token"])
	assert.Equal(t, "ann", body["user"].(map[string]interface{})["username"])
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	r, _ := setupRouter(t)
	registerUser(t, r, "ann")

	wrongPassword := doJSON(t, r, http.MethodPost, "/api/login", "", map[string]string{
		"username": "ann",
		"password": "not-the-password",
	})
	unknownUser := doJSON(t, r, http.MethodPost, "/api/login", "", map[string]string{
		"username": "nobody",
		"password": "password123",
	})

	assert.Equal(t, http.StatusUnauthorized, wrongPassword.Code)
	assert.Equal(t, http.StatusUnauthorized, unknownUser.Code)
	assert.Equal(t, wrongPassword.Body.String(), unknownUser.Body.String())
}

func TestRegisterDuplicateUsernameLeavesStoreUnchanged(t *testing.T) {
	r, db := setupRouter(t)
	registerUser(t, r, "ann")

	w := doJSON(t, r, http.MethodPost, "/api/register", "", map[string]string{
		"username": "ann",
		"email":    "other@example.com",
		"password": "password123",
	})
	assert.Equal(t, http.StatusConflict, w.Code)

	var count int64
	db.Model(&models.User{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	r, db := setupRouter(t)
	registerUser(t, r, "ann")

	w := doJSON(t, r, http.MethodPost, "/api/register", "", map[string]string{
		"username": "bob",
		"email":    "ann@example.com",
		"password": "password123",
	})
	assert.Equal(t, http.StatusConflict, w.Code)

	var count int64
	db.Model(&models.User{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestRegisterValidation(t *testing.T) {
	r, _ := setupRouter(t)

	cases := map[string]map[string]string{
		"short username": {"username": "ab", "email": "a@example.com", "password": "password123"},
		"bad pattern":    {"username": "1ann!", "email": "a@example.com", "password": "password123"},
		"bad email":      {"username": "ann", "email": "not-an-email", "password": "password123"},
		"short password": {"username": "ann", "email": "a@example.com", "password": "pw"},
		"missing fields": {"username": "ann"},
	}

	for name, input := range cases {
		t.Run(name, func(t *testing.T) {
			w := doJSON(t, r, http.MethodPost, "/api/register", "", input)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestRegisterAppliesImageDefaults(t *testing.T) {
	r, db := setupRouter(t)
	user := registerUser(t, r, "ann")

	var stored models.User
	require.NoError(t, db.First(&stored, user.ID).Error)
	assert.Equal(t, models.DefaultImageURL, stored.ImageURL)
	assert.Equal(t, models.DefaultHeaderImageURL, stored.HeaderImageURL)
}

func TestPasswordIsStoredHashed(t *testing.T) {
	r, db := setupRouter(t)
	user := registerUser(t, r, "ann")

	var stored models.User
	require.NoError(t, db.First(&stored, user.ID).Error)
	assert.NotEqual(t, "password123", stored.Password)
	assert.NotEmpty(t, stored.Password)
}

func TestLogoutRevokesRefreshToken(t *testing.T) {
	r, _ := setupRouter(t)
	user := registerUser(t, r, "ann")

	w := doJSON(t, r, http.MethodPost, "/api/logout", "", map[string]string{
		"refresh_token": user.RefreshToken,
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/refresh-token", "", map[string]string{
		"refresh_token": user.RefreshToken,
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLogoutUnknownTokenStillSucceeds(t *testing.T) {
	r, _ := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/logout", "", map[string]string{
		"refresh_token": "never-issued",
	})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRefreshTokenRotation(t *testing.T) {
	r, _ := setupRouter(t)
	user := registerUser(t, r, "ann")

	w := doJSON(t, r, http.MethodPost, "/api/refresh-token", "", map[string]string{
		"refresh_token": user.RefreshToken,
	})
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	newRefresh := body["refresh_token"].(string)
	assert.NotEqual(t, user.RefreshToken, newRefresh)

	// The replaced token is no longer accepted.
	w = doJSON(t, r, http.MethodPost, "/api/refresh-token", "", map[string]string{
		"refresh_token": user.RefreshToken,
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/refresh-token", "", map[string]string{
		"refresh_token": newRefresh,
	})
	assert.Equal(t, http.StatusOK, w.Code)
}
