package utils

import (
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/google/uuid"
	"github.com/warbler-app/api-go/config"
	"github.com/warbler-app/api-go/models"
	"gorm.io/gorm"
)

const (
	AccessTokenTTL  = time.Hour * 24 * 7
	RefreshTokenTTL = time.Hour * 24 * 30
)

// GenerateTokenPair mints an access and refresh token for the user and
// persists the refresh token so it can be revoked on logout.
func GenerateTokenPair(db *gorm.DB, user *models.User) (accessToken string, refreshToken string, err error) {
	accessTokenBase := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":  user.ID,
		"username": user.Username,
		"exp":      time.Now().Add(AccessTokenTTL).Unix(),
	})

	// jti keeps two logins in the same second from minting identical tokens,
	// which would trip the unique constraint on the refresh_tokens table.
	refreshTokenBase := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": user.ID,
		"jti":     uuid.NewString(),
		"exp":     time.Now().Add(RefreshTokenTTL).Unix(),
	})

	accessToken, err = accessTokenBase.SignedString(config.JWTSecret())
	if err != nil {
		return "", "", err
	}

	refreshToken, err = refreshTokenBase.SignedString(config.JWTSecret())
	if err != nil {
		return "", "", err
	}

	err = db.Create(&models.RefreshToken{
		UserID:         user.ID,
		Token:          refreshToken,
		ExpirationDate: time.Now().Add(RefreshTokenTTL),
	}).Error
	if err != nil {
		return "", "", err
	}

	return accessToken, refreshToken, nil
}
