package middleware

import (
	"net/http"
	"strings"

	"github.com/warbler-app/api-go/config"
	"github.com/warbler-app/api-go/utils"

	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"
)

func parseBearerToken(c *gin.Context) *utils.UserClaims {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return nil
	}

	bearerToken := strings.Split(authHeader, " ")
	if len(bearerToken) != 2 {
		return nil
	}

	claims := jwt.MapClaims{}
	parsedToken, err := jwt.ParseWithClaims(bearerToken[1], claims, func(token *jwt.Token) (interface{}, error) {
		return config.JWTSecret(), nil
	})
	if err != nil || !parsedToken.Valid {
		return nil
	}

	userID, ok := claims["user_id"].(float64)
	if !ok {
		return nil
	}
	username, _ := claims["username"].(string)

	return &utils.UserClaims{
		UserID:   uint(userID),
		Username: username,
	}
}

// AuthMiddleware rejects requests without a valid Bearer token before any
// handler runs.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		userClaims := parseBearerToken(c)
		if userClaims == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization required", "success": false})
			c.Abort()
			return
		}

		c.Set(string(utils.UserContextKey), userClaims)
		c.Next()
	}
}

// OptionalAuthMiddleware sets the identity when a valid token is present and
// lets anonymous requests through. The home feed uses it: anonymous viewers
// get the landing state instead of a 401.
func OptionalAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if userClaims := parseBearerToken(c); userClaims != nil {
			c.Set(string(utils.UserContextKey), userClaims)
		}
		c.Next()
	}
}
