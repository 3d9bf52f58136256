package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/lshigami/Quolls/config"
	"github.com/lshigami/Quolls/internal/dto"
	"github.com/rs/zerolog/log"
)

// UserIDKey is the gin context key the resolved user identity is stored under.
const UserIDKey = "userID"

// Auth resolves the caller's identity from a bearer JWT (HS256, `sub` claim)
// and stores it in the request context. Requests without a resolvable
// identity are rejected before any handler runs.
func Auth(cfg *config.Config) gin.HandlerFunc {
	secret := []byte(cfg.Auth.JWTSecret)
	return func(ctx *gin.Context) {
		authHeader := ctx.GetHeader("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
				Code:    "AUTHENTICATION_FAILURE",
				Message: "Missing or invalid Authorization header",
			})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return secret, nil
		})
		if err != nil || !token.Valid {
			log.Warn().Err(err).Msg("Rejected request with invalid token")
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
				Code:    "AUTHENTICATION_FAILURE",
				Message: "Invalid or expired token",
			})
			return
		}

		sub, err := token.Claims.GetSubject()
		if err != nil || sub == "" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
				Code:    "AUTHENTICATION_FAILURE",
				Message: "Token carries no user identity",
			})
			return
		}

		ctx.Set(UserIDKey, sub)
		ctx.Next()
	}
}

// UserID returns the identity Auth stored for this request.
func UserID(ctx *gin.Context) string {
	return ctx.GetString(UserIDKey)
}
