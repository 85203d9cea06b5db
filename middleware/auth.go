package middleware

import (
	"net/http"
	"strings"
	"time"

	"littlelemon-api/config"
	"littlelemon-api/models"
	"littlelemon-api/policy"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const identityKey = "identity"

type Claims struct {
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// GenerateToken creates a signed JWT for a given user. Role membership is
// deliberately not embedded: it is resolved from the database on every
// request so group changes take effect immediately.
func GenerateToken(user *models.User) (string, error) {
	claims := Claims{
		UserID:   user.ID,
		Username: user.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(config.JWTSecret)
}

// AuthRequired validates the JWT, resolves the caller's user record and group
// memberships once, and injects the resulting identity into the context.
// Handlers and the policy package never query membership on their own.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required (Bearer <token>)"})
			c.Abort()
			return
		}
		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims := &Claims{}
		token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
			return config.JWTSecret, nil
		})
		if err != nil || !token.Valid {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			c.Abort()
			return
		}

		var user models.User
		if err := config.DB.Preload("Groups").First(&user, claims.UserID).Error; err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "User no longer exists"})
			c.Abort()
			return
		}

		roles := make([]string, 0, len(user.Groups))
		for _, g := range user.Groups {
			roles = append(roles, g.Name)
		}
		c.Set(identityKey, policy.Identity{
			UserID:    user.ID,
			Username:  user.Username,
			Email:     user.Email,
			Superuser: user.IsSuperuser,
			Roles:     roles,
		})
		c.Next()
	}
}

// ManagerRequired rejects callers that do not hold the Manager role. It must
// run after AuthRequired.
func ManagerRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !policy.IsManager(GetIdentity(c)) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Access denied. Manager role required."})
			c.Abort()
			return
		}
		c.Next()
	}
}

// GetIdentity extracts the resolved caller identity from the context.
func GetIdentity(c *gin.Context) policy.Identity {
	val, _ := c.Get(identityKey)
	ident, _ := val.(policy.Identity)
	return ident
}
