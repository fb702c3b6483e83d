package middleware

import (
	"net/http"
	"os"
	"strings"
	"time"

	"cabin-backoffice/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const callerContextKey = "caller"

// Caller is the authenticated identity resolved once per request and handed
// to anything that needs authorization, instead of reading ambient request
// state further down.
type Caller struct {
	UserID uint
	Role   string
}

type sessionClaims struct {
	UserID uint   `json:"uid"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

func jwtSecret() []byte {
	secret := strings.TrimSpace(os.Getenv("JWT_SECRET"))
	if secret == "" {
		secret = "dev-secret-change-me"
	}
	return []byte(secret)
}

// IssueToken signs a session token for a logged-in user.
func IssueToken(user models.User) (string, error) {
	claims := sessionClaims{
		UserID: user.ID,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.Email,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(jwtSecret())
}

// RequireAuth validates the Bearer token and stores the Caller in the request
// context. Requests without a valid session are aborted before any write.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Not authenticated"})
			return
		}

		raw := strings.TrimPrefix(header, "Bearer ")
		claims := &sessionClaims{}
		token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return jwtSecret(), nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Not authenticated"})
			return
		}

		c.Set(callerContextKey, Caller{UserID: claims.UserID, Role: claims.Role})
		c.Next()
	}
}

// RequireAdmin allows only callers with the ADMIN role. Must run after
// RequireAuth.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		caller, ok := CallerFrom(c)
		if !ok || caller.Role != models.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"success": false, "error": "Admin access required"})
			return
		}
		c.Next()
	}
}

// CallerFrom fetches the resolved Caller from the request context.
func CallerFrom(c *gin.Context) (Caller, bool) {
	v, ok := c.Get(callerContextKey)
	if !ok {
		return Caller{}, false
	}
	caller, ok := v.(Caller)
	return caller, ok
}
