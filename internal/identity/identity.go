package identity

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// contextKey is where the middleware stores the verified display name.
const contextKey = "identity.name"

// Claims is the token payload issued by the school's identity provider.
// Only the display name is read; everything else rides in RegisteredClaims.
type Claims struct {
	Name string `json:"name"`
	jwt.RegisteredClaims
}

// Parse validates a token and returns its claims.
func Parse(tokenStr, key, issuer string) (Claims, error) {
	parsed, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(key), nil
	})
	if err != nil {
		return Claims{}, err
	}
	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return Claims{}, errors.New("invalid token")
	}
	if issuer != "" && claims.Issuer != issuer {
		return Claims{}, errors.New("issuer mismatch")
	}
	return *claims, nil
}

// Middleware reads an optional bearer token signed with HS256. Requests
// without one pass through anonymously; a token that is present but does
// not verify is rejected so a forged name never reaches a handler.
func Middleware(signingKey, issuer string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authz := c.GetHeader("Authorization")
		if authz == "" {
			c.Next()
			return
		}
		if !strings.HasPrefix(strings.ToLower(authz), "bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"status": "error", "error": "malformed authorization header"})
			return
		}
		tokenStr := strings.TrimSpace(authz[len("bearer "):])
		claims, err := Parse(tokenStr, signingKey, issuer)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"status": "error", "error": "invalid token"})
			return
		}
		if name := strings.TrimSpace(claims.Name); name != "" {
			c.Set(contextKey, name)
		}
		c.Next()
	}
}

// ActorName returns the verified display name for the request, or "" when
// the caller is anonymous.
func ActorName(c *gin.Context) string {
	if v, ok := c.Get(contextKey); ok {
		if name, ok := v.(string); ok {
			return name
		}
	}
	return ""
}
