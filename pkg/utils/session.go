package utils

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// SessionCookie is the name of the HTTP-only cookie carrying the signed
// session token.
const SessionCookie = "cf_session"

var (
	sessionSecret string
	sessionTTL    time.Duration
)

// InitSessionAuth initializes the session signing secret and lifetime
func InitSessionAuth(secret string, ttl time.Duration) {
	sessionSecret = secret
	sessionTTL = ttl
}

// SessionClaims is the identity stored in the session cookie
type SessionClaims struct {
	UserID   uint   `json:"user_id"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	jwt.RegisteredClaims
}

// IssueSessionToken signs a session token for an authenticated user
func IssueSessionToken(userID uint, email, fullName string) (string, error) {
	claims := SessionClaims{
		UserID:   userID,
		Email:    email,
		FullName: fullName,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(sessionTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(sessionSecret))
}

// ParseSessionToken validates a session token and returns its claims
func ParseSessionToken(tokenString string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		// Verify signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(sessionSecret), nil
	})

	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*SessionClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, errors.New("invalid session token")
}

// SetSessionCookie attaches the session token to the response
func SetSessionCookie(c *gin.Context, token string) {
	c.SetCookie(SessionCookie, token, int(sessionTTL.Seconds()), "/", "", false, true)
}

// ClearSessionCookie removes the session cookie unconditionally
func ClearSessionCookie(c *gin.Context) {
	c.SetCookie(SessionCookie, "", -1, "/", "", false, true)
}
