// Package auth issues and verifies the stateless session tokens carried in
// the "jwt" cookie. Nothing is stored server-side: a token stays valid until
// its natural expiry even after logout.
package auth

import (
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// CookieName is the session cookie the browser sends on every request.
const CookieName = "jwt"

const sessionTTL = 7 * 24 * time.Hour

// Claims embed the user identifier alongside the registered expiry fields.
type Claims struct {
	UserID string `json:"userId"`
	jwt.RegisteredClaims
}

type TokenManager struct {
	secret     []byte
	production bool
}

func NewTokenManager(secret string, production bool) *TokenManager {
	return &TokenManager{secret: []byte(secret), production: production}
}

// Generate signs an HS256 token embedding the user id with a 7-day expiry.
func (m *TokenManager) Generate(userID uuid.UUID) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID: userID.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(sessionTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// Parse validates signature and expiry and returns the embedded user id.
func (m *TokenManager) Parse(tokenString string) (uuid.UUID, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return m.secret, nil
	})
	if err != nil {
		return uuid.Nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return uuid.Nil, jwt.ErrTokenInvalidClaims
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid user id in token: %w", err)
	}
	return userID, nil
}

// SetCookie attaches a fresh session token for the given user.
func (m *TokenManager) SetCookie(w http.ResponseWriter, userID uuid.UUID) error {
	tokenString, err := m.Generate(userID)
	if err != nil {
		return err
	}

	// Cross-site frontends need SameSite=None, which browsers only accept
	// over HTTPS.
	sameSite := http.SameSiteLaxMode
	if m.production {
		sameSite = http.SameSiteNoneMode
	}

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    tokenString,
		Path:     "/",
		MaxAge:   int(sessionTTL.Seconds()),
		Secure:   m.production,
		HttpOnly: true,
		SameSite: sameSite,
	})
	return nil
}

// ClearCookie expires the session cookie. The token itself is not revoked.
func (m *TokenManager) ClearCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Secure:   m.production,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
