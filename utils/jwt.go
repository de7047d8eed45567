package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"

	"roomify/config"
)

func secretKey() []byte {
	secret := config.AppConfig.JWTSecret
	if secret == "" {
		secret = "roomify-dev-secret"
	}
	return []byte(secret)
}

// GenerateToken creates a signed JWT with the user id as subject plus
// email, role and a unique session id (jti). The jti keys the Redis
// session entry so individual tokens can be revoked. Returns the signed
// token and its session id.
func GenerateToken(subject, email, role string, duration time.Duration) (string, string, error) {
	sessionID := uuid.New().String()
	claims := jwt.MapClaims{
		"sub":   subject,
		"email": email,
		"role":  role,
		"jti":   sessionID,
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(duration).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(secretKey())
	return signed, sessionID, err
}

// HashToken computes a SHA-256 hash of the token string. Session entries
// in Redis store the hash, never the raw token.
func HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

// ValidateToken parses and validates a token string.
func ValidateToken(tokenString string) (*jwt.Token, error) {
	return jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secretKey(), nil
	})
}

// TokenClaims is the subset of claims the middleware needs.
type TokenClaims struct {
	UserID    string
	Email     string
	Role      string
	SessionID string
}

// ExtractClaims validates a token and pulls out the subject, email and
// role claims.
func ExtractClaims(tokenString string) (*TokenClaims, error) {
	token, err := ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}

	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return nil, errors.New("token does not contain a valid 'sub' claim")
	}

	out := &TokenClaims{UserID: sub}
	if email, ok := claims["email"].(string); ok {
		out.Email = email
	}
	if role, ok := claims["role"].(string); ok {
		out.Role = role
	}
	if jti, ok := claims["jti"].(string); ok {
		out.SessionID = jti
	}
	return out, nil
}
