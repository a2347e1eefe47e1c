package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

const (
	// RegisterTokenExpiry is the lifetime of tokens issued on registration.
	RegisterTokenExpiry = 30 * 24 * time.Hour
	// LoginTokenExpiry is the lifetime of tokens issued on login.
	LoginTokenExpiry = 40 * 24 * time.Hour
)

var (
	// ErrTokenExpired marks a structurally valid token past its expiry.
	// Callers surface this distinctly so clients know to log in again.
	ErrTokenExpired = errors.New("token expired")
	// ErrTokenMalformed marks a token that is not a JWT at all.
	ErrTokenMalformed = errors.New("malformed token")
	// ErrTokenSignature marks a token whose signature does not verify.
	ErrTokenSignature = errors.New("invalid token signature")
	// ErrTokenInvalid covers any other verification failure.
	ErrTokenInvalid = errors.New("invalid token")
)

// Claims is the identity embedded in every issued token: who is making
// the request. Tokens are never persisted server-side; validity is
// signature plus expiry alone.
type Claims struct {
	Username string `json:"username"`
	UserID   uint   `json:"userid"`
	jwt.RegisteredClaims
}

// JWTService issues and verifies signed identity tokens.
type JWTService struct {
	secret []byte
}

// NewJWTService creates a JWT service. An empty secret is a configuration
// fault the caller must treat as fatal before serving traffic.
func NewJWTService(secret string) *JWTService {
	return &JWTService{secret: []byte(secret)}
}

// IssueToken signs a token embedding the identity claims with the given
// absolute lifetime.
func (s *JWTService) IssueToken(username string, userID uint, expiry time.Duration) (string, error) {
	if len(s.secret) == 0 {
		return "", errors.New("signing secret is not configured")
	}
	now := time.Now()
	claims := &Claims{
		Username: username,
		UserID:   userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// ValidateToken verifies a token and returns its claims. The returned error
// distinguishes expired, malformed, and signature failures.
func (s *JWTService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenSignature
		}
		return s.secret, nil
	})

	if err != nil {
		var ve *jwt.ValidationError
		if errors.As(err, &ve) {
			switch {
			case ve.Errors&jwt.ValidationErrorMalformed != 0:
				return nil, ErrTokenMalformed
			case ve.Errors&jwt.ValidationErrorExpired != 0:
				return nil, ErrTokenExpired
			case ve.Errors&(jwt.ValidationErrorSignatureInvalid|jwt.ValidationErrorUnverifiable) != 0:
				return nil, ErrTokenSignature
			}
		}
		return nil, ErrTokenInvalid
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrTokenInvalid
	}

	return claims, nil
}
