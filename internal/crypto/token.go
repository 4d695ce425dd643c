package crypto

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	tokenIssuer   = "keysmith"
	tokenAudience = "keysmith-api"
)

var (
	ErrInvalidToken = errors.New("invalid or expired token")
	ErrEmptySecret  = errors.New("token secret must not be empty")
)

// Claims identifies the account a session token was issued to.
type Claims struct {
	jwt.RegisteredClaims
	UserID int64 `json:"user_id"`
}

// SessionToken is a signed token together with the moment it stops being accepted.
type SessionToken struct {
	Value     string
	ExpiresAt time.Time
}

var tokenParser = jwt.NewParser(
	jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	jwt.WithIssuer(tokenIssuer),
	jwt.WithAudience(tokenAudience),
	jwt.WithExpirationRequired(),
	jwt.WithIssuedAt(),
)

// IssueToken signs an HS256 session token for userID that expires after ttl.
// Each token carries a random jti.
func IssueToken(userID int64, secret string, ttl time.Duration) (SessionToken, error) {
	if secret == "" {
		return SessionToken{}, ErrEmptySecret
	}

	now := time.Now().Truncate(time.Second)
	expiresAt := now.Add(ttl)
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   strconv.FormatInt(userID, 10),
			Issuer:    tokenIssuer,
			Audience:  jwt.ClaimStrings{tokenAudience},
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
		UserID: userID,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		return SessionToken{}, fmt.Errorf("signing session token: %w", err)
	}
	return SessionToken{Value: signed, ExpiresAt: expiresAt}, nil
}

// ParseToken verifies a session token and returns its claims. Every failure
// wraps ErrInvalidToken.
func ParseToken(value, secret string) (*Claims, error) {
	claims := &Claims{}
	_, err := tokenParser.ParseWithClaims(value, claims, func(*jwt.Token) (any, error) {
		return []byte(secret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	if claims.UserID <= 0 || claims.Subject != strconv.FormatInt(claims.UserID, 10) {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
