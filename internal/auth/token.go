package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"dormhub/internal/models"
)

// ErrInvalidToken covers every verification failure: bad signature, expiry,
// malformed claims, or a role outside the known set.
var ErrInvalidToken = errors.New("invalid token")

// Identity is the decoded, validated token payload handed to handlers.
type Identity struct {
	UserID uint
	Role   models.Role
	Email  string
}

// TokenService signs and verifies bearer tokens. It is constructed once at
// startup from resolved configuration; nothing reads the secret at call time.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

// Sign issues an HS256 token embedding the user's id, role and email.
func (s *TokenService) Sign(u *models.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":   u.ID,
		"role":  string(u.Role),
		"email": u.Email,
		"exp":   time.Now().Add(s.ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify parses and validates a token string and returns the identity it
// carries.
func (s *TokenService) Verify(tokenStr string) (Identity, error) {
	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return Identity{}, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Identity{}, ErrInvalidToken
	}
	sub, ok := claims["sub"].(float64)
	if !ok {
		return Identity{}, ErrInvalidToken
	}
	roleStr, _ := claims["role"].(string)
	role := models.Role(roleStr)
	if !role.Valid() {
		return Identity{}, ErrInvalidToken
	}
	email, _ := claims["email"].(string)

	return Identity{UserID: uint(sub), Role: role, Email: email}, nil
}
