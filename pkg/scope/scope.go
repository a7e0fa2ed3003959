package scope

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrMissingUser  = errors.New("token has no user_id claim")
)

// Payload is what a verified token says about its bearer.
type Payload struct {
	UserID    string
	ExpiresAt time.Time
}

// Manager signs and verifies HS256 bearer tokens.
type Manager interface {
	Sign(userID string, ttl time.Duration) (string, error)
	Verify(token string) (Payload, error)
}

type jwtManager struct {
	secret []byte
	now    func() time.Time
}

func New(secret string) Manager {
	return &jwtManager{secret: []byte(secret), now: time.Now}
}

func (m *jwtManager) Sign(userID string, ttl time.Duration) (string, error) {
	if userID == "" {
		return "", ErrMissingUser
	}
	now := m.now()
	claims := jwt.MapClaims{
		"user_id": userID,
		"iat":     now.Unix(),
		"exp":     now.Add(ttl).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
}

func (m *jwtManager) Verify(token string) (Payload, error) {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		return m.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil || !parsed.Valid {
		return Payload{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return Payload{}, ErrInvalidToken
	}
	userID, _ := claims["user_id"].(string)
	if userID == "" {
		return Payload{}, ErrMissingUser
	}

	var p Payload
	p.UserID = userID
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		p.ExpiresAt = exp.Time
	}
	return p, nil
}
