package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

var ErrInvalidToken = errors.New("Token is invalid or expired")

// Claims are carried by both token kinds; TokenType tells them apart.
type Claims struct {
	jwt.RegisteredClaims
	UserID    int64  `json:"user_id"`
	TokenType string `json:"token_type"`
}

// TokenPair is what a successful login hands out.
type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// TokenService signs and checks HS256 access and refresh tokens.
type TokenService struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
	now        func() time.Time
}

func NewTokenService(secret string, accessTTL, refreshTTL time.Duration) *TokenService {
	return &TokenService{
		secret:     []byte(secret),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
		now:        time.Now,
	}
}

func (s *TokenService) IssuePair(userID int64) (TokenPair, error) {
	access, err := s.sign(userID, TokenTypeAccess, s.accessTTL)
	if err != nil {
		return TokenPair{}, err
	}
	refresh, err := s.sign(userID, TokenTypeRefresh, s.refreshTTL)
	if err != nil {
		return TokenPair{}, err
	}
	return TokenPair{Access: access, Refresh: refresh}, nil
}

// RefreshAccess issues a new access token for a valid refresh token. The
// refresh token itself is not rotated.
func (s *TokenService) RefreshAccess(refresh string) (string, error) {
	c, err := s.parse(refresh, TokenTypeRefresh)
	if err != nil {
		return "", err
	}
	return s.sign(c.UserID, TokenTypeAccess, s.accessTTL)
}

// ParseAccess returns the user id of a valid access token.
func (s *TokenService) ParseAccess(access string) (int64, error) {
	c, err := s.parse(access, TokenTypeAccess)
	if err != nil {
		return 0, err
	}
	return c.UserID, nil
}

func (s *TokenService) sign(userID int64, kind string, ttl time.Duration) (string, error) {
	now := s.now().Truncate(time.Second)
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		UserID:    userID,
		TokenType: kind,
	})
	signed, err := t.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign %s token: %w", kind, err)
	}
	return signed, nil
}

func (s *TokenService) parse(raw, kind string) (*Claims, error) {
	c := &Claims{}
	_, err := jwt.ParseWithClaims(raw, c, func(t *jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil || c.TokenType != kind {
		return nil, ErrInvalidToken
	}
	return c, nil
}
