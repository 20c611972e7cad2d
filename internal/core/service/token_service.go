package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/ladob/catalog-api/internal/core/domain"
)

const defaultTokenTTL = 24 * time.Hour

// JWTTokenService issues and validates HS256-signed bearer tokens whose
// subject is the user's email. Tokens are self-contained; there is no
// server-side session store. The signing secret is fixed at construction
// and never rotated at runtime.
type JWTTokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewJWTTokenService(secret string, ttl time.Duration) *JWTTokenService {
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &JWTTokenService{secret: []byte(secret), ttl: ttl}
}

func (s *JWTTokenService) Issue(user *domain.User) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   user.Email,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

func (s *JWTTokenService) SubjectOf(token string) string {
	claims, ok := s.parse(token, jwt.WithoutClaimsValidation())
	if !ok {
		return ""
	}
	return claims.Subject
}

func (s *JWTTokenService) IsValid(token string, user *domain.User) bool {
	claims, ok := s.parse(token, jwt.WithExpirationRequired())
	if !ok {
		return false
	}
	return claims.Subject == user.Email
}

func (s *JWTTokenService) parse(token string, opts ...jwt.ParserOption) (*jwt.RegisteredClaims, bool) {
	claims := &jwt.RegisteredClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	}, opts...)
	if err != nil || !tkn.Valid {
		return nil, false
	}
	return claims, true
}
