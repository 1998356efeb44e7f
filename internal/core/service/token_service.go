package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/webshop-io/shop-api/internal/core/domain"
)

// tokenLifetime is fixed by the token contract: every token expires exactly
// fourteen days after issuance.
const tokenLifetime = 14 * 24 * time.Hour

// TokenService issues and verifies the signed bearer tokens carrying
// domain.Claims. One process-wide shared secret signs every token; the
// token itself is the entire session artifact.
type TokenService struct {
	secret []byte
	parser *jwt.Parser
}

func NewTokenService(secret string) *TokenService {
	return &TokenService{
		secret: []byte(secret),
		// The admission gate runs expiry and binding checks itself, in a
		// fixed order with distinct rejection reasons. The parser only
		// checks the signature.
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithoutClaimsValidation(),
		),
	}
}

// Issue builds Claims bound to the issuing request's ip and ua and signs
// them. Missing ip/ua are carried as empty strings.
func (s *TokenService) Issue(role string, id int64, identity, ip, ua string, now time.Time) (string, error) {
	if role == "" || identity == "" {
		return "", errors.New("token: role and identity are required")
	}

	claims := &domain.Claims{
		Role:     role,
		ID:       id,
		Identity: identity,
		Exp:      now.Add(tokenLifetime).Unix(),
		IP:       ip,
		UA:       ua,
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Verify parses the token and checks its signature. Malformed and tampered
// tokens are indistinguishable to the caller, so a rejection leaks no
// signature-validity information.
func (s *TokenService) Verify(tokenString string) (*domain.Claims, error) {
	claims := &domain.Claims{}
	token, err := s.parser.ParseWithClaims(tokenString, claims, func(*jwt.Token) (interface{}, error) {
		return s.secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenSignatureInvalid
	}
	return claims, nil
}
