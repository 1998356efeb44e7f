package domain

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the payload embedded in every issued bearer token. The ip and
// ua fields bind the token to the network address and client observed at
// issuance; both must match on every subsequent request.
type Claims struct {
	Role     string `json:"role"`
	ID       int64  `json:"id"`
	Identity string `json:"identity"`
	Exp      int64  `json:"exp"`
	IP       string `json:"ip"`
	UA       string `json:"ua"`
}

// Expiry, binding and existence checks run in the admission gate in a fixed
// order, so the parser must not validate claims on its own. The jwt.Claims
// implementation below only exposes the raw values.

func (c *Claims) GetExpirationTime() (*jwt.NumericDate, error) {
	return jwt.NewNumericDate(time.Unix(c.Exp, 0)), nil
}

func (c *Claims) GetIssuedAt() (*jwt.NumericDate, error)  { return nil, nil }
func (c *Claims) GetNotBefore() (*jwt.NumericDate, error) { return nil, nil }
func (c *Claims) GetIssuer() (string, error)              { return "", nil }
func (c *Claims) GetSubject() (string, error)             { return c.Identity, nil }
func (c *Claims) GetAudience() (jwt.ClaimStrings, error)  { return nil, nil }
