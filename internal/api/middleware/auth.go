package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/webshop-io/shop-api/internal/api/metrics"
	"github.com/webshop-io/shop-api/internal/core/ports"
)

// Rejection reasons surfaced in 401 responses. The strings are part of the
// external contract and must stay stable.
const (
	ReasonTokenNotFound   = "Token not found"
	ReasonBadToken        = "Bad token found"
	ReasonIPMismatch      = "Ip token found"
	ReasonUAMismatch      = "User agent not found"
	ReasonAccountNotFound = "Account not found"
	ReasonTokenExpired    = "Token is expired"
)

// reasonLabels maps client-facing reasons to metric label values.
var reasonLabels = map[string]string{
	ReasonTokenNotFound:   "token_not_found",
	ReasonBadToken:        "bad_token",
	ReasonIPMismatch:      "ip_mismatch",
	ReasonUAMismatch:      "ua_mismatch",
	ReasonAccountNotFound: "account_not_found",
	ReasonTokenExpired:    "token_expired",
}

func reject(reason string) error {
	metrics.AuthRejectionsTotal.WithLabelValues(reasonLabels[reason]).Inc()
	return echo.NewHTTPError(http.StatusUnauthorized, reason)
}

// Auth is the per-request admission gate. It runs seven ordered checks,
// each short-circuiting with its own 401 reason:
//
//  1. Authorization header present
//  2. header splits into exactly two parts
//  3. token parses and its signature verifies
//  4. claims ip matches the request's client address
//  5. claims ua matches the request's User-Agent
//  6. the referenced actor still exists
//  7. the token has not expired
//
// Only then are the verified claims attached to the context (keys "claims",
// "role", "actor_id", "identity") and the request allowed to proceed.
func Auth(tokens ports.TokenVerifier, accounts ports.AccountDirectory) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return reject(ReasonTokenNotFound)
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 {
				return reject(ReasonBadToken)
			}

			claims, err := tokens.Verify(parts[1])
			if err != nil {
				// Malformed and tampered tokens are deliberately
				// indistinguishable here.
				return reject(ReasonBadToken)
			}

			if claims.IP != c.RealIP() {
				return reject(ReasonIPMismatch)
			}

			if claims.UA != c.Request().UserAgent() {
				return reject(ReasonUAMismatch)
			}

			exists, err := accounts.Exists(c.Request().Context(), claims.Role, claims.ID)
			if err != nil || !exists {
				// Lookup failures fail closed.
				return reject(ReasonAccountNotFound)
			}

			if claims.Exp <= time.Now().Unix() {
				return reject(ReasonTokenExpired)
			}

			c.Set("claims", claims)
			c.Set("role", claims.Role)
			c.Set("actor_id", claims.ID)
			c.Set("identity", claims.Identity)

			return next(c)
		}
	}
}
