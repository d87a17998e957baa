package http

import (
	"net/http"
	"strings"
	"time"

	"bottleshop/internal/core/domain/model/account"
	"bottleshop/internal/core/domain/model/kernel"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const authContextKey = "auth"

// authClaims is the JWT payload. The subject carries the account ID and the
// role claim drives route-level authorization.
type authClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// authContext is what the middleware leaves on the request context after a
// successful token check.
type authContext struct {
	AccountID kernel.UUID
	Role      account.Role
}

// TokenIssuer signs bearer tokens for authenticated accounts.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenIssuer creates a token issuer with the given signing secret and
// token lifetime.
func NewTokenIssuer(secret string, ttl time.Duration) *TokenIssuer {
	return &TokenIssuer{secret: []byte(secret), ttl: ttl}
}

// Issue creates a signed token for the account.
func (t *TokenIssuer) Issue(accountID kernel.UUID, role account.Role) (string, error) {
	now := time.Now().UTC()
	claims := authClaims{
		Role: strings.ToLower(role.String()),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   accountID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(t.secret)
}

// Middleware returns an echo middleware that rejects requests without a
// valid bearer token and stores the token's identity on the context.
func (t *TokenIssuer) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			header := ctx.Request().Header.Get(echo.HeaderAuthorization)
			raw, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || raw == "" {
				return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
					Code:    http.StatusUnauthorized,
					Message: "missing bearer token",
				})
			}

			claims := &authClaims{}
			token, err := jwt.ParseWithClaims(raw, claims, func(token *jwt.Token) (any, error) {
				if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, jwt.ErrSignatureInvalid
				}
				return t.secret, nil
			})
			if err != nil || !token.Valid {
				return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
					Code:    http.StatusUnauthorized,
					Message: "invalid or expired token",
				})
			}

			accountID, err := kernel.UUIDFromString(claims.Subject)
			if err != nil {
				return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
					Code:    http.StatusUnauthorized,
					Message: "invalid or expired token",
				})
			}

			role, err := account.RoleFromString(claims.Role)
			if err != nil {
				return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
					Code:    http.StatusUnauthorized,
					Message: "invalid or expired token",
				})
			}

			ctx.Set(authContextKey, authContext{AccountID: accountID, Role: role})
			return next(ctx)
		}
	}
}

// requireRole returns a middleware that admits only the given roles. It runs
// after the bearer middleware.
func requireRole(roles ...account.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			auth, ok := ctx.Get(authContextKey).(authContext)
			if !ok {
				return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
					Code:    http.StatusUnauthorized,
					Message: "missing bearer token",
				})
			}

			for _, role := range roles {
				if auth.Role == role {
					return next(ctx)
				}
			}

			return ctx.JSON(http.StatusForbidden, ErrorResponse{
				Code:    http.StatusForbidden,
				Message: "insufficient role",
			})
		}
	}
}

// callerOf extracts the authenticated identity left by the middleware.
func callerOf(ctx echo.Context) (authContext, bool) {
	auth, ok := ctx.Get(authContextKey).(authContext)
	return auth, ok
}
