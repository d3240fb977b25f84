package middleware

import (
	"context"
	"net/url"
	"strings"
	"time"

	"github.com/auth0/go-jwt-middleware/v2/jwks"
	"github.com/auth0/go-jwt-middleware/v2/validator"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"github.com/draftdeck/draftdeck-backend/internal/domain"
)

// SessionClaims contains the custom claims Clerk puts into session tokens
type SessionClaims struct {
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// Validate implements validator.CustomClaims
func (c SessionClaims) Validate(ctx context.Context) error {
	return nil
}

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

const (
	// ClaimsKey is the context key for validated JWT claims
	ClaimsKey contextKey = "claims"
	// UserIDKey is the context key for the Clerk user ID (subject)
	UserIDKey contextKey = "user_id"
)

// AuthMiddleware validates Clerk-issued session tokens against the
// instance's JWKS endpoint.
type AuthMiddleware struct {
	validator *validator.Validator
}

// NewAuthMiddleware creates a new AuthMiddleware for the given Clerk instance
func NewAuthMiddleware(clerkDomain, audience string) (*AuthMiddleware, error) {
	issuerURL, err := url.Parse("https://" + clerkDomain + "/")
	if err != nil {
		return nil, err
	}

	provider := jwks.NewCachingProvider(issuerURL, 5*time.Minute)

	audiences := []string{}
	if audience != "" {
		audiences = append(audiences, audience)
	}

	jwtValidator, err := validator.New(
		provider.KeyFunc,
		validator.RS256,
		issuerURL.String(),
		audiences,
		validator.WithCustomClaims(func() validator.CustomClaims {
			return &SessionClaims{}
		}),
		validator.WithAllowedClockSkew(time.Minute),
	)
	if err != nil {
		return nil, err
	}

	return &AuthMiddleware{validator: jwtValidator}, nil
}

// Authenticate returns an Echo middleware that validates session tokens and
// stores the authenticated user ID in the request context
func (m *AuthMiddleware) Authenticate() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, err := extractToken(c)
			if err != nil {
				return err
			}

			claims, err := m.validator.ValidateToken(c.Request().Context(), token)
			if err != nil {
				log.Debug().Err(err).Msg("Token validation failed")
				return domain.Unauthorized("INVALID_TOKEN", "Invalid or expired session token")
			}

			validatedClaims, ok := claims.(*validator.ValidatedClaims)
			if !ok {
				return domain.Unauthorized("INVALID_TOKEN", "Invalid or expired session token")
			}

			ctx := context.WithValue(c.Request().Context(), ClaimsKey, validatedClaims)
			ctx = context.WithValue(ctx, UserIDKey, validatedClaims.RegisteredClaims.Subject)
			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}

// extractToken takes the session token from the Authorization header, or the
// token query parameter for websocket upgrades where headers cannot be set
func extractToken(c echo.Context) (string, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			return "", domain.Unauthorized("INVALID_AUTH_HEADER", "Invalid authorization header format")
		}
		return parts[1], nil
	}

	if token := c.QueryParam("token"); token != "" {
		return token, nil
	}

	return "", domain.Unauthorized("MISSING_TOKEN", "Missing authorization header")
}

// GetUserID extracts the authenticated Clerk user ID from the context
func GetUserID(c echo.Context) string {
	if id, ok := c.Request().Context().Value(UserIDKey).(string); ok {
		return id
	}
	return ""
}

// GetClaims extracts the validated claims from the context
func GetClaims(c echo.Context) *validator.ValidatedClaims {
	if claims, ok := c.Request().Context().Value(ClaimsKey).(*validator.ValidatedClaims); ok {
		return claims
	}
	return nil
}
