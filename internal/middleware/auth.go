// Package middleware implements the token gate and identity resolution that
// front every protected route. The pipeline is fixed: gate, then identity,
// then field validation in the handler, then the ownership-scoped store.
package middleware

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"taskboard/internal/apperrors"
	"taskboard/internal/auth"
	"taskboard/internal/model"
	"taskboard/internal/repository"
)

const (
	// TokenHeader is the request header carrying the bearer token.
	TokenHeader = "token"

	subjectKey = "auth.subject"
	userKey    = "auth.user"
)

// TokenGate rejects requests whose token header is absent, expired or
// invalid, each with its own status and reason, before any handler runs.
// On success the verified subject id is attached to the context.
func TokenGate(tokens *auth.JWTService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw := c.Request().Header.Get(TokenHeader)
			if raw == "" {
				return c.JSON(http.StatusBadRequest, apperrors.Envelope{
					Error:         true,
					Message:       "token not provided",
					MessageDetail: "a token header is required to continue",
				})
			}

			subject, err := tokens.Verify(raw)
			if err != nil {
				switch {
				case errors.Is(err, auth.ErrTokenExpired):
					return c.JSON(http.StatusUnauthorized, apperrors.Envelope{
						Error:         true,
						Message:       "token expired",
						MessageDetail: "the given token has expired, please log in again",
					})
				case errors.Is(err, auth.ErrTokenInvalid):
					return c.JSON(http.StatusUnauthorized, apperrors.Envelope{
						Error:         true,
						Message:       "token invalid",
						MessageDetail: "the given token is invalid, please send a correct token",
					})
				default:
					return c.JSON(http.StatusInternalServerError, apperrors.Envelope{
						Error:         true,
						Message:       "token validation problem",
						MessageDetail: err.Error(),
					})
				}
			}

			c.Set(subjectKey, subject)
			return next(c)
		}
	}
}

// ResolveIdentity maps the verified subject id to a live user record. Tokens
// are stateless, so a user deleted after issuance still carries a valid
// token; this is the only place that catches it.
func ResolveIdentity(users repository.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			subject, ok := c.Get(subjectKey).(uint)
			if !ok {
				return c.JSON(http.StatusInternalServerError, apperrors.Envelope{
					Error:         true,
					Message:       "identity resolution problem",
					MessageDetail: "no verified subject on request",
				})
			}

			user, err := users.FindByID(c.Request().Context(), subject)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return c.JSON(http.StatusNotFound, apperrors.Envelope{
						Error:         true,
						Message:       "user not found",
						MessageDetail: "authenticated user no longer exists",
					})
				}
				return c.JSON(http.StatusInternalServerError, apperrors.Envelope{
					Error:         true,
					Message:       "identity resolution problem",
					MessageDetail: err.Error(),
				})
			}

			SetCurrentUser(c, user)
			return next(c)
		}
	}
}

// SetCurrentUser attaches the resolved user to the request context.
func SetCurrentUser(c echo.Context, user *model.User) {
	c.Set(userKey, user)
}

// CurrentUser returns the user resolved by ResolveIdentity, or nil when the
// middleware has not run on this route.
func CurrentUser(c echo.Context) *model.User {
	user, _ := c.Get(userKey).(*model.User)
	return user
}
