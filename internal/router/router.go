package router

import (
	"net/http"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"taskboard/internal/auth"
	"taskboard/internal/handler"
	"taskboard/internal/middleware"
	"taskboard/internal/repository"
)

// Register wires routes and middleware. Registration and login are public;
// everything under /v1/tasks sits behind the token gate and identity
// resolution, in that order.
func Register(
	e *echo.Echo,
	tokens *auth.JWTService,
	users repository.UserRepository,
	authHandler *handler.AuthHandler,
	taskHandler *handler.TaskHandler,
	statusHandler *handler.StatusHandler,
) {
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())

	e.Validator = handler.NewValidator()

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	v1 := e.Group("/v1")

	// Public routes
	v1.POST("/auth/register", authHandler.Register)
	v1.POST("/auth/login", authHandler.Login)

	// Protected routes
	protected := v1.Group("", middleware.TokenGate(tokens), middleware.ResolveIdentity(users))
	protected.GET("/tasks/me", taskHandler.List)
	protected.GET("/tasks/statuses", statusHandler.List)
	protected.POST("/tasks", taskHandler.Create)
	protected.GET("/tasks/:id", taskHandler.Get)
	protected.PUT("/tasks/:id", taskHandler.Update)
	protected.DELETE("/tasks/:id", taskHandler.Delete)
}
