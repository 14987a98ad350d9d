// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"vita/internal/delivery/http/middleware"
	"vita/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	ProfileHandler    *handler.ProfileHandler
	WaterHandler      *handler.WaterHandler
	SunlightHandler   *handler.SunlightHandler
	MeditationHandler *handler.MeditationHandler
	SleepHandler      *handler.SleepHandler
	ActivityHandler   *handler.ActivityHandler
	TaskHandler       *handler.TaskHandler
	AuthHandler       *handler.AuthHandler
	AuthMiddleware    *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// habitRoutes is the uniform route set shared by the dated habit domains.
type habitRoutes struct {
	prefix string
	today  echo.HandlerFunc
	week   echo.HandlerFunc
	add    echo.HandlerFunc
	update echo.HandlerFunc
	remove echo.HandlerFunc
}

// RegisterRoutes sets up all the API routes for the application.
// Both API versions expose identical behavior.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	for _, prefix := range []string{"/api/v1", "/api/v2"} {
		api := e.Group(prefix)

		// Token routes exist only when owner auth is configured.
		if r.params.AuthHandler.Enabled() {
			authGroup := api.Group("/auth")
			{
				authGroup.POST("/token", r.params.AuthHandler.Token)
				authGroup.POST("/refresh", r.params.AuthHandler.Refresh)
			}
		}

		// Domain routes; the auth middleware passes through when auth is
		// not configured.
		domains := api.Group("", r.params.AuthMiddleware.Authenticate)

		domains.GET("/profile", r.params.ProfileHandler.Get)
		domains.PUT("/profile", r.params.ProfileHandler.Update)

		for _, routes := range []habitRoutes{
			{"/water", r.params.WaterHandler.Today, r.params.WaterHandler.Week, r.params.WaterHandler.Add, r.params.WaterHandler.Update, r.params.WaterHandler.Remove},
			{"/sunlight", r.params.SunlightHandler.Today, r.params.SunlightHandler.Week, r.params.SunlightHandler.Add, r.params.SunlightHandler.Update, r.params.SunlightHandler.Remove},
			{"/meditation", r.params.MeditationHandler.Today, r.params.MeditationHandler.Week, r.params.MeditationHandler.Add, r.params.MeditationHandler.Update, r.params.MeditationHandler.Remove},
			{"/sleep", r.params.SleepHandler.Today, r.params.SleepHandler.Week, r.params.SleepHandler.Add, r.params.SleepHandler.Update, r.params.SleepHandler.Remove},
			{"/physical-activity", r.params.ActivityHandler.Today, r.params.ActivityHandler.Week, r.params.ActivityHandler.Add, r.params.ActivityHandler.Update, r.params.ActivityHandler.Remove},
		} {
			group := domains.Group(routes.prefix)
			{
				group.GET("/today", routes.today)
				group.GET("/week", routes.week)
				group.POST("", routes.add)
				group.PUT("/:id", routes.update)
				group.DELETE("/:id", routes.remove)
			}
		}

		tasks := domains.Group("/tasks")
		{
			tasks.GET("/today", r.params.TaskHandler.Today)
			tasks.GET("", r.params.TaskHandler.List)
			tasks.POST("", r.params.TaskHandler.Add)
			tasks.PUT("/:id", r.params.TaskHandler.Update)
			tasks.DELETE("/:id", r.params.TaskHandler.Remove)
		}
	}
}
