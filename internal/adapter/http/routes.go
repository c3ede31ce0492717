package http

import (
	"todoapp/internal/adapter/http/handlers"
	"todoapp/internal/adapter/http/middleware"
	"todoapp/pkg/session"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires the JSON API and the server-rendered pages onto
// one engine. Public routes are signup, login and health; everything
// touching todos sits behind the auth gate.
func RegisterRoutes(
	r *gin.Engine,
	sessions *session.Manager,
	healthHandler *handlers.HealthHandler,
	todoHandler *handlers.TodoHandler,
	authHandler *handlers.AuthHandler,
	pageHandler *handlers.PageHandler,
) {
	api := r.Group("/api")
	api.Use(middleware.LanguageMiddleware())
	{
		api.GET("/health", healthHandler.CheckHealth)
		api.GET("/health/report", healthHandler.CheckHealthReport)

		api.POST("/auth/signup", authHandler.Signup)
		api.POST("/auth/login", authHandler.Login)
		api.POST("/auth/logout", authHandler.Logout)

		authed := api.Group("")
		authed.Use(middleware.RequireAuth(sessions, false))
		{
			authed.DELETE("/auth/account", authHandler.DeleteAccount)
			authed.GET("/todos", todoHandler.ListTodos)
			authed.GET("/todos/categorized", todoHandler.ListCategorizedTodos)
			authed.POST("/todos", todoHandler.CreateTodo)
			authed.PUT("/todos/:id", todoHandler.UpdateTodo)
			authed.DELETE("/todos/:id", todoHandler.DeleteTodo)
		}
	}

	r.GET("/signup", pageHandler.ShowSignup)
	r.POST("/signup", pageHandler.SubmitSignup)
	r.GET("/login", pageHandler.ShowLogin)
	r.POST("/login", pageHandler.SubmitLogin)
	r.GET("/signout", pageHandler.Signout)

	pages := r.Group("")
	pages.Use(middleware.RequireAuth(sessions, true))
	{
		pages.GET("/", pageHandler.Dashboard)
		pages.POST("/todos", pageHandler.SubmitTodo)
		pages.POST("/todos/:id/set-completion", pageHandler.SubmitCompletion)
		pages.POST("/todos/:id/delete", pageHandler.SubmitDelete)
	}
}
