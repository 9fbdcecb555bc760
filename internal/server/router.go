package server

import (
	"log/slog"
	"net/http"

	"hr-directory/internal/app"
	"hr-directory/internal/config"
	"hr-directory/internal/handlers"
	"hr-directory/internal/middleware"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

const sessionCookieName = "hr_session"

func NewRouter(cfg *config.Config, a *app.App, log *slog.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(log))

	store := cookie.NewStore([]byte(cfg.SessionSecret))
	store.Options(sessions.Options{Path: "/", HttpOnly: true, SameSite: http.SameSiteLaxMode})
	r.Use(sessions.Sessions(sessionCookieName, store))

	r.Use(middleware.InjectSession(a.Directory))

	h := handlers.New(a.Audit, log)

	// AUTH
	r.POST("/login", middleware.RateLimit(rate.Limit(cfg.LoginRate), cfg.LoginBurst), h.Login)
	r.POST("/logout", h.Logout)

	auth := r.Group("/")
	auth.Use(middleware.RequireAuth())

	auth.GET("/me", h.Me)

	// USERS
	auth.GET("/users", h.ListUsers)
	auth.POST("/users/employees", h.CreateEmployee)
	auth.POST("/users/admins", h.CreateAdministrator)
	auth.DELETE("/users/:id", h.DeleteUser)
	auth.POST("/users/:id/promote", h.Promote)
	auth.POST("/users/:id/demote", h.Demote)
	auth.GET("/users/:id/hr", h.GetHRStatus)
	auth.PUT("/users/:id/hr", h.SetHRStatus)

	// reporting lines
	auth.GET("/users/:id/manager", h.GetManager)
	auth.PUT("/users/:id/manager", h.LinkManager)
	auth.DELETE("/users/:id/manager", h.UnlinkManager)
	auth.GET("/users/:id/reports", h.GetReports)

	// ATTRIBUTES
	auth.GET("/users/:id/salary", h.GetSalary)
	auth.PUT("/users/:id/salary", h.SetSalary)
	auth.GET("/users/:id/salary/history", h.GetSalaryHistory)
	auth.GET("/users/:id/vacation", h.GetVacation)
	auth.PUT("/users/:id/vacation", h.SetVacation)
	auth.GET("/users/:id/bonus", h.GetBonus)
	auth.PUT("/users/:id/bonus", h.SetBonus)

	// AUDIT
	auth.GET("/audit", middleware.RequireAdmin(), h.ListAuditLogs)
	auth.GET("/users/:id/history", middleware.RequireAdmin(), h.UserHistory)

	// HEALTHCHECK
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	return r
}

func requestLogger(log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		log.Debug("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
		)
	}
}
