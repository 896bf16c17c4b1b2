package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/atlas-rto/workforce-matrix/internal/api/http/handlers"
	"github.com/atlas-rto/workforce-matrix/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Staff          *handlers.StaffHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	authGroup := app.Group("/auth")
	authGroup.Post("/login", cfg.Auth.Login)
	authGroup.Post("/logout", cfg.Auth.Logout)
	authGroup.Get("/session", cfg.Auth.Session)

	users := authGroup.Group("/users", cfg.AuthMiddleware.Handle, auth.RequireAdministrator())
	users.Get("", cfg.Auth.ListUsers)
	users.Post("", cfg.Auth.AddUser)
	users.Patch("/:username/role", cfg.Auth.ChangeRole)
	users.Patch("/:username/password", cfg.Auth.ChangePassword)
	users.Delete("/:username", cfg.Auth.DeleteUser)

	// Reads are open; every mutation requires at least a login.
	staff := app.Group("/staff")
	staff.Get("/soas", cfg.Staff.SOAOptions)
	staff.Get("/export", cfg.Staff.Export)
	staff.Post("/import", cfg.AuthMiddleware.Handle, auth.RequireLogin(), cfg.Staff.Import)
	staff.Get("", cfg.Staff.List)
	staff.Post("", cfg.AuthMiddleware.Handle, auth.RequireAdministrator(), cfg.Staff.Create)
	staff.Get("/:atlasId/summary.csv", cfg.Staff.SummaryCSV)
	staff.Get("/:atlasId/compliance", cfg.Staff.ComplianceReport)
	staff.Get("/:atlasId", cfg.Staff.Get)
	staff.Delete("/:atlasId", cfg.AuthMiddleware.Handle, auth.RequireAdministrator(), cfg.Staff.Delete)
	staff.Patch("/:id/section", cfg.AuthMiddleware.Handle, auth.RequireLogin(), cfg.Staff.UpdateSection)
	staff.Post("/:id/section/:section", cfg.AuthMiddleware.Handle, auth.RequireLogin(), cfg.Staff.AddSubRecord)
	staff.Delete("/:id/section/:section/:index", cfg.AuthMiddleware.Handle, auth.RequireLogin(), cfg.Staff.DeleteSubRecord)
}
