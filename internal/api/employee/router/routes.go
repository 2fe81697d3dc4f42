// Package router registers the employee domain routes.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	employeehdl "github.com/batkt/sudalgaaQRBackend/internal/api/employee/handler"
	"github.com/batkt/sudalgaaQRBackend/internal/api/middleware"
	apirouter "github.com/batkt/sudalgaaQRBackend/internal/api/router"
)

// Register wires the employee routes onto v1. Login is the only public
// route; import and the bulk downloads require the admin level.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	employeeHandler, err := employeehdl.NewEmployeeHandler()
	if err != nil {
		return fmt.Errorf("create employee handler: %w", err)
	}
	r.RegisterCRUDRoutes(v1, "/employees", employeeHandler, apirouter.ReadWriteConfig)

	readMiddleware := middleware.AuthMiddleware(false)
	adminMiddleware := middleware.AuthMiddleware(true)

	v1.Post("/auth/login", employeeHandler.Login)
	apirouter.RegisterRouteWithMiddleware(v1, "/auth", "POST", "/change-password", []fiber.Handler{readMiddleware}, employeeHandler.ChangePassword)

	apirouter.RegisterRouteWithMiddleware(v1, "/employees", "POST", "/import", []fiber.Handler{adminMiddleware}, employeeHandler.Import)
	apirouter.RegisterRouteWithMiddleware(v1, "/employees", "GET", "/import-template", []fiber.Handler{readMiddleware}, employeeHandler.DownloadTemplate)
	apirouter.RegisterRouteWithMiddleware(v1, "/employees", "GET", "/export", []fiber.Handler{readMiddleware}, employeeHandler.Export)
	apirouter.RegisterRouteWithMiddleware(v1, "/employees", "GET", "/list-resolved", []fiber.Handler{readMiddleware}, employeeHandler.FindAllResolved)
	apirouter.RegisterRouteWithMiddleware(v1, "/employees", "GET", "/qr-codes", []fiber.Handler{adminMiddleware}, employeeHandler.DownloadQRCodes)

	return nil
}
