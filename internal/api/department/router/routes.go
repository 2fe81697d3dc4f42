// Package router registers the department domain routes.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	departmenthdl "github.com/batkt/sudalgaaQRBackend/internal/api/department/handler"
	"github.com/batkt/sudalgaaQRBackend/internal/api/middleware"
	apirouter "github.com/batkt/sudalgaaQRBackend/internal/api/router"
)

// Register wires the department routes onto v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	departmentHandler, err := departmenthdl.NewDepartmentHandler()
	if err != nil {
		return fmt.Errorf("create department handler: %w", err)
	}
	r.RegisterCRUDRoutes(v1, "/departments", departmentHandler, apirouter.ReadWriteConfig)

	readMiddleware := middleware.AuthMiddleware(false)
	apirouter.RegisterRouteWithMiddleware(v1, "/departments", "GET", "/hierarchy", []fiber.Handler{readMiddleware}, departmentHandler.GetHierarchy)
	apirouter.RegisterRouteWithMiddleware(v1, "/departments", "GET", "/flat", []fiber.Handler{readMiddleware}, departmentHandler.GetFlattened)

	return nil
}
