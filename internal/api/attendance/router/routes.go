// Package router registers the attendance domain routes.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	attendancehdl "github.com/batkt/sudalgaaQRBackend/internal/api/attendance/handler"
	"github.com/batkt/sudalgaaQRBackend/internal/api/middleware"
	apirouter "github.com/batkt/sudalgaaQRBackend/internal/api/router"
)

// Register wires the attendance routes onto v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	attendanceHandler, err := attendancehdl.NewAttendanceHandler()
	if err != nil {
		return fmt.Errorf("create attendance handler: %w", err)
	}
	r.RegisterCRUDRoutes(v1, "/attendance", attendanceHandler, apirouter.ReadOnlyConfig)

	readMiddleware := middleware.AuthMiddleware(false)
	apirouter.RegisterRouteWithMiddleware(v1, "/attendance", "POST", "/checkin", []fiber.Handler{readMiddleware}, attendanceHandler.CheckIn)

	return nil
}
