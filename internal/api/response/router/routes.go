// Package router registers the response and report routes.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	"github.com/batkt/sudalgaaQRBackend/internal/api/middleware"
	responsehdl "github.com/batkt/sudalgaaQRBackend/internal/api/response/handler"
	apirouter "github.com/batkt/sudalgaaQRBackend/internal/api/router"
)

// Register wires the response routes onto v1. Feedback submission is public:
// the QR code landing page has no session.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	responseHandler, err := responsehdl.NewResponseHandler()
	if err != nil {
		return fmt.Errorf("create response handler: %w", err)
	}
	r.RegisterCRUDRoutes(v1, "/responses", responseHandler, apirouter.ReadOnlyConfig)

	readMiddleware := middleware.AuthMiddleware(false)

	v1.Post("/responses/feedback", responseHandler.SubmitFeedback)
	apirouter.RegisterRouteWithMiddleware(v1, "/responses", "POST", "/rating", []fiber.Handler{readMiddleware}, responseHandler.SubmitRating)

	apirouter.RegisterRouteWithMiddleware(v1, "/reports", "GET", "/by-department", []fiber.Handler{readMiddleware}, responseHandler.ReportByDepartment)
	apirouter.RegisterRouteWithMiddleware(v1, "/reports", "GET", "/by-employee", []fiber.Handler{readMiddleware}, responseHandler.ReportByEmployee)
	apirouter.RegisterRouteWithMiddleware(v1, "/reports", "GET", "/by-question/:id", []fiber.Handler{readMiddleware}, responseHandler.ReportByQuestion)
	apirouter.RegisterRouteWithMiddleware(v1, "/reports", "GET", "/daily", []fiber.Handler{readMiddleware}, responseHandler.ReportDaily)
	apirouter.RegisterRouteWithMiddleware(v1, "/reports", "GET", "/dashboard", []fiber.Handler{readMiddleware}, responseHandler.Dashboard)

	return nil
}
