// Package router registers the survey domain routes.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	"github.com/batkt/sudalgaaQRBackend/internal/api/middleware"
	apirouter "github.com/batkt/sudalgaaQRBackend/internal/api/router"
	surveyhdl "github.com/batkt/sudalgaaQRBackend/internal/api/survey/handler"
)

// Register wires the question set routes onto v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	questionSetHandler, err := surveyhdl.NewQuestionSetHandler()
	if err != nil {
		return fmt.Errorf("create question set handler: %w", err)
	}
	r.RegisterCRUDRoutes(v1, "/question-sets", questionSetHandler, apirouter.ReadWriteConfig)

	adminMiddleware := middleware.AuthMiddleware(true)
	apirouter.RegisterRouteWithMiddleware(v1, "/question-sets", "POST", "/activate/:id", []fiber.Handler{adminMiddleware}, questionSetHandler.Activate)
	v1.Get("/question-sets/active", questionSetHandler.GetActive)

	return nil
}
