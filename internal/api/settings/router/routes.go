// Package router registers the settings domain routes.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	"github.com/batkt/sudalgaaQRBackend/internal/api/middleware"
	apirouter "github.com/batkt/sudalgaaQRBackend/internal/api/router"
	settingshdl "github.com/batkt/sudalgaaQRBackend/internal/api/settings/handler"
)

// Register wires the settings and keyword routes onto v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	settingHandler, err := settingshdl.NewSettingHandler()
	if err != nil {
		return fmt.Errorf("create setting handler: %w", err)
	}
	r.RegisterCRUDRoutes(v1, "/settings", settingHandler, apirouter.ReadWriteConfig)

	readMiddleware := middleware.AuthMiddleware(false)
	apirouter.RegisterRouteWithMiddleware(v1, "/settings", "GET", "/current", []fiber.Handler{readMiddleware}, settingHandler.GetCurrent)

	keywordHandler, err := settingshdl.NewKeywordHandler()
	if err != nil {
		return fmt.Errorf("create keyword handler: %w", err)
	}
	r.RegisterCRUDRoutes(v1, "/keywords", keywordHandler, apirouter.ReadWriteConfig)

	return nil
}
