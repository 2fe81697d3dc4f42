package settingshdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	basehdl "github.com/batkt/sudalgaaQRBackend/internal/api/base/handler"
	settingsmodels "github.com/batkt/sudalgaaQRBackend/internal/api/settings/models"
	settingssvc "github.com/batkt/sudalgaaQRBackend/internal/api/settings/service"
)

// SettingHandler handles configuration requests.
type SettingHandler struct {
	basehdl.BaseHandler[settingsmodels.Setting]
	SettingService *settingssvc.SettingService
}

// NewSettingHandler creates a SettingHandler.
func NewSettingHandler() (*SettingHandler, error) {
	settingService, err := settingssvc.NewSettingService()
	if err != nil {
		return nil, fmt.Errorf("create setting service: %w", err)
	}
	hdl := &SettingHandler{SettingService: settingService}
	hdl.BaseHandler.BaseService = &settingService.BaseServiceMongoImpl
	return hdl, nil
}

// GetCurrent returns the configuration document with defaults applied.
func (h *SettingHandler) GetCurrent(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		setting, err := h.SettingService.GetCurrent(c.Context())
		h.HandleResponse(c, setting, err)
		return nil
	})
}
