package settingshdl

import (
	"fmt"

	basehdl "github.com/batkt/sudalgaaQRBackend/internal/api/base/handler"
	settingsmodels "github.com/batkt/sudalgaaQRBackend/internal/api/settings/models"
	settingssvc "github.com/batkt/sudalgaaQRBackend/internal/api/settings/service"
)

// KeywordHandler handles keyword requests through the generic CRUD surface.
type KeywordHandler struct {
	basehdl.BaseHandler[settingsmodels.Keyword]
	KeywordService *settingssvc.KeywordService
}

// NewKeywordHandler creates a KeywordHandler.
func NewKeywordHandler() (*KeywordHandler, error) {
	keywordService, err := settingssvc.NewKeywordService()
	if err != nil {
		return nil, fmt.Errorf("create keyword service: %w", err)
	}
	hdl := &KeywordHandler{KeywordService: keywordService}
	hdl.BaseHandler.BaseService = &keywordService.BaseServiceMongoImpl
	return hdl, nil
}
