package settingssvc

import (
	"fmt"

	basesvc "github.com/batkt/sudalgaaQRBackend/internal/api/base/service"
	settingsmodels "github.com/batkt/sudalgaaQRBackend/internal/api/settings/models"
	"github.com/batkt/sudalgaaQRBackend/internal/common"
	"github.com/batkt/sudalgaaQRBackend/internal/global"
)

// KeywordService manages comment-classification keywords.
type KeywordService struct {
	basesvc.BaseServiceMongoImpl[settingsmodels.Keyword]
}

// NewKeywordService creates a KeywordService.
func NewKeywordService() (*KeywordService, error) {
	collection, exist := global.RegistryCollections.Get(global.ColNames.Keywords)
	if !exist {
		return nil, fmt.Errorf("failed to get keywords collection: %v", common.ErrNotFound)
	}
	return &KeywordService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[settingsmodels.Keyword](collection),
	}, nil
}
