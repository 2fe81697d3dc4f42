package settingssvc

import (
	"context"
	"fmt"

	basesvc "github.com/batkt/sudalgaaQRBackend/internal/api/base/service"
	settingsmodels "github.com/batkt/sudalgaaQRBackend/internal/api/settings/models"
	"github.com/batkt/sudalgaaQRBackend/internal/common"
	"github.com/batkt/sudalgaaQRBackend/internal/global"
)

// SettingService manages the single operational configuration document.
type SettingService struct {
	basesvc.BaseServiceMongoImpl[settingsmodels.Setting]
}

// NewSettingService creates a SettingService.
func NewSettingService() (*SettingService, error) {
	collection, exist := global.RegistryCollections.Get(global.ColNames.Settings)
	if !exist {
		return nil, fmt.Errorf("failed to get settings collection: %v", common.ErrNotFound)
	}
	return &SettingService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[settingsmodels.Setting](collection),
	}, nil
}

// GetCurrent returns the configuration document, or a zero-value Setting with
// defaults when none is stored yet.
func (s *SettingService) GetCurrent(ctx context.Context) (settingsmodels.Setting, error) {
	setting, err := s.FindOne(ctx, nil, nil)
	if err == common.ErrNotFound {
		return settingsmodels.Setting{
			NegativeThreshold:   2,
			PositiveThreshold:   4,
			BroadColumnFallback: true,
		}, nil
	}
	return setting, err
}
