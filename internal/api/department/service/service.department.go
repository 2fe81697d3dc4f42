package departmentsvc

import (
	"context"
	"fmt"

	basesvc "github.com/batkt/sudalgaaQRBackend/internal/api/base/service"
	deptmodels "github.com/batkt/sudalgaaQRBackend/internal/api/department/models"
	"github.com/batkt/sudalgaaQRBackend/internal/common"
	"github.com/batkt/sudalgaaQRBackend/internal/global"
	"github.com/batkt/sudalgaaQRBackend/internal/hierarchy"
)

// DepartmentService manages the department hierarchy. Each stored document is
// a root node carrying its embedded subtree.
type DepartmentService struct {
	basesvc.BaseServiceMongoImpl[deptmodels.Department]
}

// NewDepartmentService creates a DepartmentService.
func NewDepartmentService() (*DepartmentService, error) {
	collection, exist := global.RegistryCollections.Get(global.ColNames.Departments)
	if !exist {
		return nil, fmt.Errorf("failed to get departments collection: %v", common.ErrNotFound)
	}
	return &DepartmentService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[deptmodels.Department](collection),
	}, nil
}

// GetHierarchy returns every root with its embedded subtree, in storage order.
func (s *DepartmentService) GetHierarchy(ctx context.Context) ([]deptmodels.Department, error) {
	return s.Find(ctx, nil, nil)
}

// GetFlattened returns the whole hierarchy as a pre-order list with levels.
func (s *DepartmentService) GetFlattened(ctx context.Context) ([]hierarchy.FlatEntry, error) {
	roots, err := s.GetHierarchy(ctx)
	if err != nil {
		return nil, err
	}
	return hierarchy.Flatten(roots), nil
}
