package departmenthdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	basehdl "github.com/batkt/sudalgaaQRBackend/internal/api/base/handler"
	deptmodels "github.com/batkt/sudalgaaQRBackend/internal/api/department/models"
	departmentsvc "github.com/batkt/sudalgaaQRBackend/internal/api/department/service"
)

// DepartmentHandler handles department hierarchy requests.
type DepartmentHandler struct {
	basehdl.BaseHandler[deptmodels.Department]
	DepartmentService *departmentsvc.DepartmentService
}

// NewDepartmentHandler creates a DepartmentHandler.
func NewDepartmentHandler() (*DepartmentHandler, error) {
	departmentService, err := departmentsvc.NewDepartmentService()
	if err != nil {
		return nil, fmt.Errorf("create department service: %w", err)
	}
	hdl := &DepartmentHandler{DepartmentService: departmentService}
	hdl.BaseHandler.BaseService = &departmentService.BaseServiceMongoImpl
	return hdl, nil
}

// GetHierarchy returns the full department tree.
func (h *DepartmentHandler) GetHierarchy(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		roots, err := h.DepartmentService.GetHierarchy(c.Context())
		h.HandleResponse(c, roots, err)
		return nil
	})
}

// GetFlattened returns the hierarchy as a pre-order list with levels, the
// shape consumed by dropdowns and the import template.
func (h *DepartmentHandler) GetFlattened(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		flat, err := h.DepartmentService.GetFlattened(c.Context())
		h.HandleResponse(c, flat, err)
		return nil
	})
}
