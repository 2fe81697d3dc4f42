package attendancehdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	attendancemodels "github.com/batkt/sudalgaaQRBackend/internal/api/attendance/models"
	attendancesvc "github.com/batkt/sudalgaaQRBackend/internal/api/attendance/service"
	basehdl "github.com/batkt/sudalgaaQRBackend/internal/api/base/handler"
	"github.com/batkt/sudalgaaQRBackend/internal/common"
	"github.com/batkt/sudalgaaQRBackend/internal/utility"
)

// AttendanceHandler handles check-in requests.
type AttendanceHandler struct {
	basehdl.BaseHandler[attendancemodels.Attendance]
	AttendanceService *attendancesvc.AttendanceService
}

// NewAttendanceHandler creates an AttendanceHandler.
func NewAttendanceHandler() (*AttendanceHandler, error) {
	attendanceService, err := attendancesvc.NewAttendanceService()
	if err != nil {
		return nil, fmt.Errorf("create attendance service: %w", err)
	}
	hdl := &AttendanceHandler{AttendanceService: attendanceService}
	hdl.BaseHandler.BaseService = &attendanceService.BaseServiceMongoImpl
	return hdl, nil
}

// CheckIn records today's check-in for the logged-in employee.
func (h *AttendanceHandler) CheckIn(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		employeeID, _ := c.Locals("employee_id").(string)
		id := utility.String2ObjectID(employeeID)
		if id.IsZero() {
			h.HandleResponse(c, nil, common.ErrTokenInvalid)
			return nil
		}

		data, err := h.AttendanceService.CheckIn(c.Context(), id)
		h.HandleResponse(c, data, err)
		return nil
	})
}
