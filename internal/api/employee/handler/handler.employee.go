package employeehdl

import (
	"bytes"
	"fmt"

	"github.com/gofiber/fiber/v3"

	basehdl "github.com/batkt/sudalgaaQRBackend/internal/api/base/handler"
	employeedto "github.com/batkt/sudalgaaQRBackend/internal/api/employee/dto"
	employeemodels "github.com/batkt/sudalgaaQRBackend/internal/api/employee/models"
	employeesvc "github.com/batkt/sudalgaaQRBackend/internal/api/employee/service"
	"github.com/batkt/sudalgaaQRBackend/internal/common"
	"github.com/batkt/sudalgaaQRBackend/internal/global"
	"github.com/batkt/sudalgaaQRBackend/internal/logger"
	"github.com/batkt/sudalgaaQRBackend/internal/qrcode"
	"github.com/batkt/sudalgaaQRBackend/internal/spreadsheet"
	"github.com/batkt/sudalgaaQRBackend/internal/utility"
)

// EmployeeHandler handles employee requests: generic CRUD plus import,
// export, authentication and QR bundle download.
type EmployeeHandler struct {
	basehdl.BaseHandler[employeemodels.Employee]
	EmployeeService *employeesvc.EmployeeService
}

// NewEmployeeHandler creates an EmployeeHandler.
func NewEmployeeHandler() (*EmployeeHandler, error) {
	employeeService, err := employeesvc.NewEmployeeService()
	if err != nil {
		return nil, fmt.Errorf("create employee service: %w", err)
	}
	hdl := &EmployeeHandler{EmployeeService: employeeService}
	hdl.BaseHandler.BaseService = &employeeService.BaseServiceMongoImpl
	return hdl, nil
}

// Login authenticates by login name and password, issuing a token.
func (h *EmployeeHandler) Login(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input employeedto.LoginInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		result, err := h.EmployeeService.Login(c.Context(), &input)
		if err == nil {
			logger.GetAuditLogger().WithField("loginName", input.LoginName).Info("login")
		}
		h.HandleResponse(c, result, err)
		return nil
	})
}

// ChangePassword updates the logged-in employee's password.
func (h *EmployeeHandler) ChangePassword(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input employeedto.ChangePasswordInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		employeeID, _ := c.Locals("employee_id").(string)
		err := h.EmployeeService.ChangePassword(c.Context(), employeeID, &input)
		h.HandleResponse(c, nil, err)
		return nil
	})
}

// Import reads the uploaded workbook and runs the row-by-row import. The
// upload is a multipart form with the workbook under "file".
func (h *EmployeeHandler) Import(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		fileHeader, err := c.FormFile("file")
		if err != nil {
			h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationInput, "Файл илгээгдээгүй байна", common.StatusBadRequest, err))
			return nil
		}

		file, err := fileHeader.Open()
		if err != nil {
			h.HandleResponse(c, nil, common.ErrInvalidFormat)
			return nil
		}
		defer file.Close()

		rows, err := spreadsheet.ReadEmployeeSheet(file)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		result, err := h.EmployeeService.ImportRows(c.Context(), rows)
		if err == nil {
			logger.GetAuditLogger().WithFields(map[string]interface{}{
				"imported": result.ImportedCount,
				"errors":   len(result.Errors),
			}).Info("employee import")
		}
		h.HandleResponse(c, result, err)
		return nil
	})
}

// DownloadTemplate streams an empty import template workbook.
func (h *EmployeeHandler) DownloadTemplate(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var buf bytes.Buffer
		if err := h.EmployeeService.WriteTemplate(c.Context(), &buf); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		return sendFile(c, "template.xlsx", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
	})
}

// Export streams every employee as a workbook.
func (h *EmployeeHandler) Export(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var buf bytes.Buffer
		if err := h.EmployeeService.WriteExport(c.Context(), &buf); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		return sendFile(c, "employees.xlsx", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
	})
}

// FindAllResolved lists employees with department names resolved against the
// live tree.
func (h *EmployeeHandler) FindAllResolved(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		employees, err := h.EmployeeService.FindAllResolved(c.Context())
		h.HandleResponse(c, employees, err)
		return nil
	})
}

// DownloadQRCodes streams a zip of per-employee feedback-link QR images.
func (h *EmployeeHandler) DownloadQRCodes(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		employees, err := h.EmployeeService.Find(c.Context(), nil, nil)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		entries := make([]qrcode.Entry, 0, len(employees))
		for _, employee := range employees {
			id := utility.ObjectID2String(employee.ID)
			name := employee.Name
			if employee.Surname != "" {
				name = employee.Surname + " " + name
			}
			entries = append(entries, qrcode.Entry{
				URL:      fmt.Sprintf("%s/feedback/%s", global.ServerConfig.FrontendURL, id),
				FileName: fmt.Sprintf("%s-%s", name, employee.Register),
			})
		}

		var buf bytes.Buffer
		if err := qrcode.WriteZip(&buf, entries); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		return sendFile(c, "qr-codes.zip", "application/zip", buf.Bytes())
	})
}

func sendFile(c fiber.Ctx, name, contentType string, data []byte) error {
	c.Set("Content-Type", contentType)
	c.Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, name))
	return c.Send(data)
}
