package responsehdl

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v3"

	basehdl "github.com/batkt/sudalgaaQRBackend/internal/api/base/handler"
	responsedto "github.com/batkt/sudalgaaQRBackend/internal/api/response/dto"
	responsemodels "github.com/batkt/sudalgaaQRBackend/internal/api/response/models"
	responsesvc "github.com/batkt/sudalgaaQRBackend/internal/api/response/service"
)

// ResponseHandler handles feedback, rating and report requests.
type ResponseHandler struct {
	basehdl.BaseHandler[responsemodels.Response]
	ResponseService *responsesvc.ResponseService
}

// NewResponseHandler creates a ResponseHandler.
func NewResponseHandler() (*ResponseHandler, error) {
	responseService, err := responsesvc.NewResponseService()
	if err != nil {
		return nil, fmt.Errorf("create response service: %w", err)
	}
	hdl := &ResponseHandler{ResponseService: responseService}
	hdl.BaseHandler.BaseService = &responseService.BaseServiceMongoImpl
	return hdl, nil
}

// SubmitFeedback stores a public feedback submission.
func (h *ResponseHandler) SubmitFeedback(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input responsedto.FeedbackInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		data, err := h.ResponseService.SubmitFeedback(c.Context(), &input)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// SubmitRating upserts the logged-in employee's rating for a question set.
func (h *ResponseHandler) SubmitRating(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input responsedto.RatingInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		employeeID, _ := c.Locals("employee_id").(string)
		data, err := h.ResponseService.SubmitRating(c.Context(), employeeID, &input)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// ReportByDepartment returns average scores per department.
func (h *ResponseHandler) ReportByDepartment(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		data, err := h.ResponseService.AverageByDepartment(c.Context())
		h.HandleResponse(c, data, err)
		return nil
	})
}

// ReportByEmployee returns average scores per rated employee.
func (h *ResponseHandler) ReportByEmployee(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		data, err := h.ResponseService.AverageByEmployee(c.Context())
		h.HandleResponse(c, data, err)
		return nil
	})
}

// ReportByQuestion returns per-question averages for the :id question set.
func (h *ResponseHandler) ReportByQuestion(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := h.GetIDFromParams(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		data, err := h.ResponseService.AverageByQuestion(c.Context(), id)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// ReportDaily returns submission counts per day; "days" selects the window.
func (h *ResponseHandler) ReportDaily(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		days, _ := strconv.Atoi(c.Query("days", "30"))
		data, err := h.ResponseService.DailyCounts(c.Context(), days)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// Dashboard returns the landing page aggregates.
func (h *ResponseHandler) Dashboard(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		data, err := h.ResponseService.Dashboard(c.Context())
		h.HandleResponse(c, data, err)
		return nil
	})
}
