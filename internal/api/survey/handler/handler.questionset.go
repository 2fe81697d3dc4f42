package surveyhdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	basehdl "github.com/batkt/sudalgaaQRBackend/internal/api/base/handler"
	surveymodels "github.com/batkt/sudalgaaQRBackend/internal/api/survey/models"
	surveysvc "github.com/batkt/sudalgaaQRBackend/internal/api/survey/service"
)

// QuestionSetHandler handles question set requests.
type QuestionSetHandler struct {
	basehdl.BaseHandler[surveymodels.QuestionSet]
	QuestionSetService *surveysvc.QuestionSetService
}

// NewQuestionSetHandler creates a QuestionSetHandler.
func NewQuestionSetHandler() (*QuestionSetHandler, error) {
	questionSetService, err := surveysvc.NewQuestionSetService()
	if err != nil {
		return nil, fmt.Errorf("create question set service: %w", err)
	}
	hdl := &QuestionSetHandler{QuestionSetService: questionSetService}
	hdl.BaseHandler.BaseService = &questionSetService.BaseServiceMongoImpl
	return hdl, nil
}

// Activate marks the :id set active, deactivating every other set.
func (h *QuestionSetHandler) Activate(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := h.GetIDFromParams(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		data, err := h.QuestionSetService.Activate(c.Context(), id)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// GetActive returns the currently active set. Public: the feedback page
// loads it without a session.
func (h *QuestionSetHandler) GetActive(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		data, err := h.QuestionSetService.GetActive(c.Context())
		h.HandleResponse(c, data, err)
		return nil
	})
}
