// Package handler - generic CRUD handlers.
// BaseHandler binds a model type to its base service and exposes the shared
// request parsing, filtering and CRUD endpoints.
package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basesvc "github.com/batkt/sudalgaaQRBackend/internal/api/base/service"
	"github.com/batkt/sudalgaaQRBackend/internal/common"
	"github.com/batkt/sudalgaaQRBackend/internal/global"
)

// BaseHandler provides the shared CRUD endpoints for model type T.
type BaseHandler[T any] struct {
	BaseService basesvc.BaseServiceMongo[T]
}

// ParseRequestBody decodes the JSON request body into input and validates it.
func (h *BaseHandler[T]) ParseRequestBody(c fiber.Ctx, input interface{}) error {
	decoder := json.NewDecoder(bytes.NewReader(c.Body()))
	decoder.UseNumber()
	if err := decoder.Decode(input); err != nil {
		return common.NewError(common.ErrCodeValidationFormat, common.MsgInvalidFormat, common.StatusBadRequest, err)
	}
	return h.ValidateInput(input)
}

// ParseRequestParams binds and validates URI parameters.
func (h *BaseHandler[T]) ParseRequestParams(c fiber.Ctx, input interface{}) error {
	if err := c.Bind().URI(input); err != nil {
		return common.NewError(common.ErrCodeValidationFormat, common.MsgInvalidFormat, common.StatusBadRequest, err)
	}
	if err := global.Validate.Struct(input); err != nil {
		return common.NewError(common.ErrCodeValidationInput, common.MsgValidationError, common.StatusBadRequest, err)
	}
	return nil
}

// ValidateInput runs struct-tag validation on input. Slices are validated
// element-wise since validator rejects non-struct roots.
func (h *BaseHandler[T]) ValidateInput(input interface{}) error {
	if global.Validate == nil {
		return nil
	}
	switch v := input.(type) {
	case *[]T:
		for i := range *v {
			if err := global.Validate.Struct(&(*v)[i]); err != nil {
				return common.NewError(common.ErrCodeValidationInput, common.MsgValidationError, common.StatusBadRequest, err.Error())
			}
		}
		return nil
	default:
		err := global.Validate.Struct(input)
		if err == nil {
			return nil
		}
		// Non-struct inputs (maps, primitives) are not validated here.
		if _, ok := err.(*validator.InvalidValidationError); ok {
			return nil
		}
		return common.NewError(common.ErrCodeValidationInput, common.MsgValidationError, common.StatusBadRequest, err.Error())
	}
}

// GetIDFromParams parses the :id URI parameter into an ObjectID.
func (h *BaseHandler[T]) GetIDFromParams(c fiber.Ctx) (primitive.ObjectID, error) {
	id := c.Params("id")
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, common.NewError(
			common.ErrCodeValidationInput,
			fmt.Sprintf("Invalid id: %s", id),
			common.StatusBadRequest,
			err,
		)
	}
	return objectID, nil
}

// processFilter reads the `filter` query parameter (JSON) and normalizes
// hex ObjectID strings on *Id fields.
func (h *BaseHandler[T]) processFilter(c fiber.Ctx) (map[string]interface{}, error) {
	var filter map[string]interface{}

	filterStr := c.Query("filter", "{}")
	if err := json.Unmarshal([]byte(filterStr), &filter); err != nil {
		return nil, common.NewError(
			common.ErrCodeValidationFormat,
			fmt.Sprintf("Filter is not valid JSON: %v", err),
			common.StatusBadRequest,
			err,
		)
	}

	return h.normalizeFilter(filter), nil
}

func (h *BaseHandler[T]) normalizeFilter(filter map[string]interface{}) map[string]interface{} {
	if filter == nil {
		return filter
	}

	normalized := make(map[string]interface{}, len(filter))
	for field, value := range filter {
		fieldLower := strings.ToLower(field)
		isIDField := field == "_id" || (strings.HasSuffix(fieldLower, "id") && len(fieldLower) > 2)
		normalized[field] = h.normalizeFilterValue(value, isIDField)
	}
	return normalized
}

func (h *BaseHandler[T]) normalizeFilterValue(value interface{}, isIDField bool) interface{} {
	if strValue, ok := value.(string); ok && isIDField && primitive.IsValidObjectID(strValue) {
		if objID, err := primitive.ObjectIDFromHex(strValue); err == nil {
			return objID
		}
	}
	if arrValue, ok := value.([]interface{}); ok {
		normalizedArr := make([]interface{}, len(arrValue))
		for i, item := range arrValue {
			normalizedArr[i] = h.normalizeFilterValue(item, isIDField)
		}
		return normalizedArr
	}
	if mapValue, ok := value.(map[string]interface{}); ok {
		normalizedMap := make(map[string]interface{}, len(mapValue))
		for k, v := range mapValue {
			normalizedMap[k] = h.normalizeFilterValue(v, isIDField)
		}
		return normalizedMap
	}
	return value
}

// paginationParams reads page and limit query parameters.
func (h *BaseHandler[T]) paginationParams(c fiber.Ctx) (page, limit int64) {
	page, _ = strconv.ParseInt(c.Query("page", "1"), 10, 64)
	limit, _ = strconv.ParseInt(c.Query("limit", "10"), 10, 64)
	return page, limit
}

// InsertOne creates one document from the request body.
func (h *BaseHandler[T]) InsertOne(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input T
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		data, err := h.BaseService.InsertOne(c.Context(), input)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// InsertMany creates multiple documents from a JSON array body.
func (h *BaseHandler[T]) InsertMany(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var inputs []T
		if err := h.ParseRequestBody(c, &inputs); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		data, err := h.BaseService.InsertMany(c.Context(), inputs)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// FindOne returns the first document matching the filter query parameter.
func (h *BaseHandler[T]) FindOne(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		filter, err := h.processFilter(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		data, err := h.BaseService.FindOne(c.Context(), filter, nil)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// FindOneById returns the document with the :id URI parameter.
func (h *BaseHandler[T]) FindOneById(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := h.GetIDFromParams(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		data, err := h.BaseService.FindOneById(c.Context(), id)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// Find returns all documents matching the filter query parameter.
func (h *BaseHandler[T]) Find(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		filter, err := h.processFilter(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		data, err := h.BaseService.Find(c.Context(), filter, nil)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// FindWithPagination returns a page of documents.
func (h *BaseHandler[T]) FindWithPagination(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		filter, err := h.processFilter(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		page, limit := h.paginationParams(c)
		data, err := h.BaseService.FindWithPagination(c.Context(), filter, page, limit, nil)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// UpdateById applies the request body as a $set update on the :id document.
func (h *BaseHandler[T]) UpdateById(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := h.GetIDFromParams(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		var input map[string]interface{}
		decoder := json.NewDecoder(bytes.NewReader(c.Body()))
		decoder.UseNumber()
		if err := decoder.Decode(&input); err != nil {
			h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, common.MsgInvalidFormat, common.StatusBadRequest, err))
			return nil
		}
		delete(input, "_id")

		data, err := h.BaseService.UpdateById(c.Context(), id, input)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// DeleteById removes the :id document.
func (h *BaseHandler[T]) DeleteById(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := h.GetIDFromParams(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		err = h.BaseService.DeleteById(c.Context(), id)
		h.HandleResponse(c, nil, err)
		return nil
	})
}

// CountDocuments counts documents matching the filter query parameter.
func (h *BaseHandler[T]) CountDocuments(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		filter, err := h.processFilter(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		count, err := h.BaseService.CountDocuments(c.Context(), filter)
		h.HandleResponse(c, fiber.Map{"count": count}, err)
		return nil
	})
}

// DocumentExists reports whether any document matches the filter.
func (h *BaseHandler[T]) DocumentExists(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		filter, err := h.processFilter(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		exists, err := h.BaseService.DocumentExists(c.Context(), filter)
		h.HandleResponse(c, fiber.Map{"exists": exists}, err)
		return nil
	})
}
