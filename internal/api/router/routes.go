// Package router wires domain routes onto the fiber app.
package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/batkt/sudalgaaQRBackend/internal/api/middleware"
)

// ============================================================================
// Fiber v3 middleware registration
//
// Registering middleware inline (router.Get(path, mw, handler)) does not
// invoke the middleware in Fiber v3. Routes that need middleware must be
// registered through RegisterRouteWithMiddleware, which attaches middleware
// to a group via .Use() before adding the route.
// ============================================================================

// CRUDHandler is the interface domain handlers expose for generic CRUD routes.
type CRUDHandler interface {
	// Create
	InsertOne(c fiber.Ctx) error
	InsertMany(c fiber.Ctx) error

	// Read
	Find(c fiber.Ctx) error
	FindOne(c fiber.Ctx) error
	FindOneById(c fiber.Ctx) error
	FindWithPagination(c fiber.Ctx) error

	// Update
	UpdateById(c fiber.Ctx) error

	// Delete
	DeleteById(c fiber.Ctx) error

	// Other
	CountDocuments(c fiber.Ctx) error
	DocumentExists(c fiber.Ctx) error
}

// Router manages API route registration.
type Router struct {
	app *fiber.App
}

// CRUDConfig toggles the generic operations exposed for one collection.
type CRUDConfig struct {
	InsOne  bool
	InsMany bool

	Find     bool
	FindOne  bool
	FindById bool
	Paginate bool

	UpdById bool
	DelById bool

	Count  bool
	Exists bool
}

// Shared per-collection configs.
var (
	// ReadOnlyConfig exposes read operations only.
	ReadOnlyConfig = CRUDConfig{
		Find: true, FindOne: true, FindById: true, Paginate: true,
		Count: true, Exists: true,
	}

	// ReadWriteConfig exposes the full generic CRUD surface.
	ReadWriteConfig = CRUDConfig{
		InsOne: true, InsMany: true,
		Find: true, FindOne: true, FindById: true, Paginate: true,
		UpdById: true, DelById: true,
		Count: true, Exists: true,
	}
)

// RoutePrefix holds the base API prefixes.
type RoutePrefix struct {
	Base string // /api
	V1   string // /api/v1
}

// NewRoutePrefix returns the default prefixes.
func NewRoutePrefix() RoutePrefix {
	return RoutePrefix{
		Base: "/api",
		V1:   "/api/v1",
	}
}

// NewRouter creates a Router bound to the app.
func NewRouter(app *fiber.App) *Router {
	return &Router{app: app}
}

// RegisterRouteWithMiddleware registers a route with middleware through a
// group and .Use(), the only registration style Fiber v3 honors.
func RegisterRouteWithMiddleware(router fiber.Router, prefix string, method string, path string, middlewares []fiber.Handler, handler fiber.Handler) {
	routeGroup := router.Group(prefix)
	for _, mw := range middlewares {
		routeGroup.Use(mw)
	}

	switch method {
	case "GET":
		routeGroup.Get(path, handler)
	case "POST":
		routeGroup.Post(path, handler)
	case "PUT":
		routeGroup.Put(path, handler)
	case "DELETE":
		routeGroup.Delete(path, handler)
	}
}

// RegisterCRUDRoutes registers the generic CRUD routes for one collection.
// Reads require a valid token; writes additionally require the admin level.
func (r *Router) RegisterCRUDRoutes(router fiber.Router, prefix string, h CRUDHandler, config CRUDConfig) {
	readMiddleware := middleware.AuthMiddleware(false)
	writeMiddleware := middleware.AuthMiddleware(true)

	// Create operations
	if config.InsOne {
		RegisterRouteWithMiddleware(router, prefix, "POST", "/insert-one", []fiber.Handler{writeMiddleware}, h.InsertOne)
	}
	if config.InsMany {
		RegisterRouteWithMiddleware(router, prefix, "POST", "/insert-many", []fiber.Handler{writeMiddleware}, h.InsertMany)
	}

	// Read operations
	if config.Find {
		RegisterRouteWithMiddleware(router, prefix, "GET", "/find", []fiber.Handler{readMiddleware}, h.Find)
	}
	if config.FindOne {
		RegisterRouteWithMiddleware(router, prefix, "GET", "/find-one", []fiber.Handler{readMiddleware}, h.FindOne)
	}
	if config.FindById {
		RegisterRouteWithMiddleware(router, prefix, "GET", "/find-by-id/:id", []fiber.Handler{readMiddleware}, h.FindOneById)
	}
	if config.Paginate {
		RegisterRouteWithMiddleware(router, prefix, "GET", "/find-with-pagination", []fiber.Handler{readMiddleware}, h.FindWithPagination)
	}

	// Update operations
	if config.UpdById {
		RegisterRouteWithMiddleware(router, prefix, "PUT", "/update-by-id/:id", []fiber.Handler{writeMiddleware}, h.UpdateById)
	}

	// Delete operations
	if config.DelById {
		RegisterRouteWithMiddleware(router, prefix, "DELETE", "/delete-by-id/:id", []fiber.Handler{writeMiddleware}, h.DeleteById)
	}

	// Other operations
	if config.Count {
		RegisterRouteWithMiddleware(router, prefix, "GET", "/count", []fiber.Handler{readMiddleware}, h.CountDocuments)
	}
	if config.Exists {
		RegisterRouteWithMiddleware(router, prefix, "GET", "/exists", []fiber.Handler{readMiddleware}, h.DocumentExists)
	}
}

// RegisterFunc is a domain route registration function.
type RegisterFunc func(v1 fiber.Router, r *Router) error

// SetupRoutes wires every domain's routes onto the app. Callers pass each
// domain's Register to avoid import cycles.
func SetupRoutes(app *fiber.App, regs ...RegisterFunc) error {
	prefix := NewRoutePrefix()
	v1 := app.Group(prefix.V1)
	r := NewRouter(app)
	for _, reg := range regs {
		if err := reg(v1, r); err != nil {
			return err
		}
	}
	return nil
}
