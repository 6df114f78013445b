package vacancyapi

import (
	"github.com/gofiber/fiber/v2"

	"github.com/CavidAtamoghlanov/vacancy-management/iam/auth"
	"github.com/CavidAtamoghlanov/vacancy-management/pkg/kernel"
	"github.com/CavidAtamoghlanov/vacancy-management/pkg/response"
	"github.com/CavidAtamoghlanov/vacancy-management/vacancy"
	"github.com/CavidAtamoghlanov/vacancy-management/vacancy/vacancysrv"
)

// Handlers provides HTTP handlers for vacancy operations
type Handlers struct {
	service *vacancysrv.Service
}

// NewHandlers creates a new vacancy handlers instance
func NewHandlers(service *vacancysrv.Service) *Handlers {
	return &Handlers{
		service: service,
	}
}

// GetVacancies retrieves all vacancies
// GET /api/vacancies
func (h *Handlers) GetVacancies(c *fiber.Ctx) error {
	resp := h.service.GetVacancies(c.Context())
	return c.Status(resp.HTTPStatus()).JSON(resp)
}

// GetVacancyByID retrieves a vacancy by ID
// GET /api/vacancies/:id
func (h *Handlers) GetVacancyByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		resp := response.BadRequest("Invalid vacancy id.")
		return c.Status(resp.HTTPStatus()).JSON(resp)
	}

	resp := h.service.GetVacancyByID(c.Context(), kernel.NewVacancyID(int64(id)))
	return c.Status(resp.HTTPStatus()).JSON(resp)
}

// CreateVacancy creates a new vacancy
// POST /api/vacancies
func (h *Handlers) CreateVacancy(c *fiber.Ctx) error {
	var req vacancy.CreateVacancyRequest
	if err := c.BodyParser(&req); err != nil {
		resp := response.BadRequest("Invalid request body.")
		return c.Status(resp.HTTPStatus()).JSON(resp)
	}

	resp := h.service.CreateVacancy(c.Context(), req)
	return c.Status(resp.HTTPStatus()).JSON(resp)
}

// UpdateVacancy updates an existing vacancy
// PUT /api/vacancies/:id
func (h *Handlers) UpdateVacancy(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		resp := response.BadRequest("Invalid vacancy id.")
		return c.Status(resp.HTTPStatus()).JSON(resp)
	}

	var req vacancy.UpdateVacancyRequest
	if err := c.BodyParser(&req); err != nil {
		resp := response.BadRequest("Invalid request body.")
		return c.Status(resp.HTTPStatus()).JSON(resp)
	}
	req.ID = kernel.NewVacancyID(int64(id))

	resp := h.service.UpdateVacancy(c.Context(), req)
	return c.Status(resp.HTTPStatus()).JSON(resp)
}

// DeleteVacancy permanently removes a vacancy
// DELETE /api/vacancies/:id
func (h *Handlers) DeleteVacancy(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		resp := response.BadRequest("Invalid vacancy id.")
		return c.Status(resp.HTTPStatus()).JSON(resp)
	}

	resp := h.service.DeleteVacancy(c.Context(), kernel.NewVacancyID(int64(id)))
	return c.Status(resp.HTTPStatus()).JSON(resp)
}

// SetVacancyStatus toggles a vacancy's active flag
// PATCH /api/vacancies/:id/status
func (h *Handlers) SetVacancyStatus(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		resp := response.BadRequest("Invalid vacancy id.")
		return c.Status(resp.HTTPStatus()).JSON(resp)
	}

	var req vacancy.SetVacancyStatusRequest
	if err := c.BodyParser(&req); err != nil {
		resp := response.BadRequest("Invalid request body.")
		return c.Status(resp.HTTPStatus()).JSON(resp)
	}
	req.ID = kernel.NewVacancyID(int64(id))

	resp := h.service.SetVacancyStatus(c.Context(), req)
	return c.Status(resp.HTTPStatus()).JSON(resp)
}

// FilterVacancies filters vacancies by criteria
// POST /api/vacancies/filter
func (h *Handlers) FilterVacancies(c *fiber.Ctx) error {
	var req vacancy.FilterVacanciesRequest
	if err := c.BodyParser(&req); err != nil {
		resp := response.BadRequest("Invalid request body.")
		return c.Status(resp.HTTPStatus()).JSON(resp)
	}

	resp := h.service.FilterVacancies(c.Context(), req)
	return c.Status(resp.HTTPStatus()).JSON(resp)
}

// GetCategories retrieves vacancy categories
// GET /api/vacancies/categories
func (h *Handlers) GetCategories(c *fiber.Ctx) error {
	resp := h.service.GetCategories(c.Context())
	return c.Status(resp.HTTPStatus()).JSON(resp)
}

// RegisterRoutes registers all vacancy routes
func RegisterRoutes(app *fiber.App, handlers *Handlers, authMiddleware *auth.Middleware) {
	api := app.Group("/api/vacancies")

	// Read routes
	api.Get("/",
		authMiddleware.Authenticate(),
		handlers.GetVacancies,
	)

	api.Get("/categories",
		authMiddleware.Authenticate(),
		handlers.GetCategories,
	)

	api.Post("/filter",
		authMiddleware.Authenticate(),
		handlers.FilterVacancies,
	)

	api.Get("/:id",
		authMiddleware.Authenticate(),
		handlers.GetVacancyByID,
	)

	// Write routes (require the Admin role)
	api.Post("/",
		authMiddleware.Authenticate(),
		authMiddleware.RequireRole(auth.RoleAdmin),
		handlers.CreateVacancy,
	)

	api.Put("/:id",
		authMiddleware.Authenticate(),
		authMiddleware.RequireRole(auth.RoleAdmin),
		handlers.UpdateVacancy,
	)

	api.Patch("/:id/status",
		authMiddleware.Authenticate(),
		authMiddleware.RequireRole(auth.RoleAdmin),
		handlers.SetVacancyStatus,
	)

	api.Delete("/:id",
		authMiddleware.Authenticate(),
		authMiddleware.RequireRole(auth.RoleAdmin),
		handlers.DeleteVacancy,
	)
}
