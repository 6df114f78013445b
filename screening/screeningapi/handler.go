package screeningapi

import (
	"github.com/gofiber/fiber/v2"

	"github.com/CavidAtamoghlanov/vacancy-management/iam/auth"
	"github.com/CavidAtamoghlanov/vacancy-management/pkg/kernel"
	"github.com/CavidAtamoghlanov/vacancy-management/pkg/response"
	"github.com/CavidAtamoghlanov/vacancy-management/screening"
	"github.com/CavidAtamoghlanov/vacancy-management/screening/screeningsrv"
)

// Handlers provides HTTP handlers for screening test operations
type Handlers struct {
	service *screeningsrv.Service
}

// NewHandlers creates a new screening handlers instance
func NewHandlers(service *screeningsrv.Service) *Handlers {
	return &Handlers{
		service: service,
	}
}

// AddQuestion adds a question with options to the bank
// POST /api/screening/questions
func (h *Handlers) AddQuestion(c *fiber.Ctx) error {
	var req screening.AddQuestionRequest
	if err := c.BodyParser(&req); err != nil {
		resp := response.BadRequest("Invalid request body.")
		return c.Status(resp.HTTPStatus()).JSON(resp)
	}

	resp := h.service.AddQuestion(c.Context(), req)
	return c.Status(resp.HTTPStatus()).JSON(resp)
}

// GetQuestions lists the question bank
// GET /api/screening/questions
func (h *Handlers) GetQuestions(c *fiber.Ctx) error {
	resp := h.service.GetQuestions(c.Context())
	return c.Status(resp.HTTPStatus()).JSON(resp)
}

// AssignQuestion assigns a bank question to a vacancy test
// POST /api/screening/assign
func (h *Handlers) AssignQuestion(c *fiber.Ctx) error {
	var req screening.AssignQuestionRequest
	if err := c.BodyParser(&req); err != nil {
		resp := response.BadRequest("Invalid request body.")
		return c.Status(resp.HTTPStatus()).JSON(resp)
	}

	resp := h.service.AssignQuestion(c.Context(), req)
	return c.Status(resp.HTTPStatus()).JSON(resp)
}

// GetVacancyTest returns the test for a vacancy without correctness flags
// GET /api/screening/test/:vacancyId
func (h *Handlers) GetVacancyTest(c *fiber.Ctx) error {
	vacancyID, err := c.ParamsInt("vacancyId")
	if err != nil || vacancyID <= 0 {
		resp := response.BadRequest("Invalid vacancy id.")
		return c.Status(resp.HTTPStatus()).JSON(resp)
	}

	resp := h.service.GetVacancyTest(c.Context(), kernel.NewVacancyID(int64(vacancyID)))
	return c.Status(resp.HTTPStatus()).JSON(resp)
}

// SubmitTest grades an applicant's submission
// POST /api/screening/submit
func (h *Handlers) SubmitTest(c *fiber.Ctx) error {
	var req screening.SubmitTestRequest
	if err := c.BodyParser(&req); err != nil {
		resp := response.BadRequest("Invalid request body.")
		return c.Status(resp.HTTPStatus()).JSON(resp)
	}

	resp := h.service.SubmitTest(c.Context(), req)
	return c.Status(resp.HTTPStatus()).JSON(resp)
}

// RegisterRoutes registers all screening routes
func RegisterRoutes(app *fiber.App, handlers *Handlers, authMiddleware *auth.Middleware) {
	api := app.Group("/api/screening")

	api.Get("/questions",
		authMiddleware.Authenticate(),
		authMiddleware.RequireRole(auth.RoleAdmin),
		handlers.GetQuestions,
	)

	api.Post("/questions",
		authMiddleware.Authenticate(),
		authMiddleware.RequireRole(auth.RoleAdmin),
		handlers.AddQuestion,
	)

	api.Post("/assign",
		authMiddleware.Authenticate(),
		authMiddleware.RequireRole(auth.RoleAdmin),
		handlers.AssignQuestion,
	)

	api.Get("/test/:vacancyId",
		authMiddleware.Authenticate(),
		handlers.GetVacancyTest,
	)

	api.Post("/submit",
		authMiddleware.Authenticate(),
		handlers.SubmitTest,
	)
}
