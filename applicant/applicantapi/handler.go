package applicantapi

import (
	"io"

	"github.com/gofiber/fiber/v2"

	"github.com/CavidAtamoghlanov/vacancy-management/applicant"
	"github.com/CavidAtamoghlanov/vacancy-management/applicant/applicantsrv"
	"github.com/CavidAtamoghlanov/vacancy-management/iam/auth"
	"github.com/CavidAtamoghlanov/vacancy-management/pkg/kernel"
	"github.com/CavidAtamoghlanov/vacancy-management/pkg/response"
)

// Handlers provides HTTP handlers for applicant operations
type Handlers struct {
	service *applicantsrv.Service
}

// NewHandlers creates a new applicant handlers instance
func NewHandlers(service *applicantsrv.Service) *Handlers {
	return &Handlers{
		service: service,
	}
}

// GetApplicantsForVacancy lists applicants of one vacancy
// GET /api/applicants/by-vacancy/:vacancyId
func (h *Handlers) GetApplicantsForVacancy(c *fiber.Ctx) error {
	vacancyID, err := c.ParamsInt("vacancyId")
	if err != nil || vacancyID <= 0 {
		resp := response.BadRequest("Invalid vacancy id.")
		return c.Status(resp.HTTPStatus()).JSON(resp)
	}

	resp := h.service.GetApplicantsForVacancy(c.Context(), kernel.NewVacancyID(int64(vacancyID)))
	return c.Status(resp.HTTPStatus()).JSON(resp)
}

// GetApplicantByID retrieves an applicant by ID
// GET /api/applicants/:id
func (h *Handlers) GetApplicantByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		resp := response.BadRequest("Invalid applicant id.")
		return c.Status(resp.HTTPStatus()).JSON(resp)
	}

	resp := h.service.GetApplicantByID(c.Context(), kernel.NewApplicantID(int64(id)))
	return c.Status(resp.HTTPStatus()).JSON(resp)
}

// CreateApplicant registers an applicant against a vacancy
// POST /api/applicants
func (h *Handlers) CreateApplicant(c *fiber.Ctx) error {
	var req applicant.CreateApplicantRequest
	if err := c.BodyParser(&req); err != nil {
		resp := response.BadRequest("Invalid request body.")
		return c.Status(resp.HTTPStatus()).JSON(resp)
	}

	resp := h.service.CreateApplicant(c.Context(), req)
	return c.Status(resp.HTTPStatus()).JSON(resp)
}

// UpdateApplicant updates applicant contact data
// PUT /api/applicants/:id
func (h *Handlers) UpdateApplicant(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		resp := response.BadRequest("Invalid applicant id.")
		return c.Status(resp.HTTPStatus()).JSON(resp)
	}

	var req applicant.UpdateApplicantRequest
	if err := c.BodyParser(&req); err != nil {
		resp := response.BadRequest("Invalid request body.")
		return c.Status(resp.HTTPStatus()).JSON(resp)
	}
	req.ID = kernel.NewApplicantID(int64(id))

	resp := h.service.UpdateApplicant(c.Context(), req)
	return c.Status(resp.HTTPStatus()).JSON(resp)
}

// DeleteApplicant soft-deletes an applicant
// DELETE /api/applicants/:id
func (h *Handlers) DeleteApplicant(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		resp := response.BadRequest("Invalid applicant id.")
		return c.Status(resp.HTTPStatus()).JSON(resp)
	}

	resp := h.service.DeleteApplicant(c.Context(), kernel.NewApplicantID(int64(id)))
	return c.Status(resp.HTTPStatus()).JSON(resp)
}

// SearchApplicants searches applicants by criteria
// POST /api/applicants/search
func (h *Handlers) SearchApplicants(c *fiber.Ctx) error {
	var req applicant.SearchApplicantsRequest
	if err := c.BodyParser(&req); err != nil {
		resp := response.BadRequest("Invalid request body.")
		return c.Status(resp.HTTPStatus()).JSON(resp)
	}

	resp := h.service.SearchApplicants(c.Context(), req)
	return c.Status(resp.HTTPStatus()).JSON(resp)
}

// GetApplicantTestResults returns one applicant's screening score
// GET /api/applicants/:id/test-results
func (h *Handlers) GetApplicantTestResults(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		resp := response.BadRequest("Invalid applicant id.")
		return c.Status(resp.HTTPStatus()).JSON(resp)
	}

	resp := h.service.GetApplicantTestResults(c.Context(), kernel.NewApplicantID(int64(id)))
	return c.Status(resp.HTTPStatus()).JSON(resp)
}

// GetTestResultsForVacancy lists screening scores for a vacancy
// GET /api/applicants/test-results/:vacancyId
func (h *Handlers) GetTestResultsForVacancy(c *fiber.Ctx) error {
	vacancyID, err := c.ParamsInt("vacancyId")
	if err != nil || vacancyID <= 0 {
		resp := response.BadRequest("Invalid vacancy id.")
		return c.Status(resp.HTTPStatus()).JSON(resp)
	}

	resp := h.service.GetTestResultsForVacancy(c.Context(), kernel.NewVacancyID(int64(vacancyID)))
	return c.Status(resp.HTTPStatus()).JSON(resp)
}

// UploadCV accepts a multipart CV upload for an applicant
// POST /api/applicants/:id/cv
func (h *Handlers) UploadCV(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		resp := response.BadRequest("Invalid applicant id.")
		return c.Status(resp.HTTPStatus()).JSON(resp)
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		resp := response.BadRequest("CV file is required.")
		return c.Status(resp.HTTPStatus()).JSON(resp)
	}

	file, err := fileHeader.Open()
	if err != nil {
		resp := response.BadRequest("CV file could not be read.")
		return c.Status(resp.HTTPStatus()).JSON(resp)
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		resp := response.BadRequest("CV file could not be read.")
		return c.Status(resp.HTTPStatus()).JSON(resp)
	}

	resp := h.service.UploadCV(c.Context(), kernel.NewApplicantID(int64(id)), fileHeader.Filename, content)
	return c.Status(resp.HTTPStatus()).JSON(resp)
}

// DownloadCV returns an applicant's stored CV
// GET /api/applicants/:id/cv
func (h *Handlers) DownloadCV(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		resp := response.BadRequest("Invalid applicant id.")
		return c.Status(resp.HTTPStatus()).JSON(resp)
	}

	resp := h.service.DownloadCV(c.Context(), kernel.NewApplicantID(int64(id)))
	return c.Status(resp.HTTPStatus()).JSON(resp)
}

// RegisterRoutes registers all applicant routes
func RegisterRoutes(app *fiber.App, handlers *Handlers, authMiddleware *auth.Middleware) {
	api := app.Group("/api/applicants")

	api.Get("/by-vacancy/:vacancyId",
		authMiddleware.Authenticate(),
		handlers.GetApplicantsForVacancy,
	)

	api.Get("/test-results/:vacancyId",
		authMiddleware.Authenticate(),
		authMiddleware.RequireRole(auth.RoleAdmin),
		handlers.GetTestResultsForVacancy,
	)

	api.Get("/:id/test-results",
		authMiddleware.Authenticate(),
		authMiddleware.RequireRole(auth.RoleAdmin),
		handlers.GetApplicantTestResults,
	)

	api.Post("/search",
		authMiddleware.Authenticate(),
		handlers.SearchApplicants,
	)

	api.Get("/:id",
		authMiddleware.Authenticate(),
		handlers.GetApplicantByID,
	)

	api.Post("/",
		authMiddleware.Authenticate(),
		handlers.CreateApplicant,
	)

	api.Put("/:id",
		authMiddleware.Authenticate(),
		handlers.UpdateApplicant,
	)

	api.Delete("/:id",
		authMiddleware.Authenticate(),
		authMiddleware.RequireRole(auth.RoleAdmin),
		handlers.DeleteApplicant,
	)

	api.Post("/:id/cv",
		authMiddleware.Authenticate(),
		handlers.UploadCV,
	)

	api.Get("/:id/cv",
		authMiddleware.Authenticate(),
		handlers.DownloadCV,
	)
}
