package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/CavidAtamoghlanov/vacancy-management/pkg/response"
)

// Handlers provides HTTP handlers for authentication operations
type Handlers struct {
	service *Service
}

// NewHandlers creates a new auth handlers instance
func NewHandlers(service *Service) *Handlers {
	return &Handlers{
		service: service,
	}
}

// Register creates a new account
// POST /api/auth/register
func (h *Handlers) Register(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		resp := response.BadRequest("Invalid request body.")
		return c.Status(resp.HTTPStatus()).JSON(resp)
	}

	resp := h.service.Register(c.Context(), req)
	return c.Status(resp.HTTPStatus()).JSON(resp)
}

// Login authenticates a user
// POST /api/auth/login
func (h *Handlers) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		resp := response.BadRequest("Invalid request body.")
		return c.Status(resp.HTTPStatus()).JSON(resp)
	}

	resp := h.service.Login(c.Context(), req)
	return c.Status(resp.HTTPStatus()).JSON(resp)
}

// ChangePassword replaces the authenticated user's password
// POST /api/auth/change-password
func (h *Handlers) ChangePassword(c *fiber.Ctx) error {
	userID, ok := GetUserID(c)
	if !ok {
		resp := response.Unauthorized("Authentication required.")
		return c.Status(resp.HTTPStatus()).JSON(resp)
	}

	var req ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		resp := response.BadRequest("Invalid request body.")
		return c.Status(resp.HTTPStatus()).JSON(resp)
	}

	resp := h.service.ChangePassword(c.Context(), userID, req)
	return c.Status(resp.HTTPStatus()).JSON(resp)
}

// ForgotPassword issues a password reset token
// POST /api/auth/forgot-password
func (h *Handlers) ForgotPassword(c *fiber.Ctx) error {
	var req ForgotPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		resp := response.BadRequest("Invalid request body.")
		return c.Status(resp.HTTPStatus()).JSON(resp)
	}

	resp := h.service.ForgotPassword(c.Context(), req)
	return c.Status(resp.HTTPStatus()).JSON(resp)
}

// ResetPassword completes a password reset
// POST /api/auth/reset-password
func (h *Handlers) ResetPassword(c *fiber.Ctx) error {
	var req ResetPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		resp := response.BadRequest("Invalid request body.")
		return c.Status(resp.HTTPStatus()).JSON(resp)
	}

	resp := h.service.ResetPassword(c.Context(), req)
	return c.Status(resp.HTTPStatus()).JSON(resp)
}

// RegisterRoutes registers all authentication routes
func RegisterRoutes(app *fiber.App, handlers *Handlers, middleware *Middleware) {
	api := app.Group("/api/auth")

	api.Post("/register", handlers.Register)
	api.Post("/login", handlers.Login)
	api.Post("/forgot-password", handlers.ForgotPassword)
	api.Post("/reset-password", handlers.ResetPassword)

	api.Post("/change-password",
		middleware.Authenticate(),
		handlers.ChangePassword,
	)
}
