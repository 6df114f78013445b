package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/CavidAtamoghlanov/vacancy-management/pkg/kernel"
	"github.com/CavidAtamoghlanov/vacancy-management/pkg/response"
)

const (
	localsUserID = "auth_user_id"
	localsEmail  = "auth_email"
	localsRoles  = "auth_roles"
)

// Middleware validates bearer tokens and enforces role checks.
type Middleware struct {
	tokens TokenService
}

func NewMiddleware(tokens TokenService) *Middleware {
	return &Middleware{tokens: tokens}
}

// Authenticate rejects requests without a valid bearer token and stores the
// claims on the request context.
func (m *Middleware) Authenticate() fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get("Authorization")
		if header == "" {
			resp := response.Unauthorized("Authentication required.")
			return c.Status(resp.HTTPStatus()).JSON(resp)
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			resp := response.Unauthorized("Invalid authorization header.")
			return c.Status(resp.HTTPStatus()).JSON(resp)
		}

		claims, err := m.tokens.ValidateAccessToken(parts[1])
		if err != nil {
			resp := response.Unauthorized("Invalid or expired token.")
			return c.Status(resp.HTTPStatus()).JSON(resp)
		}

		c.Locals(localsUserID, claims.UserID)
		c.Locals(localsEmail, claims.Email)
		c.Locals(localsRoles, claims.Roles)
		return c.Next()
	}
}

// RequireRole rejects authenticated requests whose token lacks the role.
func (m *Middleware) RequireRole(role kernel.RoleName) fiber.Handler {
	return func(c *fiber.Ctx) error {
		roles, ok := c.Locals(localsRoles).([]string)
		if !ok {
			resp := response.Unauthorized("Authentication required.")
			return c.Status(resp.HTTPStatus()).JSON(resp)
		}
		for _, r := range roles {
			if r == role.String() {
				return c.Next()
			}
		}
		resp := &response.Response{Status: response.StatusError, Message: "Insufficient permissions."}
		return c.Status(fiber.StatusForbidden).JSON(resp)
	}
}

// GetUserID extracts the authenticated user's ID from the request context.
func GetUserID(c *fiber.Ctx) (kernel.UserID, bool) {
	id, ok := c.Locals(localsUserID).(kernel.UserID)
	return id, ok
}

// GetEmail extracts the authenticated user's email from the request context.
func GetEmail(c *fiber.Ctx) (kernel.Email, bool) {
	email, ok := c.Locals(localsEmail).(kernel.Email)
	return email, ok
}
