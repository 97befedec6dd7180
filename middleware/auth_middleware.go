package middleware

import (
	"net/url"

	config "github.com/chefacademy/culinary_platform/configs"
	"github.com/chefacademy/culinary_platform/models"
	"github.com/gofiber/fiber/v2"
	jwtware "github.com/gofiber/jwt/v3"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

func Protected() fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey:   []byte(config.Config("JWT_SECRET")),
		ErrorHandler: jwtError,
	})
}

func jwtError(c *fiber.Ctx, err error) error {
	if err.Error() == "Missing or malformed JWT" {
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"error": "Missing or malformed JWT"})
	}
	return c.Status(fiber.StatusUnauthorized).
		JSON(fiber.Map{"error": "Invalid or expired JWT"})
}

// UserID extracts the authenticated user's id from the JWT parsed by
// Protected.
func UserID(c *fiber.Ctx) uuid.UUID {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	id, _ := uuid.Parse(claims["user_id"].(string))
	return id
}

// Role extracts the authenticated user's role from the JWT.
func Role(c *fiber.Ctx) string {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	role, _ := claims["role"].(string)
	return role
}

// ChefRequired guards the chef management surface. Wrong-role access gets
// a flash message and a redirect to the home page, not an error status.
func ChefRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if Role(c) != models.RoleChef {
			return redirectHome(c, "Access denied. Chef account required.")
		}
		return c.Next()
	}
}

// AdminRequired guards the admin surface. Chefs pass this check as well as
// admins; see models.User.IsAdmin.
func AdminRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := Role(c)
		if role != models.RoleAdmin && role != models.RoleChef {
			return redirectHome(c, "Access denied.")
		}
		return c.Next()
	}
}

func redirectHome(c *fiber.Ctx, message string) error {
	return c.Redirect("/?message="+url.QueryEscape(message), fiber.StatusSeeOther)
}
