package handlers

import (
	"pharmafinder/internal/domain"
	applog "pharmafinder/internal/log"
	"pharmafinder/internal/services"

	"github.com/gofiber/fiber/v2"
)

// RequireUser enforces a logged-in session; otherwise redirect to login.
func RequireUser(auth *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sid := c.Cookies("sid")
		if sid == "" {
			return c.Redirect("/login")
		}
		id, err := auth.CurrentIdentity(sid)
		if err != nil || id == nil {
			return c.Redirect("/login")
		}
		c.Locals("identity", id)
		return c.Next()
	}
}

// RequireOwner gates the stock and opening-hours pages. Hiding the links
// in navigation is not enough; the check runs server-side.
func RequireOwner(auth *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sid := c.Cookies("sid")
		if sid == "" {
			return c.Redirect("/login")
		}
		id, err := auth.CurrentIdentity(sid)
		if err != nil || id == nil || id.Role != domain.RoleOwner {
			applog.Security(c, "access.denied.owner", map[string]any{"sid": sid})
			return c.Status(fiber.StatusForbidden).Render("notfound", fiber.Map{"Message": "Accès réservé aux pharmaciens"})
		}
		c.Locals("identity", id)
		return c.Next()
	}
}

func identity(c *fiber.Ctx) *domain.Identity {
	id, _ := c.Locals("identity").(*domain.Identity)
	return id
}
