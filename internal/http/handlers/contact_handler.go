package handlers

import (
	"pharmafinder/internal/log"
	"pharmafinder/internal/services"
	"pharmafinder/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type ContactHandler struct {
	Contact *services.ContactService
}

func (h *ContactHandler) Form(c *fiber.Ctx) error {
	return render(c, "contact", fiber.Map{"Sent": c.Query("sent") == "1"})
}

func (h *ContactHandler) Submit(c *fiber.Ctx) error {
	email, ok := validate.Email(c.FormValue("email"))
	if !ok {
		return c.Status(400).Render("contact", fiber.Map{"Err": "Adresse email invalide", "CSRFToken": c.Cookies("csrf_")})
	}
	name, ok := validate.Name(c.FormValue("name"))
	if !ok {
		return c.Status(400).Render("contact", fiber.Map{"Err": "Le nom est requis", "CSRFToken": c.Cookies("csrf_")})
	}

	err := h.Contact.Submit(name, email, c.FormValue("subject"), c.FormValue("message"))
	if err != nil {
		if err == services.ErrEmptyMessage {
			return c.Status(400).Render("contact", fiber.Map{"Err": "Le message est vide", "CSRFToken": c.Cookies("csrf_")})
		}
		log.Error(c, "contact.submit.fail", err, nil)
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Impossible d'envoyer le message"})
	}

	log.Info(c, "contact.submit", map[string]any{"email": email})
	return c.Redirect("/contact?sent=1")
}
