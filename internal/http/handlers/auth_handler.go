package handlers

import (
	"errors"
	"path/filepath"
	"time"

	"pharmafinder/internal/domain"
	"pharmafinder/internal/log"
	"pharmafinder/internal/services"
	"pharmafinder/internal/validate"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type AuthHandler struct {
	Auth     *services.AuthService
	MediaDir string
}

func ensureSID(c *fiber.Ctx) string {
	sid := c.Cookies("sid")
	if sid == "" {
		sid = uuid.NewString()
		c.Cookie(&fiber.Cookie{
			Name:     "sid",
			Value:    sid,
			Path:     "/",
			HTTPOnly: true,
			SameSite: fiber.CookieSameSiteLaxMode,
			Secure:   false,
		})
	}
	return sid
}

func (h *AuthHandler) LoginForm(c *fiber.Ctx) error {
	return render(c, "login", fiber.Map{"Err": ""})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	sid := ensureSID(c)
	email := c.FormValue("email")
	pass := c.FormValue("password")
	if _, ok := validate.Email(email); !ok {
		log.Security(c, "auth.login.fail", map[string]any{"email": email, "reason": "bad_format"})
		return c.Status(401).Render("login", fiber.Map{"Err": "Email ou mot de passe incorrect", "CSRFToken": c.Cookies("csrf_")})
	}

	_, err := h.Auth.Login(sid, email, pass)
	if err != nil {
		log.Security(c, "auth.login.fail", map[string]any{"email": email})
		return c.Status(401).Render("login", fiber.Map{"Err": "Email ou mot de passe incorrect", "CSRFToken": c.Cookies("csrf_")})
	}

	log.Audit(c, "auth.login.success", map[string]any{"email": email})
	return c.Redirect("/")
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	sid := ensureSID(c)
	_ = h.Auth.Logout(sid)
	c.Cookie(&fiber.Cookie{
		Name:     "sid",
		Value:    "",
		Path:     "/",
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Secure:   false,
		Expires:  time.Now().Add(-1 * time.Hour),
	})
	log.Audit(c, "auth.logout", map[string]any{"sid": sid})
	return c.Redirect("/")
}

func (h *AuthHandler) SignupForm(c *fiber.Ctx) error {
	return render(c, "signup", fiber.Map{"Err": ""})
}

func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	sid := ensureSID(c)
	email := c.FormValue("email")
	name := c.FormValue("name")
	pass := c.FormValue("password")
	role := c.FormValue("role")

	fail := func(msg string) error {
		return c.Status(400).Render("signup", fiber.Map{"Err": msg, "CSRFToken": c.Cookies("csrf_")})
	}

	if _, ok := validate.Email(email); !ok {
		return fail("Adresse email invalide")
	}
	if _, ok := validate.Name(name); !ok {
		return fail("Nom invalide")
	}
	if !validate.Password(pass) {
		return fail("Mot de passe trop faible (8 caractères min., majuscule, chiffre, symbole)")
	}

	// Owners must upload their pharmacist certificate.
	if role == domain.RoleOwner {
		file, err := c.FormFile("certificate")
		if err != nil {
			log.Security(c, "auth.signup.fail", map[string]any{"email": email, "reason": "missing_certificate"})
			return fail("Le certificat de pharmacien est requis")
		}
		dst := filepath.Join(h.MediaDir, "certificates", uuid.NewString()+filepath.Ext(file.Filename))
		if err := c.SaveFile(file, dst); err != nil {
			log.Error(c, "auth.signup.certificate.save", err, map[string]any{"email": email})
			return fail("Impossible d'enregistrer le certificat")
		}
	}

	_, err := h.Auth.Signup(sid, email, name, pass, role)
	if errors.Is(err, services.ErrEmailTaken) {
		return fail("Cette adresse email est déjà utilisée")
	}
	if err != nil {
		log.Error(c, "auth.signup.fail", err, map[string]any{"email": email})
		return fail("Une erreur est survenue")
	}

	log.Audit(c, "auth.signup.success", map[string]any{"email": email, "role": role})
	return c.Redirect("/")
}
