package handlers

import (
	"errors"
	"path/filepath"

	"pharmafinder/internal/domain"
	"pharmafinder/internal/log"
	"pharmafinder/internal/services"
	"pharmafinder/internal/validate"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type StockHandler struct {
	Stock    *services.StockService
	MediaDir string
}

// List renders the stock screen: the searchable item list plus, when
// ?edit= or ?new=1 is present, the editor form with a working copy.
func (h *StockHandler) List(c *fiber.Ctx) error {
	owner := identity(c)
	q := validate.Q(c.Query("q"))

	items, err := h.Stock.Search(owner.ID, q)
	if err != nil {
		log.Error(c, "stock.list.fail", err, nil)
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Impossible de charger le stock"})
	}

	data := fiber.Map{
		"Q": q, "Items": items, "Count": len(items),
		"Categories": domain.StockCategories,
		"Saved":      c.Query("saved") == "1",
	}

	if editID, ok := validate.ID(c.Query("edit")); ok {
		it, err := h.Stock.Get(owner.ID, editID)
		if err == nil {
			data["Editing"] = it
		}
	} else if c.Query("new") == "1" {
		data["Creating"] = true
	}

	return render(c, "stock", data)
}

// parseItem validates the editor form. Malformed numeric input is
// rejected outright, never coerced into the data model.
func (h *StockHandler) parseItem(c *fiber.Ctx) (domain.StockItem, string) {
	name, ok := validate.Name(c.FormValue("name"))
	if !ok {
		return domain.StockItem{}, "Le nom est requis"
	}
	price, ok := validate.Price(c.FormValue("price"))
	if !ok {
		return domain.StockItem{}, "Prix invalide (nombre positif, 2 décimales max.)"
	}
	stock, ok := validate.Stock(c.FormValue("stock"))
	if !ok {
		return domain.StockItem{}, "Quantité invalide (entier positif)"
	}
	category, ok := validate.Category(c.FormValue("category"), domain.StockCategories)
	if !ok {
		return domain.StockItem{}, "Catégorie inconnue"
	}

	it := domain.StockItem{
		Name:        name,
		Price:       price,
		Stock:       stock,
		Description: c.FormValue("description"),
		Image:       c.FormValue("image"),
		Category:    category,
	}

	// Optional image upload takes precedence over the URL field.
	if file, err := c.FormFile("image_file"); err == nil && file != nil {
		rel := filepath.Join("stock", uuid.NewString()+filepath.Ext(file.Filename))
		if err := c.SaveFile(file, filepath.Join(h.MediaDir, rel)); err != nil {
			log.Error(c, "stock.image.save", err, nil)
			return domain.StockItem{}, "Impossible d'enregistrer l'image"
		}
		it.Image = "/media/" + filepath.ToSlash(rel)
	}

	return it, ""
}

func (h *StockHandler) Create(c *fiber.Ctx) error {
	owner := identity(c)
	it, msg := h.parseItem(c)
	if msg != "" {
		log.Security(c, "stock.create.invalid", map[string]any{"reason": msg})
		return c.Status(400).Render("notfound", fiber.Map{"Message": msg})
	}
	created, err := h.Stock.Create(owner.ID, it)
	if err != nil {
		log.Error(c, "stock.create.fail", err, nil)
		return c.Status(400).Render("notfound", fiber.Map{"Message": "Impossible d'ajouter le médicament"})
	}
	log.Audit(c, "stock.create", map[string]any{"item": created.ID})
	return c.Redirect("/stock?saved=1")
}

func (h *StockHandler) Update(c *fiber.Ctx) error {
	owner := identity(c)
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(400).SendString("missing id")
	}
	it, msg := h.parseItem(c)
	if msg != "" {
		log.Security(c, "stock.update.invalid", map[string]any{"item": id, "reason": msg})
		return c.Status(400).Render("notfound", fiber.Map{"Message": msg})
	}
	it.ID = id
	if err := h.Stock.Update(owner.ID, it); err != nil {
		if errors.Is(err, services.ErrItemNotFound) {
			return c.Status(404).Render("notfound", fiber.Map{"Message": "Ce médicament n'existe plus"})
		}
		log.Error(c, "stock.update.fail", err, map[string]any{"item": id})
		return c.Status(400).Render("notfound", fiber.Map{"Message": "Impossible d'enregistrer les modifications"})
	}
	log.Audit(c, "stock.update", map[string]any{"item": id})
	return c.Redirect("/stock?saved=1")
}

// Delete removes an item. The confirm field is the out-of-band user
// confirmation; without it nothing is deleted.
func (h *StockHandler) Delete(c *fiber.Ctx) error {
	owner := identity(c)
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(400).SendString("missing id")
	}
	if c.FormValue("confirm") != "1" {
		return c.Redirect("/stock")
	}
	if err := h.Stock.Delete(owner.ID, id); err != nil {
		if errors.Is(err, services.ErrItemNotFound) {
			return c.Status(404).Render("notfound", fiber.Map{"Message": "Ce médicament n'existe plus"})
		}
		log.Error(c, "stock.delete.fail", err, map[string]any{"item": id})
		return c.Status(400).Render("notfound", fiber.Map{"Message": "Impossible de supprimer"})
	}
	log.Audit(c, "stock.delete", map[string]any{"item": id})
	return c.Redirect("/stock?saved=1")
}
