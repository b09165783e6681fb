package handlers

import (
	"pharmafinder/internal/log"
	"pharmafinder/internal/services"
	"pharmafinder/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type MedicationHandler struct {
	Catalog   *services.CatalogService
	Presenter *services.Presenter
}

// Search renders the medication list filtered by ?q= with the optional
// ?sel= detail pane. Selection is independent of the filter: a selected
// id outside the current results still renders.
func (h *MedicationHandler) Search(c *fiber.Ctx) error {
	q := validate.Q(c.Query("q"))
	lang := c.Query("lang", "fr")

	meds, err := h.Catalog.Search(q)
	if err != nil {
		log.Error(c, "medications.search.fail", err, nil)
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Impossible de charger les résultats. Réessayez."})
	}

	data := fiber.Map{"Q": q, "Lang": lang, "Medications": meds, "Count": len(meds)}

	if sel, ok := validate.NumericID(c.Query("sel")); ok {
		m, err := h.Catalog.GetMedication(sel)
		if err == nil {
			view, verr := h.Presenter.Detail(m, lang)
			if verr != nil {
				log.Error(c, "medications.detail.fail", verr, map[string]any{"id": sel})
				return c.Status(500).Render("notfound", fiber.Map{"Message": "Impossible de charger le médicament."})
			}
			data["Selected"] = view
		}
		// Unknown selection falls through to the placeholder pane.
	}

	return render(c, "medicaments", data)
}

// Detail is the standalone detail page for one medication.
func (h *MedicationHandler) Detail(c *fiber.Ctx) error {
	id, ok := validate.NumericID(c.Params("id"))
	if !ok {
		return c.Status(404).Render("notfound", fiber.Map{"Message": "Ce médicament n'existe pas"})
	}
	m, err := h.Catalog.GetMedication(id)
	if err != nil {
		return c.Status(404).Render("notfound", fiber.Map{"Message": "Ce médicament n'existe pas"})
	}
	view, err := h.Presenter.Detail(m, c.Query("lang", "fr"))
	if err != nil {
		log.Error(c, "medications.detail.fail", err, map[string]any{"id": id})
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Impossible de charger le médicament."})
	}
	return render(c, "medicament", fiber.Map{"V": view})
}

// Availability is the JSON stock-status endpoint.
func (h *MedicationHandler) Availability(c *fiber.Ctx) error {
	id, ok := validate.NumericID(c.Query("medicationId"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "missing medicationId"})
	}
	m, err := h.Catalog.GetMedication(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "unknown medication"})
	}
	return c.JSON(services.Classify(m.Stock))
}
