package handlers

import (
	"pharmafinder/internal/log"
	"pharmafinder/internal/services"
	"pharmafinder/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type PharmacyHandler struct {
	Catalog *services.CatalogService
	Map     *services.MapService
}

// MapPage renders the pharmacy list next to the map canvas.
func (h *PharmacyHandler) MapPage(c *fiber.Ctx) error {
	pharmacies, err := h.Catalog.ListPharmacies()
	if err != nil {
		log.Error(c, "pharmacies.list.fail", err, nil)
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Impossible de charger les pharmacies."})
	}
	return render(c, "pharmacies", fiber.Map{"Pharmacies": pharmacies})
}

// Markers is the JSON feed the map renderer polls. ?lat/?lng carry the
// browser's geolocation; when absent or invalid the feed centers on the
// configured default.
func (h *PharmacyHandler) Markers(c *fiber.Ctx) error {
	lat, okLat := validate.Coord(c.Query("lat"), 90)
	lng, okLng := validate.Coord(c.Query("lng"), 180)
	feed, err := h.Map.Markers(lat, lng, okLat && okLng)
	if err != nil {
		log.Error(c, "pharmacies.markers.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "could not load markers"})
	}
	return c.JSON(feed)
}
