package handlers

import (
	"fmt"

	"pharmafinder/internal/domain"
	"pharmafinder/internal/log"
	"pharmafinder/internal/services"
	"pharmafinder/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type HoursHandler struct {
	Hours *services.HoursService
}

func (h *HoursHandler) Page(c *fiber.Ctx) error {
	owner := identity(c)
	view, err := h.Hours.View(owner.ID)
	if err != nil {
		log.Error(c, "hours.load.fail", err, nil)
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Impossible de charger les horaires"})
	}
	return render(c, "horaires", fiber.Map{
		"View":  view,
		"Saved": c.Query("saved") == "1",
	})
}

// Save reads the seven day rows from indexed form fields
// (day0_open, day0_morning_open, ...) and persists them.
func (h *HoursHandler) Save(c *fiber.Ctx) error {
	owner := identity(c)
	week, err := h.Hours.Week(owner.ID)
	if err != nil {
		log.Error(c, "hours.load.fail", err, nil)
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Impossible de charger les horaires"})
	}

	days := make([]domain.DaySchedule, len(week.Days))
	copy(days, week.Days)
	for i := range days {
		days[i].IsOpen = c.FormValue(fmt.Sprintf("day%d_open", i)) == "1"
		fields := []struct {
			name string
			dst  *string
		}{
			{fmt.Sprintf("day%d_morning_open", i), &days[i].Morning.Open},
			{fmt.Sprintf("day%d_morning_close", i), &days[i].Morning.Close},
			{fmt.Sprintf("day%d_afternoon_open", i), &days[i].Afternoon.Open},
			{fmt.Sprintf("day%d_afternoon_close", i), &days[i].Afternoon.Close},
		}
		for _, f := range fields {
			v, ok := validate.HHMM(c.FormValue(f.name))
			if !ok {
				log.Security(c, "hours.save.invalid", map[string]any{"field": f.name})
				return c.Status(400).Render("notfound", fiber.Map{"Message": "Horaire invalide (format HH:MM)"})
			}
			*f.dst = v
		}
	}

	if err := h.Hours.Save(owner.ID, days); err != nil {
		log.Error(c, "hours.save.fail", err, nil)
		return c.Status(400).Render("notfound", fiber.Map{"Message": "Impossible d'enregistrer les horaires"})
	}
	log.Audit(c, "hours.save", nil)
	return c.Redirect("/horaires?saved=1")
}

// ToggleDuty flips the on-duty flag; it has no effect on the schedule.
func (h *HoursHandler) ToggleDuty(c *fiber.Ctx) error {
	owner := identity(c)
	on := c.FormValue("on") == "1"
	if err := h.Hours.SetOnDuty(owner.ID, on); err != nil {
		log.Error(c, "hours.duty.fail", err, nil)
		return c.Status(400).Render("notfound", fiber.Map{"Message": "Impossible de changer le statut de garde"})
	}
	log.Audit(c, "hours.duty", map[string]any{"on": on})
	return c.Redirect("/horaires")
}

// ToggleNight flips night mode. The per-day rows stay stored untouched;
// only the presented view switches to 24h/24.
func (h *HoursHandler) ToggleNight(c *fiber.Ctx) error {
	owner := identity(c)
	on := c.FormValue("on") == "1"
	if err := h.Hours.SetNightPharmacy(owner.ID, on); err != nil {
		log.Error(c, "hours.night.fail", err, nil)
		return c.Status(400).Render("notfound", fiber.Map{"Message": "Impossible de changer le statut de nuit"})
	}
	log.Audit(c, "hours.night", map[string]any{"on": on})
	return c.Redirect("/horaires")
}
