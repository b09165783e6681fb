package handlers_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	html "github.com/gofiber/template/html/v2"

	"pharmafinder/internal/domain"
	"pharmafinder/internal/http/handlers"
	"pharmafinder/internal/repos"
	"pharmafinder/internal/services"
)

func catalogTestApp(t *testing.T) *fiber.App {
	t.Helper()
	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	catalog := services.NewCatalogService(repos.NewMedicationRepo(db), repos.NewPharmacyRepo(db))
	medH := &handlers.MedicationHandler{Catalog: catalog, Presenter: services.NewPresenter(catalog)}

	engine := html.New("../../web/templates", ".html")
	app := fiber.New(fiber.Config{Views: engine})
	app.Get("/medicaments", medH.Search)
	app.Get("/medicament/:id", medH.Detail)
	app.Get("/api/v1/availability", medH.Availability)
	return app
}

func get(t *testing.T, app *fiber.App, path string) (*http.Response, string) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest("GET", path, nil))
	if err != nil {
		t.Fatal(err)
	}
	body, _ := io.ReadAll(resp.Body)
	return resp, string(body)
}

func TestSearchPageFiltersAndSelects(t *testing.T) {
	app := catalogTestApp(t)

	// Composition search matches every paracetamol-based product.
	resp, body := get(t, app, "/medicaments?q=paracétamol")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	for _, name := range []string{"DOLIPRANE", "EFFERALGAN", "DAFALGAN"} {
		if !strings.Contains(body, name) {
			t.Errorf("result list missing %s", name)
		}
	}
	if strings.Contains(body, "AUGMENTIN") {
		t.Error("result list should not include AUGMENTIN")
	}

	// Selection survives a filter that excludes it.
	_, body = get(t, app, "/medicaments?q=doliprane&sel=5")
	if !strings.Contains(body, "CLAMOXYL") {
		t.Error("selected medication outside the filter not rendered")
	}
	if !strings.Contains(body, "Rupture de stock") {
		t.Error("out-of-stock label missing from detail pane")
	}

	// Unknown selection falls back to the placeholder, not an error.
	if resp, _ := get(t, app, "/medicaments?sel=999"); resp.StatusCode != http.StatusOK {
		t.Fatalf("unknown selection: expected 200, got %d", resp.StatusCode)
	}
}

func TestSearchArabicExactMatch(t *testing.T) {
	app := catalogTestApp(t)
	_, body := get(t, app, "/medicaments?q="+url.QueryEscape("دوليبران"))
	if !strings.Contains(body, "DOLIPRANE") {
		t.Error("Arabic name search missed DOLIPRANE")
	}
	if strings.Contains(body, "EFFERALGAN") {
		t.Error("Arabic search should not match EFFERALGAN")
	}
}

func TestDetailPaneAlternativeWithoutPharmacies(t *testing.T) {
	// An in-stock alternative with no pharmacy rows must render without a
	// template error; the availability hint is simply omitted.
	engine := html.New("../../web/templates", ".html")
	app := fiber.New(fiber.Config{Views: engine})
	app.Get("/pane", func(c *fiber.Ctx) error {
		alt := domain.Medication{ID: 9, Name: "GENERIQUE", Stock: 120}
		view := services.MedicationView{
			Med:              domain.Medication{ID: 8, Name: "ORIGINAL"},
			Lang:             "fr",
			Name:             "ORIGINAL",
			Availability:     services.Classify(0),
			ShowAlternatives: true,
			Alternatives:     []domain.Medication{alt},
		}
		return c.Render("medicaments", fiber.Map{"Q": "", "Lang": "fr", "Selected": view})
	})

	resp, body := get(t, app, "/pane")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if !strings.Contains(body, "GENERIQUE") {
		t.Error("alternative row missing")
	}
	if strings.Contains(body, "Disponible à") {
		t.Error("pharmacy hint rendered without a pharmacy")
	}
}

func TestAvailabilityEndpoint(t *testing.T) {
	app := catalogTestApp(t)

	cases := []struct {
		id     string
		status string
	}{
		{"1", domain.StatusInStock},   // 150 units
		{"4", domain.StatusLimited},   // 30 units
		{"5", domain.StatusOutOfStock}, // 0 units
	}
	for _, c := range cases {
		resp, body := get(t, app, "/api/v1/availability?medicationId="+c.id)
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("id %s: expected 200, got %d", c.id, resp.StatusCode)
		}
		var av domain.Availability
		if err := json.Unmarshal([]byte(body), &av); err != nil {
			t.Fatalf("id %s: bad JSON: %v", c.id, err)
		}
		if av.Status != c.status {
			t.Errorf("id %s: status = %s, want %s", c.id, av.Status, c.status)
		}
	}

	if resp, _ := get(t, app, "/api/v1/availability?medicationId=abc"); resp.StatusCode != http.StatusBadRequest {
		t.Errorf("malformed id: expected 400, got %d", resp.StatusCode)
	}
	if resp, _ := get(t, app, "/api/v1/availability?medicationId=999"); resp.StatusCode != http.StatusNotFound {
		t.Errorf("unknown id: expected 404, got %d", resp.StatusCode)
	}
}
