package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	html "github.com/gofiber/template/html/v2"

	"pharmafinder/internal/http/handlers"
	"pharmafinder/internal/repos"
	"pharmafinder/internal/services"
)

// stockTestApp wires the stock routes with a logged-in owner session.
// CSRF is exercised separately; here the forms post directly.
func stockTestApp(t *testing.T) *fiber.App {
	t.Helper()
	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	authSvc := &services.AuthService{Users: repos.NewUserRepo(db)}
	if _, err := authSvc.Login("sid-owner", "pharmacy@example.com", "Passw0rd!"); err != nil {
		t.Fatalf("login owner: %v", err)
	}
	stockH := &handlers.StockHandler{Stock: services.NewStockService(repos.NewStockRepo(db)), MediaDir: t.TempDir()}

	engine := html.New("../../web/templates", ".html")
	app := fiber.New(fiber.Config{Views: engine})
	stock := app.Group("/stock", handlers.RequireOwner(authSvc))
	stock.Get("/", stockH.List)
	stock.Post("/", stockH.Create)
	stock.Post("/:id", stockH.Update)
	stock.Post("/:id/delete", stockH.Delete)
	return app
}

func postForm(t *testing.T, app *fiber.App, path string, form url.Values) *http.Response {
	t.Helper()
	req := httptest.NewRequest("POST", path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.AddCookie(&http.Cookie{Name: "sid", Value: "sid-owner"})
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	return resp
}

func validItem() url.Values {
	return url.Values{
		"name":     {"Doliprane 500mg"},
		"price":    {"4.20"},
		"stock":    {"60"},
		"category": {"Analgésiques"},
	}
}

func TestStockCreateRejectsMalformedNumbers(t *testing.T) {
	app := stockTestApp(t)

	bad := validItem()
	bad.Set("price", "4,20")
	if resp := postForm(t, app, "/stock/", bad); resp.StatusCode != http.StatusBadRequest {
		t.Errorf("comma price: expected 400, got %d", resp.StatusCode)
	}

	// ParseFloat-only validation would let these through as numbers.
	for _, p := range []string{"Inf", "NaN", "1e99"} {
		bad = validItem()
		bad.Set("price", p)
		if resp := postForm(t, app, "/stock/", bad); resp.StatusCode != http.StatusBadRequest {
			t.Errorf("price %q: expected 400, got %d", p, resp.StatusCode)
		}
	}

	bad = validItem()
	bad.Set("stock", "-5")
	if resp := postForm(t, app, "/stock/", bad); resp.StatusCode != http.StatusBadRequest {
		t.Errorf("negative stock: expected 400, got %d", resp.StatusCode)
	}

	bad = validItem()
	bad.Set("category", "Potions")
	if resp := postForm(t, app, "/stock/", bad); resp.StatusCode != http.StatusBadRequest {
		t.Errorf("unknown category: expected 400, got %d", resp.StatusCode)
	}

	if resp := postForm(t, app, "/stock/", validItem()); resp.StatusCode != http.StatusFound {
		t.Errorf("valid item: expected redirect, got %d", resp.StatusCode)
	}
}

func TestStockDeleteNeedsConfirmation(t *testing.T) {
	app := stockTestApp(t)

	// Without the confirm field the seeded item survives.
	resp := postForm(t, app, "/stock/1/delete", url.Values{})
	if resp.StatusCode != http.StatusFound || resp.Header.Get("Location") != "/stock" {
		t.Fatalf("unconfirmed delete: expected bounce to /stock, got %d %q", resp.StatusCode, resp.Header.Get("Location"))
	}

	resp = postForm(t, app, "/stock/1/delete", url.Values{"confirm": {"1"}})
	if resp.StatusCode != http.StatusFound {
		t.Fatalf("confirmed delete: expected redirect, got %d", resp.StatusCode)
	}

	// A second confirmed delete hits a missing item.
	resp = postForm(t, app, "/stock/1/delete", url.Values{"confirm": {"1"}})
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("double delete: expected 404, got %d", resp.StatusCode)
	}
}
