package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	html "github.com/gofiber/template/html/v2"

	"pharmafinder/internal/http/handlers"
	"pharmafinder/internal/repos"
	"pharmafinder/internal/services"
)

// ownerTestApp serves /stock behind the owner gate, with two seeded
// sessions bound through the real login path.
func ownerTestApp(t *testing.T) *fiber.App {
	t.Helper()
	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	authSvc := &services.AuthService{Users: repos.NewUserRepo(db)}
	stockH := &handlers.StockHandler{Stock: services.NewStockService(repos.NewStockRepo(db))}

	if _, err := authSvc.Login("sid-user", "user@example.com", "Passw0rd!"); err != nil {
		t.Fatalf("login user: %v", err)
	}
	if _, err := authSvc.Login("sid-owner", "pharmacy@example.com", "Passw0rd!"); err != nil {
		t.Fatalf("login owner: %v", err)
	}

	engine := html.New("../../web/templates", ".html")
	app := fiber.New(fiber.Config{Views: engine})
	stock := app.Group("/stock", handlers.RequireOwner(authSvc))
	stock.Get("/", stockH.List)
	return app
}

func getStock(t *testing.T, app *fiber.App, sid string) *http.Response {
	t.Helper()
	req := httptest.NewRequest("GET", "/stock/", nil)
	if sid != "" {
		req.AddCookie(&http.Cookie{Name: "sid", Value: sid})
	}
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	return resp
}

func TestStockRequiresOwnerRole(t *testing.T) {
	app := ownerTestApp(t)

	// anonymous -> redirected to login
	resp := getStock(t, app, "")
	if resp.StatusCode != http.StatusFound {
		t.Fatalf("anonymous: expected redirect, got %d", resp.StatusCode)
	}
	if loc := resp.Header.Get("Location"); loc != "/login" {
		t.Fatalf("anonymous: expected /login redirect, got %q", loc)
	}

	// logged-in regular user -> forbidden
	if resp := getStock(t, app, "sid-user"); resp.StatusCode != http.StatusForbidden {
		t.Fatalf("regular user: expected 403, got %d", resp.StatusCode)
	}

	// stale session id reads as logged out
	if resp := getStock(t, app, "sid-unknown"); resp.StatusCode != http.StatusForbidden {
		t.Fatalf("stale session: expected 403, got %d", resp.StatusCode)
	}

	// pharmacy owner -> page renders
	if resp := getStock(t, app, "sid-owner"); resp.StatusCode != http.StatusOK {
		t.Fatalf("owner: expected 200, got %d", resp.StatusCode)
	}
}
