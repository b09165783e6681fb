package services_test

import (
	"errors"
	"testing"
	"time"

	"pharmafinder/internal/domain"
	"pharmafinder/internal/repos"
	"pharmafinder/internal/services"
)

const owner = "u-centrale"

func newStock(t *testing.T) *services.StockService {
	return services.NewStockService(repos.NewStockRepo(seededDB(t)))
}

func TestCreateAppendsWithGeneratedID(t *testing.T) {
	svc := newStock(t)

	before, err := svc.List(owner)
	if err != nil {
		t.Fatal(err)
	}

	created, err := svc.Create(owner, domain.StockItem{
		Name: "ASPEGIC", Price: 2.8, Stock: 40, Category: "Analgésiques",
	})
	if err != nil {
		t.Fatal(err)
	}
	if created.ID == "" {
		t.Fatal("created item must get a non-empty id")
	}
	if created.LastUpdated != time.Now().Format("2006-01-02") {
		t.Fatalf("want today's date, got %q", created.LastUpdated)
	}

	after, err := svc.List(owner)
	if err != nil {
		t.Fatal(err)
	}
	if len(after) != len(before)+1 {
		t.Fatalf("want length %d, got %d", len(before)+1, len(after))
	}
}

func TestUpdateReplacesExactlyOneEntry(t *testing.T) {
	svc := newStock(t)

	before, err := svc.List(owner)
	if err != nil {
		t.Fatal(err)
	}

	err = svc.Update(owner, domain.StockItem{
		ID: "1", Name: "DOLIPRANE", Price: 3.9, Stock: 120,
		Description: "Comprimé 1000mg", Category: "Analgésiques",
	})
	if err != nil {
		t.Fatal(err)
	}

	after, err := svc.List(owner)
	if err != nil {
		t.Fatal(err)
	}
	if len(after) != len(before) {
		t.Fatalf("update must keep length %d, got %d", len(before), len(after))
	}

	it, err := svc.Get(owner, "1")
	if err != nil {
		t.Fatal(err)
	}
	if it.Price != 3.9 || it.Stock != 120 {
		t.Fatalf("entry not replaced: %+v", it)
	}
}

func TestUpdateUnknownIDFails(t *testing.T) {
	svc := newStock(t)

	err := svc.Update(owner, domain.StockItem{ID: "nope", Name: "X", Price: 1, Stock: 1})
	if !errors.Is(err, services.ErrItemNotFound) {
		t.Fatalf("want ErrItemNotFound, got %v", err)
	}
}

func TestDeleteRemovesEntry(t *testing.T) {
	svc := newStock(t)

	if err := svc.Delete(owner, "2"); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Get(owner, "2"); !errors.Is(err, services.ErrItemNotFound) {
		t.Fatalf("want ErrItemNotFound after delete, got %v", err)
	}
	if err := svc.Delete(owner, "2"); !errors.Is(err, services.ErrItemNotFound) {
		t.Fatalf("double delete: want ErrItemNotFound, got %v", err)
	}
}

func TestStockSearchMatchesNameOrCategory(t *testing.T) {
	svc := newStock(t)

	byName, err := svc.Search(owner, "dolip")
	if err != nil {
		t.Fatal(err)
	}
	if len(byName) != 1 || byName[0].Name != "DOLIPRANE" {
		t.Fatalf("want [DOLIPRANE], got %+v", byName)
	}

	byCat, err := svc.Search(owner, "analgésiques")
	if err != nil {
		t.Fatal(err)
	}
	if len(byCat) != 2 {
		t.Fatalf("want 2 analgésiques, got %d", len(byCat))
	}
}
