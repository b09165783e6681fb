package handlers

import (
	"pharmafinder/internal/config"
	"pharmafinder/internal/repos"
	"pharmafinder/internal/services"

	"github.com/jmoiron/sqlx"
)

type Deps struct {
	MedicationHandler *MedicationHandler
	PharmacyHandler   *PharmacyHandler
	StockHandler      *StockHandler
	HoursHandler      *HoursHandler
	ContactHandler    *ContactHandler
}

func NewDeps(db *sqlx.DB, cfg config.Config, auth *services.AuthService) *Deps {
	medRepo := repos.NewMedicationRepo(db)
	pharmRepo := repos.NewPharmacyRepo(db)
	stockRepo := repos.NewStockRepo(db)
	hoursRepo := repos.NewHoursRepo(db)
	contactRepo := repos.NewContactRepo(db)

	catalogSvc := services.NewCatalogService(medRepo, pharmRepo)
	presenter := services.NewPresenter(catalogSvc)
	mapSvc := services.NewMapService(pharmRepo, cfg.DefaultLat, cfg.DefaultLng)
	stockSvc := services.NewStockService(stockRepo)
	hoursSvc := services.NewHoursService(hoursRepo)
	contactSvc := services.NewContactService(contactRepo)

	return &Deps{
		MedicationHandler: &MedicationHandler{Catalog: catalogSvc, Presenter: presenter},
		PharmacyHandler:   &PharmacyHandler{Catalog: catalogSvc, Map: mapSvc},
		StockHandler:      &StockHandler{Stock: stockSvc, MediaDir: cfg.MediaDir},
		HoursHandler:      &HoursHandler{Hours: hoursSvc},
		ContactHandler:    &ContactHandler{Contact: contactSvc},
	}
}
