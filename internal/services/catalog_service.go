package services

import (
	"strings"

	"pharmafinder/internal/domain"
	"pharmafinder/internal/repos"
)

type CatalogService struct {
	Meds  *repos.MedicationRepo
	Pharm *repos.PharmacyRepo
}

func NewCatalogService(meds *repos.MedicationRepo, pharm *repos.PharmacyRepo) *CatalogService {
	return &CatalogService{Meds: meds, Pharm: pharm}
}

func (s *CatalogService) ListMedications() ([]domain.Medication, error) {
	return s.Meds.ListAll()
}

// Search filters the catalog by substring match: case-folded against the
// French name and composition, exact against the Arabic ones. An empty
// query returns the full catalog. Order is the catalog's own; there is
// no ranking.
func (s *CatalogService) Search(q string) ([]domain.Medication, error) {
	all, err := s.Meds.ListAll()
	if err != nil {
		return nil, err
	}
	if q == "" {
		return all, nil
	}
	folded := strings.ToLower(q)
	out := make([]domain.Medication, 0, len(all))
	for _, m := range all {
		if strings.Contains(strings.ToLower(m.Name), folded) ||
			strings.Contains(m.NameAr, q) ||
			strings.Contains(strings.ToLower(m.Composition), folded) ||
			strings.Contains(m.CompositionAr, q) {
			out = append(out, m)
		}
	}
	return out, nil
}

// GetMedication resolves a selection. Selection is independent of any
// active filter: any catalog id may be selected.
func (s *CatalogService) GetMedication(id int) (domain.Medication, error) {
	return s.Meds.Get(id)
}

func (s *CatalogService) ListPharmacies() ([]domain.Pharmacy, error) {
	return s.Pharm.ListAll()
}

func (s *CatalogService) GetPharmacy(id int) (domain.Pharmacy, error) {
	return s.Pharm.Get(id)
}
