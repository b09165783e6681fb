package services

import (
	"fmt"

	"pharmafinder/internal/domain"
)

// Classify maps a stock count onto the three-way availability badge.
// The limited band is strictly below 50.
func Classify(stock int) domain.Availability {
	switch {
	case stock == 0:
		return domain.Availability{Status: domain.StatusOutOfStock, Qty: 0, Label: "Rupture de stock"}
	case stock < 50:
		return domain.Availability{Status: domain.StatusLimited, Qty: stock, Label: fmt.Sprintf("Stock limité (%d)", stock)}
	default:
		return domain.Availability{Status: domain.StatusInStock, Qty: stock, Label: fmt.Sprintf("En stock (%d)", stock)}
	}
}

// MedicationView is everything the detail screen needs for one selected
// record in one locale.
type MedicationView struct {
	Med  domain.Medication
	Lang string // fr | ar

	Name        string
	Form        string
	Description string
	Composition string
	Usage       string
	SideEffects string

	Availability domain.Availability

	// Alternatives are shown when the record is out of stock or limited;
	// they are listed in catalog order, not the order of the id list.
	ShowAlternatives bool
	Alternatives     []domain.Medication

	// Nearby pharmacies are shown only for records that are in stock
	// somewhere.
	ShowPharmacies bool
}

type Presenter struct {
	Catalog *CatalogService
}

func NewPresenter(catalog *CatalogService) *Presenter { return &Presenter{Catalog: catalog} }

// Detail builds the presented view for a selected medication. The locale
// toggle only changes which text fields are read; it never touches the
// selection or the filter.
func (p *Presenter) Detail(m domain.Medication, lang string) (MedicationView, error) {
	if lang != "ar" {
		lang = "fr"
	}

	v := MedicationView{Med: m, Lang: lang, Availability: Classify(m.Stock)}
	if lang == "ar" {
		v.Name, v.Form = m.NameAr, m.FormAr
		v.Description, v.Composition = m.DescriptionAr, m.CompositionAr
		v.Usage, v.SideEffects = m.UsageAr, m.SideEffectsAr
	} else {
		v.Name, v.Form = m.Name, m.Form
		v.Description, v.Composition = m.Description, m.Composition
		v.Usage, v.SideEffects = m.Usage, m.SideEffects
	}

	v.ShowPharmacies = m.Stock > 0 && len(m.Pharmacies) > 0

	if m.Stock == 0 || m.Stock < 50 {
		alts, err := p.Alternatives(m)
		if err != nil {
			return MedicationView{}, err
		}
		v.Alternatives = alts
		v.ShowAlternatives = true
	}
	return v, nil
}

// Alternatives filters the full catalog down to the record's alternative
// ids, preserving catalog order. Ids that reference nothing are skipped.
func (p *Presenter) Alternatives(m domain.Medication) ([]domain.Medication, error) {
	if len(m.Alternatives) == 0 {
		return nil, nil
	}
	wanted := make(map[int]bool, len(m.Alternatives))
	for _, id := range m.Alternatives {
		wanted[id] = true
	}
	all, err := p.Catalog.ListMedications()
	if err != nil {
		return nil, err
	}
	var out []domain.Medication
	for _, cand := range all {
		if wanted[cand.ID] {
			out = append(out, cand)
		}
	}
	return out, nil
}
