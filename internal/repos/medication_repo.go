package repos

import (
	"pharmafinder/internal/domain"

	"github.com/jmoiron/sqlx"
)

type MedicationRepo struct{ db *sqlx.DB }

func NewMedicationRepo(db *sqlx.DB) *MedicationRepo { return &MedicationRepo{db: db} }

const medicationCols = `
  id, name, name_ar, form, form_ar, dosage, laboratory, price,
  description, description_ar, composition, composition_ar,
  usage, usage_ar, side_effects, side_effects_ar, stock, COALESCE(image,'') AS image`

// ListAll returns the full catalog in insertion (id) order with
// alternatives and per-pharmacy stock attached.
func (r *MedicationRepo) ListAll() ([]domain.Medication, error) {
	var meds []domain.Medication
	if err := r.db.Select(&meds, `SELECT `+medicationCols+` FROM medications ORDER BY id`); err != nil {
		return nil, err
	}
	for i := range meds {
		if err := r.attach(&meds[i]); err != nil {
			return nil, err
		}
	}
	return meds, nil
}

func (r *MedicationRepo) Get(id int) (domain.Medication, error) {
	var m domain.Medication
	if err := r.db.Get(&m, `SELECT `+medicationCols+` FROM medications WHERE id=?`, id); err != nil {
		return domain.Medication{}, err
	}
	if err := r.attach(&m); err != nil {
		return domain.Medication{}, err
	}
	return m, nil
}

func (r *MedicationRepo) attach(m *domain.Medication) error {
	if err := r.db.Select(&m.Alternatives,
		`SELECT alt_id FROM medication_alternatives WHERE medication_id=? ORDER BY pos`, m.ID); err != nil {
		return err
	}
	return r.db.Select(&m.Pharmacies, `
		SELECT medication_id, pharmacy_id, name, distance, stock
		FROM medication_pharmacies WHERE medication_id=? ORDER BY pos`, m.ID)
}
