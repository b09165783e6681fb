package repos

import (
	"pharmafinder/internal/domain"

	"github.com/jmoiron/sqlx"
)

type PharmacyRepo struct{ db *sqlx.DB }

func NewPharmacyRepo(db *sqlx.DB) *PharmacyRepo { return &PharmacyRepo{db: db} }

func (r *PharmacyRepo) ListAll() ([]domain.Pharmacy, error) {
	var out []domain.Pharmacy
	err := r.db.Select(&out, `
	  SELECT id, name, address, phone, latitude, longitude, is_open, hours, distance_km,
	         services, payment, parking, wheelchair, COALESCE(image,'') AS image,
	         COALESCE(description,'') AS description
	  FROM pharmacies ORDER BY id`)
	return out, err
}

func (r *PharmacyRepo) Get(id int) (domain.Pharmacy, error) {
	var p domain.Pharmacy
	err := r.db.Get(&p, `
	  SELECT id, name, address, phone, latitude, longitude, is_open, hours, distance_km,
	         services, payment, parking, wheelchair, COALESCE(image,'') AS image,
	         COALESCE(description,'') AS description
	  FROM pharmacies WHERE id=?`, id)
	return p, err
}
