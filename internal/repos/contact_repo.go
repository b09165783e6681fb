package repos

import (
	"pharmafinder/internal/domain"

	"github.com/jmoiron/sqlx"
)

type ContactRepo struct{ db *sqlx.DB }

func NewContactRepo(db *sqlx.DB) *ContactRepo { return &ContactRepo{db: db} }

func (r *ContactRepo) Insert(m domain.ContactMessage) error {
	_, err := r.db.Exec(`INSERT INTO contact_messages(id,name,email,subject,message) VALUES(?,?,?,?,?)`,
		m.ID, m.Name, m.Email, m.Subject, m.Message)
	return err
}

func (r *ContactRepo) Count() (int, error) {
	var n int
	err := r.db.Get(&n, `SELECT COUNT(*) FROM contact_messages`)
	return n, err
}
