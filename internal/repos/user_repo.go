package repos

import (
	"database/sql"

	"pharmafinder/internal/domain"

	"github.com/jmoiron/sqlx"
)

type UserRepo struct{ DB *sqlx.DB }

func NewUserRepo(db *sqlx.DB) *UserRepo { return &UserRepo{DB: db} }

func (r *UserRepo) ByEmail(email string) (*domain.User, error) {
	var u domain.User
	err := r.DB.Get(&u, `SELECT id,email,name,password_hash,role FROM users WHERE LOWER(email)=LOWER(?)`, email)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepo) Create(u domain.User) error {
	_, err := r.DB.Exec(`INSERT INTO users(id,email,name,password_hash,role) VALUES(?,?,?,?,?)`,
		u.ID, u.Email, u.Name, u.Hash, u.Role)
	return err
}

// BindSession stores the serialized identity blob for a session id,
// overwriting any previous value.
func (r *UserRepo) BindSession(sid string, identityJSON string) error {
	_, err := r.DB.Exec(`INSERT INTO sessions(id,identity_json,last_seen)
	                      VALUES(?,?,CURRENT_TIMESTAMP)
	                      ON CONFLICT(id) DO UPDATE SET identity_json=excluded.identity_json,last_seen=CURRENT_TIMESTAMP`,
		sid, identityJSON)
	return err
}

// SessionBlob returns the raw persisted identity for a session, or ""
// when the session is unknown or logged out.
func (r *UserRepo) SessionBlob(sid string) (string, error) {
	var blob sql.NullString
	err := r.DB.Get(&blob, `SELECT identity_json FROM sessions WHERE id=?`, sid)
	if err != nil {
		return "", err
	}
	return blob.String, nil
}

// UnbindSession clears the persisted identity while keeping the session row.
func (r *UserRepo) UnbindSession(sid string) error {
	_, err := r.DB.Exec(`UPDATE sessions SET identity_json=NULL,last_seen=CURRENT_TIMESTAMP WHERE id=?`, sid)
	return err
}
