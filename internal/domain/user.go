package domain

const (
	RoleUser  = "user"
	RoleOwner = "pharmacy_owner"
)

type User struct {
	ID    string `db:"id"`
	Email string `db:"email"`
	Name  string `db:"name"`
	Hash  string `db:"password_hash"`
	Role  string `db:"role"`
}

// Identity is the snapshot of an authenticated user persisted with the
// session. It is what restore() hands back after a reload.
type Identity struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

func (i Identity) IsOwner() bool { return i.Role == RoleOwner }
