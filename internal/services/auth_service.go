package services

import (
	"encoding/json"
	"errors"

	"pharmafinder/internal/domain"
	"pharmafinder/internal/repos"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrBadCreds   = errors.New("invalid email or password")
	ErrEmailTaken = errors.New("email already registered")
)

// AuthService is the session store: one serialized identity per session
// id, overwritten on login, cleared on logout. There is no ambient
// global; callers hold a reference through the handler deps.
type AuthService struct {
	Users *repos.UserRepo
}

func (s *AuthService) Login(sid, email, password string) (*domain.Identity, error) {
	u, err := s.Users.ByEmail(email)
	if err != nil {
		return nil, ErrBadCreds
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Hash), []byte(password)) != nil {
		return nil, ErrBadCreds
	}
	id := domain.Identity{ID: u.ID, Email: u.Email, Name: u.Name, Role: u.Role}
	blob, err := json.Marshal(id)
	if err != nil {
		return nil, err
	}
	if err := s.Users.BindSession(sid, string(blob)); err != nil {
		return nil, err
	}
	return &id, nil
}

func (s *AuthService) Logout(sid string) error {
	return s.Users.UnbindSession(sid)
}

// CurrentIdentity restores the persisted identity for a session. An
// unknown session, empty blob or malformed JSON all read as "logged
// out"; nothing here is surfaced to the user.
func (s *AuthService) CurrentIdentity(sid string) (*domain.Identity, error) {
	blob, err := s.Users.SessionBlob(sid)
	if err != nil || blob == "" {
		return nil, nil
	}
	var id domain.Identity
	if err := json.Unmarshal([]byte(blob), &id); err != nil {
		return nil, nil
	}
	if id.ID == "" {
		return nil, nil
	}
	return &id, nil
}

// Signup registers a new account and logs it in.
func (s *AuthService) Signup(sid, email, name, password, role string) (*domain.Identity, error) {
	if role != domain.RoleUser && role != domain.RoleOwner {
		role = domain.RoleUser
	}
	if existing, _ := s.Users.ByEmail(email); existing != nil {
		return nil, ErrEmailTaken
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), 12)
	if err != nil {
		return nil, err
	}
	u := domain.User{ID: "u-" + uuid.NewString(), Email: email, Name: name, Hash: string(hash), Role: role}
	if err := s.Users.Create(u); err != nil {
		return nil, err
	}
	return s.Login(sid, email, password)
}
