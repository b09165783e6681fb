package services

import (
	"errors"
	"strings"

	"pharmafinder/internal/domain"
	"pharmafinder/internal/repos"

	"github.com/google/uuid"
)

var ErrEmptyMessage = errors.New("empty contact message")

// ContactService records contact-form submissions. There is no outbound
// mail; a stored message always resolves to a success indicator.
type ContactService struct {
	Repo *repos.ContactRepo
}

func NewContactService(repo *repos.ContactRepo) *ContactService { return &ContactService{Repo: repo} }

func (s *ContactService) Submit(name, email, subject, message string) error {
	if strings.TrimSpace(message) == "" {
		return ErrEmptyMessage
	}
	return s.Repo.Insert(domain.ContactMessage{
		ID:      uuid.NewString(),
		Name:    strings.TrimSpace(name),
		Email:   strings.TrimSpace(email),
		Subject: strings.TrimSpace(subject),
		Message: strings.TrimSpace(message),
	})
}
