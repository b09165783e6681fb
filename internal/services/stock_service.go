package services

import (
	"database/sql"
	"errors"
	"strconv"
	"strings"
	"time"

	"pharmafinder/internal/domain"
	"pharmafinder/internal/repos"
)

var (
	ErrItemNotFound = errors.New("stock item not found")
	ErrInvalidItem  = errors.New("invalid stock item")
)

// StockService is the owner's stock editor: list/search plus create,
// full-replace edit and delete. All numeric fields arrive pre-parsed;
// handlers reject malformed input before it gets here.
type StockService struct {
	Repo *repos.StockRepo

	// now is swappable in tests; new items get a timestamp id and
	// today's date.
	now func() time.Time
}

func NewStockService(repo *repos.StockRepo) *StockService {
	return &StockService{Repo: repo, now: time.Now}
}

func (s *StockService) List(ownerID string) ([]domain.StockItem, error) {
	return s.Repo.ListByOwner(ownerID)
}

// Search filters the owner's list by name or category, case-folded.
func (s *StockService) Search(ownerID, q string) ([]domain.StockItem, error) {
	items, err := s.Repo.ListByOwner(ownerID)
	if err != nil {
		return nil, err
	}
	if q == "" {
		return items, nil
	}
	folded := strings.ToLower(q)
	out := make([]domain.StockItem, 0, len(items))
	for _, it := range items {
		if strings.Contains(strings.ToLower(it.Name), folded) ||
			strings.Contains(strings.ToLower(it.Category), folded) {
			out = append(out, it)
		}
	}
	return out, nil
}

func (s *StockService) Get(ownerID, id string) (domain.StockItem, error) {
	it, err := s.Repo.Get(ownerID, id)
	if err == sql.ErrNoRows {
		return domain.StockItem{}, ErrItemNotFound
	}
	return it, err
}

// Create appends a new item with a freshly generated id and today's date.
func (s *StockService) Create(ownerID string, it domain.StockItem) (domain.StockItem, error) {
	if it.Name == "" || it.Price < 0 || it.Stock < 0 {
		return domain.StockItem{}, ErrInvalidItem
	}
	now := s.now()
	it.ID = strconv.FormatInt(now.UnixMilli(), 10)
	it.OwnerID = ownerID
	it.LastUpdated = now.Format("2006-01-02")
	if err := s.Repo.Insert(it); err != nil {
		return domain.StockItem{}, err
	}
	return it, nil
}

// Update fully replaces the entry whose id matches. The list length is
// unchanged; an unknown id is an error, not an upsert.
func (s *StockService) Update(ownerID string, it domain.StockItem) error {
	if it.ID == "" || it.Name == "" || it.Price < 0 || it.Stock < 0 {
		return ErrInvalidItem
	}
	it.OwnerID = ownerID
	it.LastUpdated = s.now().Format("2006-01-02")
	n, err := s.Repo.Replace(it)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrItemNotFound
	}
	return nil
}

// Delete removes one entry. Confirmation happens out of band (a confirm
// form in the UI); by the time this runs the decision is made.
func (s *StockService) Delete(ownerID, id string) error {
	n, err := s.Repo.Delete(ownerID, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrItemNotFound
	}
	return nil
}
