package services

import (
	"errors"
	"fmt"

	"pharmafinder/internal/domain"
	"pharmafinder/internal/repos"
)

var ErrBadSchedule = errors.New("invalid schedule")

// HoursService manages an owner's opening-hours schedule and the two
// independent override flags.
type HoursService struct {
	Repo *repos.HoursRepo
}

func NewHoursService(repo *repos.HoursRepo) *HoursService { return &HoursService{Repo: repo} }

func (s *HoursService) Week(ownerID string) (domain.WeekSchedule, error) {
	return s.Repo.Week(ownerID)
}

// Save persists the seven day entries. The flags are untouched; in
// particular a stored night-mode flag never erases day data.
func (s *HoursService) Save(ownerID string, days []domain.DaySchedule) error {
	if len(days) != 7 {
		return fmt.Errorf("%w: want 7 days, got %d", ErrBadSchedule, len(days))
	}
	return s.Repo.SaveDays(ownerID, days)
}

func (s *HoursService) SetOnDuty(ownerID string, v bool) error {
	return s.Repo.SetOnDuty(ownerID, v)
}

func (s *HoursService) SetNightPharmacy(ownerID string, v bool) error {
	return s.Repo.SetNightPharmacy(ownerID, v)
}

// HoursView is the schedule as presented: night mode replaces the grid
// with a continuous 24h/24 notice while the underlying days stay stored.
type HoursView struct {
	Week     domain.WeekSchedule
	ShowGrid bool
	Notice   string
}

func (s *HoursService) View(ownerID string) (HoursView, error) {
	week, err := s.Repo.Week(ownerID)
	if err != nil {
		return HoursView{}, err
	}
	v := HoursView{Week: week, ShowGrid: !week.NightPharmacy}
	if week.NightPharmacy {
		v.Notice = "Ouvert 24h/24"
	}
	return v, nil
}
