package services_test

import (
	"errors"
	"testing"

	"pharmafinder/internal/domain"
	"pharmafinder/internal/repos"
	"pharmafinder/internal/services"
)

func newHours(t *testing.T) *services.HoursService {
	return services.NewHoursService(repos.NewHoursRepo(seededDB(t)))
}

func TestWeekAlwaysHasSevenDays(t *testing.T) {
	svc := newHours(t)

	week, err := svc.Week(owner)
	if err != nil {
		t.Fatal(err)
	}
	if len(week.Days) != 7 {
		t.Fatalf("want 7 days, got %d", len(week.Days))
	}
	if week.Days[0].Day != "monday" || week.Days[6].Day != "sunday" {
		t.Fatalf("unexpected day order: %s..%s", week.Days[0].Day, week.Days[6].Day)
	}

	// An owner with no stored rows still gets a full editable week.
	fresh, err := svc.Week("u-unknown")
	if err != nil {
		t.Fatal(err)
	}
	if len(fresh.Days) != 7 {
		t.Fatalf("want default 7 days for fresh owner, got %d", len(fresh.Days))
	}
}

// Night mode suppresses the presented grid but leaves the stored days
// untouched, so toggling back restores them verbatim.
func TestNightModeSuppressesGridWithoutClearingDays(t *testing.T) {
	svc := newHours(t)

	before, err := svc.Week(owner)
	if err != nil {
		t.Fatal(err)
	}

	if err := svc.SetNightPharmacy(owner, true); err != nil {
		t.Fatal(err)
	}
	view, err := svc.View(owner)
	if err != nil {
		t.Fatal(err)
	}
	if view.ShowGrid {
		t.Fatal("night mode must suppress the per-day grid")
	}
	if view.Notice == "" {
		t.Fatal("night mode must present a 24h notice")
	}

	if err := svc.SetNightPharmacy(owner, false); err != nil {
		t.Fatal(err)
	}
	after, err := svc.View(owner)
	if err != nil {
		t.Fatal(err)
	}
	if !after.ShowGrid {
		t.Fatal("grid must reappear after night mode is disabled")
	}
	for i := range before.Days {
		if after.Week.Days[i] != before.Days[i] {
			t.Fatalf("day %d changed across night toggle: %+v != %+v", i, after.Week.Days[i], before.Days[i])
		}
	}
}

// The two flags are independent: duty status never touches night mode
// or the schedule.
func TestOnDutyFlagIsIndependent(t *testing.T) {
	svc := newHours(t)

	if err := svc.SetOnDuty(owner, true); err != nil {
		t.Fatal(err)
	}
	week, err := svc.Week(owner)
	if err != nil {
		t.Fatal(err)
	}
	if !week.OnDuty || week.NightPharmacy {
		t.Fatalf("want on_duty only, got %+v", week)
	}
}

func TestSaveRequiresSevenDays(t *testing.T) {
	svc := newHours(t)

	err := svc.Save(owner, []domain.DaySchedule{{Day: "monday"}})
	if !errors.Is(err, services.ErrBadSchedule) {
		t.Fatalf("want ErrBadSchedule, got %v", err)
	}
}

func TestSavePersistsEditedWindows(t *testing.T) {
	svc := newHours(t)

	week, err := svc.Week(owner)
	if err != nil {
		t.Fatal(err)
	}
	days := week.Days
	days[6].IsOpen = true
	days[6].Morning = domain.TimeWindow{Open: "09:00", Close: "13:00"}

	if err := svc.Save(owner, days); err != nil {
		t.Fatal(err)
	}
	got, err := svc.Week(owner)
	if err != nil {
		t.Fatal(err)
	}
	if !got.Days[6].IsOpen || got.Days[6].Morning.Open != "09:00" {
		t.Fatalf("sunday not persisted: %+v", got.Days[6])
	}
}
