package repos

import (
	"pharmafinder/internal/domain"

	"github.com/jmoiron/sqlx"
)

type HoursRepo struct{ db *sqlx.DB }

func NewHoursRepo(db *sqlx.DB) *HoursRepo { return &HoursRepo{db: db} }

type dayRow struct {
	Pos            int    `db:"pos"`
	Day            string `db:"day"`
	DayFr          string `db:"day_fr"`
	IsOpen         bool   `db:"is_open"`
	MorningOpen    string `db:"morning_open"`
	MorningClose   string `db:"morning_close"`
	AfternoonOpen  string `db:"afternoon_open"`
	AfternoonClose string `db:"afternoon_close"`
}

type flagsRow struct {
	OnDuty        bool `db:"on_duty"`
	NightPharmacy bool `db:"night_pharmacy"`
}

// Week loads an owner's schedule. Owners without stored rows get the
// default week so the editor always shows seven days.
func (r *HoursRepo) Week(ownerID string) (domain.WeekSchedule, error) {
	var rows []dayRow
	if err := r.db.Select(&rows, `
	  SELECT pos, day, day_fr, is_open, morning_open, morning_close, afternoon_open, afternoon_close
	  FROM opening_days WHERE owner_id=? ORDER BY pos`, ownerID); err != nil {
		return domain.WeekSchedule{}, err
	}

	week := domain.WeekSchedule{}
	if len(rows) != 7 {
		week.Days = domain.DefaultWeek()
	} else {
		for _, d := range rows {
			week.Days = append(week.Days, domain.DaySchedule{
				Day: d.Day, DayFr: d.DayFr, IsOpen: d.IsOpen,
				Morning:   domain.TimeWindow{Open: d.MorningOpen, Close: d.MorningClose},
				Afternoon: domain.TimeWindow{Open: d.AfternoonOpen, Close: d.AfternoonClose},
			})
		}
	}

	var f flagsRow
	err := r.db.Get(&f, `SELECT on_duty, night_pharmacy FROM hours_flags WHERE owner_id=?`, ownerID)
	if err == nil {
		week.OnDuty = f.OnDuty
		week.NightPharmacy = f.NightPharmacy
	}
	return week, nil
}

// SaveDays replaces the seven day rows. Flags are stored separately and
// untouched here, so toggling night mode never clears the grid.
func (r *HoursRepo) SaveDays(ownerID string, days []domain.DaySchedule) error {
	tx, err := r.db.Beginx()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(`DELETE FROM opening_days WHERE owner_id=?`, ownerID); err != nil {
		return err
	}
	for i, d := range days {
		if _, err := tx.Exec(`
		  INSERT INTO opening_days(owner_id,pos,day,day_fr,is_open,morning_open,morning_close,afternoon_open,afternoon_close)
		  VALUES(?,?,?,?,?,?,?,?,?)`,
			ownerID, i, d.Day, d.DayFr, d.IsOpen,
			d.Morning.Open, d.Morning.Close, d.Afternoon.Open, d.Afternoon.Close); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (r *HoursRepo) SetOnDuty(ownerID string, v bool) error {
	_, err := r.db.Exec(`INSERT INTO hours_flags(owner_id,on_duty,night_pharmacy) VALUES(?,?,0)
	  ON CONFLICT(owner_id) DO UPDATE SET on_duty=excluded.on_duty`, ownerID, v)
	return err
}

func (r *HoursRepo) SetNightPharmacy(ownerID string, v bool) error {
	_, err := r.db.Exec(`INSERT INTO hours_flags(owner_id,on_duty,night_pharmacy) VALUES(?,0,?)
	  ON CONFLICT(owner_id) DO UPDATE SET night_pharmacy=excluded.night_pharmacy`, ownerID, v)
	return err
}
