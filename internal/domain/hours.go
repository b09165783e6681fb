package domain

// TimeWindow is an HH:MM open/close pair. Both fields empty means the
// window is unused that day.
type TimeWindow struct {
	Open  string `db:"-" json:"open"`
	Close string `db:"-" json:"close"`
}

func (w TimeWindow) IsSet() bool { return w.Open != "" || w.Close != "" }

type DaySchedule struct {
	Day       string     `json:"day"`   // monday .. sunday
	DayFr     string     `json:"dayFr"` // Lundi .. Dimanche
	IsOpen    bool       `json:"isOpen"`
	Morning   TimeWindow `json:"morning"`
	Afternoon TimeWindow `json:"afternoon"`
}

// WeekSchedule is an owner's opening hours: exactly seven day entries in
// week order plus two independent override flags. Night mode suppresses
// the per-day grid in presentation but never clears the stored days.
type WeekSchedule struct {
	Days          []DaySchedule `json:"days"`
	OnDuty        bool          `json:"onDuty"`
	NightPharmacy bool          `json:"nightPharmacy"`
}

// DefaultWeek is the schedule a newly registered owner starts from.
func DefaultWeek() []DaySchedule {
	full := func(day, fr string) DaySchedule {
		return DaySchedule{
			Day: day, DayFr: fr, IsOpen: true,
			Morning:   TimeWindow{Open: "08:00", Close: "12:00"},
			Afternoon: TimeWindow{Open: "14:00", Close: "19:00"},
		}
	}
	return []DaySchedule{
		full("monday", "Lundi"),
		full("tuesday", "Mardi"),
		full("wednesday", "Mercredi"),
		full("thursday", "Jeudi"),
		full("friday", "Vendredi"),
		{Day: "saturday", DayFr: "Samedi", IsOpen: true, Morning: TimeWindow{Open: "08:00", Close: "12:00"}},
		{Day: "sunday", DayFr: "Dimanche"},
	}
}
