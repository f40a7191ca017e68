package domain

// CapacityOverride replaces the weekday default hour capacity for one date.
type CapacityOverride struct {
	Date  string  `json:"date"` // "2006-01-02", weekday only
	Hours float64 `json:"hours"`
}

// ScheduleSettings holds the capacity configuration for the session.
// DailyCapacityByDay is indexed Monday..Friday.
type ScheduleSettings struct {
	DailyCapacityByDay [5]float64         `json:"dailyCapacityByDay"`
	CapacityOverrides  []CapacityOverride `json:"capacityOverrides"`
	Version            int32              `json:"-"`
}

// Clone returns a deep copy of the settings.
func (s *ScheduleSettings) Clone() *ScheduleSettings {
	c := *s
	c.CapacityOverrides = make([]CapacityOverride, len(s.CapacityOverrides))
	copy(c.CapacityOverrides, s.CapacityOverrides)
	return &c
}

// DailyAssignment is a snapshot of one job's allocation on one date. The
// display fields are copied from the job so the calendar can render a day
// without joining back to the job list.
type DailyAssignment struct {
	JobID         string       `json:"jobID"`
	HoursAssigned float64      `json:"hoursAssigned"`
	JobName       string       `json:"jobName"`
	IsUrgent      bool         `json:"isUrgent"`
	ActivityType  ActivityType `json:"activityType"`
	QuoteNumber   string       `json:"quoteNumber,omitempty"`
	Color         string       `json:"color"`
}

// DayData is the derived per-date schedule entry. It is recomputed in full
// on every allocation run and never patched incrementally.
type DayData struct {
	Assignments        []DailyAssignment `json:"assignments"`
	TotalHoursAssigned float64           `json:"totalHoursAssigned"`
}
