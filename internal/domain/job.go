package domain

import "time"

type ActivityType string

const (
	ActivityMachining   ActivityType = "machining"
	ActivityFabrication ActivityType = "fabrication"
	ActivityAssembly    ActivityType = "assembly"
	ActivityInspection  ActivityType = "inspection"
	ActivityRepair      ActivityType = "repair"
	ActivityOther       ActivityType = "other"
)

// Segment is the portion of a job's required hours placed on one specific day.
type Segment struct {
	Date  string  `json:"date"` // "2006-01-02"
	Hours float64 `json:"hours"`
}

type Job struct {
	ID                 string       `json:"id"`
	Name               string       `json:"name"`
	RequiredHours      float64      `json:"requiredHours"`
	IsUrgent           bool         `json:"isUrgent"`
	ActivityType       ActivityType `json:"activityType"`
	ActivityDetail     string       `json:"activityDetail,omitempty"` // only meaningful when ActivityType is "other"
	QuoteNumber        string       `json:"quoteNumber,omitempty"`
	PreferredStartDate string       `json:"preferredStartDate,omitempty"` // "2006-01-02", weekday
	Color              string       `json:"color"`
	ScheduledSegments  []Segment    `json:"scheduledSegments"`
	CreatedAt          time.Time    `json:"createdAt"`
	Version            int32        `json:"-"`
}

// Clone returns a deep copy, so callers can mutate segments freely.
func (j *Job) Clone() *Job {
	c := *j
	c.ScheduledSegments = make([]Segment, len(j.ScheduledSegments))
	copy(c.ScheduledSegments, j.ScheduledSegments)
	return &c
}
