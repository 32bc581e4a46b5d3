package timesheet

import "github.com/tracklight/timesheet-backend-go/internal/domain/catalog"

type Status string

const (
	StatusPending  Status = "Pending"
	StatusApproved Status = "Approved"
	StatusRejected Status = "Rejected"
)

func ParseStatus(s string) (Status, bool) {
	switch Status(s) {
	case StatusPending, StatusApproved, StatusRejected:
		return Status(s), true
	}
	return "", false
}

// Entry is one activity/hours record for one employee on one date.
// The activity name/type pair is a snapshot taken at submission time.
type Entry struct {
	ID              string               `json:"id"`
	UserID          int64                `json:"userId"`
	Date            string               `json:"date"` // YYYY-MM-DD, compared as an opaque calendar-day token
	Activity        string               `json:"activity"`
	ActivityType    catalog.ActivityType `json:"activityType"`
	ProjectID       *string              `json:"projectId,omitempty"`
	Hours           float64              `json:"hours"`
	Status          Status               `json:"status"`
	ManagerComments *string              `json:"managerComments,omitempty"`
}

// Submission is the derived grouping of all entries for one (employee, date)
// pair. It is never persisted; it is recomputed from the entry store on read.
type Submission struct {
	UserID     int64   `json:"userId"`
	Date       string  `json:"date"`
	Entries    []Entry `json:"entries"`
	TotalHours float64 `json:"totalHours"`
	Status     Status  `json:"status"`
}
