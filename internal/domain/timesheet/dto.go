package timesheet

import "strings"

// DraftRow is one activity row of a daily submission form. Hours arrives as
// the raw form string and is validated by the builder.
type DraftRow struct {
	ActivityType string `json:"activity_type"`
	Activity     string `json:"activity"`
	ProjectID    string `json:"project_id,omitempty"`
	Hours        string `json:"hours"`
}

type SubmitDayRequest struct {
	Date string     `json:"date"`
	Rows []DraftRow `json:"rows"`
}

func (r SubmitDayRequest) Validate() error {
	if strings.TrimSpace(r.Date) == "" {
		return ErrDateRequired
	}
	if len(r.Rows) == 0 {
		return ErrNoRows
	}
	return nil
}

type DecideAction string

const (
	ActionApprove DecideAction = "approve"
	ActionReject  DecideAction = "reject"
)

// DecideRequest targets one submission by its (employee, date) key.
type DecideRequest struct {
	UserID   int64        `json:"user_id"`
	Date     string       `json:"date"`
	Action   DecideAction `json:"action"`
	Comments string       `json:"comments,omitempty"`
}

func (r DecideRequest) Validate() error {
	if strings.TrimSpace(r.Date) == "" {
		return ErrDateRequired
	}
	switch r.Action {
	case ActionApprove, ActionReject:
	default:
		return ErrInvalidAction
	}
	if r.Action == ActionReject && strings.TrimSpace(r.Comments) == "" {
		return ErrEmptyRejectionComment
	}
	return nil
}

// FilterCriteria restricts raw entries before grouping. Zero values mean
// "no constraint". Dates are inclusive bounds compared as YYYY-MM-DD tokens.
type FilterCriteria struct {
	Department string
	UserID     *int64
	Status     *Status
	StartDate  string
	EndDate    string
}
