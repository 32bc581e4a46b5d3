package timesheet

import (
	"errors"
	"fmt"

	"github.com/tracklight/timesheet-backend-go/internal/domain/catalog"
)

var (
	ErrEmptyRejectionComment = errors.New("comments are required for rejection")
	ErrSubmissionNotFound    = errors.New("submission not found")
	ErrNoRows                = errors.New("at least one activity row is required")
	ErrDateRequired          = errors.New("submission date is required")
	ErrInvalidAction         = errors.New("action must be approve or reject")
)

// InvalidHoursError reports a row whose hours field is not a number > 0.
// Row is 1-based, matching the order the rows were submitted in.
type InvalidHoursError struct {
	Row   int
	Value string
}

func (e *InvalidHoursError) Error() string {
	return fmt.Sprintf("row %d: hours %q must be a number greater than zero", e.Row, e.Value)
}

// HoursRangeError reports a daily total outside (0, 24].
type HoursRangeError struct {
	Total float64
}

func (e *HoursRangeError) Error() string {
	return fmt.Sprintf("total hours %.2f must be greater than 0 and at most 24", e.Total)
}

// UnknownActivityError reports a row whose activity name/type pair does not
// resolve to a catalog activity.
type UnknownActivityError struct {
	Row  int
	Name string
	Type catalog.ActivityType
}

func (e *UnknownActivityError) Error() string {
	return fmt.Sprintf("row %d: unknown %s activity %q", e.Row, e.Type, e.Name)
}

// UnknownProjectError reports an external row referencing a missing project.
type UnknownProjectError struct {
	Row       int
	ProjectID string
}

func (e *UnknownProjectError) Error() string {
	return fmt.Sprintf("row %d: unknown project %q", e.Row, e.ProjectID)
}
