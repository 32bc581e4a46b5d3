package catalog

type ActivityType string

const (
	ActivityInternal ActivityType = "Internal"
	ActivityExternal ActivityType = "External"
)

func ParseActivityType(s string) (ActivityType, bool) {
	switch ActivityType(s) {
	case ActivityInternal, ActivityExternal:
		return ActivityType(s), true
	}
	return "", false
}

// Project is referenced by timesheet entries whose activity is External.
// The ID is human-assigned (e.g. "PROJ-003") and unique among active projects.
type Project struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Activity is a catalog entry. Timesheet entries snapshot the name/type pair
// at submission time; later catalog edits do not change historical entries.
type Activity struct {
	ID   int64        `json:"id"`
	Name string       `json:"name"`
	Type ActivityType `json:"type"`
}
