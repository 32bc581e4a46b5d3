package snapshot

import (
	"github.com/google/uuid"

	"github.com/tracklight/timesheet-backend-go/internal/domain/catalog"
	"github.com/tracklight/timesheet-backend-go/internal/domain/timesheet"
	"github.com/tracklight/timesheet-backend-go/internal/domain/user"
)

func int64Ptr(v int64) *int64 { return &v }
func strPtr(v string) *string { return &v }

// Seed returns the default document a fresh environment is initialized with.
func Seed() Document {
	return Document{
		Users: []user.User{
			{ID: 1, Name: "Alice Smith", Role: user.RoleEmployee, Department: "Engineering", ManagerID: int64Ptr(3), Password: "password"},
			{ID: 2, Name: "Bob Johnson", Role: user.RoleEmployee, Department: "Engineering", ManagerID: int64Ptr(3), Password: "password"},
			{ID: 3, Name: "Charlie Brown", Role: user.RoleManager, Department: "Engineering", Password: "password"},
			{ID: 4, Name: "Diana Prince", Role: user.RoleEmployee, Department: "Design", ManagerID: int64Ptr(5), Password: "password"},
			{ID: 5, Name: "Ethan Hunt", Role: user.RoleManager, Department: "Design", Password: "password"},
			{ID: 6, Name: "Frank Castle", Role: user.RoleAdmin, Department: "Administration", Password: "password"},
		},
		Projects: []catalog.Project{
			{ID: "PROJ-001", Name: "Phoenix Project"},
			{ID: "PROJ-002", Name: "Omega Initiative"},
			{ID: "CRM-101", Name: "Pre-Sales Alpha"},
		},
		Activities: []catalog.Activity{
			{ID: 1, Name: "Imparting Training", Type: catalog.ActivityInternal},
			{ID: 2, Name: "Receiving Training", Type: catalog.ActivityInternal},
			{ID: 3, Name: "Vendor Meet", Type: catalog.ActivityInternal},
			{ID: 4, Name: "HR Activities", Type: catalog.ActivityInternal},
			{ID: 5, Name: "Leave", Type: catalog.ActivityInternal},
			{ID: 6, Name: "Holiday", Type: catalog.ActivityInternal},
			{ID: 7, Name: "Self Learning", Type: catalog.ActivityInternal},
			{ID: 8, Name: "Idle Time", Type: catalog.ActivityInternal},
			{ID: 9, Name: "Product Development", Type: catalog.ActivityInternal},
			{ID: 10, Name: "Project", Type: catalog.ActivityExternal},
			{ID: 11, Name: "Vendor Meet", Type: catalog.ActivityExternal},
			{ID: 12, Name: "Pre Sales", Type: catalog.ActivityExternal},
		},
		TimesheetEntries: []timesheet.Entry{
			{ID: uuid.NewString(), UserID: 1, Date: "2025-11-04", Activity: "Project", ActivityType: catalog.ActivityExternal, ProjectID: strPtr("PROJ-001"), Hours: 8, Status: timesheet.StatusApproved},
			{ID: uuid.NewString(), UserID: 2, Date: "2025-11-04", Activity: "Project", ActivityType: catalog.ActivityExternal, ProjectID: strPtr("PROJ-001"), Hours: 6, Status: timesheet.StatusPending},
			{ID: uuid.NewString(), UserID: 2, Date: "2025-11-04", Activity: "Self Learning", ActivityType: catalog.ActivityInternal, Hours: 2, Status: timesheet.StatusPending},
			{ID: uuid.NewString(), UserID: 1, Date: "2025-11-05", Activity: "Project", ActivityType: catalog.ActivityExternal, ProjectID: strPtr("PROJ-002"), Hours: 4, Status: timesheet.StatusRejected, ManagerComments: strPtr("Hours seem too high for this task. Please verify.")},
			{ID: uuid.NewString(), UserID: 4, Date: "2025-11-05", Activity: "Project", ActivityType: catalog.ActivityExternal, ProjectID: strPtr("PROJ-002"), Hours: 8, Status: timesheet.StatusPending},
		},
	}
}
