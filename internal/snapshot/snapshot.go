package snapshot

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/tracklight/timesheet-backend-go/internal/domain/catalog"
	"github.com/tracklight/timesheet-backend-go/internal/domain/timesheet"
	"github.com/tracklight/timesheet-backend-go/internal/domain/user"
)

// Environment is an isolated named data partition with its own full snapshot.
type Environment string

const (
	EnvLive    Environment = "Live"
	EnvStaging Environment = "Staging"
)

var ErrUnknownEnvironment = errors.New("unknown environment")

// ParseEnvironment matches case-insensitively so CLI users can type
// "staging" while the stored canonical form stays capitalized.
func ParseEnvironment(s string) (Environment, error) {
	switch {
	case strings.EqualFold(s, string(EnvLive)):
		return EnvLive, nil
	case strings.EqualFold(s, string(EnvStaging)):
		return EnvStaging, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownEnvironment, s)
}

// Document is the full persisted state of one environment. Every mutation
// rewrites the whole document (last write wins); there is no partial update.
type Document struct {
	Users            []user.User        `json:"users"`
	Projects         []catalog.Project  `json:"projects"`
	Activities       []catalog.Activity `json:"activities"`
	TimesheetEntries []timesheet.Entry  `json:"timesheetEntries"`
}

// Store persists one Document per environment plus a single scalar recording
// the last active environment, restored at process start.
type Store interface {
	// Load returns the environment's document and whether one was found.
	Load(ctx context.Context, env Environment) (Document, bool, error)
	Save(ctx context.Context, env Environment, doc Document) error
	ActiveEnvironment(ctx context.Context) (Environment, bool, error)
	SetActiveEnvironment(ctx context.Context, env Environment) error
}

// Storage keys, shared by all store backends.
const (
	KeyLive    = "timesheet_app_data_live"
	KeyStaging = "timesheet_app_data_staging"
	KeyActive  = "timesheet_app_environment"
)

func Key(env Environment) (string, error) {
	switch env {
	case EnvLive:
		return KeyLive, nil
	case EnvStaging:
		return KeyStaging, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownEnvironment, env)
}
