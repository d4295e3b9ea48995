package repository

import (
	"context"

	"doc-booker/internal/domain/entity"
)

// SettingsRepository is the key-value persistence behind the two
// configuration blobs. Each save replaces the prior value wholesale;
// concurrent saves race with last-write-wins semantics.
type SettingsRepository interface {
	GetDepartments(ctx context.Context) (entity.DepartmentMap, error)
	SaveDepartments(ctx context.Context, departments entity.DepartmentMap) error
	GetScheduleConfig(ctx context.Context) (entity.ScheduleConfig, error)
	SaveScheduleConfig(ctx context.Context, config entity.ScheduleConfig) error
}
