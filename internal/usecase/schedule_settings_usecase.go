package usecase

import (
	"context"
	"errors"
	"regexp"

	"doc-booker/internal/converter"
	"doc-booker/internal/delivery/dto"
	"doc-booker/internal/delivery/http/middleware"
	"doc-booker/internal/domain/entity"
	"doc-booker/internal/domain/repository"
	"doc-booker/internal/service"
	"doc-booker/pkg/sanitize"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrInvalidTimeFormat = errors.New("invalid time format, use HH:MM")
	ErrNonPositiveWindow = errors.New("time window must end after it starts")
)

// 24-hour HH:MM
var timeFormatPattern = regexp.MustCompile(`^([01]\d|2[0-3]):([0-5]\d)$`)

// ValidateTimeWindow checks a single start/end pair. Both values must
// be HH:MM and the window must have positive duration. Windows are
// same-day, so the lexical comparison is also the chronological one.
// Overlap between accepted windows is not checked.
func ValidateTimeWindow(start, end string) (entity.TimeWindow, error) {
	if !timeFormatPattern.MatchString(start) || !timeFormatPattern.MatchString(end) {
		return entity.TimeWindow{}, ErrInvalidTimeFormat
	}
	if start >= end {
		return entity.TimeWindow{}, ErrNonPositiveWindow
	}
	return entity.TimeWindow{Start: start, End: end}, nil
}

type ScheduleSettingsUsecase interface {
	GetScheduleConfig(ctx context.Context) (*dto.ScheduleConfigResponse, error)
	SaveScheduleConfig(ctx context.Context, req *dto.SaveScheduleConfigRequest) (*dto.ScheduleConfigResponse, error)
}

type scheduleSettingsUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	settingsRepo repository.SettingsRepository
	auditService service.AuditService
}

func NewScheduleSettingsUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	settingsRepo repository.SettingsRepository,
	auditService service.AuditService,
) ScheduleSettingsUsecase {
	return &scheduleSettingsUsecase{
		db:           db,
		log:          log,
		settingsRepo: settingsRepo,
		auditService: auditService,
	}
}

func (u *scheduleSettingsUsecase) GetScheduleConfig(ctx context.Context) (*dto.ScheduleConfigResponse, error) {
	config, err := u.settingsRepo.GetScheduleConfig(ctx)
	if err != nil {
		u.log.Warnf("Failed to load schedule config: %+v", err)
		return nil, err
	}
	return converter.ScheduleConfigToResponse(config), nil
}

func (u *scheduleSettingsUsecase) SaveScheduleConfig(ctx context.Context, req *dto.SaveScheduleConfigRequest) (*dto.ScheduleConfigResponse, error) {
	config := buildScheduleConfig(req.OfficeDays, req.Starts, req.Ends)

	if err := u.settingsRepo.SaveScheduleConfig(ctx, config); err != nil {
		u.log.Warnf("Failed to save schedule config: %+v", err)
		return nil, err
	}

	userID, _ := middleware.GetUserIDFromContext(ctx)
	if err := u.auditService.LogUpdate(ctx, u.db, &userID, entity.AuditActionTimeSlotsSave, "schedule_config", "time_slots", nil, config); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	return converter.ScheduleConfigToResponse(config), nil
}

// buildScheduleConfig normalizes a settings submission into the stored
// configuration. Day tokens outside the weekday enum and malformed or
// inverted time windows are dropped silently; the caller only sees the
// accepted result. Office days come out deduplicated in canonical
// Monday-first order, and the start/end sequences pair up by position.
func buildScheduleConfig(days []string, starts []string, ends []string) entity.ScheduleConfig {
	submitted := make(map[entity.Weekday]bool, len(days))
	for _, day := range days {
		submitted[entity.Weekday(sanitize.TextField(day))] = true
	}

	officeDays := make([]entity.Weekday, 0, len(entity.WeekDays))
	for _, day := range entity.WeekDays {
		if submitted[day] {
			officeDays = append(officeDays, day)
		}
	}

	timeSlots := make([]entity.TimeWindow, 0, len(starts))
	for i, start := range starts {
		start = sanitize.TextField(start)
		end := ""
		if i < len(ends) {
			end = sanitize.TextField(ends[i])
		}
		if start == "" || end == "" {
			continue
		}

		window, err := ValidateTimeWindow(start, end)
		if err != nil {
			continue
		}
		timeSlots = append(timeSlots, window)
	}

	return entity.ScheduleConfig{
		OfficeDays: officeDays,
		TimeSlots:  timeSlots,
	}
}
