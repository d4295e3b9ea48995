package repository

import (
	"context"
	"encoding/json"
	"errors"

	"doc-booker/internal/domain/entity"
	domainRepo "doc-booker/internal/domain/repository"

	"github.com/redis/go-redis/v9"
)

const (
	departmentsKey = "doc_booker:departments"
	timeSlotsKey   = "doc_booker:time_slots"
)

type settingsRepository struct {
	redisClient *redis.Client
}

func NewSettingsRepository(redisClient *redis.Client) domainRepo.SettingsRepository {
	return &settingsRepository{redisClient: redisClient}
}

func (r *settingsRepository) GetDepartments(ctx context.Context) (entity.DepartmentMap, error) {
	raw, err := r.redisClient.Get(ctx, departmentsKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return entity.DepartmentMap{}, nil
		}
		return nil, err
	}

	var departments entity.DepartmentMap
	if err := json.Unmarshal(raw, &departments); err != nil {
		// A malformed blob degrades to an empty configuration rather
		// than blocking reads.
		return entity.DepartmentMap{}, nil
	}
	if departments == nil {
		departments = entity.DepartmentMap{}
	}
	return departments, nil
}

func (r *settingsRepository) SaveDepartments(ctx context.Context, departments entity.DepartmentMap) error {
	raw, err := json.Marshal(departments)
	if err != nil {
		return err
	}
	return r.redisClient.Set(ctx, departmentsKey, raw, 0).Err()
}

func (r *settingsRepository) GetScheduleConfig(ctx context.Context) (entity.ScheduleConfig, error) {
	raw, err := r.redisClient.Get(ctx, timeSlotsKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return entity.EmptyScheduleConfig(), nil
		}
		return entity.ScheduleConfig{}, err
	}

	var config entity.ScheduleConfig
	if err := json.Unmarshal(raw, &config); err != nil {
		return entity.EmptyScheduleConfig(), nil
	}
	if config.OfficeDays == nil {
		config.OfficeDays = []entity.Weekday{}
	}
	if config.TimeSlots == nil {
		config.TimeSlots = []entity.TimeWindow{}
	}
	return config, nil
}

func (r *settingsRepository) SaveScheduleConfig(ctx context.Context, config entity.ScheduleConfig) error {
	raw, err := json.Marshal(config)
	if err != nil {
		return err
	}
	return r.redisClient.Set(ctx, timeSlotsKey, raw, 0).Err()
}
