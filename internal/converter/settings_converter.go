package converter

import (
	"sort"
	"strings"

	"doc-booker/internal/delivery/dto"
	"doc-booker/internal/domain/entity"
)

// ScheduleConfigToResponse converts a ScheduleConfig entity to ScheduleConfigResponse DTO
func ScheduleConfigToResponse(config entity.ScheduleConfig) *dto.ScheduleConfigResponse {
	days := make([]string, len(config.OfficeDays))
	for i, day := range config.OfficeDays {
		days[i] = string(day)
	}

	slots := make([]dto.TimeWindowResponse, len(config.TimeSlots))
	for i, window := range config.TimeSlots {
		slots[i] = dto.TimeWindowResponse{
			Start: window.Start,
			End:   window.End,
		}
	}

	return &dto.ScheduleConfigResponse{
		OfficeDays: days,
		TimeSlots:  slots,
	}
}

// DepartmentsToListResponse converts the department mapping to a list
// response sorted case-insensitively by name.
func DepartmentsToListResponse(departments entity.DepartmentMap) *dto.DepartmentListResponse {
	keys := make([]string, 0, len(departments))
	for key := range departments {
		keys = append(keys, key)
	}
	sort.SliceStable(keys, func(i, j int) bool {
		return strings.ToLower(departments[keys[i]].Name) < strings.ToLower(departments[keys[j]].Name)
	})

	responses := make([]dto.DepartmentResponse, len(keys))
	for i, key := range keys {
		responses[i] = dto.DepartmentResponse{
			Key:         key,
			Name:        departments[key].Name,
			Description: departments[key].Description,
		}
	}

	return &dto.DepartmentListResponse{
		Departments: responses,
		Total:       len(responses),
	}
}
