package dto

// Request DTOs

// SaveDepartmentsRequest carries parallel name/description sequences
// keyed by position, replacing the stored set wholesale.
type SaveDepartmentsRequest struct {
	Names        []string `json:"names"`
	Descriptions []string `json:"descriptions"`
}

// SaveScheduleConfigRequest carries the selected weekday tokens and
// parallel start/end time sequences keyed by position.
type SaveScheduleConfigRequest struct {
	OfficeDays []string `json:"office_days"`
	Starts     []string `json:"starts"`
	Ends       []string `json:"ends"`
}

// Response DTOs

type DepartmentResponse struct {
	Key         string `json:"key"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

type DepartmentListResponse struct {
	Departments []DepartmentResponse `json:"departments"`
	Total       int                  `json:"total"`
}

type TimeWindowResponse struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type ScheduleConfigResponse struct {
	OfficeDays []string             `json:"office_days"`
	TimeSlots  []TimeWindowResponse `json:"time_slots"`
}
