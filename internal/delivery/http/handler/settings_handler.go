package handler

import (
	"encoding/json"
	"net/http"

	"doc-booker/internal/delivery/dto"
	"doc-booker/internal/usecase"
	"doc-booker/pkg/response"
	"doc-booker/pkg/validator"
)

type SettingsHandler struct {
	departmentUsecase usecase.DepartmentUsecase
	scheduleUsecase   usecase.ScheduleSettingsUsecase
	validator         *validator.CustomValidator
}

func NewSettingsHandler(
	departmentUsecase usecase.DepartmentUsecase,
	scheduleUsecase usecase.ScheduleSettingsUsecase,
	validator *validator.CustomValidator,
) *SettingsHandler {
	return &SettingsHandler{
		departmentUsecase: departmentUsecase,
		scheduleUsecase:   scheduleUsecase,
		validator:         validator,
	}
}

func (h *SettingsHandler) GetDepartments(w http.ResponseWriter, r *http.Request) {
	departments, err := h.departmentUsecase.GetDepartments(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get departments")
		return
	}

	response.Success(w, http.StatusOK, "Departments retrieved successfully", departments)
}

// SaveDepartments replaces the stored department set. Rows with empty
// names are dropped rather than blocking the submission, so the caller
// only sees the aggregate result.
func (h *SettingsHandler) SaveDepartments(w http.ResponseWriter, r *http.Request) {
	var req dto.SaveDepartmentsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	departments, err := h.departmentUsecase.SaveDepartments(r.Context(), &req)
	if err != nil {
		response.InternalServerError(w, "Failed to save departments")
		return
	}

	response.Success(w, http.StatusOK, "Departments saved successfully", departments)
}

func (h *SettingsHandler) GetScheduleConfig(w http.ResponseWriter, r *http.Request) {
	config, err := h.scheduleUsecase.GetScheduleConfig(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get time slots")
		return
	}

	response.Success(w, http.StatusOK, "Time slots retrieved successfully", config)
}

// SaveScheduleConfig replaces the office days and time slot windows.
// Invalid day tokens and malformed or inverted windows are dropped
// silently, matching the settings form behavior.
func (h *SettingsHandler) SaveScheduleConfig(w http.ResponseWriter, r *http.Request) {
	var req dto.SaveScheduleConfigRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	config, err := h.scheduleUsecase.SaveScheduleConfig(r.Context(), &req)
	if err != nil {
		response.InternalServerError(w, "Failed to save time slots")
		return
	}

	response.Success(w, http.StatusOK, "Time slots saved successfully", config)
}
