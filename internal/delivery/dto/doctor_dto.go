package dto

import "github.com/google/uuid"

// Request DTOs

type CreateDoctorRequest struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=6"`
	FullName  string `json:"full_name" validate:"required,min=2"`
	Biography string `json:"biography" validate:"omitempty"`
	AvatarURL string `json:"avatar_url" validate:"omitempty,url"`
}

type UpdateDoctorRequest struct {
	Email     string `json:"email" validate:"omitempty,email"`
	Password  string `json:"password" validate:"omitempty,min=6"`
	FullName  string `json:"full_name" validate:"omitempty,min=2"`
	IsActive  *bool  `json:"is_active" validate:"omitempty"`
	Biography string `json:"biography" validate:"omitempty"`
	AvatarURL string `json:"avatar_url" validate:"omitempty,url"`
}

// AssignDepartmentRequest selects a department by its key. An empty or
// unknown key clears the doctor's assignment.
type AssignDepartmentRequest struct {
	Department string `json:"department" validate:"omitempty"`
}

// Response DTOs

type DoctorResponse struct {
	ID            uuid.UUID `json:"id"`
	Email         string    `json:"email"`
	FullName      string    `json:"full_name"`
	DepartmentKey string    `json:"department_key,omitempty"`
	Biography     string    `json:"biography,omitempty"`
	AvatarURL     string    `json:"avatar_url,omitempty"`
	IsActive      *bool     `json:"is_active"`
}

type DoctorListResponse struct {
	Doctors []DoctorResponse `json:"doctors"`
	Total   int              `json:"total"`
}
