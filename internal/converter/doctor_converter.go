package converter

import (
	"doc-booker/internal/delivery/dto"
	"doc-booker/internal/domain/entity"
)

// DoctorProfileToResponse converts a DoctorProfile entity to DoctorResponse DTO
func DoctorProfileToResponse(profile *entity.DoctorProfile) *dto.DoctorResponse {
	if profile == nil {
		return nil
	}

	return &dto.DoctorResponse{
		ID:            profile.UserID,
		Email:         profile.User.Email,
		FullName:      profile.User.FullName,
		DepartmentKey: profile.DepartmentKey,
		Biography:     profile.Biography,
		AvatarURL:     profile.AvatarURL,
		IsActive:      profile.User.IsActive,
	}
}

// DoctorProfilesToResponses converts a slice of DoctorProfile entities to DoctorResponse DTOs
func DoctorProfilesToResponses(profiles []entity.DoctorProfile) []dto.DoctorResponse {
	responses := make([]dto.DoctorResponse, len(profiles))
	for i := range profiles {
		responses[i] = *DoctorProfileToResponse(&profiles[i])
	}
	return responses
}
