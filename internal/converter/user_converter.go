package converter

import (
	"doc-booker/internal/delivery/dto"
	"doc-booker/internal/domain/entity"
)

// UserToResponse converts a User entity to UserResponse DTO.
// Includes the doctor profile if it is loaded.
func UserToResponse(user *entity.User) *dto.UserResponse {
	if user == nil {
		return nil
	}

	response := &dto.UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		FullName:  user.FullName,
		Role:      user.Role.RoleName,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}

	if user.DoctorProfile != nil {
		response.DoctorProfile = &dto.DoctorProfileResponse{
			DepartmentKey: user.DoctorProfile.DepartmentKey,
			Biography:     user.DoctorProfile.Biography,
			AvatarURL:     user.DoctorProfile.AvatarURL,
		}
	}

	return response
}
