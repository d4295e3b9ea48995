package entity

import "github.com/google/uuid"

// DoctorProfile represents doctor-specific profile data.
// DepartmentKey is a weak reference into the department settings blob:
// the referenced department may no longer exist, in which case the
// directory keeps grouping by the stale key but displays the
// unassigned department name.
type DoctorProfile struct {
	UserID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"user_id"`
	DepartmentKey string    `gorm:"type:varchar(255);index" json:"department_key,omitempty"`
	Biography     string    `gorm:"type:text" json:"biography,omitempty"`
	AvatarURL     string    `gorm:"type:text" json:"avatar_url,omitempty"`

	// Relationships
	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (DoctorProfile) TableName() string {
	return "doctor_profiles"
}
