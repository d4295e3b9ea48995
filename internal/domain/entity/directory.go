package entity

import "github.com/google/uuid"

const (
	// DirectoryLetterAll disables the letter filter.
	DirectoryLetterAll = "all"

	// UnassignedGroupKey groups doctors whose department reference is
	// empty or dangling.
	UnassignedGroupKey = "unassigned"

	// UnassignedDepartmentName is the display name for that group.
	UnassignedDepartmentName = "Unassigned Department"
)

// DirectoryFilter carries the public directory filter criteria.
// Date and Availability are accepted for API stability but are not
// applied to the result set yet.
type DirectoryFilter struct {
	Department   string
	Name         string
	Letter       string
	Date         string
	Availability string
}

// DefaultDirectoryFilter is used for the initial directory render.
func DefaultDirectoryFilter() DirectoryFilter {
	return DirectoryFilter{Letter: DirectoryLetterAll}
}

// DoctorCard is the per-doctor summary shown on a directory card.
type DoctorCard struct {
	ID         uuid.UUID
	Name       string
	Email      string
	ProfileURL string
	AvatarURL  string
	Letter     string
}

// DirectoryGroup is one department section of the directory. Rebuilt
// per query, never persisted.
type DirectoryGroup struct {
	Key         string
	Name        string
	Description string
	Letter      string
	Doctors     []DoctorCard
}

// DirectoryResult is the grouped, sorted outcome of a directory query.
type DirectoryResult struct {
	Groups []DirectoryGroup
	Total  int
}
