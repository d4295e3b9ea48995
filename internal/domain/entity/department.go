package entity

// Department is a named specialty record kept in the settings store.
// The sanitized name doubles as the key, so renaming a department
// changes its identity and orphans existing doctor assignments.
type Department struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// DepartmentMap is the full department configuration, keyed by the
// sanitized department name (case-sensitive).
type DepartmentMap map[string]Department
