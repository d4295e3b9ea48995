package usecase

import (
	"testing"

	"doc-booker/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func directoryDoctor(name, email, departmentKey string) entity.DoctorProfile {
	return entity.DoctorProfile{
		UserID:        uuid.New(),
		DepartmentKey: departmentKey,
		User: entity.User{
			FullName: name,
			Email:    email,
		},
	}
}

func directoryDepartments() entity.DepartmentMap {
	return entity.DepartmentMap{
		"Cardiology": {Name: "Cardiology", Description: "Heart care"},
		"Oncology":   {Name: "Oncology"},
		"andrology":  {Name: "andrology"},
	}
}

func TestBuildDirectory(t *testing.T) {
	t.Run("no doctors yields empty result", func(t *testing.T) {
		result := buildDirectory(entity.DefaultDirectoryFilter(), directoryDepartments(), nil, "")
		assert.Empty(t, result.Groups)
		assert.Zero(t, result.Total)
	})

	t.Run("groups by department sorted case-insensitively", func(t *testing.T) {
		doctors := []entity.DoctorProfile{
			directoryDoctor("Zoe Hart", "zoe@example.com", "Oncology"),
			directoryDoctor("ann lee", "ann@example.com", "andrology"),
			directoryDoctor("Bob Ray", "bob@example.com", "Cardiology"),
		}
		result := buildDirectory(entity.DefaultDirectoryFilter(), directoryDepartments(), doctors, "")

		require.Len(t, result.Groups, 3)
		assert.Equal(t, "andrology", result.Groups[0].Name)
		assert.Equal(t, "Cardiology", result.Groups[1].Name)
		assert.Equal(t, "Oncology", result.Groups[2].Name)
		assert.Equal(t, 3, result.Total)
	})

	t.Run("doctors sort case-insensitively within a group", func(t *testing.T) {
		doctors := []entity.DoctorProfile{
			directoryDoctor("zoe hart", "zoe@example.com", "Cardiology"),
			directoryDoctor("Ann Lee", "ann@example.com", "Cardiology"),
			directoryDoctor("bob ray", "bob@example.com", "Cardiology"),
		}
		result := buildDirectory(entity.DefaultDirectoryFilter(), directoryDepartments(), doctors, "")

		require.Len(t, result.Groups, 1)
		names := []string{}
		for _, card := range result.Groups[0].Doctors {
			names = append(names, card.Name)
		}
		assert.Equal(t, []string{"Ann Lee", "bob ray", "zoe hart"}, names)
	})

	t.Run("department filter matches the key exactly", func(t *testing.T) {
		doctors := []entity.DoctorProfile{
			directoryDoctor("Ann Lee", "ann@example.com", "Cardiology"),
			directoryDoctor("Bob Ray", "bob@example.com", "Oncology"),
		}
		filter := entity.DirectoryFilter{Department: "Cardiology", Letter: entity.DirectoryLetterAll}
		result := buildDirectory(filter, directoryDepartments(), doctors, "")

		require.Len(t, result.Groups, 1)
		assert.Equal(t, "Cardiology", result.Groups[0].Key)
		assert.Equal(t, 1, result.Total)
	})

	t.Run("name filter is a case-insensitive substring match", func(t *testing.T) {
		doctors := []entity.DoctorProfile{
			directoryDoctor("Ann Lee", "ann@example.com", "Cardiology"),
			directoryDoctor("Joanna Smith", "joanna@example.com", "Oncology"),
			directoryDoctor("Bob Ray", "bob@example.com", "Cardiology"),
		}
		filter := entity.DirectoryFilter{Name: "AN", Letter: entity.DirectoryLetterAll}
		result := buildDirectory(filter, directoryDepartments(), doctors, "")

		assert.Equal(t, 2, result.Total)
	})

	t.Run("letter filter matches the department's first letter", func(t *testing.T) {
		doctors := []entity.DoctorProfile{
			directoryDoctor("Ann Lee", "ann@example.com", "Cardiology"),
			directoryDoctor("Bob Ray", "bob@example.com", "Oncology"),
			directoryDoctor("Cal Moss", "cal@example.com", "andrology"),
		}
		filter := entity.DirectoryFilter{Letter: "c"}
		result := buildDirectory(filter, directoryDepartments(), doctors, "")

		require.Len(t, result.Groups, 1)
		assert.Equal(t, "Cardiology", result.Groups[0].Name)
		assert.Equal(t, 1, result.Total)
	})

	t.Run("group letter is stored lowercase", func(t *testing.T) {
		doctors := []entity.DoctorProfile{
			directoryDoctor("Ann Lee", "ann@example.com", "Cardiology"),
		}
		result := buildDirectory(entity.DefaultDirectoryFilter(), directoryDepartments(), doctors, "")

		require.Len(t, result.Groups, 1)
		assert.Equal(t, "c", result.Groups[0].Letter)
		assert.Equal(t, "C", result.Groups[0].Doctors[0].Letter)
	})

	t.Run("doctor with no department falls into the unassigned group", func(t *testing.T) {
		doctors := []entity.DoctorProfile{
			directoryDoctor("Ann Lee", "ann@example.com", ""),
		}
		result := buildDirectory(entity.DefaultDirectoryFilter(), directoryDepartments(), doctors, "")

		require.Len(t, result.Groups, 1)
		group := result.Groups[0]
		assert.Equal(t, entity.UnassignedGroupKey, group.Key)
		assert.Equal(t, entity.UnassignedDepartmentName, group.Name)
	})

	t.Run("dangling keys keep their own groups with fallback display", func(t *testing.T) {
		doctors := []entity.DoctorProfile{
			directoryDoctor("Ann Lee", "ann@example.com", "Deleted Department"),
			directoryDoctor("Bob Ray", "bob@example.com", "Renamed Department"),
			directoryDoctor("Cal Moss", "cal@example.com", ""),
		}
		result := buildDirectory(entity.DefaultDirectoryFilter(), directoryDepartments(), doctors, "")

		require.Len(t, result.Groups, 3)
		keys := []string{}
		for _, group := range result.Groups {
			assert.Equal(t, entity.UnassignedDepartmentName, group.Name)
			assert.Equal(t, "", group.Description)
			assert.Len(t, group.Doctors, 1)
			keys = append(keys, group.Key)
		}
		assert.ElementsMatch(t, []string{"Deleted Department", "Renamed Department", entity.UnassignedGroupKey}, keys)
	})

	t.Run("department filter matches a dangling key exactly", func(t *testing.T) {
		doctors := []entity.DoctorProfile{
			directoryDoctor("Ann Lee", "ann@example.com", "Deleted Department"),
			directoryDoctor("Bob Ray", "bob@example.com", "Cardiology"),
			directoryDoctor("Cal Moss", "cal@example.com", ""),
		}
		filter := entity.DirectoryFilter{Department: "Deleted Department", Letter: entity.DirectoryLetterAll}
		result := buildDirectory(filter, directoryDepartments(), doctors, "")

		require.Len(t, result.Groups, 1)
		assert.Equal(t, "Deleted Department", result.Groups[0].Key)
		assert.Equal(t, entity.UnassignedDepartmentName, result.Groups[0].Name)
		assert.Equal(t, 1, result.Total)
	})

	t.Run("department filter excludes the unassigned group", func(t *testing.T) {
		doctors := []entity.DoctorProfile{
			directoryDoctor("Ann Lee", "ann@example.com", ""),
			directoryDoctor("Bob Ray", "bob@example.com", "Cardiology"),
		}
		filter := entity.DirectoryFilter{Department: "Cardiology", Letter: entity.DirectoryLetterAll}
		result := buildDirectory(filter, directoryDepartments(), doctors, "")

		require.Len(t, result.Groups, 1)
		assert.Equal(t, "Cardiology", result.Groups[0].Key)
	})

	t.Run("date and availability filters do not restrict results", func(t *testing.T) {
		doctors := []entity.DoctorProfile{
			directoryDoctor("Ann Lee", "ann@example.com", "Cardiology"),
		}
		filter := entity.DirectoryFilter{
			Letter:       entity.DirectoryLetterAll,
			Date:         "2026-09-01",
			Availability: "morning",
		}
		result := buildDirectory(filter, directoryDepartments(), doctors, "")
		assert.Equal(t, 1, result.Total)
	})

	t.Run("profile URL is derived from the base URL", func(t *testing.T) {
		doctor := directoryDoctor("Ann Lee", "ann@example.com", "Cardiology")
		result := buildDirectory(entity.DefaultDirectoryFilter(), directoryDepartments(), []entity.DoctorProfile{doctor}, "https://clinic.example")

		require.Len(t, result.Groups, 1)
		assert.Equal(t, "https://clinic.example/doctors/"+doctor.UserID.String(), result.Groups[0].Doctors[0].ProfileURL)
	})
}

func TestNameLetter(t *testing.T) {
	cases := []struct {
		name     string
		expected string
	}{
		{"Cardiology", "C"},
		{"cardiology", "C"},
		{"Émergences", "E"},
		{"ångström clinic", "A"},
		{"24h Care", "#"},
		{"#internal", "#"},
		{"  Oncology", "O"},
		{"", ""},
		{"   ", ""},
	}
	for _, c := range cases {
		assert.Equal(t, c.expected, NameLetter(c.name), "name=%q", c.name)
	}
}
