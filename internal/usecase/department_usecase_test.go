package usecase

import (
	"testing"

	"doc-booker/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestBuildDepartments(t *testing.T) {
	t.Run("keys departments by sanitized name", func(t *testing.T) {
		departments := buildDepartments(
			[]string{"  Cardiology ", "Skin\t&  Derm"},
			[]string{"Heart care", "Skin care"},
		)
		assert.Equal(t, entity.DepartmentMap{
			"Cardiology":  {Name: "Cardiology", Description: "Heart care"},
			"Skin & Derm": {Name: "Skin & Derm", Description: "Skin care"},
		}, departments)
	})

	t.Run("skips rows with empty names", func(t *testing.T) {
		departments := buildDepartments(
			[]string{"", "   ", "Oncology"},
			[]string{"lost", "also lost", "kept"},
		)
		assert.Equal(t, entity.DepartmentMap{
			"Oncology": {Name: "Oncology", Description: "kept"},
		}, departments)
	})

	t.Run("name keys are case sensitive", func(t *testing.T) {
		departments := buildDepartments(
			[]string{"cardiology", "Cardiology"},
			[]string{"lower", "upper"},
		)
		assert.Len(t, departments, 2)
	})

	t.Run("later duplicate wins within one submission", func(t *testing.T) {
		departments := buildDepartments(
			[]string{"Cardiology", "Cardiology"},
			[]string{"first", "second"},
		)
		assert.Equal(t, entity.DepartmentMap{
			"Cardiology": {Name: "Cardiology", Description: "second"},
		}, departments)
	})

	t.Run("missing description defaults to empty", func(t *testing.T) {
		departments := buildDepartments([]string{"Cardiology", "Oncology"}, []string{"only one"})
		assert.Equal(t, "", departments["Oncology"].Description)
	})

	t.Run("description keeps newlines but not other controls", func(t *testing.T) {
		departments := buildDepartments(
			[]string{"Cardiology"},
			[]string{"line one\nline two\x00"},
		)
		assert.Equal(t, "line one\nline two", departments["Cardiology"].Description)
	})

	t.Run("rebuilding from same input is stable", func(t *testing.T) {
		names := []string{"Cardiology", "Oncology"}
		descriptions := []string{"a", "b"}
		assert.Equal(t, buildDepartments(names, descriptions), buildDepartments(names, descriptions))
	})
}
