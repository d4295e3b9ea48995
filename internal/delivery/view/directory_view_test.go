package view

import (
	"strings"
	"testing"

	"doc-booker/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderEmptyState(t *testing.T) {
	renderer := NewDirectoryRenderer()

	html, err := renderer.Render(nil)
	require.NoError(t, err)
	assert.Contains(t, html, "doc-booker-directory__empty")
	assert.Contains(t, html, "No doctors found for the selected filters.")
}

func TestRenderGroups(t *testing.T) {
	renderer := NewDirectoryRenderer()

	groups := []entity.DirectoryGroup{
		{
			Key:         "Cardiology",
			Name:        "Cardiology",
			Description: "Heart care",
			Letter:      "c",
			Doctors: []entity.DoctorCard{
				{
					ID:         uuid.New(),
					Name:       "Ann Lee",
					Email:      "ann@example.com",
					ProfileURL: "https://clinic.example/doctors/ann",
					AvatarURL:  "https://clinic.example/avatars/ann.png",
					Letter:     "C",
				},
				{
					ID:     uuid.New(),
					Name:   "Bob Ray",
					Letter: "C",
				},
			},
		},
		{
			Key:    "unassigned",
			Name:   "Unassigned Department",
			Letter: "u",
			Doctors: []entity.DoctorCard{
				{ID: uuid.New(), Name: "Cal Moss", Letter: "U"},
			},
		},
	}

	html, err := renderer.Render(groups)
	require.NoError(t, err)

	assert.NotContains(t, html, "doc-booker-directory__empty")
	assert.Contains(t, html, `data-letter="c"`)
	assert.Contains(t, html, "<h2>Cardiology</h2>")
	assert.Contains(t, html, "Heart care")
	assert.Contains(t, html, `href="mailto:ann@example.com"`)
	assert.Contains(t, html, `src="https://clinic.example/avatars/ann.png"`)
	assert.Contains(t, html, "Unassigned Department")

	// Bob has no email, avatar or profile URL, so his card carries
	// only the name.
	assert.Contains(t, html, "Bob Ray")

	// Group order is preserved as received.
	assert.Less(t, strings.Index(html, "Cardiology"), strings.Index(html, "Unassigned Department"))
	assert.Less(t, strings.Index(html, "Ann Lee"), strings.Index(html, "Bob Ray"))
}

func TestRenderEscapesUserContent(t *testing.T) {
	renderer := NewDirectoryRenderer()

	groups := []entity.DirectoryGroup{
		{
			Key:    "x",
			Name:   "<script>alert(1)</script>",
			Letter: "#",
			Doctors: []entity.DoctorCard{
				{ID: uuid.New(), Name: "Ann <b>Lee</b>", Letter: "#"},
			},
		},
	}

	html, err := renderer.Render(groups)
	require.NoError(t, err)
	assert.NotContains(t, html, "<script>")
	assert.NotContains(t, html, "<b>Lee</b>")
}
