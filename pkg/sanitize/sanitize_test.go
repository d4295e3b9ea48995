package sanitize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTextField(t *testing.T) {
	assert.Equal(t, "Cardiology", TextField("  Cardiology  "))
	assert.Equal(t, "Heart & Vascular", TextField("Heart \t &\n Vascular"))
	assert.Equal(t, "abc", TextField("a\x00b\x1bc"))
	assert.Equal(t, "", TextField("   \n\t "))
	assert.Equal(t, "", TextField(""))
}

func TestTextareaField(t *testing.T) {
	assert.Equal(t, "line one\nline two", TextareaField("line one\nline two"))
	assert.Equal(t, "a\tb", TextareaField("a\tb"))
	assert.Equal(t, "trimmed", TextareaField("\n  trimmed  \n"))
	assert.Equal(t, "ab", TextareaField("a\x00\x07b"))
}
