package usecase

import (
	"testing"

	"doc-booker/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateTimeWindow(t *testing.T) {
	t.Run("accepts a well formed window", func(t *testing.T) {
		window, err := ValidateTimeWindow("09:00", "17:30")
		require.NoError(t, err)
		assert.Equal(t, entity.TimeWindow{Start: "09:00", End: "17:30"}, window)
	})

	t.Run("accepts boundary times", func(t *testing.T) {
		_, err := ValidateTimeWindow("00:00", "23:59")
		assert.NoError(t, err)
	})

	t.Run("rejects malformed values", func(t *testing.T) {
		cases := [][2]string{
			{"9:00", "17:00"},
			{"24:00", "17:00"},
			{"09:60", "17:00"},
			{"09:00", "1700"},
			{"", "17:00"},
			{"09:00", ""},
			{"morning", "evening"},
		}
		for _, c := range cases {
			_, err := ValidateTimeWindow(c[0], c[1])
			assert.ErrorIs(t, err, ErrInvalidTimeFormat, "start=%q end=%q", c[0], c[1])
		}
	})

	t.Run("rejects zero length window", func(t *testing.T) {
		_, err := ValidateTimeWindow("10:00", "10:00")
		assert.ErrorIs(t, err, ErrNonPositiveWindow)
	})

	t.Run("rejects inverted window", func(t *testing.T) {
		_, err := ValidateTimeWindow("17:00", "09:00")
		assert.ErrorIs(t, err, ErrNonPositiveWindow)
	})
}

func TestBuildScheduleConfig(t *testing.T) {
	t.Run("orders office days canonically and deduplicates", func(t *testing.T) {
		config := buildScheduleConfig(
			[]string{"friday", "monday", "friday", "wednesday"},
			nil, nil,
		)
		assert.Equal(t, []entity.Weekday{entity.Monday, entity.Wednesday, entity.Friday}, config.OfficeDays)
		assert.Empty(t, config.TimeSlots)
	})

	t.Run("ignores unknown day tokens", func(t *testing.T) {
		config := buildScheduleConfig([]string{"monday", "caturday", "Monday", ""}, nil, nil)
		assert.Equal(t, []entity.Weekday{entity.Monday}, config.OfficeDays)
	})

	t.Run("pairs starts and ends by position", func(t *testing.T) {
		config := buildScheduleConfig(nil,
			[]string{"08:00", "13:00"},
			[]string{"12:00", "17:00"},
		)
		assert.Equal(t, []entity.TimeWindow{
			{Start: "08:00", End: "12:00"},
			{Start: "13:00", End: "17:00"},
		}, config.TimeSlots)
	})

	t.Run("drops incomplete and invalid windows silently", func(t *testing.T) {
		config := buildScheduleConfig(nil,
			[]string{"08:00", "", "15:00", "18:00", "nope"},
			[]string{"", "12:00", "14:00", "19:00", "20:00"},
		)
		assert.Equal(t, []entity.TimeWindow{{Start: "18:00", End: "19:00"}}, config.TimeSlots)
	})

	t.Run("trims whitespace around submitted values", func(t *testing.T) {
		config := buildScheduleConfig(
			[]string{" tuesday "},
			[]string{" 09:00 "},
			[]string{"10:00\n"},
		)
		assert.Equal(t, []entity.Weekday{entity.Tuesday}, config.OfficeDays)
		assert.Equal(t, []entity.TimeWindow{{Start: "09:00", End: "10:00"}}, config.TimeSlots)
	})

	t.Run("empty submission clears the schedule", func(t *testing.T) {
		config := buildScheduleConfig(nil, nil, nil)
		assert.Empty(t, config.OfficeDays)
		assert.Empty(t, config.TimeSlots)
	})
}
