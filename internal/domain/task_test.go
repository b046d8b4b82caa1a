package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestHasSchedule(t *testing.T) {
	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name  string
		start *time.Time
		end   *time.Time
		want  bool
	}{
		{"both set", &start, &end, true},
		{"start only", &start, nil, false},
		{"end only", nil, &end, false},
		{"neither", nil, nil, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			task := &Task{StartDate: tc.start, EndDate: tc.end}
			assert.Equal(t, tc.want, task.HasSchedule())
		})
	}
}

func TestIsTerminal(t *testing.T) {
	assert.True(t, (&Task{Status: TaskDone}).IsTerminal())
	assert.False(t, (&Task{Status: TaskTodo}).IsTerminal())
	assert.False(t, (&Task{Status: TaskInProgress}).IsTerminal())
	assert.False(t, (&Task{Status: TaskInReview}).IsTerminal())
}
