package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseTaskStatus(t *testing.T) {
	tests := []struct {
		in    string
		want  TaskStatus
		valid bool
	}{
		{"OPEN", TaskStatusOpen, true},
		{"open", TaskStatusOpen, true},
		{"In_Progress", TaskStatusInProgress, true},
		{"done", TaskStatusDone, true},
		{"DONE", TaskStatusDone, true},
		{"closed", TaskStatus("CLOSED"), false},
		{"", TaskStatus(""), false},
		{"IN PROGRESS", TaskStatus("IN PROGRESS"), false},
	}

	for _, tt := range tests {
		got, valid := ParseTaskStatus(tt.in)
		assert.Equal(t, tt.want, got, "input %q", tt.in)
		assert.Equal(t, tt.valid, valid, "input %q", tt.in)
	}
}
