package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTaskStatus(t *testing.T) {
	tests := []struct {
		raw  string
		want TaskStatus
	}{
		{"pending", StatusPending},
		{"Pending", StatusPending},
		{"PENDING", StatusPending},
		{"in_progress", StatusInProgress},
		{"In_Progress", StatusInProgress},
		{"IN_PROGRESS", StatusInProgress},
		{"completed", StatusCompleted},
		{"cOmPlEtEd", StatusCompleted},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := ParseTaskStatus(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseTaskStatus_Invalid(t *testing.T) {
	for _, raw := range []string{"", "OPEN", "done", "IN PROGRESS", "PENDING ", "complete"} {
		t.Run(raw, func(t *testing.T) {
			_, err := ParseTaskStatus(raw)
			assert.ErrorIs(t, err, ErrInvalidStatus)
		})
	}
}
