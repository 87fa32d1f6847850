package pdf

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tasktrack/internal/models"
)

func TestGenerateTaskReport(t *testing.T) {
	gen := NewReportGenerator()

	data, err := gen.GenerateTaskReport(ReportData{
		GeneratedAt: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
		Counts: []StatusCount{
			{Status: models.StatusPending, Count: 2},
			{Status: models.StatusInProgress, Count: 1},
			{Status: models.StatusCompleted, Count: 0},
		},
		Tasks: []models.Task{
			{Name: "Write docs", Status: models.StatusPending, UserID: "u1"},
			{Name: "Ship release", Status: models.StatusInProgress, UserID: "u2"},
		},
	})
	require.NoError(t, err)
	require.NotEmpty(t, data)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestGenerateTaskReport_Empty(t *testing.T) {
	gen := NewReportGenerator()

	data, err := gen.GenerateTaskReport(ReportData{GeneratedAt: time.Now()})
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}
