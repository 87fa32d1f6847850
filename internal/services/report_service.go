package services

import (
	"context"
	"time"

	"tasktrack/internal/models"
	"tasktrack/internal/pdf"
	"tasktrack/internal/repositories"
)

// reportMaxRows bounds the task listing embedded in the PDF.
const reportMaxRows = 500

type ReportService struct {
	repo repositories.TaskRepository
	gen  pdf.Generator
}

func NewReportService(repo repositories.TaskRepository, gen pdf.Generator) *ReportService {
	return &ReportService{repo: repo, gen: gen}
}

// TaskReport renders a PDF with per-status totals and the matching tasks.
func (s *ReportService) TaskReport(ctx context.Context) ([]byte, error) {
	statuses := []models.TaskStatus{
		models.StatusPending,
		models.StatusInProgress,
		models.StatusCompleted,
	}

	counts := make([]pdf.StatusCount, 0, len(statuses))
	for _, st := range statuses {
		n, err := s.repo.Count(ctx, models.TaskQuery{Status: string(st)})
		if err != nil {
			return nil, err
		}
		counts = append(counts, pdf.StatusCount{Status: st, Count: n})
	}

	tasks, err := s.repo.FindMany(ctx, models.TaskQuery{}, reportMaxRows, 0)
	if err != nil {
		return nil, err
	}

	return s.gen.GenerateTaskReport(pdf.ReportData{
		GeneratedAt: time.Now(),
		Counts:      counts,
		Tasks:       tasks,
	})
}
