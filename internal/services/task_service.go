// internal/services/task_service.go
package services

import (
	"context"

	"github.com/google/uuid"

	"tasktrack/internal/messaging"
	"tasktrack/internal/models"
	"tasktrack/internal/repositories"
)

// NotificationPublisher is the outbound messaging boundary. Send is
// fire-and-forget: it never blocks on delivery and never reports failure.
type NotificationPublisher interface {
	Send(topic string, payload any)
}

// CreateTaskInput is the create payload. Status is required and must
// parse to one of the enumerated values.
type CreateTaskInput struct {
	Name        string `json:"name" binding:"required"`
	Status      string `json:"status" binding:"required"`
	Description string `json:"description"`
	UserID      string `json:"user_id"`
}

// TaskService owns the task lifecycle rules.
type TaskService interface {
	Create(ctx context.Context, in CreateTaskInput) error
	FindAll(ctx context.Context, q models.TaskQuery) (*models.PagedTasks, error)
	FindOne(ctx context.Context, id string) (*models.TaskResult, error)
	Update(ctx context.Context, id string, upd models.TaskUpdate, actingUserID string) error
	Remove(ctx context.Context, id string) (int64, error)
}

type taskService struct {
	repo      repositories.TaskRepository
	publisher NotificationPublisher
}

// NewTaskService creates a new instance of TaskService.
func NewTaskService(repo repositories.TaskRepository, publisher NotificationPublisher) TaskService {
	return &taskService{repo: repo, publisher: publisher}
}

func (s *taskService) Create(ctx context.Context, in CreateTaskInput) error {
	status, err := models.ParseTaskStatus(in.Status)
	if err != nil {
		return err
	}

	task := &models.Task{
		ID:          uuid.NewString(),
		Name:        in.Name,
		Status:      status,
		Description: in.Description,
		UserID:      in.UserID,
	}
	return s.repo.Create(ctx, task)
}

func (s *taskService) FindAll(ctx context.Context, q models.TaskQuery) (*models.PagedTasks, error) {
	total, err := s.repo.Count(ctx, q)
	if err != nil {
		return nil, err
	}

	totalPage := 0
	if q.Limit > 0 {
		totalPage = (total + q.Limit - 1) / q.Limit
	}

	offset := (q.Page - 1) * q.Limit
	tasks, err := s.repo.FindMany(ctx, q, q.Limit, offset)
	if err != nil {
		return nil, err
	}
	if tasks == nil {
		tasks = []models.Task{}
	}

	return &models.PagedTasks{
		Data:      tasks,
		Limit:     q.Limit,
		Total:     total,
		TotalPage: totalPage,
		Page:      q.Page,
	}, nil
}

func (s *taskService) FindOne(ctx context.Context, id string) (*models.TaskResult, error) {
	task, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, models.ErrTaskNotFound
	}
	return &models.TaskResult{Task: task}, nil
}

// Update enforces existence before any mutation, validates an incoming
// status, persists the merged record and then notifies. The persistence
// write strictly precedes the publish attempt; publish failures stay
// inside the publisher and never reach the caller.
func (s *taskService) Update(ctx context.Context, id string, upd models.TaskUpdate, actingUserID string) error {
	if _, err := s.FindOne(ctx, id); err != nil {
		return err
	}

	if upd.Status != nil {
		status, err := models.ParseTaskStatus(*upd.Status)
		if err != nil {
			return err
		}
		normalized := string(status)
		upd.Status = &normalized
	}

	updated, err := s.repo.Update(ctx, id, upd)
	if err != nil {
		return err
	}

	s.publisher.Send(messaging.TopicTaskUpdated, models.TaskUpdatedEvent{
		UserID: actingUserID,
		Data:   updated,
	})
	return nil
}

// Remove deletes without a prior existence check; a missing id is the
// gateway's concern (it reports zero rows removed).
func (s *taskService) Remove(ctx context.Context, id string) (int64, error) {
	return s.repo.Delete(ctx, id)
}
