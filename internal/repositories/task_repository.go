package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"tasktrack/internal/models"
)

// TaskRepository is the storage gateway for task records. All methods are
// atomic at the single-record level; Count and FindMany run against the
// same predicate so the pagination math in the service holds.
type TaskRepository interface {
	Create(ctx context.Context, task *models.Task) error
	Count(ctx context.Context, filter models.TaskQuery) (int, error)
	FindMany(ctx context.Context, filter models.TaskQuery, limit, offset int) ([]models.Task, error)
	// FindByID returns (nil, nil) when no record exists for the id.
	FindByID(ctx context.Context, id string) (*models.Task, error)
	Update(ctx context.Context, id string, upd models.TaskUpdate) (*models.Task, error)
	// Delete reports the number of rows removed; a missing id yields
	// (0, nil), not an error.
	Delete(ctx context.Context, id string) (int64, error)
}

type taskRepository struct {
	db *sql.DB
}

func NewTaskRepository(db *sql.DB) TaskRepository {
	return &taskRepository{db: db}
}

const taskColumns = `id, name, status, description, user_id, created_at, updated_at`

// buildFilter turns a TaskQuery into a WHERE clause with positional args.
// The name substring match is always present (empty string matches all);
// id and status are added only when set.
func buildFilter(filter models.TaskQuery) (string, []interface{}) {
	conditions := []string{"name LIKE '%' || $1 || '%'"}
	args := []interface{}{filter.Name}
	argID := 2

	if filter.ID != "" {
		conditions = append(conditions, fmt.Sprintf("id = $%d", argID))
		args = append(args, filter.ID)
		argID++
	}
	if filter.Status != "" {
		conditions = append(conditions, fmt.Sprintf("status = $%d", argID))
		args = append(args, filter.Status)
		argID++
	}

	return " WHERE " + strings.Join(conditions, " AND "), args
}

func (r *taskRepository) Create(ctx context.Context, task *models.Task) error {
	query := `
		INSERT INTO tasks (id, name, status, description, user_id, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,NOW(),NOW())
		RETURNING created_at, updated_at`
	return r.db.QueryRowContext(ctx, query,
		task.ID, task.Name, task.Status, task.Description, task.UserID,
	).Scan(&task.CreatedAt, &task.UpdatedAt)
}

func (r *taskRepository) Count(ctx context.Context, filter models.TaskQuery) (int, error) {
	where, args := buildFilter(filter)
	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM tasks`+where, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("count tasks: %w", err)
	}
	return count, nil
}

func (r *taskRepository) FindMany(ctx context.Context, filter models.TaskQuery, limit, offset int) ([]models.Task, error) {
	where, args := buildFilter(filter)
	query := fmt.Sprintf(`SELECT %s FROM tasks%s ORDER BY status ASC LIMIT $%d OFFSET $%d`,
		taskColumns, where, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer rows.Close()

	var tasks []models.Task
	for rows.Next() {
		var t models.Task
		if err := rows.Scan(
			&t.ID, &t.Name, &t.Status, &t.Description, &t.UserID, &t.CreatedAt, &t.UpdatedAt,
		); err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

func (r *taskRepository) FindByID(ctx context.Context, id string) (*models.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id = $1`
	task := &models.Task{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&task.ID, &task.Name, &task.Status, &task.Description, &task.UserID,
		&task.CreatedAt, &task.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return task, nil
}

func (r *taskRepository) Update(ctx context.Context, id string, upd models.TaskUpdate) (*models.Task, error) {
	sets := []string{"updated_at = NOW()"}
	args := []interface{}{}
	argID := 1

	if upd.Name != nil {
		sets = append(sets, fmt.Sprintf("name = $%d", argID))
		args = append(args, *upd.Name)
		argID++
	}
	if upd.Status != nil {
		sets = append(sets, fmt.Sprintf("status = $%d", argID))
		args = append(args, *upd.Status)
		argID++
	}
	if upd.Description != nil {
		sets = append(sets, fmt.Sprintf("description = $%d", argID))
		args = append(args, *upd.Description)
		argID++
	}
	if upd.UserID != nil {
		sets = append(sets, fmt.Sprintf("user_id = $%d", argID))
		args = append(args, *upd.UserID)
		argID++
	}

	query := fmt.Sprintf(`UPDATE tasks SET %s WHERE id = $%d RETURNING %s`,
		strings.Join(sets, ", "), argID, taskColumns)
	args = append(args, id)

	task := &models.Task{}
	err := r.db.QueryRowContext(ctx, query, args...).Scan(
		&task.ID, &task.Name, &task.Status, &task.Description, &task.UserID,
		&task.CreatedAt, &task.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("update task: %w", err)
	}
	return task, nil
}

func (r *taskRepository) Delete(ctx context.Context, id string) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = $1`, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
