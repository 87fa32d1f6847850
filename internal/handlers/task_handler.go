package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"tasktrack/internal/config"
	"tasktrack/internal/models"
	"tasktrack/internal/services"
)

type TaskHandler struct {
	service services.TaskService
	listing config.ListingConfig
}

func NewTaskHandler(service services.TaskService, listing config.ListingConfig) *TaskHandler {
	return &TaskHandler{service: service, listing: listing}
}

// @Summary      Create a task
// @Description  Creates a task; status must be PENDING, IN_PROGRESS or COMPLETED (any case)
// @Tags         Tasks
// @Accept       json
// @Param        task  body  services.CreateTaskInput  true  "Task data"
// @Success      201
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /tasks [post]
func (h *TaskHandler) Create(c *gin.Context) {
	userID := getUserID(c)

	var req services.CreateTaskInput
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[task][create][bind][err] %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	log.Printf("[task][create] by=%s name=%q status=%q", userID, req.Name, req.Status)

	if err := h.service.Create(c.Request.Context(), req); err != nil {
		if errors.Is(err, models.ErrInvalidStatus) {
			log.Printf("[task][create][err] invalid status=%q", req.Status)
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status"})
			return
		}
		log.Printf("[task][create][err] %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create task"})
		return
	}
	c.Status(http.StatusCreated)
}

// @Summary      List tasks
// @Description  Paginated list filtered by name substring, exact status and exact id
// @Tags         Tasks
// @Produce      json
// @Param        page    query  int     false  "1-based page"     default(1)
// @Param        limit   query  int     false  "page size"        default(10)
// @Param        name    query  string  false  "name substring"
// @Param        status  query  string  false  "exact status"
// @Param        id      query  string  false  "exact id"
// @Success      200  {object}  models.PagedTasks
// @Failure      500  {object}  map[string]string
// @Router       /tasks [get]
func (h *TaskHandler) List(c *gin.Context) {
	q := parseListQuery(c, h.listing)
	log.Printf("[task][list] by=%s page=%d limit=%d name=%q status=%q id=%q",
		getUserID(c), q.Page, q.Limit, q.Name, q.Status, q.ID)

	result, err := h.service.FindAll(c.Request.Context(), q)
	if err != nil {
		log.Printf("[task][list][err] %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve tasks"})
		return
	}
	log.Printf("[task][list][ok] total=%d pages=%d", result.Total, result.TotalPage)
	c.JSON(http.StatusOK, result)
}

// @Summary      Get a task
// @Tags         Tasks
// @Produce      json
// @Param        id  path  string  true  "task id"
// @Success      200  {object}  models.TaskResult
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /tasks/{id} [get]
func (h *TaskHandler) GetByID(c *gin.Context) {
	id := c.Param("id")

	result, err := h.service.FindOne(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrTaskNotFound) {
			log.Printf("[task][get][404] id=%s", id)
			c.JSON(http.StatusNotFound, gin.H{"error": "task not found"})
			return
		}
		log.Printf("[task][get][err] id=%s: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get task"})
		return
	}
	c.JSON(http.StatusOK, result)
}

// @Summary      Update a task
// @Description  Partial update; a status field, when present, must validate
// @Tags         Tasks
// @Accept       json
// @Param        id    path  string             true  "task id"
// @Param        task  body  models.TaskUpdate  true  "fields to change"
// @Success      204
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /tasks/{id} [patch]
func (h *TaskHandler) Update(c *gin.Context) {
	id := c.Param("id")
	userID := getUserID(c)

	var upd models.TaskUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		log.Printf("[task][update][bind][err] id=%s: %v", id, err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.service.Update(c.Request.Context(), id, upd, userID); err != nil {
		switch {
		case errors.Is(err, models.ErrTaskNotFound):
			log.Printf("[task][update][404] id=%s", id)
			c.JSON(http.StatusNotFound, gin.H{"error": "task not found"})
		case errors.Is(err, models.ErrInvalidStatus):
			log.Printf("[task][update][err] id=%s invalid status", id)
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status"})
		default:
			log.Printf("[task][update][err] id=%s: %v", id, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update task"})
		}
		return
	}
	log.Printf("[task][update][ok] id=%s by=%s", id, userID)
	c.Status(http.StatusNoContent)
}

// @Summary      Delete a task
// @Description  Deletes by id; a missing id is not an error
// @Tags         Tasks
// @Param        id  path  string  true  "task id"
// @Success      204
// @Failure      500  {object}  map[string]string
// @Router       /tasks/{id} [delete]
func (h *TaskHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	deleted, err := h.service.Remove(c.Request.Context(), id)
	if err != nil {
		log.Printf("[task][delete][err] id=%s: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete task"})
		return
	}
	log.Printf("[task][delete][ok] id=%s rows=%d", id, deleted)
	c.Status(http.StatusNoContent)
}
