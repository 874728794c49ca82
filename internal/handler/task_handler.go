package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"taskboard/internal/apperrors"
	"taskboard/internal/middleware"
	"taskboard/internal/model"
	"taskboard/internal/service"
)

const expirationDateLayout = "2006-01-02"

// TaskHandler handles the protected ownership-scoped task endpoints. Routes
// reach it only after the token gate and identity resolution have run.
type TaskHandler struct {
	taskService service.TaskService
}

// NewTaskHandler creates a new task handler.
func NewTaskHandler(taskService service.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

// TaskRequest represents the client-suppliable fields for create and update.
// Any user_id in the payload is ignored; ownership comes from the token.
type TaskRequest struct {
	Title          string `json:"title" validate:"required"`
	Description    string `json:"description" validate:"required"`
	ExpirationDate string `json:"expiration_date" validate:"required,datetime=2006-01-02"`
	StatusID       uint   `json:"status_id" validate:"required"`
}

// ListTasksRequest carries the pagination query parameters.
type ListTasksRequest struct {
	Page    int `query:"page" validate:"required,gte=1"`
	PerPage int `query:"per_page" validate:"required,gte=1,lte=100"`
}

// TaskResponse is the task presentation shape, with status and owner names
// embedded.
type TaskResponse struct {
	ID             uint   `json:"id"`
	Title          string `json:"title"`
	Description    string `json:"description"`
	CreatedDate    string `json:"created_date"`
	ExpirationDate string `json:"expiration_date"`
	Status         string `json:"status"`
	User           string `json:"user"`
}

func newTaskResponse(t *model.Task) TaskResponse {
	return TaskResponse{
		ID:             t.ID,
		Title:          t.Title,
		Description:    t.Description,
		CreatedDate:    t.CreatedAt.Format("2006-01-02 15:04:05"),
		ExpirationDate: t.ExpirationDate.Format(expirationDateLayout),
		Status:         t.Status.Name,
		User:           t.User.Name,
	}
}

// List godoc
// @Summary List the caller's tasks
// @Tags tasks
// @Produce json
// @Param token header string true "Bearer token"
// @Param page query int true "Page number (1-based)"
// @Param per_page query int true "Page size (max 100)"
// @Success 200 {object} apperrors.Envelope
// @Failure 400 {object} apperrors.Envelope
// @Failure 401 {object} apperrors.Envelope
// @Failure 404 {object} apperrors.Envelope
// @Failure 500 {object} apperrors.Envelope
// @Router /tasks/me [get]
func (h *TaskHandler) List(c echo.Context) error {
	var req ListTasksRequest
	if handled, err := bindAndValidate(c, &req); handled {
		return err
	}

	owner := middleware.CurrentUser(c)
	tasks, pagination, err := h.taskService.List(c.Request().Context(), owner.ID, req.Page, req.PerPage)
	if err != nil {
		he := apperrors.MapToHTTP(err)
		return c.JSON(he.StatusCode, he.Envelope())
	}

	items := make([]TaskResponse, 0, len(tasks))
	for i := range tasks {
		items = append(items, newTaskResponse(&tasks[i]))
	}

	return c.JSON(http.StatusOK, echo.Map{
		"error":      false,
		"message":    "tasks listed successfully",
		"tasks":      items,
		"pagination": pagination,
	})
}

// Get godoc
// @Summary Get one of the caller's tasks
// @Tags tasks
// @Produce json
// @Param token header string true "Bearer token"
// @Param id path int true "Task ID"
// @Success 200 {object} apperrors.Envelope
// @Failure 401 {object} apperrors.Envelope
// @Failure 404 {object} apperrors.Envelope
// @Failure 500 {object} apperrors.Envelope
// @Router /tasks/{id} [get]
func (h *TaskHandler) Get(c echo.Context) error {
	taskID, ok := pathID(c)
	if !ok {
		return notFound(c)
	}

	owner := middleware.CurrentUser(c)
	task, err := h.taskService.Get(c.Request().Context(), owner.ID, taskID)
	if err != nil {
		he := apperrors.MapToHTTP(err)
		return c.JSON(he.StatusCode, he.Envelope())
	}

	return c.JSON(http.StatusOK, echo.Map{
		"error":   false,
		"message": "task fetched successfully",
		"task":    newTaskResponse(task),
	})
}

// Create godoc
// @Summary Create a task owned by the caller
// @Tags tasks
// @Accept json
// @Produce json
// @Param token header string true "Bearer token"
// @Param request body TaskRequest true "Task fields"
// @Success 201 {object} apperrors.Envelope
// @Failure 400 {object} apperrors.Envelope
// @Failure 401 {object} apperrors.Envelope
// @Failure 500 {object} apperrors.Envelope
// @Router /tasks [post]
func (h *TaskHandler) Create(c echo.Context) error {
	var req TaskRequest
	if handled, err := bindAndValidate(c, &req); handled {
		return err
	}

	owner := middleware.CurrentUser(c)
	task, err := h.taskService.Create(c.Request().Context(), owner.ID, taskInput(req))
	if err != nil {
		he := apperrors.MapToHTTP(err)
		return c.JSON(he.StatusCode, he.Envelope())
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"error":   false,
		"message": "task created successfully",
		"task":    newTaskResponse(task),
	})
}

// Update godoc
// @Summary Replace one of the caller's tasks
// @Tags tasks
// @Accept json
// @Produce json
// @Param token header string true "Bearer token"
// @Param id path int true "Task ID"
// @Param request body TaskRequest true "Task fields"
// @Success 200 {object} apperrors.Envelope
// @Failure 400 {object} apperrors.Envelope
// @Failure 401 {object} apperrors.Envelope
// @Failure 404 {object} apperrors.Envelope
// @Failure 500 {object} apperrors.Envelope
// @Router /tasks/{id} [put]
func (h *TaskHandler) Update(c echo.Context) error {
	taskID, ok := pathID(c)
	if !ok {
		return notFound(c)
	}

	var req TaskRequest
	if handled, err := bindAndValidate(c, &req); handled {
		return err
	}

	owner := middleware.CurrentUser(c)
	task, err := h.taskService.Update(c.Request().Context(), owner.ID, taskID, taskInput(req))
	if err != nil {
		he := apperrors.MapToHTTP(err)
		return c.JSON(he.StatusCode, he.Envelope())
	}

	return c.JSON(http.StatusOK, echo.Map{
		"error":   false,
		"message": "task updated successfully",
		"task":    newTaskResponse(task),
	})
}

// Delete godoc
// @Summary Permanently delete one of the caller's tasks
// @Tags tasks
// @Produce json
// @Param token header string true "Bearer token"
// @Param id path int true "Task ID"
// @Success 200 {object} apperrors.Envelope
// @Failure 401 {object} apperrors.Envelope
// @Failure 404 {object} apperrors.Envelope
// @Failure 500 {object} apperrors.Envelope
// @Router /tasks/{id} [delete]
func (h *TaskHandler) Delete(c echo.Context) error {
	taskID, ok := pathID(c)
	if !ok {
		return notFound(c)
	}

	owner := middleware.CurrentUser(c)
	if err := h.taskService.Delete(c.Request().Context(), owner.ID, taskID); err != nil {
		he := apperrors.MapToHTTP(err)
		return c.JSON(he.StatusCode, he.Envelope())
	}

	return c.JSON(http.StatusOK, echo.Map{
		"error":   false,
		"message": "task deleted successfully",
	})
}

func taskInput(req TaskRequest) service.TaskInput {
	// the datetime rule already validated the layout
	expiration, _ := time.Parse(expirationDateLayout, req.ExpirationDate)
	return service.TaskInput{
		Title:          req.Title,
		Description:    req.Description,
		ExpirationDate: expiration,
		StatusID:       req.StatusID,
	}
}

// pathID parses the :id path parameter. Unparseable ids are handled like
// missing tasks so that probing reveals nothing.
func pathID(c echo.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

func notFound(c echo.Context) error {
	he := apperrors.MapToHTTP(apperrors.ErrTaskNotFound)
	return c.JSON(he.StatusCode, he.Envelope())
}
