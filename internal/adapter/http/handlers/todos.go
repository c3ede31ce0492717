package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"todoapp/internal/adapter/http/dto"
	"todoapp/internal/adapter/http/mapper"
	"todoapp/internal/adapter/http/middleware"
	"todoapp/internal/adapter/http/validation"
	"todoapp/internal/core/domain"
	"todoapp/internal/core/ports"
	"todoapp/pkg/apierrors"
)

type TodoHandler struct {
	taskService ports.TaskService
}

func NewTodoHandler(taskService ports.TaskService) *TodoHandler {
	return &TodoHandler{taskService: taskService}
}

func (h *TodoHandler) ListTodos(c *gin.Context) {
	lang := middleware.GetLang(c)
	ownerID := middleware.GetUserID(c)

	todos, err := h.taskService.ListTodos(c.Request.Context(), ownerID)
	if err != nil {
		zap.L().Error("failed to list todos", zap.Uint64("owner_id", ownerID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailListTodos, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToTodoItems(todos))
}

// ListCategorizedTodos feeds the dashboard. The reference date is derived
// once here and passed down, so a request spanning midnight categorizes
// against a single day.
func (h *TodoHandler) ListCategorizedTodos(c *gin.Context) {
	lang := middleware.GetLang(c)
	ownerID := middleware.GetUserID(c)

	today := time.Now()
	if raw := c.Query("today"); raw != "" {
		parsed, err := time.Parse(domain.DateLayout, raw)
		if err != nil {
			c.JSON(
				http.StatusBadRequest,
				apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTodoPayload, lang),
			)
			return
		}
		today = parsed
	}

	buckets, err := h.taskService.CategorizedTodos(c.Request.Context(), ownerID, today)
	if err != nil {
		zap.L().Error("failed to categorize todos", zap.Uint64("owner_id", ownerID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailListTodos, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToCategorizedTodos(buckets))
}

func (h *TodoHandler) CreateTodo(c *gin.Context) {
	lang := middleware.GetLang(c)
	ownerID := middleware.GetUserID(c)

	var req dto.CreateTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTodoPayload, lang),
		)
		return
	}

	dueDate := ""
	if req.DueDate != nil {
		dueDate = *req.DueDate
	}

	todo, err := h.taskService.CreateTodo(c.Request.Context(), ownerID, req.Title, dueDate)
	if err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			c.JSON(
				http.StatusBadRequest,
				apierrors.CreateValidationError(http.StatusBadRequest, apierrors.MsgInvalidTodoPayload, lang, verr.FieldMap()),
			)
			return
		}

		zap.L().Error("failed to create todo", zap.Uint64("owner_id", ownerID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailCreateTodo, lang),
		)
		return
	}

	c.JSON(http.StatusCreated, mapper.ToTodoItem(todo))
}

func (h *TodoHandler) UpdateTodo(c *gin.Context) {
	lang := middleware.GetLang(c)
	ownerID := middleware.GetUserID(c)

	todoID, ok := parseTodoID(c, lang)
	if !ok {
		return
	}

	body, err := c.GetRawData()
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTodoPayload, lang),
		)
		return
	}

	var raw map[string]json.RawMessage
	var req dto.UpdateTodoRequest
	if err := json.Unmarshal(body, &raw); err != nil || json.Unmarshal(body, &req) != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTodoPayload, lang),
		)
		return
	}

	patch, verr := validation.BuildTodoPatch(req, raw)
	if verr != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateValidationError(http.StatusBadRequest, apierrors.MsgInvalidTodoPayload, lang, verr.FieldMap()),
		)
		return
	}

	todo, err := h.taskService.UpdateTodo(c.Request.Context(), ownerID, todoID, patch)
	if err != nil {
		var validationErr *domain.ValidationError
		switch {
		case errors.As(err, &validationErr):
			c.JSON(
				http.StatusBadRequest,
				apierrors.CreateValidationError(http.StatusBadRequest, apierrors.MsgInvalidTodoPayload, lang, validationErr.FieldMap()),
			)
		case errors.Is(err, domain.ErrTaskNotFound):
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgTodoNotFound, lang),
			)
		default:
			zap.L().Error("failed to update todo", zap.Uint64("todo_id", todoID), zap.Error(err))
			c.JSON(
				http.StatusInternalServerError,
				apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailUpdateTodo, lang),
			)
		}
		return
	}

	c.JSON(http.StatusOK, mapper.ToTodoItem(todo))
}

// DeleteTodo reports whether a row was removed. An id that is absent or
// owned by someone else yields {"deleted": false}, never a 404.
func (h *TodoHandler) DeleteTodo(c *gin.Context) {
	lang := middleware.GetLang(c)
	ownerID := middleware.GetUserID(c)

	todoID, ok := parseTodoID(c, lang)
	if !ok {
		return
	}

	deleted, err := h.taskService.DeleteTodo(c.Request.Context(), ownerID, todoID)
	if err != nil {
		zap.L().Error("failed to delete todo", zap.Uint64("todo_id", todoID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailDeleteTodo, lang),
		)
		return
	}

	c.JSON(http.StatusOK, dto.DeleteTodoResponse{Deleted: deleted > 0})
}

func parseTodoID(c *gin.Context, lang string) (uint64, bool) {
	todoID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || todoID == 0 {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTodoID, lang),
		)
		return 0, false
	}
	return todoID, true
}
