package handlers

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"todoapp/internal/adapter/http/middleware"
	"todoapp/internal/core/domain"
	"todoapp/internal/core/ports"
	"todoapp/pkg/session"
)

const flashCookieName = "todo_flash"

// PageHandler serves the server-rendered flows: auth forms and the
// categorized dashboard. Errors surface as flash messages on redirect
// rather than JSON payloads.
type PageHandler struct {
	taskService ports.TaskService
	authService ports.AuthService
	sessions    *session.Manager
}

func NewPageHandler(taskService ports.TaskService, authService ports.AuthService, sessions *session.Manager) *PageHandler {
	return &PageHandler{taskService: taskService, authService: authService, sessions: sessions}
}

func (h *PageHandler) ShowSignup(c *gin.Context) {
	c.HTML(http.StatusOK, "signup.tmpl", gin.H{"Flash": popFlash(c)})
}

func (h *PageHandler) SubmitSignup(c *gin.Context) {
	user, err := h.authService.Signup(c.Request.Context(), domain.SignupInput{
		FirstName: c.PostForm("firstName"),
		Email:     c.PostForm("email"),
		Password:  c.PostForm("password"),
	})
	if err != nil {
		var verr *domain.ValidationError
		switch {
		case errors.As(err, &verr):
			setFlash(c, flattenFieldErrors(verr))
		case errors.Is(err, domain.ErrEmailTaken):
			setFlash(c, "An account with this email already exists.")
		default:
			zap.L().Error("signup form failed", zap.Error(err))
			setFlash(c, "Could not create the account.")
		}
		c.Redirect(http.StatusFound, "/signup")
		return
	}

	h.establishSession(c, user.ID, "/signup", "/")
}

func (h *PageHandler) ShowLogin(c *gin.Context) {
	c.HTML(http.StatusOK, "login.tmpl", gin.H{"Flash": popFlash(c)})
}

func (h *PageHandler) SubmitLogin(c *gin.Context) {
	user, err := h.authService.Login(c.Request.Context(), c.PostForm("email"), c.PostForm("password"))
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			setFlash(c, "Invalid email or password.")
		} else {
			zap.L().Error("login form failed", zap.Error(err))
			setFlash(c, "Could not sign in.")
		}
		c.Redirect(http.StatusFound, "/login")
		return
	}

	h.establishSession(c, user.ID, "/login", "/")
}

func (h *PageHandler) Signout(c *gin.Context) {
	c.SetCookie(session.CookieName, "", -1, "/", "", false, true)
	c.Redirect(http.StatusFound, "/login")
}

// Dashboard renders the bucket view. "Today" is derived once per request.
func (h *PageHandler) Dashboard(c *gin.Context) {
	userID := middleware.GetUserID(c)

	user, err := h.authService.UserByID(c.Request.Context(), userID)
	if err != nil {
		h.Signout(c)
		return
	}

	buckets, err := h.taskService.CategorizedTodos(c.Request.Context(), userID, time.Now())
	if err != nil {
		zap.L().Error("failed to load dashboard", zap.Uint64("user_id", userID), zap.Error(err))
		c.HTML(http.StatusInternalServerError, "index.tmpl", gin.H{
			"Flash": "Could not load your to-dos.",
			"User":  user,
		})
		return
	}

	c.HTML(http.StatusOK, "index.tmpl", gin.H{
		"Flash":     popFlash(c),
		"User":      user,
		"Overdue":   buckets.Overdue,
		"DueToday":  buckets.DueToday,
		"DueLater":  buckets.DueLater,
		"NoDueDate": buckets.NoDueDate,
		"Completed": buckets.Completed,
	})
}

func (h *PageHandler) SubmitTodo(c *gin.Context) {
	userID := middleware.GetUserID(c)

	_, err := h.taskService.CreateTodo(c.Request.Context(), userID, c.PostForm("title"), c.PostForm("dueDate"))
	if err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			setFlash(c, flattenFieldErrors(verr))
		} else {
			zap.L().Error("todo form failed", zap.Uint64("user_id", userID), zap.Error(err))
			setFlash(c, "Could not create the to-do.")
		}
	}

	c.Redirect(http.StatusFound, "/")
}

func (h *PageHandler) SubmitCompletion(c *gin.Context) {
	userID := middleware.GetUserID(c)

	todoID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err == nil && todoID > 0 {
		completed := c.PostForm("completed") == "true"
		if _, err := h.taskService.SetCompletion(c.Request.Context(), userID, todoID, completed); err != nil &&
			!errors.Is(err, domain.ErrTaskNotFound) {
			zap.L().Error("completion form failed", zap.Uint64("todo_id", todoID), zap.Error(err))
			setFlash(c, "Could not update the to-do.")
		}
	}

	c.Redirect(http.StatusFound, "/")
}

// SubmitDelete stays silent when the row is already gone.
func (h *PageHandler) SubmitDelete(c *gin.Context) {
	userID := middleware.GetUserID(c)

	todoID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err == nil && todoID > 0 {
		if _, err := h.taskService.DeleteTodo(c.Request.Context(), userID, todoID); err != nil {
			zap.L().Error("delete form failed", zap.Uint64("todo_id", todoID), zap.Error(err))
			setFlash(c, "Could not delete the to-do.")
		}
	}

	c.Redirect(http.StatusFound, "/")
}

func (h *PageHandler) establishSession(c *gin.Context, userID uint64, failurePath, successPath string) {
	token, err := h.sessions.Issue(userID)
	if err != nil {
		zap.L().Error("failed to issue session", zap.Uint64("user_id", userID), zap.Error(err))
		setFlash(c, "Could not sign in.")
		c.Redirect(http.StatusFound, failurePath)
		return
	}

	c.SetCookie(session.CookieName, token, int(h.sessions.TTL().Seconds()), "/", "", false, true)
	c.Redirect(http.StatusFound, successPath)
}

func flattenFieldErrors(verr *domain.ValidationError) string {
	messages := make([]string, 0, len(verr.Fields))
	for _, f := range verr.Fields {
		messages = append(messages, f.Message)
	}
	return strings.Join(messages, " ")
}

func setFlash(c *gin.Context, message string) {
	c.SetCookie(flashCookieName, url.QueryEscape(message), 60, "/", "", false, true)
}

func popFlash(c *gin.Context) string {
	value, err := c.Cookie(flashCookieName)
	if err != nil || value == "" {
		return ""
	}
	c.SetCookie(flashCookieName, "", -1, "/", "", false, true)
	decoded, err := url.QueryUnescape(value)
	if err != nil {
		return ""
	}
	return decoded
}
