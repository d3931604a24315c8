package tasks

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"cat-shelter-admin/internal/domain/careplan"
	"cat-shelter-admin/internal/platform/dates"
	"cat-shelter-admin/internal/platform/httpx"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, defaultHorizon int) {
	r.Route("/tasks", func(tr chi.Router) {
		tr.Post("/", createTaskHandler(svc))
		tr.Get("/", listTasksHandler(svc))
		tr.Get("/due", dueTasksHandler(svc, defaultHorizon))
		tr.Post("/{taskID}/complete", completeTaskHandler(svc))
		tr.Patch("/{taskID}", updateTaskHandler(svc))
	})
}

type createTaskRequest struct {
	Title        string `json:"title" validate:"required,max=120"`
	IntervalDays int    `json:"interval_days" validate:"required,gt=0"`
	AssigneeID   string `json:"assignee_id"`
}

type completeTaskRequest struct {
	At string `json:"at"` // YYYY-MM-DD, vacío = ahora
}

type updateTaskRequest struct {
	Active *bool `json:"active" validate:"required"`
}

type taskResponse struct {
	ID           string     `json:"id"`
	Title        string     `json:"title"`
	IntervalDays int        `json:"interval_days"`
	LastDoneAt   *time.Time `json:"last_done_at"`
	AssigneeID   string     `json:"assignee_id,omitempty"`
	Active       bool       `json:"active"`
	CreatedAt    time.Time  `json:"created_at"`
}

type dueTaskResponse struct {
	Task     taskResponse       `json:"task"`
	NextDue  string             `json:"next_due,omitempty"`
	DaysLeft int                `json:"days_left"`
	Status   careplan.DueStatus `json:"status"`
}

// createTaskHandler godoc
// @Summary Crear una tarea recurrente
// @Tags tasks
// @Accept json
// @Produce json
// @Param payload body createTaskRequest true "Tarea"
// @Success 201 {object} taskResponse
// @Failure 400 {string} string "validación / responsable inexistente"
// @Router /tasks [post]
func createTaskHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := httpx.RequireUser(w, r); !ok {
			return
		}

		var req createTaskRequest
		if err := httpx.Decode(r, &req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		t, err := svc.Create(r.Context(), CreateInput{
			Title:        req.Title,
			IntervalDays: req.IntervalDays,
			AssigneeID:   req.AssigneeID,
		})
		if err != nil {
			writeError(w, err)
			return
		}
		httpx.WriteJSON(w, http.StatusCreated, toTaskResponse(t))
	}
}

// listTasksHandler godoc
// @Summary Listar tareas
// @Tags tasks
// @Produce json
// @Param active query bool false "Solo activas"
// @Success 200 {array} taskResponse
// @Router /tasks [get]
func listTasksHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := httpx.RequireUser(w, r); !ok {
			return
		}

		activeOnly := false
		if v := r.URL.Query().Get("active"); v != "" {
			b, err := strconv.ParseBool(v)
			if err != nil {
				http.Error(w, "active must be a boolean", http.StatusBadRequest)
				return
			}
			activeOnly = b
		}

		items, err := svc.List(r.Context(), activeOnly)
		if err != nil {
			writeError(w, err)
			return
		}
		out := make([]taskResponse, 0, len(items))
		for _, t := range items {
			out = append(out, toTaskResponse(t))
		}
		httpx.WriteJSON(w, http.StatusOK, out)
	}
}

// dueTasksHandler godoc
// @Summary Tareas vencidas o próximas
// @Description Las tareas nunca realizadas cuentan como vencidas.
// @Tags tasks
// @Produce json
// @Param horizon query int false "Horizonte en días"
// @Success 200 {array} dueTaskResponse
// @Router /tasks/due [get]
func dueTasksHandler(svc *Service, defaultHorizon int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := httpx.RequireUser(w, r); !ok {
			return
		}

		horizon := defaultHorizon
		if v := r.URL.Query().Get("horizon"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil || n < 0 {
				http.Error(w, "horizon must be a non-negative integer", http.StatusBadRequest)
				return
			}
			horizon = n
		}

		items, err := svc.Due(r.Context(), horizon)
		if err != nil {
			writeError(w, err)
			return
		}
		out := make([]dueTaskResponse, 0, len(items))
		for _, d := range items {
			resp := dueTaskResponse{Task: toTaskResponse(d.Task), DaysLeft: d.DaysLeft, Status: d.Status}
			if d.NextDue != nil {
				resp.NextDue = d.NextDue.Format(dates.Layout)
			}
			out = append(out, resp)
		}
		httpx.WriteJSON(w, http.StatusOK, out)
	}
}

// completeTaskHandler godoc
// @Summary Marcar una tarea como hecha
// @Description Sin `at` se usa el día actual.
// @Tags tasks
// @Accept json
// @Produce json
// @Param taskID path string true "Task ID"
// @Param payload body completeTaskRequest false "Fecha (YYYY-MM-DD)"
// @Success 200 {object} taskResponse
// @Failure 404 {string} string "not found"
// @Router /tasks/{taskID}/complete [post]
func completeTaskHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := httpx.RequireUser(w, r); !ok {
			return
		}

		var req completeTaskRequest
		if r.ContentLength != 0 {
			if err := httpx.Decode(r, &req); err != nil {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
		}
		var at time.Time
		if strings.TrimSpace(req.At) != "" {
			d, err := dates.Parse(req.At)
			if err != nil {
				http.Error(w, "at must be YYYY-MM-DD", http.StatusBadRequest)
				return
			}
			at = d
		}

		t, err := svc.Complete(r.Context(), chi.URLParam(r, "taskID"), at)
		if err != nil {
			writeError(w, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, toTaskResponse(t))
	}
}

// updateTaskHandler godoc
// @Summary Activar o desactivar una tarea
// @Tags tasks
// @Accept json
// @Produce json
// @Param taskID path string true "Task ID"
// @Param payload body updateTaskRequest true "Estado"
// @Success 200 {object} taskResponse
// @Failure 404 {string} string "not found"
// @Router /tasks/{taskID} [patch]
func updateTaskHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := httpx.RequireUser(w, r); !ok {
			return
		}

		var req updateTaskRequest
		if err := httpx.Decode(r, &req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		t, err := svc.SetActive(r.Context(), chi.URLParam(r, "taskID"), *req.Active)
		if err != nil {
			writeError(w, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, toTaskResponse(t))
	}
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput), errors.Is(err, careplan.ErrInvalidHorizon):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrAssigneeNotFound):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrNotFound):
		http.Error(w, "task not found", http.StatusNotFound)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func toTaskResponse(t Task) taskResponse {
	return taskResponse{
		ID:           t.ID,
		Title:        t.Title,
		IntervalDays: t.IntervalDays,
		LastDoneAt:   t.LastDoneAt,
		AssigneeID:   t.AssigneeID,
		Active:       t.Active,
		CreatedAt:    t.CreatedAt,
	}
}
