package careplan

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"cat-shelter-admin/internal/domain/care"
	"cat-shelter-admin/internal/platform/dates"
	"cat-shelter-admin/internal/platform/httpx"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, defaults Horizons) {
	r.Get("/reminders", listRemindersHandler(svc, defaults))
}

type dueItemResponse struct {
	AnimalID   string    `json:"animal_id"`
	AnimalName string    `json:"animal_name"`
	Kind       care.Kind `json:"kind"`
	TypeID     string    `json:"type_id,omitempty"`
	TypeName   string    `json:"type_name,omitempty"`
	LastDate   string    `json:"last_date"`
	Primer     bool      `json:"primer,omitempty"`
	NextDue    string    `json:"next_due"`
	DaysLeft   int       `json:"days_left"`
	Status     DueStatus `json:"status"`
}

// listRemindersHandler godoc
// @Summary Recordatorios de vacunas y desparasitaciones
// @Description Vencidos primero, luego por días restantes. Sin `horizon` se usa el horizonte configurado del kind.
// @Tags reminders
// @Produce json
// @Param kind query string true "vaccination o deworming"
// @Param horizon query int false "Horizonte en días"
// @Success 200 {array} dueItemResponse
// @Failure 400 {string} string "kind / horizon inválidos"
// @Failure 401 {string} string "unauthorized"
// @Router /reminders [get]
func listRemindersHandler(svc *Service, defaults Horizons) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := httpx.RequireUser(w, r); !ok {
			return
		}

		q := r.URL.Query()
		kind := care.Kind(strings.TrimSpace(q.Get("kind")))
		if !kind.Typed() {
			http.Error(w, "kind must be vaccination or deworming", http.StatusBadRequest)
			return
		}

		horizon := defaults.Vaccination
		if kind == care.KindDeworming {
			horizon = defaults.Deworming
		}
		if v := q.Get("horizon"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil || n < 0 {
				http.Error(w, "horizon must be a non-negative integer", http.StatusBadRequest)
				return
			}
			horizon = n
		}

		items, err := svc.DueReminders(r.Context(), kind, horizon)
		if err != nil {
			writeError(w, err)
			return
		}
		cat, err := svc.Catalog(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}

		out := make([]dueItemResponse, 0, len(items))
		for _, it := range items {
			resp := dueItemResponse{
				AnimalID:   it.AnimalID,
				AnimalName: it.AnimalName,
				Kind:       it.Kind,
				TypeID:     it.TypeID,
				LastDate:   it.LastDate.Format(dates.Layout),
				Primer:     it.Primer,
				NextDue:    it.NextDue.Format(dates.Layout),
				DaysLeft:   it.DaysLeft,
				Status:     it.Status,
			}
			if it.TypeID != "" {
				resp.TypeName = cat.Name(it.TypeID)
			}
			out = append(out, resp)
		}
		httpx.WriteJSON(w, http.StatusOK, out)
	}
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, care.ErrInvalidInput),
		errors.Is(err, ErrInvalidHorizon),
		errors.Is(err, ErrInvalidReference):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
