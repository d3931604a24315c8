package appointments

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"cat-shelter-admin/internal/platform/dates"
	"cat-shelter-admin/internal/platform/httpx"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/appointments", func(ar chi.Router) {
		ar.Post("/", createAppointmentHandler(svc))
		ar.Get("/", listAppointmentsHandler(svc))
		ar.Get("/calendar", calendarHandler(svc))
		ar.Get("/{appointmentID}", getAppointmentHandler(svc))
		ar.Delete("/{appointmentID}", deleteAppointmentHandler(svc))
	})
}

type createAppointmentRequest struct {
	At        string   `json:"at" validate:"required"` // RFC3339, "YYYY-MM-DDTHH:MM" o "YYYY-MM-DD HH:MM:SS"
	Location  string   `json:"location" validate:"max=200"`
	AnimalIDs []string `json:"animal_ids"`
	StaffIDs  []string `json:"staff_ids"`
	Notes     string   `json:"notes"`
}

type appointmentResponse struct {
	ID        string    `json:"id"`
	At        time.Time `json:"at"`
	Location  string    `json:"location"`
	AnimalIDs []string  `json:"animal_ids"`
	StaffIDs  []string  `json:"staff_ids"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

var timeLayouts = []string{time.RFC3339, "2006-01-02T15:04", "2006-01-02 15:04:05"}

func parseAt(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	var err error
	for _, layout := range timeLayouts {
		var t time.Time
		if t, err = time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, err
}

// createAppointmentHandler godoc
// @Summary Crear una cita
// @Description Los ids de animales o personal inexistentes se ignoran. Sin lugar se usa "Rendez-vous".
// @Tags appointments
// @Accept json
// @Produce json
// @Param payload body createAppointmentRequest true "Cita"
// @Success 201 {object} appointmentResponse
// @Failure 400 {string} string "validación"
// @Router /appointments [post]
func createAppointmentHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := httpx.RequireUser(w, r); !ok {
			return
		}

		var req createAppointmentRequest
		if err := httpx.Decode(r, &req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		at, err := parseAt(req.At)
		if err != nil {
			http.Error(w, "at must be RFC3339 or YYYY-MM-DDTHH:MM", http.StatusBadRequest)
			return
		}

		a, err := svc.Create(r.Context(), CreateInput{
			At:        at,
			Location:  req.Location,
			AnimalIDs: req.AnimalIDs,
			StaffIDs:  req.StaffIDs,
			Notes:     req.Notes,
		})
		if err != nil {
			writeError(w, err)
			return
		}
		httpx.WriteJSON(w, http.StatusCreated, toAppointmentResponse(a))
	}
}

// listAppointmentsHandler godoc
// @Summary Listar citas
// @Tags appointments
// @Produce json
// @Param when query string false "upcoming (default) o past"
// @Success 200 {array} appointmentResponse
// @Router /appointments [get]
func listAppointmentsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := httpx.RequireUser(w, r); !ok {
			return
		}

		var (
			items []Appointment
			err   error
		)
		switch strings.TrimSpace(r.URL.Query().Get("when")) {
		case "", "upcoming":
			items, err = svc.Upcoming(r.Context())
		case "past":
			items, err = svc.Past(r.Context())
		default:
			http.Error(w, "when must be upcoming or past", http.StatusBadRequest)
			return
		}
		if err != nil {
			writeError(w, err)
			return
		}

		out := make([]appointmentResponse, 0, len(items))
		for _, a := range items {
			out = append(out, toAppointmentResponse(a))
		}
		httpx.WriteJSON(w, http.StatusOK, out)
	}
}

// calendarHandler godoc
// @Summary Feed de calendario
// @Description `from` y `to` en YYYY-MM-DD, ambos días incluidos.
// @Tags appointments
// @Produce json
// @Param from query string false "Desde"
// @Param to query string false "Hasta"
// @Success 200 {array} CalendarEntry
// @Router /appointments/calendar [get]
func calendarHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := httpx.RequireUser(w, r); !ok {
			return
		}

		q := r.URL.Query()
		from, err := dates.ParseOptional(q.Get("from"))
		if err != nil {
			http.Error(w, "from must be YYYY-MM-DD", http.StatusBadRequest)
			return
		}
		to, err := dates.ParseOptional(q.Get("to"))
		if err != nil {
			http.Error(w, "to must be YYYY-MM-DD", http.StatusBadRequest)
			return
		}

		var start, end time.Time
		if from != nil {
			start = *from
		}
		if to != nil {
			end = to.AddDate(0, 0, 1)
		}

		items, err := svc.Calendar(r.Context(), start, end)
		if err != nil {
			writeError(w, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, items)
	}
}

// getAppointmentHandler godoc
// @Summary Detalle de una cita
// @Tags appointments
// @Produce json
// @Param appointmentID path string true "Appointment ID"
// @Success 200 {object} appointmentResponse
// @Failure 404 {string} string "not found"
// @Router /appointments/{appointmentID} [get]
func getAppointmentHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := httpx.RequireUser(w, r); !ok {
			return
		}

		a, err := svc.GetByID(r.Context(), chi.URLParam(r, "appointmentID"))
		if err != nil {
			writeError(w, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, toAppointmentResponse(a))
	}
}

// deleteAppointmentHandler godoc
// @Summary Borrar una cita
// @Tags appointments
// @Param appointmentID path string true "Appointment ID"
// @Success 204
// @Failure 404 {string} string "not found"
// @Router /appointments/{appointmentID} [delete]
func deleteAppointmentHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := httpx.RequireUser(w, r); !ok {
			return
		}

		if err := svc.Delete(r.Context(), chi.URLParam(r, "appointmentID")); err != nil {
			writeError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrNotFound):
		http.Error(w, "appointment not found", http.StatusNotFound)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func toAppointmentResponse(a Appointment) appointmentResponse {
	resp := appointmentResponse{
		ID:        a.ID,
		At:        a.At,
		Location:  a.Location,
		AnimalIDs: a.AnimalIDs,
		StaffIDs:  a.StaffIDs,
		Notes:     a.Notes,
		CreatedAt: a.CreatedAt,
	}
	if resp.AnimalIDs == nil {
		resp.AnimalIDs = []string{}
	}
	if resp.StaffIDs == nil {
		resp.StaffIDs = []string{}
	}
	return resp
}
