package dashboard

import (
	"net/http"

	"cat-shelter-admin/internal/domain/care"
	"cat-shelter-admin/internal/platform/httpx"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Get("/dashboard", dashboardHandler(svc))
}

type counterResponse struct {
	Kind   care.Kind `json:"kind"`
	TypeID string    `json:"type_id,omitempty"`
	Label  string    `json:"label"`
	Late   int       `json:"late"`
	Soon   int       `json:"soon"`
}

type summaryResponse struct {
	Animals              int               `json:"total_animals"`
	Residents            int               `json:"residents"`
	UpcomingAppointments int               `json:"upcoming_appointments"`
	ActiveStaff          int               `json:"active_staff"`
	CareTypes            int               `json:"care_types"`
	Reminders            []counterResponse `json:"reminders"`
	TasksLate            int               `json:"tasks_late"`
	TasksSoon            int               `json:"tasks_soon"`
}

// dashboardHandler godoc
// @Summary Totales y recordatorios pendientes
// @Tags dashboard
// @Produce json
// @Success 200 {object} summaryResponse
// @Failure 401 {string} string "unauthorized"
// @Router /dashboard [get]
func dashboardHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := httpx.RequireUser(w, r); !ok {
			return
		}

		s, err := svc.Summary(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		resp := summaryResponse{
			Animals:              s.Animals,
			Residents:            s.Residents,
			UpcomingAppointments: s.UpcomingAppointments,
			ActiveStaff:          s.ActiveStaff,
			CareTypes:            s.CareTypes,
			Reminders:            make([]counterResponse, 0, len(s.Reminders)),
			TasksLate:            s.TasksLate,
			TasksSoon:            s.TasksSoon,
		}
		for _, c := range s.Reminders {
			resp.Reminders = append(resp.Reminders, counterResponse{
				Kind: c.Kind, TypeID: c.TypeID, Label: c.Label, Late: c.Late, Soon: c.Soon,
			})
		}
		httpx.WriteJSON(w, http.StatusOK, resp)
	}
}
