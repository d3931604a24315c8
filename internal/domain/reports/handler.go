package reports

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"cat-shelter-admin/internal/domain/careplan"
	"cat-shelter-admin/internal/platform/dates"
	"cat-shelter-admin/internal/platform/httpx"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Get("/reports/activity", activityReportHandler(svc))
}

// ActivityResponse es el formato JSON del informe (también lo imprime el CLI).
type ActivityResponse struct {
	Year          int                   `json:"year"`
	Month         int                   `json:"month"`
	Start         string                `json:"start"`
	End           string                `json:"end"`
	CountStart    int                   `json:"count_start"`
	Entries       careplan.EntryCounts  `json:"entries"`
	EntriesTotal  int                   `json:"entries_total"`
	Exits         careplan.ExitCounts   `json:"exits"`
	ExitsTotal    int                   `json:"exits_total"`
	CountEnd      int                   `json:"count_end"`
	OtherSpecies  int                   `json:"other_species"`
	DisplayStart  int                   `json:"display_start"`
	DisplayEnd    int                   `json:"display_end"`
	Uncategorized uncategorizedResponse `json:"uncategorized"`
}

type uncategorizedResponse struct {
	Entries []careplan.Uncategorized `json:"entries"`
	Exits   []careplan.Uncategorized `json:"exits"`
}

func ToActivityResponse(st careplan.MonthStats) ActivityResponse {
	return ActivityResponse{
		Year:         st.Year,
		Month:        int(st.Month),
		Start:        st.Start.Format(dates.Layout),
		End:          st.End.Format(dates.Layout),
		CountStart:   st.CountStart,
		Entries:      st.Entries,
		EntriesTotal: st.EntriesTotal,
		Exits:        st.Exits,
		ExitsTotal:   st.ExitsTotal,
		CountEnd:     st.CountEnd,
		OtherSpecies: st.OtherSpecies,
		DisplayStart: st.DisplayStart(),
		DisplayEnd:   st.DisplayEnd(),
		Uncategorized: uncategorizedResponse{
			Entries: st.UncategorizedEntries,
			Exits:   st.UncategorizedExits,
		},
	}
}

// activityReportHandler godoc
// @Summary Informe mensual de actividad
// @Description Entradas/salidas por motivo y población inicio/fin. Sin year/month se usa el mes actual.
// @Tags reports
// @Produce json
// @Param year query int false "Año"
// @Param month query int false "Mes (1-12)"
// @Param other_species query int false "Residentes no felinos a sumar en los totales mostrados"
// @Success 200 {object} ActivityResponse
// @Failure 400 {string} string "parámetros inválidos"
// @Router /reports/activity [get]
func activityReportHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := httpx.RequireUser(w, r); !ok {
			return
		}

		now := time.Now()
		q := r.URL.Query()
		year, month, other := now.Year(), int(now.Month()), 0
		for key, dst := range map[string]*int{"year": &year, "month": &month, "other_species": &other} {
			v := q.Get(key)
			if v == "" {
				continue
			}
			n, err := strconv.Atoi(v)
			if err != nil {
				http.Error(w, key+" must be an integer", http.StatusBadRequest)
				return
			}
			*dst = n
		}

		st, err := svc.ActivityReport(r.Context(), year, month, other)
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, ToActivityResponse(st))
	}
}
