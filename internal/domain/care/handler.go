package care

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"cat-shelter-admin/internal/platform/dates"
	"cat-shelter-admin/internal/platform/httpx"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes monta el historial de cuidados bajo /animals/{animalID}/care
// y el catálogo bajo /care-types.
func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/animals/{animalID}/care", func(cr chi.Router) {
		cr.Post("/", recordEventHandler(svc))
		cr.Get("/", listEventsHandler(svc))
		cr.Delete("/{eventID}", deleteEventHandler(svc))
	})

	r.Route("/care-types", func(tr chi.Router) {
		tr.Get("/", listTypesHandler(svc))
		tr.Post("/", createTypeHandler(svc))
		tr.Patch("/{typeID}", updateTypeHandler(svc))
	})
}

type recordEventRequest struct {
	Kind         string  `json:"kind" validate:"required,oneof=vaccination deworming weight"`
	TypeID       string  `json:"type_id"`
	Date         string  `json:"date"` // YYYY-MM-DD, vacío = hoy
	Primer       bool    `json:"primer"`
	Value        float64 `json:"value" validate:"gte=0"`
	Lot          string  `json:"lot" validate:"max=64"`
	Veterinarian string  `json:"veterinarian" validate:"max=120"`
	Reaction     string  `json:"reaction"`
	Notes        string  `json:"notes"`
}

type eventResponse struct {
	ID           string    `json:"id"`
	AnimalID     string    `json:"animal_id"`
	Kind         Kind      `json:"kind"`
	TypeID       string    `json:"type_id,omitempty"`
	TypeName     string    `json:"type_name,omitempty"`
	Date         string    `json:"date"`
	Primer       bool      `json:"primer,omitempty"`
	Value        float64   `json:"value,omitempty"`
	Lot          string    `json:"lot,omitempty"`
	Veterinarian string    `json:"veterinarian,omitempty"`
	Reaction     string    `json:"reaction,omitempty"`
	Notes        string    `json:"notes,omitempty"`
	RecordedAt   time.Time `json:"recorded_at"`
}

type createTypeRequest struct {
	Kind string `json:"kind" validate:"required,oneof=vaccination deworming"`
	Name string `json:"name" validate:"required,max=80"`
}

type updateTypeRequest struct {
	Active *bool `json:"active" validate:"required"`
}

type careTypeResponse struct {
	ID     string `json:"id"`
	Kind   Kind   `json:"kind"`
	Name   string `json:"name"`
	Active bool   `json:"active"`
}

// recordEventHandler godoc
// @Summary Registrar un cuidado
// @Description Vacuna, desparasitación o pesaje. Vacunas y desparasitaciones requieren un tipo activo del catálogo.
// @Tags care
// @Accept json
// @Produce json
// @Param animalID path string true "Animal ID"
// @Param payload body recordEventRequest true "Evento"
// @Success 201 {object} eventResponse
// @Failure 400 {string} string "validación"
// @Failure 404 {string} string "animal / tipo no encontrado"
// @Failure 401 {string} string "unauthorized"
// @Router /animals/{animalID}/care [post]
func recordEventHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := httpx.RequireUser(w, r); !ok {
			return
		}

		var req recordEventRequest
		if err := httpx.Decode(r, &req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		var date time.Time
		if strings.TrimSpace(req.Date) != "" {
			d, err := dates.Parse(req.Date)
			if err != nil {
				http.Error(w, "date must be YYYY-MM-DD", http.StatusBadRequest)
				return
			}
			date = d
		}

		e, err := svc.Record(r.Context(), chi.URLParam(r, "animalID"), RecordInput{
			Kind:         Kind(req.Kind),
			TypeID:       req.TypeID,
			Date:         date,
			Primer:       req.Primer,
			Value:        req.Value,
			Lot:          req.Lot,
			Veterinarian: req.Veterinarian,
			Reaction:     req.Reaction,
			Notes:        req.Notes,
		})
		if err != nil {
			writeError(w, err)
			return
		}

		cat, err := svc.Catalog(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}
		httpx.WriteJSON(w, http.StatusCreated, toEventResponse(e, cat))
	}
}

// listEventsHandler godoc
// @Summary Historial de cuidados
// @Description Historial de un animal, más reciente primero. `kind` filtra por familia.
// @Tags care
// @Produce json
// @Param animalID path string true "Animal ID"
// @Param kind query string false "vaccination, deworming, weight"
// @Success 200 {array} eventResponse
// @Failure 401 {string} string "unauthorized"
// @Router /animals/{animalID}/care [get]
func listEventsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := httpx.RequireUser(w, r); !ok {
			return
		}

		items, err := svc.History(r.Context(), chi.URLParam(r, "animalID"), Kind(strings.TrimSpace(r.URL.Query().Get("kind"))))
		if err != nil {
			writeError(w, err)
			return
		}
		cat, err := svc.Catalog(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}

		out := make([]eventResponse, 0, len(items))
		for _, e := range items {
			out = append(out, toEventResponse(e, cat))
		}
		httpx.WriteJSON(w, http.StatusOK, out)
	}
}

// deleteEventHandler godoc
// @Summary Borrar un evento de cuidado
// @Tags care
// @Param animalID path string true "Animal ID"
// @Param eventID path string true "Event ID"
// @Success 204
// @Failure 404 {string} string "not found"
// @Router /animals/{animalID}/care/{eventID} [delete]
func deleteEventHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := httpx.RequireUser(w, r); !ok {
			return
		}

		if err := svc.Delete(r.Context(), chi.URLParam(r, "animalID"), chi.URLParam(r, "eventID")); err != nil {
			writeError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// listTypesHandler godoc
// @Summary Catálogo de vacunas y antiparasitarios
// @Tags care
// @Produce json
// @Param kind query string false "vaccination, deworming"
// @Param active query bool false "Solo tipos activos"
// @Success 200 {array} careTypeResponse
// @Router /care-types [get]
func listTypesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := httpx.RequireUser(w, r); !ok {
			return
		}

		q := r.URL.Query()
		activeOnly := false
		if v := q.Get("active"); v != "" {
			b, err := strconv.ParseBool(v)
			if err != nil {
				http.Error(w, "active must be a boolean", http.StatusBadRequest)
				return
			}
			activeOnly = b
		}

		cat, err := svc.Catalog(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}

		kind := Kind(strings.TrimSpace(q.Get("kind")))
		types := cat.All(kind)
		if activeOnly {
			types = cat.Active(kind)
		}

		out := make([]careTypeResponse, 0, len(types))
		for _, t := range types {
			out = append(out, toCareTypeResponse(t))
		}
		httpx.WriteJSON(w, http.StatusOK, out)
	}
}

// createTypeHandler godoc
// @Summary Crear un tipo de vacuna o antiparasitario
// @Tags care
// @Accept json
// @Produce json
// @Param payload body createTypeRequest true "Tipo"
// @Success 201 {object} careTypeResponse
// @Failure 400 {string} string "validación"
// @Failure 409 {string} string "ya existe"
// @Router /care-types [post]
func createTypeHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := httpx.RequireUser(w, r); !ok {
			return
		}

		var req createTypeRequest
		if err := httpx.Decode(r, &req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		t, err := svc.CreateType(r.Context(), Kind(req.Kind), req.Name)
		if err != nil {
			writeError(w, err)
			return
		}
		httpx.WriteJSON(w, http.StatusCreated, toCareTypeResponse(t))
	}
}

// updateTypeHandler activa/desactiva un tipo del catálogo.
// updateTypeHandler godoc
// @Summary Activar o desactivar un tipo
// @Description Los eventos históricos de un tipo inactivo siguen siendo válidos.
// @Tags care
// @Accept json
// @Produce json
// @Param typeID path string true "Type ID"
// @Param payload body updateTypeRequest true "Estado"
// @Success 200 {object} careTypeResponse
// @Failure 404 {string} string "not found"
// @Router /care-types/{typeID} [patch]
func updateTypeHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := httpx.RequireUser(w, r); !ok {
			return
		}

		var req updateTypeRequest
		if err := httpx.Decode(r, &req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		t, err := svc.SetTypeActive(r.Context(), chi.URLParam(r, "typeID"), *req.Active)
		if err != nil {
			writeError(w, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, toCareTypeResponse(t))
	}
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput),
		errors.Is(err, ErrInactiveType),
		errors.Is(err, ErrTypeKindInvalid):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrAnimalNotFound):
		http.Error(w, "animal not found", http.StatusNotFound)
	case errors.Is(err, ErrTypeNotFound):
		http.Error(w, "care type not found", http.StatusNotFound)
	case errors.Is(err, ErrNotFound):
		http.Error(w, "care event not found", http.StatusNotFound)
	case errors.Is(err, ErrDuplicate):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func toEventResponse(e Event, cat Catalog) eventResponse {
	resp := eventResponse{
		ID:           e.ID,
		AnimalID:     e.AnimalID,
		Kind:         e.Kind,
		TypeID:       e.TypeID,
		Date:         e.Date.Format(dates.Layout),
		Primer:       e.Primer,
		Value:        e.Value,
		Lot:          e.Lot,
		Veterinarian: e.Veterinarian,
		Reaction:     e.Reaction,
		Notes:        e.Notes,
		RecordedAt:   e.RecordedAt,
	}
	if e.TypeID != "" {
		resp.TypeName = cat.Name(e.TypeID)
	}
	return resp
}

func toCareTypeResponse(t CareType) careTypeResponse {
	return careTypeResponse{ID: t.ID, Kind: t.Kind, Name: t.Name, Active: t.Active}
}
