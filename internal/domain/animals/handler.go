package animals

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"cat-shelter-admin/internal/platform/dates"
	"cat-shelter-admin/internal/platform/httpx"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/animals", func(ar chi.Router) {
		ar.Post("/", createAnimalHandler(svc))
		ar.Get("/", listAnimalsHandler(svc))
		ar.Get("/{animalID}", getAnimalHandler(svc))
		ar.Patch("/{animalID}", updateAnimalHandler(svc))
	})
}

type createAnimalRequest struct {
	Name        string `json:"name" validate:"required,max=120"`
	Species     string `json:"species" validate:"omitempty,oneof=cat dog other"`
	Sex         string `json:"sex" validate:"omitempty,oneof=male female unknown"`
	BirthDate   string `json:"birth_date"` // YYYY-MM-DD opcional
	Microchip   string `json:"microchip" validate:"max=64"`
	Status      string `json:"status" validate:"omitempty,oneof=normal adopted deceased foster other"`
	EntryDate   string `json:"entry_date"`
	EntryReason string `json:"entry_reason" validate:"max=200"`
	ExitDate    string `json:"exit_date"`
	ExitReason  string `json:"exit_reason" validate:"max=200"`
	Notes       string `json:"notes"`
}

type animalResponse struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	Species       Species    `json:"species"`
	Sex           Sex        `json:"sex"`
	BirthDate     *time.Time `json:"birth_date,omitempty"`
	AgeHuman      string     `json:"age_human"`
	Microchip     string     `json:"microchip"`
	Status        Status     `json:"status"`
	Resident      bool       `json:"resident"`
	EntryDate     *time.Time `json:"entry_date,omitempty"`
	EntryReason   string     `json:"entry_reason"`
	ExitDate      *time.Time `json:"exit_date,omitempty"`
	ExitReason    string     `json:"exit_reason"`
	PhotoFilename string     `json:"photo,omitempty"`
	Notes         string     `json:"notes"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

type updateAnimalRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=120"`
	Species     *string `json:"species" validate:"omitempty,oneof=cat dog other"`
	Sex         *string `json:"sex" validate:"omitempty,oneof=male female unknown"`
	Microchip   *string `json:"microchip"`
	Status      *string `json:"status" validate:"omitempty,oneof=normal adopted deceased foster other"`
	EntryReason *string `json:"entry_reason"`
	ExitReason  *string `json:"exit_reason"`
	Notes       *string `json:"notes"`
}

// createAnimalHandler godoc
// @Summary Registrar un animal
// @Description Alta de un animal en el refugio. Fechas en formato YYYY-MM-DD.
// @Tags animals
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev"
// @Param Authorization header string false "Bearer <secreto del personal>"
// @Param payload body createAnimalRequest true "Datos del animal"
// @Success 201 {object} animalResponse
// @Failure 400 {string} string "invalid json / validación"
// @Failure 401 {string} string "unauthorized"
// @Router /animals [post]
func createAnimalHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := httpx.RequireUser(w, r); !ok {
			return
		}

		var req createAnimalRequest
		if err := httpx.Decode(r, &req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		var parsed [3]*time.Time
		for i, raw := range []string{req.BirthDate, req.EntryDate, req.ExitDate} {
			t, err := dates.ParseOptional(raw)
			if err != nil {
				http.Error(w, "dates must be YYYY-MM-DD", http.StatusBadRequest)
				return
			}
			parsed[i] = t
		}

		a, err := svc.Create(r.Context(), CreateInput{
			Name:        req.Name,
			Species:     Species(req.Species),
			Sex:         Sex(req.Sex),
			BirthDate:   parsed[0],
			Microchip:   req.Microchip,
			Status:      Status(req.Status),
			EntryDate:   parsed[1],
			EntryReason: req.EntryReason,
			ExitDate:    parsed[2],
			ExitReason:  req.ExitReason,
			Notes:       req.Notes,
		})
		if err != nil {
			writeError(w, err)
			return
		}

		httpx.WriteJSON(w, http.StatusCreated, toAnimalResponse(a, time.Now()))
	}
}

// listAnimalsHandler godoc
// @Summary Buscar animales
// @Description Lista animales ordenados por nombre. `q` busca por nombre (sin distinguir mayúsculas).
// @Tags animals
// @Produce json
// @Param q query string false "Texto a buscar en el nombre"
// @Param status query string false "normal, adopted, deceased, foster, other"
// @Param resident query bool false "Solo residentes actuales"
// @Success 200 {array} animalResponse
// @Failure 400 {string} string "filtro inválido"
// @Failure 401 {string} string "unauthorized"
// @Router /animals [get]
func listAnimalsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := httpx.RequireUser(w, r); !ok {
			return
		}

		q := r.URL.Query()
		filter := ListFilter{
			Query:   q.Get("q"),
			Status:  Status(strings.TrimSpace(q.Get("status"))),
			Species: Species(strings.TrimSpace(q.Get("species"))),
		}
		if v := q.Get("resident"); v != "" {
			b, err := strconv.ParseBool(v)
			if err != nil {
				http.Error(w, "resident must be a boolean", http.StatusBadRequest)
				return
			}
			filter.ResidentOnly = b
		}

		items, err := svc.List(r.Context(), filter)
		if err != nil {
			writeError(w, err)
			return
		}

		now := time.Now()
		out := make([]animalResponse, 0, len(items))
		for _, a := range items {
			out = append(out, toAnimalResponse(a, now))
		}
		httpx.WriteJSON(w, http.StatusOK, out)
	}
}

// getAnimalHandler godoc
// @Summary Ficha de un animal
// @Tags animals
// @Produce json
// @Param animalID path string true "Animal ID"
// @Success 200 {object} animalResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "not found"
// @Router /animals/{animalID} [get]
func getAnimalHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := httpx.RequireUser(w, r); !ok {
			return
		}

		a, err := svc.GetByID(r.Context(), chi.URLParam(r, "animalID"))
		if err != nil {
			writeError(w, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, toAnimalResponse(a, time.Now()))
	}
}

// updateAnimalHandler aplica PATCH. Las fechas aceptan "YYYY-MM-DD" o null (limpiar).
// updateAnimalHandler godoc
// @Summary Actualizar un animal
// @Description PATCH parcial. Las fechas nullable se borran enviando null.
// @Tags animals
// @Accept json
// @Produce json
// @Param animalID path string true "Animal ID"
// @Param payload body updateAnimalRequest true "Campos a cambiar"
// @Success 200 {object} animalResponse
// @Failure 400 {string} string "validación"
// @Failure 404 {string} string "not found"
// @Router /animals/{animalID} [patch]
func updateAnimalHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := httpx.RequireUser(w, r); !ok {
			return
		}

		// Decodificar a map primero para detectar presencia de campos de fecha (null = limpiar).
		var raw map[string]json.RawMessage
		if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		var req updateAnimalRequest
		{
			b, _ := json.Marshal(raw)
			if err := json.Unmarshal(b, &req); err != nil {
				http.Error(w, "invalid json", http.StatusBadRequest)
				return
			}
			if err := httpx.Validate(req); err != nil {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
		}

		in := UpdateInput{
			Name:        req.Name,
			Microchip:   req.Microchip,
			EntryReason: req.EntryReason,
			ExitReason:  req.ExitReason,
			Notes:       req.Notes,
		}
		if req.Species != nil {
			sp := Species(*req.Species)
			in.Species = &sp
		}
		if req.Sex != nil {
			sx := Sex(*req.Sex)
			in.Sex = &sx
		}
		if req.Status != nil {
			st := Status(*req.Status)
			in.Status = &st
		}

		for key, dst := range map[string]*DatePatch{
			"birth_date": &in.BirthDate,
			"entry_date": &in.EntryDate,
			"exit_date":  &in.ExitDate,
		} {
			p, err := parseDatePatch(raw, key)
			if err != nil {
				http.Error(w, key+" must be YYYY-MM-DD or null", http.StatusBadRequest)
				return
			}
			*dst = p
		}

		updated, err := svc.Update(r.Context(), chi.URLParam(r, "animalID"), in)
		if err != nil {
			writeError(w, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, toAnimalResponse(updated, time.Now()))
	}
}

func parseDatePatch(raw map[string]json.RawMessage, key string) (DatePatch, error) {
	v, exists := raw[key]
	if !exists {
		return DatePatch{}, nil
	}
	if string(v) == "null" {
		return DatePatch{Present: true}, nil
	}
	var s string
	if err := json.Unmarshal(v, &s); err != nil {
		return DatePatch{}, err
	}
	t, err := dates.ParseOptional(s)
	if err != nil {
		return DatePatch{}, err
	}
	return DatePatch{Present: true, Value: t}, nil
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrNotFound):
		http.Error(w, "animal not found", http.StatusNotFound)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func toAnimalResponse(a Animal, now time.Time) animalResponse {
	return animalResponse{
		ID:            a.ID,
		Name:          a.Name,
		Species:       a.Species,
		Sex:           a.Sex,
		BirthDate:     a.BirthDate,
		AgeHuman:      AgeText(a.BirthDate, now),
		Microchip:     a.Microchip,
		Status:        a.Status,
		Resident:      a.IsResident(),
		EntryDate:     a.EntryDate,
		EntryReason:   a.EntryReason,
		ExitDate:      a.ExitDate,
		ExitReason:    a.ExitReason,
		PhotoFilename: a.PhotoFilename,
		Notes:         a.Notes,
		CreatedAt:     a.CreatedAt,
		UpdatedAt:     a.UpdatedAt,
	}
}
