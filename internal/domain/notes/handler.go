package notes

import (
	"errors"
	"net/http"
	"time"

	"cat-shelter-admin/internal/platform/httpx"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Post("/animals/{animalID}/notes", addNoteHandler(svc))
	r.Get("/animals/{animalID}/notes", listNotesHandler(svc))
	r.Get("/notes", searchNotesHandler(svc))
}

type addNoteRequest struct {
	Content string `json:"content" validate:"required"`
}

type noteResponse struct {
	ID        string    `json:"id"`
	AnimalID  string    `json:"animal_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// addNoteHandler godoc
// @Summary Agregar una nota a un animal
// @Tags notes
// @Accept json
// @Produce json
// @Param animalID path string true "Animal ID"
// @Param payload body addNoteRequest true "Nota"
// @Success 201 {object} noteResponse
// @Failure 400 {string} string "validación"
// @Failure 404 {string} string "animal not found"
// @Router /animals/{animalID}/notes [post]
func addNoteHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := httpx.RequireUser(w, r); !ok {
			return
		}

		var req addNoteRequest
		if err := httpx.Decode(r, &req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		n, err := svc.Add(r.Context(), chi.URLParam(r, "animalID"), req.Content)
		if err != nil {
			writeError(w, err)
			return
		}
		httpx.WriteJSON(w, http.StatusCreated, toNoteResponse(n))
	}
}

// listNotesHandler godoc
// @Summary Notas de un animal
// @Description Más reciente primero.
// @Tags notes
// @Produce json
// @Param animalID path string true "Animal ID"
// @Success 200 {array} noteResponse
// @Failure 404 {string} string "animal not found"
// @Router /animals/{animalID}/notes [get]
func listNotesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := httpx.RequireUser(w, r); !ok {
			return
		}

		items, err := svc.ListByAnimal(r.Context(), chi.URLParam(r, "animalID"))
		if err != nil {
			writeError(w, err)
			return
		}
		writeNotes(w, items)
	}
}

// searchNotesHandler godoc
// @Summary Buscar notas
// @Description Sin `q` devuelve todas las notas, más reciente primero.
// @Tags notes
// @Produce json
// @Param q query string false "Texto a buscar"
// @Success 200 {array} noteResponse
// @Router /notes [get]
func searchNotesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := httpx.RequireUser(w, r); !ok {
			return
		}

		items, err := svc.Search(r.Context(), r.URL.Query().Get("q"))
		if err != nil {
			writeError(w, err)
			return
		}
		writeNotes(w, items)
	}
}

func writeNotes(w http.ResponseWriter, items []Note) {
	out := make([]noteResponse, 0, len(items))
	for _, n := range items {
		out = append(out, toNoteResponse(n))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrAnimalNotFound):
		http.Error(w, "animal not found", http.StatusNotFound)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func toNoteResponse(n Note) noteResponse {
	return noteResponse{ID: n.ID, AnimalID: n.AnimalID, Content: n.Content, CreatedAt: n.CreatedAt}
}
