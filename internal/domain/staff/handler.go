package staff

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"cat-shelter-admin/internal/platform/httpx"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/staff", func(sr chi.Router) {
		sr.Post("/", createMemberHandler(svc))
		sr.Get("/", listMembersHandler(svc))
		sr.Get("/{staffID}", getMemberHandler(svc))
		sr.Delete("/{staffID}", deactivateMemberHandler(svc))
	})
}

type createMemberRequest struct {
	Name  string `json:"name" validate:"required,max=120"`
	Role  string `json:"role" validate:"omitempty,oneof=employee veterinarian"`
	Phone string `json:"phone" validate:"max=40"`
	Email string `json:"email" validate:"omitempty,email"`
}

type memberResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Role      Role      `json:"role"`
	Phone     string    `json:"phone,omitempty"`
	Email     string    `json:"email,omitempty"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}

// createMemberHandler godoc
// @Summary Alta de empleado o veterinario
// @Tags staff
// @Accept json
// @Produce json
// @Param payload body createMemberRequest true "Miembro"
// @Success 201 {object} memberResponse
// @Failure 400 {string} string "validación"
// @Router /staff [post]
func createMemberHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := httpx.RequireUser(w, r); !ok {
			return
		}

		var req createMemberRequest
		if err := httpx.Decode(r, &req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		m, err := svc.Create(r.Context(), CreateInput{
			Name:  req.Name,
			Role:  Role(req.Role),
			Phone: req.Phone,
			Email: req.Email,
		})
		if err != nil {
			writeError(w, err)
			return
		}
		httpx.WriteJSON(w, http.StatusCreated, toMemberResponse(m))
	}
}

// listMembersHandler godoc
// @Summary Listar personal
// @Tags staff
// @Produce json
// @Param role query string false "employee, veterinarian"
// @Param active query bool false "Solo activos"
// @Success 200 {array} memberResponse
// @Router /staff [get]
func listMembersHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := httpx.RequireUser(w, r); !ok {
			return
		}

		q := r.URL.Query()
		filter := ListFilter{Role: Role(strings.TrimSpace(q.Get("role")))}
		if v := q.Get("active"); v != "" {
			b, err := strconv.ParseBool(v)
			if err != nil {
				http.Error(w, "active must be a boolean", http.StatusBadRequest)
				return
			}
			filter.ActiveOnly = b
		}

		items, err := svc.List(r.Context(), filter)
		if err != nil {
			writeError(w, err)
			return
		}
		out := make([]memberResponse, 0, len(items))
		for _, m := range items {
			out = append(out, toMemberResponse(m))
		}
		httpx.WriteJSON(w, http.StatusOK, out)
	}
}

// getMemberHandler godoc
// @Summary Detalle de un miembro del personal
// @Tags staff
// @Produce json
// @Param staffID path string true "Staff ID"
// @Success 200 {object} memberResponse
// @Failure 404 {string} string "not found"
// @Router /staff/{staffID} [get]
func getMemberHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := httpx.RequireUser(w, r); !ok {
			return
		}

		m, err := svc.GetByID(r.Context(), chi.URLParam(r, "staffID"))
		if err != nil {
			writeError(w, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, toMemberResponse(m))
	}
}

// deactivateMemberHandler: baja lógica, el registro se conserva.
// deactivateMemberHandler godoc
// @Summary Dar de baja a un miembro del personal
// @Description Baja lógica: las citas históricas lo conservan.
// @Tags staff
// @Produce json
// @Param staffID path string true "Staff ID"
// @Success 200 {object} memberResponse
// @Failure 404 {string} string "not found"
// @Router /staff/{staffID} [delete]
func deactivateMemberHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := httpx.RequireUser(w, r); !ok {
			return
		}

		m, err := svc.Deactivate(r.Context(), chi.URLParam(r, "staffID"))
		if err != nil {
			writeError(w, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, toMemberResponse(m))
	}
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrNotFound):
		http.Error(w, "staff member not found", http.StatusNotFound)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func toMemberResponse(m Member) memberResponse {
	return memberResponse{
		ID:        m.ID,
		Name:      m.Name,
		Role:      m.Role,
		Phone:     m.Phone,
		Email:     m.Email,
		Active:    m.Active,
		CreatedAt: m.CreatedAt,
	}
}
