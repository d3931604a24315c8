package staff

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
)

var ErrInvalidInput = errors.New("invalid input")

// DefaultEmployees se crean solo si no hay personal cargado.
var DefaultEmployees = []string{"Alice", "Bob"}

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

type CreateInput struct {
	Name  string
	Role  Role
	Phone string
	Email string
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Member, error) {
	name := strings.Join(strings.Fields(in.Name), " ")
	if name == "" {
		return Member{}, fmt.Errorf("%w: name required", ErrInvalidInput)
	}
	role := in.Role
	if role == "" {
		role = RoleEmployee
	}
	if !role.Valid() {
		return Member{}, fmt.Errorf("%w: unknown role %q", ErrInvalidInput, role)
	}
	email := strings.TrimSpace(in.Email)
	if email != "" {
		if _, err := mail.ParseAddress(email); err != nil {
			return Member{}, fmt.Errorf("%w: invalid email", ErrInvalidInput)
		}
	}

	m := Member{
		ID:        uuid.NewString(),
		Name:      name,
		Role:      role,
		Phone:     strings.TrimSpace(in.Phone),
		Email:     email,
		Active:    true,
		CreatedAt: s.now(),
	}
	if err := s.repo.Create(ctx, m); err != nil {
		return Member{}, err
	}
	return m, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Member, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Member{}, ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]Member, error) {
	if filter.Role != "" && !filter.Role.Valid() {
		return nil, fmt.Errorf("%w: unknown role %q", ErrInvalidInput, filter.Role)
	}
	return s.repo.List(ctx, filter)
}

// Deactivate da de baja a un miembro. Idempotente.
func (s *Service) Deactivate(ctx context.Context, id string) (Member, error) {
	m, err := s.GetByID(ctx, id)
	if err != nil {
		return Member{}, err
	}
	if !m.Active {
		return m, nil
	}
	m.Active = false
	if err := s.repo.Update(ctx, m); err != nil {
		return Member{}, err
	}
	return m, nil
}

func (s *Service) Exists(ctx context.Context, id string) (bool, error) {
	_, err := s.GetByID(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// SeedDefaults crea DefaultEmployees si la tabla está vacía.
func (s *Service) SeedDefaults(ctx context.Context) (int, error) {
	existing, err := s.repo.List(ctx, ListFilter{})
	if err != nil {
		return 0, err
	}
	if len(existing) > 0 {
		return 0, nil
	}
	for i, name := range DefaultEmployees {
		if _, err := s.Create(ctx, CreateInput{Name: name, Role: RoleEmployee}); err != nil {
			return i, err
		}
	}
	return len(DefaultEmployees), nil
}
