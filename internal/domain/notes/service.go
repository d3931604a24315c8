package notes

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput   = errors.New("invalid input")
	ErrAnimalNotFound = errors.New("animal not found")
)

const maxContentLen = 4000

type AnimalLookup interface {
	Exists(ctx context.Context, id string) (bool, error)
}

type Service struct {
	repo    Repository
	animals AnimalLookup
	now     func() time.Time
}

func NewService(repo Repository, animals AnimalLookup) *Service {
	return &Service{
		repo:    repo,
		animals: animals,
		now:     time.Now,
	}
}

func (s *Service) Add(ctx context.Context, animalID, content string) (Note, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return Note{}, fmt.Errorf("%w: content required", ErrInvalidInput)
	}
	if len(content) > maxContentLen {
		return Note{}, fmt.Errorf("%w: content too long", ErrInvalidInput)
	}

	ok, err := s.animals.Exists(ctx, strings.TrimSpace(animalID))
	if err != nil {
		return Note{}, err
	}
	if !ok {
		return Note{}, ErrAnimalNotFound
	}

	n := Note{
		ID:        uuid.NewString(),
		AnimalID:  strings.TrimSpace(animalID),
		Content:   content,
		CreatedAt: s.now(),
	}
	if err := s.repo.Create(ctx, n); err != nil {
		return Note{}, err
	}
	return n, nil
}

func (s *Service) ListByAnimal(ctx context.Context, animalID string) ([]Note, error) {
	return s.repo.ListByAnimal(ctx, strings.TrimSpace(animalID))
}

func (s *Service) Search(ctx context.Context, query string) ([]Note, error) {
	return s.repo.Search(ctx, strings.TrimSpace(query))
}
