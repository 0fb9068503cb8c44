package service

import (
	"context"
	"log"
	"strings"

	"github.com/GoSim-25-26J-441/project-board/internal/projects/domain"
	"github.com/GoSim-25-26J-441/project-board/internal/projects/view"
	"github.com/GoSim-25-26J-441/project-board/internal/validation"
)

// Store is the subset of the project store the service depends on.
type Store interface {
	Create(title, description string, people int) string
	MoveStatus(id string, status domain.Status) bool
	Get(id string) (domain.Project, bool)
	Snapshot() []domain.Project
}

// ProjectService handles project-related business logic
type ProjectService struct {
	store  Store
	bounds validation.Bounds
}

// NewProjectService creates a new project service
func NewProjectService(store Store, bounds validation.Bounds) *ProjectService {
	return &ProjectService{
		store:  store,
		bounds: bounds,
	}
}

// Create validates the input and adds a new active project
func (s *ProjectService) Create(ctx context.Context, req domain.CreateProjectRequest) (*domain.Project, error) {
	req.Title = strings.TrimSpace(req.Title)
	req.Description = strings.TrimSpace(req.Description)

	if err := validation.ProjectInput(req, s.bounds); err != nil {
		return nil, err
	}

	id := s.store.Create(req.Title, req.Description, req.People)
	p, ok := s.store.Get(id)
	if !ok {
		return nil, domain.ErrNotFound
	}

	log.Printf("[projects] created id=%s title=%q people=%d", p.ID, p.Title, p.People)
	return &p, nil
}

// Move changes a project's status. It reports false with a nil error when
// the project already has that status.
func (s *ProjectService) Move(ctx context.Context, id string, status domain.Status) (bool, error) {
	if !status.Valid() {
		return false, domain.ErrInvalidStatus
	}
	if _, ok := s.store.Get(id); !ok {
		return false, domain.ErrNotFound
	}

	moved := s.store.MoveStatus(id, status)
	if moved {
		log.Printf("[projects] moved id=%s status=%s", id, status)
	}
	return moved, nil
}

// Get returns a single project
func (s *ProjectService) Get(ctx context.Context, id string) (*domain.Project, error) {
	p, ok := s.store.Get(id)
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &p, nil
}

// List returns all projects, or only those with status when it is non-nil
func (s *ProjectService) List(ctx context.Context, status *domain.Status) []domain.Project {
	snapshot := s.store.Snapshot()
	if status == nil {
		return snapshot
	}
	return domain.Filter(snapshot, *status)
}

// Board renders both board columns
func (s *ProjectService) Board(ctx context.Context) view.Board {
	return view.NewBoard(s.store.Snapshot())
}
