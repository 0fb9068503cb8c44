package store

import (
	"slices"
	"sync"

	"github.com/GoSim-25-26J-441/project-board/internal/state"
	"github.com/GoSim-25-26J-441/project-board/internal/todos/domain"
	"github.com/google/uuid"
)

// Store keeps todos in insertion order and notifies listeners after every
// add or delete.
type Store struct {
	mu        sync.RWMutex
	todos     []domain.Todo
	listeners state.Listeners[domain.Todo]
}

func New() *Store {
	return &Store{}
}

// Add appends a todo and returns its id.
func (s *Store) Add(content string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := uuid.NewString()
	s.todos = append(s.todos, domain.Todo{ID: id, Content: content})
	s.listeners.Notify(s.todos)
	return id
}

// Delete removes todo id. Unknown ids are a no-op and return false.
func (s *Store) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := slices.IndexFunc(s.todos, func(t domain.Todo) bool { return t.ID == id })
	if i < 0 {
		return false
	}
	s.todos = slices.Delete(s.todos, i, i+1)
	s.listeners.Notify(s.todos)
	return true
}

// List returns an ordered copy of every todo.
func (s *Store) List() []domain.Todo {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return state.Copy(s.todos)
}

// Subscribe registers fn for future changes.
func (s *Store) Subscribe(fn state.Listener[domain.Todo]) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners.Add(fn)
}

// LogChanges returns a listener that logs the list size after every change.
func LogChanges(logf func(format string, args ...any)) state.Listener[domain.Todo] {
	return func(items []domain.Todo) {
		logf("[todos] list changed, %d items", len(items))
	}
}
