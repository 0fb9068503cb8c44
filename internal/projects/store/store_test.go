package store

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/GoSim-25-26J-441/project-board/internal/projects/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	calls [][]domain.Project
}

func (r *recorder) observe(items []domain.Project) {
	r.calls = append(r.calls, items)
}

func TestProjectStore_Create(t *testing.T) {
	t.Run("creates an active project and notifies", func(t *testing.T) {
		s := New()
		rec := &recorder{}
		s.Subscribe(rec.observe)

		id := s.Create("Build API", "Design and implement REST API", 3)
		require.NotEmpty(t, id)

		snapshot := s.Snapshot()
		require.Len(t, snapshot, 1)
		assert.Equal(t, domain.Project{
			ID:          id,
			Title:       "Build API",
			Description: "Design and implement REST API",
			People:      3,
			Status:      domain.StatusActive,
		}, snapshot[0])

		require.Len(t, rec.calls, 1)
		assert.Equal(t, snapshot, rec.calls[0])
	})

	t.Run("preserves insertion order and assigns unique ids", func(t *testing.T) {
		s := New()
		seen := make(map[string]bool)
		for i := 0; i < 50; i++ {
			id := s.Create(fmt.Sprintf("title %d", i), "description", 2)
			assert.False(t, seen[id], "duplicate id %s", id)
			seen[id] = true
		}

		snapshot := s.Snapshot()
		require.Len(t, snapshot, 50)
		for i, p := range snapshot {
			assert.Equal(t, fmt.Sprintf("title %d", i), p.Title)
		}
	})

	t.Run("regenerates colliding ids", func(t *testing.T) {
		ids := []string{"dup", "dup", "dup", "fresh"}
		next := 0
		s := New(WithIDGenerator(func() string {
			id := ids[next]
			next++
			return id
		}))

		first := s.Create("first", "description", 2)
		second := s.Create("second", "description", 2)
		assert.Equal(t, "dup", first)
		assert.Equal(t, "fresh", second)
	})

	t.Run("falls back to uuids when the generator keeps colliding", func(t *testing.T) {
		calls := 0
		s := New(WithIDGenerator(func() string {
			calls++
			return "dup"
		}))

		first := s.Create("first", "description", 2)
		second := s.Create("second", "description", 2)
		assert.Equal(t, "dup", first)
		assert.Equal(t, 1+maxIDAttempts, calls)
		_, err := uuid.Parse(second)
		assert.NoError(t, err)
		assert.Equal(t, 2, s.Len())
	})
}

func TestProjectStore_MoveStatus(t *testing.T) {
	t.Run("moves an existing project", func(t *testing.T) {
		s := New()
		id := s.Create("Build API", "Design and implement REST API", 3)
		other := s.Create("Write docs", "Document the API", 2)

		rec := &recorder{}
		s.Subscribe(rec.observe)

		moved := s.MoveStatus(id, domain.StatusFinished)
		assert.True(t, moved)

		snapshot := s.Snapshot()
		assert.Equal(t, domain.StatusFinished, snapshot[0].Status)
		assert.Equal(t, domain.StatusActive, snapshot[1].Status)
		assert.Equal(t, other, snapshot[1].ID)

		require.Len(t, rec.calls, 1)
		assert.Equal(t, snapshot, rec.calls[0])
	})

	t.Run("same status is a no-op", func(t *testing.T) {
		s := New()
		id := s.Create("Build API", "Design and implement REST API", 3)
		rec := &recorder{}
		s.Subscribe(rec.observe)

		assert.False(t, s.MoveStatus(id, domain.StatusActive))
		assert.Empty(t, rec.calls)

		assert.True(t, s.MoveStatus(id, domain.StatusFinished))
		assert.False(t, s.MoveStatus(id, domain.StatusFinished))
		assert.Len(t, rec.calls, 1)
	})

	t.Run("unknown id is a no-op", func(t *testing.T) {
		s := New()
		s.Create("Build API", "Design and implement REST API", 3)
		before := s.Snapshot()
		rec := &recorder{}
		s.Subscribe(rec.observe)

		assert.False(t, s.MoveStatus("missing", domain.StatusFinished))
		assert.Empty(t, rec.calls)
		assert.Equal(t, before, s.Snapshot())
	})

	t.Run("invalid status is rejected", func(t *testing.T) {
		s := New()
		id := s.Create("Build API", "Design and implement REST API", 3)
		assert.False(t, s.MoveStatus(id, domain.Status("archived")))
		p, ok := s.Get(id)
		require.True(t, ok)
		assert.Equal(t, domain.StatusActive, p.Status)
	})

	t.Run("projects can move back and forth", func(t *testing.T) {
		s := New()
		id := s.Create("Build API", "Design and implement REST API", 3)
		assert.True(t, s.MoveStatus(id, domain.StatusFinished))
		assert.True(t, s.MoveStatus(id, domain.StatusActive))
		assert.True(t, s.MoveStatus(id, domain.StatusFinished))
	})
}

func TestProjectStore_Subscribe(t *testing.T) {
	t.Run("observers are called in registration order with identical contents", func(t *testing.T) {
		s := New()
		var order []string
		var first, second []domain.Project

		s.Subscribe(func(items []domain.Project) {
			order = append(order, "O1")
			first = items
		})
		s.Subscribe(func(items []domain.Project) {
			order = append(order, "O2")
			second = items
		})

		s.Create("Build API", "Design and implement REST API", 3)
		assert.Equal(t, []string{"O1", "O2"}, order)
		assert.Equal(t, first, second)
	})

	t.Run("late observers get no replay", func(t *testing.T) {
		s := New()
		s.Create("first", "description", 2)

		rec := &recorder{}
		s.Subscribe(rec.observe)
		assert.Empty(t, rec.calls)

		s.Create("second", "description", 2)
		require.Len(t, rec.calls, 1)
		assert.Len(t, rec.calls[0], 2)
	})

	t.Run("observer mutations do not leak into the store", func(t *testing.T) {
		s := New()
		s.Subscribe(func(items []domain.Project) {
			items[0].Title = "tampered"
			items[0].Status = domain.StatusFinished
		})

		id := s.Create("Build API", "Design and implement REST API", 3)
		p, ok := s.Get(id)
		require.True(t, ok)
		assert.Equal(t, "Build API", p.Title)
		assert.Equal(t, domain.StatusActive, p.Status)
	})
}

func TestProjectStore_ObserverHandOff(t *testing.T) {
	s := New()
	handed := make(chan []domain.Project, 1)
	s.Subscribe(func(items []domain.Project) { handed <- items })

	s.Create("Build API", "Design and implement REST API", 3)

	read := make(chan int, 1)
	go func() {
		items := <-handed
		assert.Equal(t, s.Snapshot(), items)
		read <- s.Len()
	}()

	select {
	case n := <-read:
		assert.Equal(t, 1, n)
	case <-time.After(time.Second):
		t.Fatal("reading the store after the observer returned did not complete")
	}
}

func TestProjectStore_Concurrent(t *testing.T) {
	s := New()
	var mu sync.Mutex
	var lengths []int
	s.Subscribe(func(items []domain.Project) {
		mu.Lock()
		lengths = append(lengths, len(items))
		mu.Unlock()
	})

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id := s.Create("concurrent", "description", 2)
			s.MoveStatus(id, domain.StatusFinished)
		}()
	}
	wg.Wait()

	assert.Equal(t, 20, s.Len())
	assert.Len(t, lengths, 40)
	for _, p := range s.Snapshot() {
		assert.Equal(t, domain.StatusFinished, p.Status)
	}
}
