package digest

import (
	"fmt"
	"log"

	"github.com/GoSim-25-26J-441/project-board/internal/projects/domain"
	"github.com/robfig/cron/v3"
)

// Summary counts the projects in each column.
type Summary struct {
	Total    int `json:"total"`
	Active   int `json:"active"`
	Finished int `json:"finished"`
}

func (s Summary) String() string {
	return fmt.Sprintf("total=%d active=%d finished=%d", s.Total, s.Active, s.Finished)
}

// Summarize counts a snapshot.
func Summarize(snapshot []domain.Project) Summary {
	sum := Summary{Total: len(snapshot)}
	for _, p := range snapshot {
		switch p.Status {
		case domain.StatusActive:
			sum.Active++
		case domain.StatusFinished:
			sum.Finished++
		}
	}
	return sum
}

// SnapshotFunc returns the current board contents.
type SnapshotFunc func() []domain.Project

// Scheduler logs a board digest on a cron schedule.
type Scheduler struct {
	cron     *cron.Cron
	snapshot SnapshotFunc
	logf     func(format string, args ...any)
}

// NewScheduler creates a scheduler for spec, a cron expression with a
// leading seconds field (e.g. "0 0 9 * * *").
func NewScheduler(spec string, snapshot SnapshotFunc) (*Scheduler, error) {
	s := &Scheduler{
		cron:     cron.New(cron.WithSeconds()),
		snapshot: snapshot,
		logf:     log.Printf,
	}

	if _, err := s.cron.AddFunc(spec, s.Run); err != nil {
		return nil, fmt.Errorf("invalid digest schedule %q: %w", spec, err)
	}
	return s, nil
}

// Start runs the schedule in the background.
func (s *Scheduler) Start() {
	s.logf("[digest] scheduler started")
	s.cron.Start()
}

// Stop halts the schedule and waits for a running digest to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
}

// Run logs one digest.
func (s *Scheduler) Run() {
	s.logf("[digest] %s", Summarize(s.snapshot()))
}
