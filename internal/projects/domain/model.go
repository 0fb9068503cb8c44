package domain

import (
	"fmt"
	"strings"
)

// Status is the board column a project sits in.
type Status string

// Status constants
const (
	StatusActive   Status = "active"
	StatusFinished Status = "finished"
)

// ParseStatus maps a case-insensitive status name to a Status.
func ParseStatus(s string) (Status, error) {
	switch Status(strings.ToLower(strings.TrimSpace(s))) {
	case StatusActive:
		return StatusActive, nil
	case StatusFinished:
		return StatusFinished, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidStatus, s)
}

// Valid reports whether s is one of the defined statuses.
func (s Status) Valid() bool {
	return s == StatusActive || s == StatusFinished
}

func (s Status) String() string {
	return string(s)
}

// Project is a single board entry. It holds only value fields so a copied
// Project never aliases the store's record.
type Project struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	People      int    `json:"people"`
	Status      Status `json:"status"`
}

// CreateProjectRequest carries raw form input for a new project.
type CreateProjectRequest struct {
	Title       string
	Description string
	People      int
}

// Filter returns the projects in snapshot with the given status, keeping order.
func Filter(snapshot []Project, status Status) []Project {
	out := make([]Project, 0, len(snapshot))
	for _, p := range snapshot {
		if p.Status == status {
			out = append(out, p)
		}
	}
	return out
}
