package view

import (
	"fmt"
	"strings"

	"github.com/GoSim-25-26J-441/project-board/internal/projects/domain"
)

// Item is one rendered board card.
type Item struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Persons     string `json:"persons"`
	Assigned    string `json:"assigned"`
}

// List is a board column.
type List struct {
	Status  domain.Status `json:"status"`
	ListID  string        `json:"list_id"`
	Heading string        `json:"heading"`
	Items   []Item        `json:"items"`
}

// Board holds the active column followed by the finished one.
type Board struct {
	Active   List `json:"active"`
	Finished List `json:"finished"`
}

// NewItem renders a single project.
func NewItem(p domain.Project) Item {
	persons := Persons(p.People)
	return Item{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		Persons:     persons,
		Assigned:    persons + " assigned",
	}
}

// NewList renders the column for status from a snapshot.
func NewList(status domain.Status, snapshot []domain.Project) List {
	assigned := domain.Filter(snapshot, status)
	items := make([]Item, 0, len(assigned))
	for _, p := range assigned {
		items = append(items, NewItem(p))
	}
	return List{
		Status:  status,
		ListID:  fmt.Sprintf("%s-projects-list", status),
		Heading: strings.ToUpper(string(status)) + " PROJECTS",
		Items:   items,
	}
}

// NewBoard renders both columns from a snapshot.
func NewBoard(snapshot []domain.Project) Board {
	return Board{
		Active:   NewList(domain.StatusActive, snapshot),
		Finished: NewList(domain.StatusFinished, snapshot),
	}
}

// Persons formats a head count, e.g. "1 person" or "3 persons".
func Persons(n int) string {
	if n > 1 {
		return fmt.Sprintf("%d persons", n)
	}
	return fmt.Sprintf("%d person", n)
}
