package domain

import "errors"

// Todo is a single todo list entry.
type Todo struct {
	ID      string `json:"id"`
	Content string `json:"content"`
}

var (
	ErrNotFound     = errors.New("todo not found")
	ErrEmptyContent = errors.New("please add some todo text")
)
