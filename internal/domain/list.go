package domain

import "strings"

// DefaultListTitle is the title given to lists created from the board.
const DefaultListTitle = "New List"

// List is a named, ordered sequence of tasks owned by one Board.
type List struct {
	ID    ID
	Title string
	Tasks []Task
}

// NewList constructs an empty list.
func NewList(id ID, title string) (List, error) {
	title = strings.TrimSpace(title)
	if !id.Valid() {
		return List{}, ErrInvalidID
	}
	if title == "" {
		return List{}, ErrInvalidTitle
	}
	return List{ID: id, Title: title, Tasks: []Task{}}, nil
}

// Rename replaces the title. Blank titles are rejected and leave the list untouched.
func (l *List) Rename(title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return ErrInvalidTitle
	}
	l.Title = title
	return nil
}

// TaskIndex returns the position of the task with id, or -1.
func (l List) TaskIndex(id ID) int {
	for idx := range l.Tasks {
		if l.Tasks[idx].ID == id {
			return idx
		}
	}
	return -1
}

// CompletedCount returns how many tasks are completed.
func (l List) CompletedCount() int {
	count := 0
	for _, task := range l.Tasks {
		if task.Completed {
			count++
		}
	}
	return count
}
