package domain

import "strings"

// DefaultTaskTitle is the title given to tasks created from the board.
const DefaultTaskTitle = "New Task"

// Task is a titled, completable unit of work owned by one List.
type Task struct {
	ID        ID
	Title     string
	Completed bool
}

// NewTask constructs an open task.
func NewTask(id ID, title string) (Task, error) {
	title = strings.TrimSpace(title)
	if !id.Valid() {
		return Task{}, ErrInvalidID
	}
	if title == "" {
		return Task{}, ErrInvalidTitle
	}
	return Task{ID: id, Title: title}, nil
}

// Rename replaces the title. Blank titles are rejected and leave the task untouched.
func (t *Task) Rename(title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return ErrInvalidTitle
	}
	t.Title = title
	return nil
}

// Toggle flips the completed flag.
func (t *Task) Toggle() {
	t.Completed = !t.Completed
}
