package domain

import "time"

// ChangeOperation describes one applied board mutation.
type ChangeOperation string

// ChangeOperation values recorded by the session journal.
const (
	ChangeOperationAddBoard    ChangeOperation = "add-board"
	ChangeOperationRenameBoard ChangeOperation = "rename-board"
	ChangeOperationDeleteBoard ChangeOperation = "delete-board"
	ChangeOperationSelectBoard ChangeOperation = "select-board"
	ChangeOperationAddList     ChangeOperation = "add-list"
	ChangeOperationRenameList  ChangeOperation = "rename-list"
	ChangeOperationDeleteList  ChangeOperation = "delete-list"
	ChangeOperationAddTask     ChangeOperation = "add-task"
	ChangeOperationRenameTask  ChangeOperation = "rename-task"
	ChangeOperationToggleTask  ChangeOperation = "toggle-task"
	ChangeOperationDeleteTask  ChangeOperation = "delete-task"
)

// ChangeEvent represents a single activity-log entry.
type ChangeEvent struct {
	ID         string
	Operation  ChangeOperation
	BoardID    ID
	ListID     ID
	TaskID     ID
	Title      string
	OccurredAt time.Time
}

// Summary returns a short human-readable description of the operation.
func (o ChangeOperation) Summary() string {
	switch o {
	case ChangeOperationAddBoard:
		return "add board"
	case ChangeOperationRenameBoard:
		return "rename board"
	case ChangeOperationDeleteBoard:
		return "delete board"
	case ChangeOperationSelectBoard:
		return "select board"
	case ChangeOperationAddList:
		return "add list"
	case ChangeOperationRenameList:
		return "rename list"
	case ChangeOperationDeleteList:
		return "delete list"
	case ChangeOperationAddTask:
		return "add task"
	case ChangeOperationRenameTask:
		return "rename task"
	case ChangeOperationToggleTask:
		return "toggle task"
	case ChangeOperationDeleteTask:
		return "delete task"
	default:
		return string(o)
	}
}
