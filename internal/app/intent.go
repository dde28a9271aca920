package app

import (
	"strings"

	"github.com/evanschultz/tasksboard/internal/domain"
)

// IntentKind names one user intent emitted by the presentation layer.
type IntentKind int

// IntentKind values map 1:1 onto Store operations.
const (
	IntentAddBoard IntentKind = iota + 1
	IntentEditBoard
	IntentDeleteBoard
	IntentSelectBoard
	IntentAddList
	IntentEditList
	IntentDeleteList
	IntentAddTask
	IntentEditTask
	IntentToggleTask
	IntentDeleteTask
)

// Intent carries the arguments for one Store operation. Fields that an intent
// kind does not use are ignored.
type Intent struct {
	Kind    IntentKind
	BoardID domain.ID
	ListID  domain.ID
	TaskID  domain.ID
	Title   string
}

// Apply runs one intent against the store. It reports false, with a zero event,
// when the intent was refused or changed nothing.
func (s *Store) Apply(in Intent) (domain.ChangeEvent, bool) {
	before := s.state
	activeID := before.ActiveBoardID
	ev := domain.ChangeEvent{
		BoardID: activeID,
		ListID:  in.ListID,
		TaskID:  in.TaskID,
	}

	var ok bool
	switch in.Kind {
	case IntentAddBoard:
		var board domain.Board
		board, ok = s.AddBoard()
		ev.Operation = domain.ChangeOperationAddBoard
		ev.BoardID = board.ID
		ev.Title = board.Title
	case IntentEditBoard:
		ok = s.EditBoard(in.BoardID, in.Title)
		ev.Operation = domain.ChangeOperationRenameBoard
		ev.BoardID = in.BoardID
		ev.Title = strings.TrimSpace(in.Title)
	case IntentDeleteBoard:
		board, _ := before.Board(in.BoardID)
		ok = s.DeleteBoard(in.BoardID)
		ev.Operation = domain.ChangeOperationDeleteBoard
		ev.BoardID = in.BoardID
		ev.Title = board.Title
	case IntentSelectBoard:
		board, _ := before.Board(in.BoardID)
		ok = s.SelectBoard(in.BoardID)
		ev.Operation = domain.ChangeOperationSelectBoard
		ev.BoardID = in.BoardID
		ev.Title = board.Title
	case IntentAddList:
		var list domain.List
		list, ok = s.AddList()
		ev.Operation = domain.ChangeOperationAddList
		ev.ListID = list.ID
		ev.Title = list.Title
	case IntentEditList:
		ok = s.EditList(in.ListID, in.Title)
		ev.Operation = domain.ChangeOperationRenameList
		ev.Title = strings.TrimSpace(in.Title)
	case IntentDeleteList:
		list, _ := activeList(before, in.ListID)
		ok = s.DeleteList(in.ListID)
		ev.Operation = domain.ChangeOperationDeleteList
		ev.Title = list.Title
	case IntentAddTask:
		var task domain.Task
		task, ok = s.AddTask(in.ListID)
		ev.Operation = domain.ChangeOperationAddTask
		ev.TaskID = task.ID
		ev.Title = task.Title
	case IntentEditTask:
		ok = s.EditTask(in.ListID, in.TaskID, in.Title)
		ev.Operation = domain.ChangeOperationRenameTask
		ev.Title = strings.TrimSpace(in.Title)
	case IntentToggleTask:
		ok = s.ToggleTask(in.ListID, in.TaskID)
		ev.Operation = domain.ChangeOperationToggleTask
		if task, found := activeTask(s.state, in.ListID, in.TaskID); found {
			ev.Title = task.Title
		}
	case IntentDeleteTask:
		task, _ := activeTask(before, in.ListID, in.TaskID)
		ok = s.DeleteTask(in.ListID, in.TaskID)
		ev.Operation = domain.ChangeOperationDeleteTask
		ev.Title = task.Title
	}
	if !ok {
		return domain.ChangeEvent{}, false
	}
	ev.ID = s.eventID()
	ev.OccurredAt = s.clock().UTC()
	return ev, true
}

// activeList finds a list on the active board of st.
func activeList(st State, listID domain.ID) (domain.List, bool) {
	board, ok := st.ActiveBoard()
	if !ok {
		return domain.List{}, false
	}
	idx := board.ListIndex(listID)
	if idx < 0 {
		return domain.List{}, false
	}
	return board.Lists[idx], true
}

// activeTask finds a task on the active board of st.
func activeTask(st State, listID, taskID domain.ID) (domain.Task, bool) {
	list, ok := activeList(st, listID)
	if !ok {
		return domain.Task{}, false
	}
	idx := list.TaskIndex(taskID)
	if idx < 0 {
		return domain.Task{}, false
	}
	return list.Tasks[idx], true
}
