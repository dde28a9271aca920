package app

import (
	"slices"
	"time"

	"github.com/evanschultz/tasksboard/internal/domain"
	"github.com/google/uuid"
)

// IDGenerator returns unique identifiers for new boards, lists and tasks.
type IDGenerator func() domain.ID

// EventIDGenerator returns unique identifiers for change events.
type EventIDGenerator func() string

// Clock returns the current time.
type Clock func() time.Time

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithIDGenerator sets the allocator shared by every entity kind.
func WithIDGenerator(gen IDGenerator) StoreOption {
	return func(s *Store) {
		if gen != nil {
			s.idGen = gen
		}
	}
}

// WithEventIDGenerator sets the change-event id source.
func WithEventIDGenerator(gen EventIDGenerator) StoreOption {
	return func(s *Store) {
		if gen != nil {
			s.eventID = gen
		}
	}
}

// WithClock sets the clock used to stamp change events.
func WithClock(clock Clock) StoreOption {
	return func(s *Store) {
		if clock != nil {
			s.clock = clock
		}
	}
}

// Store owns the board collection, the active-board selection and id allocation.
// Every mutation replaces the state tree; only the path to the changed node is
// copied.
type Store struct {
	state   State
	idGen   IDGenerator
	eventID EventIDGenerator
	clock   Clock
}

// NewStore constructs a store from an initial tree. An empty tree gets a single
// default board, and an unknown active id falls back to the first board.
func NewStore(initial State, opts ...StoreOption) *Store {
	s := &Store{
		state:   initial,
		eventID: uuid.NewString,
		clock:   time.Now,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	if s.idGen == nil {
		s.idGen = domain.NewSequence(initial.maxID() + 1).Next
	}
	if len(s.state.Boards) == 0 {
		board, err := domain.NewBoard(s.idGen(), DefaultRootBoardTitle)
		if err == nil {
			s.state.Boards = []domain.Board{board}
		}
	}
	if s.state.BoardIndex(s.state.ActiveBoardID) < 0 && len(s.state.Boards) > 0 {
		s.state.ActiveBoardID = s.state.Boards[0].ID
	}
	return s
}

// State returns the current snapshot.
func (s *Store) State() State {
	return s.state
}

// ActiveBoard returns the board currently shown in the main panel.
func (s *Store) ActiveBoard() (domain.Board, bool) {
	return s.state.ActiveBoard()
}

// AddBoard appends a new board without changing the active selection.
func (s *Store) AddBoard() (domain.Board, bool) {
	board, err := domain.NewBoard(s.idGen(), domain.DefaultBoardTitle)
	if err != nil {
		return domain.Board{}, false
	}
	next := s.state
	next.Boards = append(slices.Clip(s.state.Boards), board)
	s.commit(next)
	return board, true
}

// EditBoard renames a board. Blank titles and unknown ids are ignored.
func (s *Store) EditBoard(boardID domain.ID, title string) bool {
	return s.updateBoard(boardID, func(b domain.Board) (domain.Board, bool) {
		if err := b.Rename(title); err != nil {
			return b, false
		}
		return b, true
	})
}

// DeleteBoard removes a board unless it is the last one. Removing the active
// board moves the selection to the first remaining board.
func (s *Store) DeleteBoard(boardID domain.ID) bool {
	if len(s.state.Boards) <= 1 {
		return false
	}
	idx := s.state.BoardIndex(boardID)
	if idx < 0 {
		return false
	}
	next := s.state
	next.Boards = slices.Delete(slices.Clone(s.state.Boards), idx, idx+1)
	if next.ActiveBoardID == boardID {
		next.ActiveBoardID = next.Boards[0].ID
	}
	s.commit(next)
	return true
}

// SelectBoard makes a board active.
func (s *Store) SelectBoard(boardID domain.ID) bool {
	if boardID == s.state.ActiveBoardID || s.state.BoardIndex(boardID) < 0 {
		return false
	}
	next := s.state
	next.ActiveBoardID = boardID
	s.commit(next)
	return true
}

// AddList appends an empty list to the active board.
func (s *Store) AddList() (domain.List, bool) {
	var created domain.List
	ok := s.updateBoard(s.state.ActiveBoardID, func(b domain.Board) (domain.Board, bool) {
		list, err := domain.NewList(s.idGen(), domain.DefaultListTitle)
		if err != nil {
			return b, false
		}
		created = list
		b.Lists = append(slices.Clip(b.Lists), list)
		return b, true
	})
	return created, ok
}

// EditList renames a list on the active board.
func (s *Store) EditList(listID domain.ID, title string) bool {
	return s.updateList(listID, func(l domain.List) (domain.List, bool) {
		if err := l.Rename(title); err != nil {
			return l, false
		}
		return l, true
	})
}

// DeleteList removes a list from the active board.
func (s *Store) DeleteList(listID domain.ID) bool {
	return s.updateBoard(s.state.ActiveBoardID, func(b domain.Board) (domain.Board, bool) {
		idx := b.ListIndex(listID)
		if idx < 0 {
			return b, false
		}
		b.Lists = slices.Delete(slices.Clone(b.Lists), idx, idx+1)
		return b, true
	})
}

// AddTask appends an open "New Task" to a list on the active board.
func (s *Store) AddTask(listID domain.ID) (domain.Task, bool) {
	var created domain.Task
	ok := s.updateList(listID, func(l domain.List) (domain.List, bool) {
		task, err := domain.NewTask(s.idGen(), domain.DefaultTaskTitle)
		if err != nil {
			return l, false
		}
		created = task
		l.Tasks = append(slices.Clip(l.Tasks), task)
		return l, true
	})
	return created, ok
}

// EditTask renames a task. Blank titles are ignored.
func (s *Store) EditTask(listID, taskID domain.ID, title string) bool {
	return s.updateTask(listID, taskID, func(t domain.Task) (domain.Task, bool) {
		if err := t.Rename(title); err != nil {
			return t, false
		}
		return t, true
	})
}

// ToggleTask flips a task's completed flag.
func (s *Store) ToggleTask(listID, taskID domain.ID) bool {
	return s.updateTask(listID, taskID, func(t domain.Task) (domain.Task, bool) {
		t.Toggle()
		return t, true
	})
}

// DeleteTask removes a task from its list.
func (s *Store) DeleteTask(listID, taskID domain.ID) bool {
	return s.updateList(listID, func(l domain.List) (domain.List, bool) {
		idx := l.TaskIndex(taskID)
		if idx < 0 {
			return l, false
		}
		l.Tasks = slices.Delete(slices.Clone(l.Tasks), idx, idx+1)
		return l, true
	})
}

// commit installs a new snapshot.
func (s *Store) commit(next State) {
	next.Version = s.state.Version + 1
	s.state = next
}

// updateBoard replaces one board with the result of fn.
func (s *Store) updateBoard(boardID domain.ID, fn func(domain.Board) (domain.Board, bool)) bool {
	idx := s.state.BoardIndex(boardID)
	if idx < 0 {
		return false
	}
	updated, ok := fn(s.state.Boards[idx])
	if !ok {
		return false
	}
	next := s.state
	next.Boards = slices.Clone(s.state.Boards)
	next.Boards[idx] = updated
	s.commit(next)
	return true
}

// updateList replaces one list of the active board with the result of fn.
func (s *Store) updateList(listID domain.ID, fn func(domain.List) (domain.List, bool)) bool {
	return s.updateBoard(s.state.ActiveBoardID, func(b domain.Board) (domain.Board, bool) {
		idx := b.ListIndex(listID)
		if idx < 0 {
			return b, false
		}
		updated, ok := fn(b.Lists[idx])
		if !ok {
			return b, false
		}
		b.Lists = slices.Clone(b.Lists)
		b.Lists[idx] = updated
		return b, true
	})
}

// updateTask replaces one task of a list on the active board with the result of fn.
func (s *Store) updateTask(listID, taskID domain.ID, fn func(domain.Task) (domain.Task, bool)) bool {
	return s.updateList(listID, func(l domain.List) (domain.List, bool) {
		idx := l.TaskIndex(taskID)
		if idx < 0 {
			return l, false
		}
		updated, ok := fn(l.Tasks[idx])
		if !ok {
			return l, false
		}
		l.Tasks = slices.Clone(l.Tasks)
		l.Tasks[idx] = updated
		return l, true
	})
}
