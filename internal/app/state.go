package app

import "github.com/evanschultz/tasksboard/internal/domain"

// State is one immutable snapshot of the board tree. Values handed out by the
// Store are never mutated afterwards; callers may compare slices by identity to
// detect which boards or lists changed between two snapshots.
type State struct {
	Boards        []domain.Board
	ActiveBoardID domain.ID
	Version       uint64
}

// BoardIndex returns the position of the board with id, or -1.
func (s State) BoardIndex(id domain.ID) int {
	for idx := range s.Boards {
		if s.Boards[idx].ID == id {
			return idx
		}
	}
	return -1
}

// Board returns the board with id.
func (s State) Board(id domain.ID) (domain.Board, bool) {
	idx := s.BoardIndex(id)
	if idx < 0 {
		return domain.Board{}, false
	}
	return s.Boards[idx], true
}

// ActiveBoard returns the board currently shown in the main panel.
func (s State) ActiveBoard() (domain.Board, bool) {
	return s.Board(s.ActiveBoardID)
}

// ActiveBoardIndex returns the position of the active board, or -1.
func (s State) ActiveBoardIndex() int {
	return s.BoardIndex(s.ActiveBoardID)
}

// maxID returns the largest id used anywhere in the tree.
func (s State) maxID() domain.ID {
	var out domain.ID
	for _, board := range s.Boards {
		out = max(out, board.ID)
		for _, list := range board.Lists {
			out = max(out, list.ID)
			for _, task := range list.Tasks {
				out = max(out, task.ID)
			}
		}
	}
	return out
}
