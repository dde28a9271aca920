package app

import "github.com/evanschultz/tasksboard/internal/domain"

// DefaultRootBoardTitle names the board every session starts with.
const DefaultRootBoardTitle = "Main Board"

// sampleLists stores the lists and task titles of the sample board.
var sampleLists = []struct {
	Title string
	Tasks []string
}{
	{Title: "DSA", Tasks: []string{"Stacks", "Queues", "Hash Table"}},
	{Title: "ALGORITHMS", Tasks: []string{"Sorting", "Bit Manipulation", "In-Order"}},
}

// SampleState builds the sample "Main Board" tree with ids drawn from next.
func SampleState(next IDGenerator) State {
	board := domain.Board{ID: next(), Title: DefaultRootBoardTitle, Lists: make([]domain.List, 0, len(sampleLists))}
	for _, seed := range sampleLists {
		list := domain.List{ID: next(), Title: seed.Title, Tasks: make([]domain.Task, 0, len(seed.Tasks))}
		for _, title := range seed.Tasks {
			list.Tasks = append(list.Tasks, domain.Task{ID: next(), Title: title})
		}
		board.Lists = append(board.Lists, list)
	}
	return State{Boards: []domain.Board{board}, ActiveBoardID: board.ID}
}

// EmptyState builds a single empty "Main Board" with an id drawn from next.
func EmptyState(next IDGenerator) State {
	board := domain.Board{ID: next(), Title: DefaultRootBoardTitle, Lists: []domain.List{}}
	return State{Boards: []domain.Board{board}, ActiveBoardID: board.ID}
}
