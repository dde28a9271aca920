package domain

import "strings"

// DefaultBoardTitle is the title given to boards created from the sidebar.
const DefaultBoardTitle = "New Board"

// Board is the top-level container holding an ordered sequence of lists.
type Board struct {
	ID    ID
	Title string
	Lists []List
}

// NewBoard constructs a board without lists.
func NewBoard(id ID, title string) (Board, error) {
	title = strings.TrimSpace(title)
	if !id.Valid() {
		return Board{}, ErrInvalidID
	}
	if title == "" {
		return Board{}, ErrInvalidTitle
	}
	return Board{ID: id, Title: title, Lists: []List{}}, nil
}

// Rename replaces the title. Blank titles are rejected and leave the board untouched.
func (b *Board) Rename(title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return ErrInvalidTitle
	}
	b.Title = title
	return nil
}

// ListIndex returns the position of the list with id, or -1.
func (b Board) ListIndex(id ID) int {
	for idx := range b.Lists {
		if b.Lists[idx].ID == id {
			return idx
		}
	}
	return -1
}

// TaskCount returns the number of tasks across all lists.
func (b Board) TaskCount() int {
	total := 0
	for _, list := range b.Lists {
		total += len(list.Tasks)
	}
	return total
}
