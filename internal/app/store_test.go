package app

import (
	"testing"
	"time"

	"github.com/evanschultz/tasksboard/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newSampleStore builds a store over the sample board with one shared sequence.
func newSampleStore(t *testing.T) (*Store, *domain.Sequence) {
	t.Helper()
	seq := domain.NewSequence(1)
	return NewStore(SampleState(seq.Next), WithIDGenerator(seq.Next)), seq
}

// listByTitle finds a list on the active board.
func listByTitle(t *testing.T, s *Store, title string) domain.List {
	t.Helper()
	board, ok := s.ActiveBoard()
	require.True(t, ok, "expected active board")
	for _, list := range board.Lists {
		if list.Title == title {
			return list
		}
	}
	t.Fatalf("list %q not found", title)
	return domain.List{}
}

func TestSampleStateShape(t *testing.T) {
	s, seq := newSampleStore(t)
	st := s.State()
	require.Len(t, st.Boards, 1)
	assert.Equal(t, "Main Board", st.Boards[0].Title)
	assert.Equal(t, st.Boards[0].ID, st.ActiveBoardID)
	require.Len(t, st.Boards[0].Lists, 2)
	assert.Equal(t, "DSA", st.Boards[0].Lists[0].Title)
	assert.Equal(t, "ALGORITHMS", st.Boards[0].Lists[1].Title)
	assert.Len(t, st.Boards[0].Lists[0].Tasks, 3)
	assert.Equal(t, domain.ID(10), seq.Peek(), "1 board + 2 lists + 6 tasks consume ids 1..9")
}

func TestNewStoreEnsuresOneBoard(t *testing.T) {
	s := NewStore(State{})
	st := s.State()
	require.Len(t, st.Boards, 1)
	assert.Equal(t, DefaultRootBoardTitle, st.Boards[0].Title)
	assert.Equal(t, st.Boards[0].ID, st.ActiveBoardID)
}

func TestNewStoreRepairsUnknownActiveBoard(t *testing.T) {
	s := NewStore(State{
		Boards:        []domain.Board{{ID: 4, Title: "A"}, {ID: 9, Title: "B"}},
		ActiveBoardID: 77,
	})
	assert.Equal(t, domain.ID(4), s.State().ActiveBoardID)

	board, ok := s.AddBoard()
	require.True(t, ok)
	assert.Equal(t, domain.ID(10), board.ID, "default allocator starts after the largest seeded id")
}

func TestAddBoardKeepsActiveSelection(t *testing.T) {
	s, _ := newSampleStore(t)
	activeBefore := s.State().ActiveBoardID

	board, ok := s.AddBoard()
	require.True(t, ok)
	st := s.State()
	require.Len(t, st.Boards, 2)
	assert.Equal(t, "New Board", st.Boards[1].Title)
	assert.Empty(t, st.Boards[1].Lists)
	assert.Equal(t, board.ID, st.Boards[1].ID)
	assert.Equal(t, activeBefore, st.ActiveBoardID)
}

func TestDeleteLastBoardIsRefused(t *testing.T) {
	s, _ := newSampleStore(t)
	before := s.State()

	assert.False(t, s.DeleteBoard(before.ActiveBoardID))
	after := s.State()
	require.Len(t, after.Boards, 1)
	assert.Equal(t, before.Version, after.Version)
	assert.Equal(t, before.Boards, after.Boards)
}

func TestDeleteActiveBoardSelectsFirstRemaining(t *testing.T) {
	s, _ := newSampleStore(t)
	main := s.State().ActiveBoardID
	second, _ := s.AddBoard()
	third, _ := s.AddBoard()

	require.True(t, s.SelectBoard(third.ID))
	require.True(t, s.DeleteBoard(third.ID))
	assert.Equal(t, main, s.State().ActiveBoardID)

	require.True(t, s.SelectBoard(second.ID))
	require.True(t, s.DeleteBoard(main))
	assert.Equal(t, second.ID, s.State().ActiveBoardID, "deleting an inactive board keeps the selection")

	require.Len(t, s.State().Boards, 1)
	assert.False(t, s.DeleteBoard(second.ID))
}

func TestDeleteUnknownBoardIsNoop(t *testing.T) {
	s, _ := newSampleStore(t)
	s.AddBoard()
	before := s.State()
	assert.False(t, s.DeleteBoard(999))
	assert.Equal(t, before, s.State())
}

func TestSelectBoard(t *testing.T) {
	s, _ := newSampleStore(t)
	board, _ := s.AddBoard()
	assert.True(t, s.SelectBoard(board.ID))
	assert.Equal(t, board.ID, s.State().ActiveBoardID)
	assert.False(t, s.SelectBoard(board.ID), "reselecting the active board changes nothing")
	assert.False(t, s.SelectBoard(12345))
}

func TestBlankRenamesLeaveTitlesUnchanged(t *testing.T) {
	s, _ := newSampleStore(t)
	boardID := s.State().ActiveBoardID
	dsa := listByTitle(t, s, "DSA")
	task := dsa.Tasks[0]

	for _, blank := range []string{"", " ", "   ", "\t\n"} {
		assert.False(t, s.EditBoard(boardID, blank))
		assert.False(t, s.EditList(dsa.ID, blank))
		assert.False(t, s.EditTask(dsa.ID, task.ID, blank))
	}
	board, _ := s.ActiveBoard()
	assert.Equal(t, "Main Board", board.Title)
	assert.Equal(t, "DSA", listByTitle(t, s, "DSA").Title)
	assert.Equal(t, "Stacks", listByTitle(t, s, "DSA").Tasks[0].Title)
}

func TestRenamesTrimTitles(t *testing.T) {
	s, _ := newSampleStore(t)
	boardID := s.State().ActiveBoardID
	dsa := listByTitle(t, s, "DSA")

	require.True(t, s.EditBoard(boardID, "  Study  "))
	require.True(t, s.EditList(dsa.ID, " Data Structures "))
	require.True(t, s.EditTask(dsa.ID, dsa.Tasks[1].ID, " Deques "))

	board, _ := s.ActiveBoard()
	assert.Equal(t, "Study", board.Title)
	assert.Equal(t, "Data Structures", board.Lists[0].Title)
	assert.Equal(t, "Deques", board.Lists[0].Tasks[1].Title)
}

func TestAddTaskScenario(t *testing.T) {
	s, _ := newSampleStore(t)
	dsa := listByTitle(t, s, "DSA")

	task, ok := s.AddTask(dsa.ID)
	require.True(t, ok)
	updated := listByTitle(t, s, "DSA")
	require.Len(t, updated.Tasks, 4)
	last := updated.Tasks[3]
	assert.Equal(t, "New Task", last.Title)
	assert.False(t, last.Completed)
	assert.Equal(t, task.ID, last.ID)
}

func TestAddTaskIDsIncreaseAcrossKinds(t *testing.T) {
	s, _ := newSampleStore(t)
	dsa := listByTitle(t, s, "DSA")

	var allocated []domain.ID
	for range 3 {
		task, ok := s.AddTask(dsa.ID)
		require.True(t, ok)
		allocated = append(allocated, task.ID)
		board, _ := s.AddBoard()
		allocated = append(allocated, board.ID)
		list, ok := s.AddList()
		require.True(t, ok)
		allocated = append(allocated, list.ID)
	}
	for idx := 1; idx < len(allocated); idx++ {
		assert.Greater(t, allocated[idx], allocated[idx-1])
	}
	for _, task := range listByTitle(t, s, "DSA").Tasks[:3] {
		assert.Less(t, task.ID, allocated[0])
	}
}

func TestAddTaskUnknownListIsNoop(t *testing.T) {
	s, seq := newSampleStore(t)
	before := s.State()
	next := seq.Peek()
	_, ok := s.AddTask(999)
	assert.False(t, ok)
	assert.Equal(t, before, s.State())
	assert.Equal(t, next, seq.Peek(), "refused adds do not consume ids")
}

func TestToggleTaskIsItsOwnInverse(t *testing.T) {
	s, _ := newSampleStore(t)
	dsa := listByTitle(t, s, "DSA")
	taskID := dsa.Tasks[2].ID

	require.True(t, s.ToggleTask(dsa.ID, taskID))
	assert.True(t, listByTitle(t, s, "DSA").Tasks[2].Completed)
	require.True(t, s.ToggleTask(dsa.ID, taskID))
	assert.False(t, listByTitle(t, s, "DSA").Tasks[2].Completed)
	assert.False(t, s.ToggleTask(dsa.ID, 999))
}

func TestDeleteTaskAndList(t *testing.T) {
	s, _ := newSampleStore(t)
	dsa := listByTitle(t, s, "DSA")

	require.True(t, s.DeleteTask(dsa.ID, dsa.Tasks[1].ID))
	titles := []string{}
	for _, task := range listByTitle(t, s, "DSA").Tasks {
		titles = append(titles, task.Title)
	}
	assert.Equal(t, []string{"Stacks", "Hash Table"}, titles)
	assert.False(t, s.DeleteTask(dsa.ID, dsa.Tasks[1].ID))

	require.True(t, s.DeleteList(dsa.ID))
	board, _ := s.ActiveBoard()
	require.Len(t, board.Lists, 1)
	assert.Equal(t, "ALGORITHMS", board.Lists[0].Title)
	assert.False(t, s.DeleteList(dsa.ID))
}

func TestListOperationsOnlyTouchActiveBoard(t *testing.T) {
	s, _ := newSampleStore(t)
	dsa := listByTitle(t, s, "DSA")
	other, _ := s.AddBoard()
	require.True(t, s.SelectBoard(other.ID))

	_, ok := s.AddTask(dsa.ID)
	assert.False(t, ok, "lists on inactive boards are not reachable")
	assert.False(t, s.EditList(dsa.ID, "Renamed"))
	assert.False(t, s.DeleteList(dsa.ID))

	list, ok := s.AddList()
	require.True(t, ok)
	board, _ := s.ActiveBoard()
	require.Len(t, board.Lists, 1)
	assert.Equal(t, list.ID, board.Lists[0].ID)
	assert.Equal(t, "New List", board.Lists[0].Title)
	assert.Empty(t, board.Lists[0].Tasks)

	main, _ := s.State().Board(s.State().Boards[0].ID)
	assert.Len(t, main.Lists, 2)
}

func TestUpdatesShareUntouchedStructure(t *testing.T) {
	s, _ := newSampleStore(t)
	extra, _ := s.AddBoard()
	dsa := listByTitle(t, s, "DSA")
	before := s.State()

	require.True(t, s.ToggleTask(dsa.ID, dsa.Tasks[0].ID))
	after := s.State()

	assert.Equal(t, before.Version+1, after.Version)
	assert.NotSame(t, &before.Boards[0], &after.Boards[0], "board slice is copied along the path")
	assert.Same(t, &before.Boards[0].Lists[1].Tasks[0], &after.Boards[0].Lists[1].Tasks[0], "sibling list keeps its tasks")
	assert.NotSame(t, &before.Boards[0].Lists[0].Tasks[0], &after.Boards[0].Lists[0].Tasks[0])
	assert.Equal(t, extra.ID, after.Boards[1].ID)
	assert.Equal(t, before.Boards[1], after.Boards[1])
}

func TestPreviousSnapshotsAreNeverMutated(t *testing.T) {
	s, _ := newSampleStore(t)
	dsa := listByTitle(t, s, "DSA")
	before := s.State()

	s.ToggleTask(dsa.ID, dsa.Tasks[0].ID)
	s.EditTask(dsa.ID, dsa.Tasks[1].ID, "Changed")
	s.AddTask(dsa.ID)
	s.DeleteTask(dsa.ID, dsa.Tasks[2].ID)
	s.EditList(dsa.ID, "Renamed")
	s.AddList()
	s.EditBoard(before.ActiveBoardID, "Other")
	s.AddBoard()

	assert.False(t, before.Boards[0].Lists[0].Tasks[0].Completed)
	assert.Equal(t, "Queues", before.Boards[0].Lists[0].Tasks[1].Title)
	assert.Len(t, before.Boards[0].Lists[0].Tasks, 3)
	assert.Equal(t, "DSA", before.Boards[0].Lists[0].Title)
	assert.Len(t, before.Boards[0].Lists, 2)
	assert.Equal(t, "Main Board", before.Boards[0].Title)
	assert.Len(t, before.Boards, 1)
}

func TestApplyBuildsChangeEvents(t *testing.T) {
	now := time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC)
	seq := domain.NewSequence(1)
	s := NewStore(
		SampleState(seq.Next),
		WithIDGenerator(seq.Next),
		WithClock(func() time.Time { return now }),
		WithEventIDGenerator(func() string { return "ev-1" }),
	)
	dsa := listByTitle(t, s, "DSA")

	ev, ok := s.Apply(Intent{Kind: IntentAddTask, ListID: dsa.ID})
	require.True(t, ok)
	assert.Equal(t, domain.ChangeOperationAddTask, ev.Operation)
	assert.Equal(t, "ev-1", ev.ID)
	assert.Equal(t, now, ev.OccurredAt)
	assert.Equal(t, "New Task", ev.Title)
	assert.Equal(t, dsa.ID, ev.ListID)
	assert.True(t, ev.TaskID.Valid())

	ev, ok = s.Apply(Intent{Kind: IntentEditTask, ListID: dsa.ID, TaskID: ev.TaskID, Title: "  Tries "})
	require.True(t, ok)
	assert.Equal(t, "Tries", ev.Title)

	ev, ok = s.Apply(Intent{Kind: IntentDeleteTask, ListID: dsa.ID, TaskID: dsa.Tasks[0].ID})
	require.True(t, ok)
	assert.Equal(t, domain.ChangeOperationDeleteTask, ev.Operation)
	assert.Equal(t, "Stacks", ev.Title)

	_, ok = s.Apply(Intent{Kind: IntentDeleteBoard, BoardID: s.State().ActiveBoardID})
	assert.False(t, ok)
	_, ok = s.Apply(Intent{Kind: IntentEditList, ListID: dsa.ID, Title: "   "})
	assert.False(t, ok)
	_, ok = s.Apply(Intent{})
	assert.False(t, ok, "unknown intent kinds are ignored")
}

func TestApplyCoversEveryIntentKind(t *testing.T) {
	s, _ := newSampleStore(t)
	dsa := listByTitle(t, s, "DSA")
	mainID := s.State().ActiveBoardID

	ev, ok := s.Apply(Intent{Kind: IntentAddBoard})
	require.True(t, ok)
	newBoardID := ev.BoardID
	steps := []struct {
		in   Intent
		want domain.ChangeOperation
	}{
		{Intent{Kind: IntentEditBoard, BoardID: newBoardID, Title: "Side"}, domain.ChangeOperationRenameBoard},
		{Intent{Kind: IntentToggleTask, ListID: dsa.ID, TaskID: dsa.Tasks[0].ID}, domain.ChangeOperationToggleTask},
		{Intent{Kind: IntentEditList, ListID: dsa.ID, Title: "Structures"}, domain.ChangeOperationRenameList},
		{Intent{Kind: IntentAddList}, domain.ChangeOperationAddList},
		{Intent{Kind: IntentDeleteList, ListID: dsa.ID}, domain.ChangeOperationDeleteList},
		{Intent{Kind: IntentSelectBoard, BoardID: newBoardID}, domain.ChangeOperationSelectBoard},
		{Intent{Kind: IntentDeleteBoard, BoardID: mainID}, domain.ChangeOperationDeleteBoard},
	}
	for _, step := range steps {
		ev, ok := s.Apply(step.in)
		require.True(t, ok, "intent %v", step.in.Kind)
		assert.Equal(t, step.want, ev.Operation)
	}
	require.Len(t, s.State().Boards, 1)
	assert.Equal(t, "Side", s.State().Boards[0].Title)
}
