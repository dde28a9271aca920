package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/evanschultz/tasksboard/internal/app"
	"github.com/evanschultz/tasksboard/internal/domain"
)

var _ app.Journal = (*Journal)(nil)

func openJournal(t *testing.T) *Journal {
	t.Helper()
	journal, err := OpenInMemory()
	if err != nil {
		t.Fatalf("OpenInMemory() error = %v", err)
	}
	t.Cleanup(func() {
		_ = journal.Close()
	})
	return journal
}

func TestJournalRecordAndListNewestFirst(t *testing.T) {
	ctx := context.Background()
	journal := openJournal(t)
	now := time.Date(2026, 10, 17, 9, 30, 0, 0, time.UTC)

	events := []domain.ChangeEvent{
		{ID: "e1", Operation: domain.ChangeOperationAddList, BoardID: 1, ListID: 10, Title: "New List", OccurredAt: now},
		{ID: "e2", Operation: domain.ChangeOperationAddTask, BoardID: 1, ListID: 10, TaskID: 11, Title: "New Task", OccurredAt: now},
		{ID: "e3", Operation: domain.ChangeOperationToggleTask, BoardID: 1, ListID: 10, TaskID: 11, Title: "New Task", OccurredAt: now.Add(time.Second)},
	}
	for _, event := range events {
		if err := journal.RecordChangeEvent(ctx, event); err != nil {
			t.Fatalf("RecordChangeEvent() error = %v", err)
		}
	}

	got, err := journal.ListChangeEvents(ctx, 0)
	if err != nil {
		t.Fatalf("ListChangeEvents() error = %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 events, got %d", len(got))
	}
	if got[0].ID != "e3" || got[2].ID != "e1" {
		t.Fatalf("expected newest-first order, got %#v", got)
	}
	if got[0].Operation != domain.ChangeOperationToggleTask || got[0].TaskID != 11 || got[0].ListID != 10 {
		t.Fatalf("unexpected round-trip event %#v", got[0])
	}
	if !got[1].OccurredAt.Equal(now) {
		t.Fatalf("expected occurred_at %s, got %s", now, got[1].OccurredAt)
	}

	limited, err := journal.ListChangeEvents(ctx, 2)
	if err != nil {
		t.Fatalf("ListChangeEvents(limit) error = %v", err)
	}
	if len(limited) != 2 || limited[0].ID != "e3" {
		t.Fatalf("unexpected limited events %#v", limited)
	}
}

func TestJournalListsByOccurrenceTime(t *testing.T) {
	ctx := context.Background()
	journal := openJournal(t)
	base := time.Date(2026, 10, 17, 9, 30, 0, 0, time.UTC)

	// Inserted out of occurrence order, with whole and fractional seconds mixed.
	events := []domain.ChangeEvent{
		{ID: "late", Operation: domain.ChangeOperationAddTask, Title: "late", OccurredAt: base.Add(2 * time.Second)},
		{ID: "early", Operation: domain.ChangeOperationAddTask, Title: "early", OccurredAt: base},
		{ID: "middle", Operation: domain.ChangeOperationAddTask, Title: "middle", OccurredAt: base.Add(500 * time.Millisecond)},
	}
	for _, event := range events {
		if err := journal.RecordChangeEvent(ctx, event); err != nil {
			t.Fatalf("RecordChangeEvent(%s) error = %v", event.ID, err)
		}
	}

	got, err := journal.ListChangeEvents(ctx, 0)
	if err != nil {
		t.Fatalf("ListChangeEvents() error = %v", err)
	}
	want := []string{"late", "middle", "early"}
	if len(got) != len(want) {
		t.Fatalf("expected %d events, got %d", len(want), len(got))
	}
	for idx, id := range want {
		if got[idx].ID != id {
			t.Fatalf("event[%d] = %q, want %q (all %#v)", idx, got[idx].ID, id, got)
		}
	}
	if !got[1].OccurredAt.Equal(base.Add(500 * time.Millisecond)) {
		t.Fatalf("expected fractional timestamp round-trip, got %s", got[1].OccurredAt)
	}
}

func TestJournalFillsMissingIDAndTimestamp(t *testing.T) {
	ctx := context.Background()
	journal := openJournal(t)
	if err := journal.RecordChangeEvent(ctx, domain.ChangeEvent{Operation: domain.ChangeOperationAddBoard, BoardID: 4, Title: "New Board"}); err != nil {
		t.Fatalf("RecordChangeEvent() error = %v", err)
	}
	got, err := journal.ListChangeEvents(ctx, 10)
	if err != nil {
		t.Fatalf("ListChangeEvents() error = %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 event, got %d", len(got))
	}
	if got[0].ID == "" {
		t.Fatal("expected generated event id")
	}
	if got[0].OccurredAt.IsZero() {
		t.Fatal("expected generated timestamp")
	}
}

func TestJournalRejectsEventWithoutOperation(t *testing.T) {
	journal := openJournal(t)
	if err := journal.RecordChangeEvent(context.Background(), domain.ChangeEvent{ID: "x"}); err == nil {
		t.Fatal("expected error for missing operation")
	}
}

func TestJournalsAreIsolated(t *testing.T) {
	ctx := context.Background()
	first := openJournal(t)
	second := openJournal(t)
	if first.SessionID() == second.SessionID() {
		t.Fatal("expected distinct session ids")
	}
	if err := first.RecordChangeEvent(ctx, domain.ChangeEvent{ID: "only-first", Operation: domain.ChangeOperationAddList}); err != nil {
		t.Fatalf("RecordChangeEvent() error = %v", err)
	}
	got, err := second.ListChangeEvents(ctx, 10)
	if err != nil {
		t.Fatalf("ListChangeEvents() error = %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty second journal, got %#v", got)
	}
}
