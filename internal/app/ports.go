package app

import (
	"context"

	"github.com/evanschultz/tasksboard/internal/domain"
)

// Journal records applied board changes for the activity log.
type Journal interface {
	RecordChangeEvent(context.Context, domain.ChangeEvent) error
	ListChangeEvents(context.Context, int) ([]domain.ChangeEvent, error)
}
