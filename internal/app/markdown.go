package app

import (
	"fmt"
	"strings"

	"github.com/evanschultz/tasksboard/internal/domain"
)

// BoardMarkdown renders one board as a markdown checklist.
func BoardMarkdown(board domain.Board, showCounts bool) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n", board.Title)
	if len(board.Lists) == 0 {
		b.WriteString("\n_no lists yet_\n")
		return b.String()
	}
	for _, list := range board.Lists {
		if showCounts {
			fmt.Fprintf(&b, "\n## %s (%d/%d)\n\n", list.Title, list.CompletedCount(), len(list.Tasks))
		} else {
			fmt.Fprintf(&b, "\n## %s\n\n", list.Title)
		}
		if len(list.Tasks) == 0 {
			b.WriteString("_no tasks_\n")
			continue
		}
		for _, task := range list.Tasks {
			mark := " "
			if task.Completed {
				mark = "x"
			}
			fmt.Fprintf(&b, "- [%s] %s\n", mark, task.Title)
		}
	}
	return b.String()
}
