package styles

import (
	"fmt"
	"strings"

	"github.com/kcwebb/taskline/internal/core/task"
)

// Checkbox glyphs for the task list.
const (
	glyphPending = "[ ]"
	glyphDone    = "[x]"
)

// RenderTask renders a single task as one styled line.
func RenderTask(t task.Task) string {
	glyph := glyphPending
	line := PendingStyle
	if t.Complete {
		glyph = glyphDone
		line = DoneStyle
	}

	return fmt.Sprintf("%s %s %s",
		IDStyle.Render(fmt.Sprintf("%d.", t.ID)),
		glyph,
		line.Render(t.Description),
	)
}

// RenderList renders the task list with a header. An empty list renders a
// muted placeholder instead of nothing, so the menu never looks broken.
func RenderList(tasks []task.Task) string {
	var b strings.Builder

	b.WriteString(HeaderStyle.Render(fmt.Sprintf("Tasks (%d)", len(tasks))))
	b.WriteString("\n")

	if len(tasks) == 0 {
		b.WriteString(MutedStyle.Render("no tasks yet"))
		b.WriteString("\n")
		return b.String()
	}

	for _, t := range tasks {
		b.WriteString(RenderTask(t))
		b.WriteString("\n")
	}

	return b.String()
}
