package commands

import (
	"errors"
	"fmt"

	"github.com/kcwebb/taskline/internal/core/styles"
	"github.com/kcwebb/taskline/internal/core/task"
	"github.com/urfave/cli/v3"
)

// errorMessage translates a signaled error kind into a user-facing message.
// The core never formats messages itself; this is the collaborator's side of
// that contract.
func errorMessage(err error) string {
	switch {
	case errors.Is(err, task.ErrEmptyDescription):
		return "description cannot be empty"
	case errors.Is(err, task.ErrDescriptionTooLong):
		return fmt.Sprintf("description is longer than %d characters", task.MaxDescriptionLen)
	case errors.Is(err, task.ErrNotFound):
		return "no task with that id"
	default:
		return err.Error()
	}
}

func printSuccess(c *cli.Command, msg string) {
	_, _ = fmt.Fprintln(c.Root().Writer, styles.SuccessStyle.Render(msg))
}

func printError(c *cli.Command, err error) {
	_, _ = fmt.Fprintln(c.Root().Writer, styles.ErrorStyle.Render(errorMessage(err)))
}

func printMuted(c *cli.Command, msg string) {
	_, _ = fmt.Fprintln(c.Root().Writer, styles.MutedStyle.Render(msg))
}
