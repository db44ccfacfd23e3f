package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/kcwebb/taskline/internal/core/styles"
	"github.com/kcwebb/taskline/internal/core/task"
	"github.com/kcwebb/taskline/internal/taskline"
	"github.com/urfave/cli/v3"
)

// Menu actions.
const (
	actionAdd    = "add"
	actionEdit   = "edit"
	actionToggle = "toggle"
	actionDelete = "delete"
	actionQuit   = "quit"
)

// MenuCmd runs the interactive menu loop. It is the default action when no
// subcommand is given.
type MenuCmd struct {
	flags *Flags
	app   *taskline.App
}

// NewMenuCmd creates a new menu command.
func NewMenuCmd(flags *Flags, app *taskline.App) *MenuCmd {
	return &MenuCmd{flags: flags, app: app}
}

// Run drives the menu until the user quits or aborts. Validation failures
// and missing ids are rendered as messages and never end the loop; the
// store is left untouched by any failed operation.
func (cmd *MenuCmd) Run(ctx context.Context, c *cli.Command) error {
	w := c.Root().Writer

	for {
		tasks := cmd.app.Tasks.List(ctx)

		fmt.Fprintln(w)
		fmt.Fprint(w, styles.RenderList(tasks))
		fmt.Fprintln(w)

		choice, err := cmd.selectAction(len(tasks))
		if err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil
			}
			return fmt.Errorf("menu: %w", err)
		}

		switch choice {
		case actionAdd:
			err = cmd.runAdd(ctx, c)
		case actionEdit:
			err = cmd.runEdit(ctx, c, tasks)
		case actionToggle:
			err = cmd.runToggle(ctx, c, tasks)
		case actionDelete:
			err = cmd.runDelete(ctx, c, tasks)
		case actionQuit:
			return nil
		}

		if err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				// Backed out of a prompt, return to the menu.
				continue
			}
			return err
		}
	}
}

func (cmd *MenuCmd) selectAction(taskCount int) (string, error) {
	options := []huh.Option[string]{
		huh.NewOption("Add a task", actionAdd),
	}
	if taskCount > 0 {
		options = append(options,
			huh.NewOption("Edit a description", actionEdit),
			huh.NewOption("Toggle complete", actionToggle),
			huh.NewOption("Delete a task", actionDelete),
		)
	}
	options = append(options, huh.NewOption("Quit", actionQuit))

	var choice string
	err := huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title("What next?").
			Options(options...).
			Value(&choice),
	)).WithTheme(styles.FormTheme()).Run()

	return choice, err
}

func (cmd *MenuCmd) runAdd(ctx context.Context, c *cli.Command) error {
	var description string
	err := huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("Description").
			Validate(validateDescription).
			Value(&description),
	)).WithTheme(styles.FormTheme()).Run()
	if err != nil {
		return err
	}

	t, err := cmd.app.Tasks.Add(ctx, description)
	if err != nil {
		printError(c, err)
		return nil
	}

	printSuccess(c, fmt.Sprintf("added task %d", t.ID))
	return nil
}

func (cmd *MenuCmd) runEdit(ctx context.Context, c *cli.Command, tasks []task.Task) error {
	id, err := cmd.selectTask("Edit which task?", tasks)
	if err != nil {
		return err
	}

	current, err := cmd.app.Tasks.Get(ctx, id)
	if err != nil {
		printError(c, err)
		return nil
	}

	description := current.Description
	err = huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("New description").
			Validate(validateDescription).
			Value(&description),
	)).WithTheme(styles.FormTheme()).Run()
	if err != nil {
		return err
	}

	if _, err := cmd.app.Tasks.Update(ctx, id, description); err != nil {
		printError(c, err)
		return nil
	}

	printSuccess(c, fmt.Sprintf("updated task %d", id))
	return nil
}

func (cmd *MenuCmd) runToggle(ctx context.Context, c *cli.Command, tasks []task.Task) error {
	id, err := cmd.selectTask("Toggle which task?", tasks)
	if err != nil {
		return err
	}

	t, err := cmd.app.Tasks.ToggleComplete(ctx, id)
	if err != nil {
		printError(c, err)
		return nil
	}

	state := "pending"
	if t.Complete {
		state = "complete"
	}
	printSuccess(c, fmt.Sprintf("task %d is now %s", id, state))
	return nil
}

func (cmd *MenuCmd) runDelete(ctx context.Context, c *cli.Command, tasks []task.Task) error {
	id, err := cmd.selectTask("Delete which task?", tasks)
	if err != nil {
		return err
	}

	if cmd.app.Config.ConfirmDelete == nil || *cmd.app.Config.ConfirmDelete {
		var confirmed bool
		err := huh.NewConfirm().
			Title(fmt.Sprintf("Delete task %d?", id)).
			Description("This cannot be undone.").
			Value(&confirmed).
			Run()
		if err != nil {
			return err
		}
		if !confirmed {
			printMuted(c, "delete cancelled")
			return nil
		}
	}

	if !cmd.app.Tasks.Delete(ctx, id) {
		printError(c, task.ErrNotFound)
		return nil
	}

	printSuccess(c, fmt.Sprintf("deleted task %d", id))
	return nil
}

// selectTask prompts for one of the listed tasks and returns its id.
func (cmd *MenuCmd) selectTask(title string, tasks []task.Task) (int64, error) {
	options := make([]huh.Option[int64], 0, len(tasks))
	for _, t := range tasks {
		options = append(options, huh.NewOption(fmt.Sprintf("%d. %s", t.ID, t.Description), t.ID))
	}

	var id int64
	err := huh.NewForm(huh.NewGroup(
		huh.NewSelect[int64]().
			Title(title).
			Options(options...).
			Value(&id),
	)).WithTheme(styles.FormTheme()).Run()

	return id, err
}

// validateDescription runs the domain constructor's checks so the prompt
// rejects input inline with the same rules the store enforces.
func validateDescription(s string) error {
	_, err := task.New(s, false)
	if err != nil {
		return errors.New(errorMessage(err))
	}
	return nil
}
