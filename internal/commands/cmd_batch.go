package commands

import (
	"context"
	"fmt"

	"github.com/kcwebb/taskline/internal/core/logging"
	"github.com/kcwebb/taskline/internal/core/task"
	"github.com/kcwebb/taskline/internal/taskline"
	"github.com/kcwebb/taskline/pkg/iojson"
	"github.com/urfave/cli/v3"
)

// Batch op actions.
const (
	opAdd    = "add"
	opUpdate = "update"
	opToggle = "toggle"
	opDelete = "delete"
	opGet    = "get"
	opList   = "list"
)

// BatchInput is the JSON document accepted by the batch command.
type BatchInput struct {
	Ops []BatchOp `json:"ops"`
}

// BatchOp is a single operation against the task store.
type BatchOp struct {
	Action      string `json:"action"`
	ID          int64  `json:"id,omitempty"`
	Description string `json:"description,omitempty"`
}

// BatchResult is the outcome of one operation.
type BatchResult struct {
	Action  string      `json:"action"`
	OK      bool        `json:"ok"`
	Task    *task.Task  `json:"task,omitempty"`
	Tasks   []task.Task `json:"tasks,omitempty"`
	Deleted *bool       `json:"deleted,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// BatchReport is the full JSON report written to stdout.
type BatchReport struct {
	Results  []BatchResult `json:"results"`
	Failures int           `json:"failures"`
}

// BatchCmd applies a JSON operation script against the in-memory store in a
// single process run and writes a JSON report.
type BatchCmd struct {
	flags *Flags
	app   *taskline.App
	fr    *iojson.FileReader[BatchInput]
}

// NewBatchCmd creates a new batch command.
func NewBatchCmd(flags *Flags, app *taskline.App) *BatchCmd {
	return &BatchCmd{
		flags: flags,
		app:   app,
		fr:    &iojson.FileReader[BatchInput]{},
	}
}

// Register adds the batch command to the application.
func (cmd *BatchCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "batch",
		Usage: "Apply a JSON script of task operations",
		UsageText: `taskline batch [options]

Read from stdin:
  echo '{"ops":[{"action":"add","description":"Buy milk"}]}' | taskline batch

Read from file:
  taskline batch -f ops.json`,
		Description: `Applies a sequence of task operations in one process run and writes a
JSON report to stdout. Tasks exist only for the duration of the run.

Input JSON schema:
  {
    "ops": [
      {"action": "add",    "description": "Buy milk"},
      {"action": "update", "id": 1, "description": "Buy milk and eggs"},
      {"action": "toggle", "id": 1},
      {"action": "get",    "id": 1},
      {"action": "list"},
      {"action": "delete", "id": 1}
    ]
  }

A failed operation is recorded in the report and processing continues;
the store is unchanged by any failed operation.`,
		Flags: []cli.Flag{
			cmd.fr.Flag(),
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *BatchCmd) run(ctx context.Context, c *cli.Command) error {
	input, err := cmd.fr.Read()
	if err != nil {
		return fmt.Errorf("read batch input: %w", err)
	}
	if len(input.Ops) == 0 {
		return fmt.Errorf("batch input has no ops")
	}

	log := logging.Component("batch")
	log.Info().Int("ops", len(input.Ops)).Msg("applying batch script")

	report := BatchReport{Results: make([]BatchResult, 0, len(input.Ops))}
	for i, op := range input.Ops {
		res := cmd.apply(ctx, op)
		if !res.OK {
			report.Failures++
			log.Debug().Int("op", i).Str("action", op.Action).Str("error", res.Error).Msg("batch op failed")
		}
		report.Results = append(report.Results, res)
	}

	return iojson.WriteWith(c.Root().Writer, c.Root().ErrWriter, report)
}

func (cmd *BatchCmd) apply(ctx context.Context, op BatchOp) BatchResult {
	res := BatchResult{Action: op.Action}

	switch op.Action {
	case opAdd:
		t, err := cmd.app.Tasks.Add(ctx, op.Description)
		if err != nil {
			res.Error = errorMessage(err)
			return res
		}
		res.OK = true
		res.Task = &t

	case opUpdate:
		t, err := cmd.app.Tasks.Update(ctx, op.ID, op.Description)
		if err != nil {
			res.Error = errorMessage(err)
			return res
		}
		res.OK = true
		res.Task = &t

	case opToggle:
		t, err := cmd.app.Tasks.ToggleComplete(ctx, op.ID)
		if err != nil {
			res.Error = errorMessage(err)
			return res
		}
		res.OK = true
		res.Task = &t

	case opGet:
		t, err := cmd.app.Tasks.Get(ctx, op.ID)
		if err != nil {
			res.Error = errorMessage(err)
			return res
		}
		res.OK = true
		res.Task = &t

	case opDelete:
		deleted := cmd.app.Tasks.Delete(ctx, op.ID)
		res.OK = true
		res.Deleted = &deleted

	case opList:
		res.OK = true
		res.Tasks = cmd.app.Tasks.List(ctx)

	default:
		res.Error = fmt.Sprintf("unknown action %q", op.Action)
	}

	return res
}
