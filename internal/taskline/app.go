package taskline

import (
	"github.com/kcwebb/taskline/internal/core/config"
	"github.com/kcwebb/taskline/internal/core/task"
	"github.com/rs/zerolog"
)

// App is the central entry point for all taskline operations.
// Commands consume App instead of cherry-picking raw dependencies.
type App struct {
	Tasks  *TaskService
	Config *config.Config
}

// NewApp constructs an App from explicit dependencies.
func NewApp(store task.Store, cfg *config.Config, log zerolog.Logger) *App {
	return &App{
		Tasks:  NewTaskService(store, log),
		Config: cfg,
	}
}
