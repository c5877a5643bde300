package recovery

import (
	"log/slog"
	"os"
	"syscall"

	"sports-ticker/internal/logging"
)

// ExecRestarter replaces the process image with a fresh copy of itself,
// re-running all startup initialization from a clean slate. Restart never
// returns; if the exec itself fails the process exits and the supervisor
// brings it back.
type ExecRestarter struct {
	logger *slog.Logger
}

// NewExecRestarter creates the production restarter.
func NewExecRestarter(logger *slog.Logger) *ExecRestarter {
	return &ExecRestarter{logger: logger}
}

func (r *ExecRestarter) Restart() {
	self, err := os.Executable()
	if err == nil {
		err = syscall.Exec(self, os.Args, os.Environ())
	}
	logging.Error(r.logger, "re-exec failed, exiting for supervisor restart", err)
	os.Exit(1)
}
