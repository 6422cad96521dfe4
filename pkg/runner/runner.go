package runner

import (
	"context"

	"github.com/rs/zerolog/log"
	"github.com/tgagor/snapcraft-build/pkg/cmd"
)

// Runner executes queued commands one after another, stopping at the first
// failure.
type Runner struct {
	tasks    []*cmd.Cmd
	dryRun   bool
	executor cmd.Executor
}

func New(executor cmd.Executor) *Runner {
	if executor == nil {
		executor = cmd.System{}
	}
	return &Runner{
		tasks:    []*cmd.Cmd{},
		dryRun:   false,
		executor: executor,
	}
}

// AddTask queues tasks in order.
func (r *Runner) AddTask(task ...*cmd.Cmd) *Runner {
	r.tasks = append(r.tasks, task...)
	return r
}

func (r *Runner) DryRun(flag bool) *Runner {
	r.dryRun = flag
	return r
}

func (r *Runner) Run(ctx context.Context) error {
	for _, c := range r.tasks {
		if r.dryRun {
			log.Info().Str("cmd", c.String()).Msg("DRY-RUN: Run")
			continue
		}
		if err := r.executor.Execute(ctx, c); err != nil {
			return err
		}
	}
	return nil
}
