package cmd

import "context"

// Executor runs commands. Collaborators take an Executor instead of calling
// Cmd.Run directly so invocations can be recorded in tests.
type Executor interface {
	Execute(ctx context.Context, c *Cmd) error
}

// ExecutorFunc adapts a function to the Executor interface.
type ExecutorFunc func(ctx context.Context, c *Cmd) error

func (f ExecutorFunc) Execute(ctx context.Context, c *Cmd) error {
	return f(ctx, c)
}

// System executes commands on the host.
type System struct{}

func (System) Execute(ctx context.Context, c *Cmd) error {
	_, err := c.Run(ctx)
	return err
}

// Recorder remembers every command it is given and returns Err for each.
type Recorder struct {
	Calls []*Cmd
	Err   error
}

func (r *Recorder) Execute(_ context.Context, c *Cmd) error {
	r.Calls = append(r.Calls, c)
	return r.Err
}

// Strings returns the recorded calls in their printable form.
func (r *Recorder) Strings() []string {
	out := make([]string, 0, len(r.Calls))
	for _, c := range r.Calls {
		out = append(out, c.String())
	}
	return out
}
