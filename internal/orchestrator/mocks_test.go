package orchestrator

import "context"

// fakeRunner records every command it is asked to run and returns the
// configured error for that call index (nil beyond the configured list).
type fakeRunner struct {
	calls [][]string
	errs  []error
}

func (f *fakeRunner) Run(ctx context.Context, name string, args ...string) error {
	call := append([]string{name}, args...)
	f.calls = append(f.calls, call)
	idx := len(f.calls) - 1
	if idx < len(f.errs) {
		return f.errs[idx]
	}
	return nil
}
