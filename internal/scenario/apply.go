// Where: cli/internal/scenario/apply.go
// What: Execute scenario steps against a registry session.
// Why: Mirror the form flow: report a failed step and keep going unless strict.
package scenario

import (
	"fmt"

	"github.com/poruru/lifecycle-manager/cli/internal/registry"
	"go.uber.org/zap"
)

// Options controls how a scenario is applied.
type Options struct {
	// Strict stops at the first failing step.
	Strict bool
	Logger *zap.Logger
}

// StepError records why one step failed.
type StepError struct {
	Index  int
	Action Action
	Name   string
	Err    error
}

func (e StepError) Error() string {
	return fmt.Sprintf("step %d (%s %s): %v", e.Index+1, e.Action, e.Name, e.Err)
}

func (e StepError) Unwrap() error {
	return e.Err
}

// Result summarizes an applied scenario.
type Result struct {
	Applied  int
	Failures []StepError
}

// OK reports whether every executed step succeeded.
func (r Result) OK() bool {
	return len(r.Failures) == 0
}

// Apply runs the steps of sc against session in order.
func Apply(session *registry.Session, sc Scenario, opts Options) Result {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	var result Result
	for i, step := range sc.Steps {
		logger.Debug("apply step",
			zap.Int("step", i+1),
			zap.String("action", string(step.Action)),
			zap.String("name", step.Name))

		if err := ApplyStep(session, step); err != nil {
			failure := StepError{Index: i, Action: step.Action, Name: step.Name, Err: err}
			logger.Warn("step failed", zap.Int("step", i+1), zap.Error(err))
			result.Failures = append(result.Failures, failure)
			if opts.Strict {
				break
			}
			continue
		}
		result.Applied++
	}
	return result
}

// ApplyStep performs a single registry operation.
func ApplyStep(session *registry.Session, step Step) error {
	switch step.Action {
	case AddEnvironment:
		stack, err := registry.ParseStack(step.Stack)
		if err != nil {
			return err
		}
		_, err = session.AddEnvironment(step.Name, stack, step.Branch)
		return err
	case RemoveEnvironment:
		return session.RemoveEnvironment(step.Name)
	case AddProject:
		_, err := session.AddProject(step.Name, step.Links)
		return err
	case RemoveProject:
		return session.RemoveProject(step.Name)
	case SetLink:
		_, err := session.SetLink(step.Name, step.Environment, step.Link)
		return err
	default:
		return fmt.Errorf("unknown action %q", step.Action)
	}
}
