package app

import (
	"context"
	"os"

	"github.com/tsforge/create/internal/debug"
	"github.com/tsforge/create/internal/toolchain"
)

// probedTools is the fixed list handed to the tool prober: version control
// first, then the package manager registry in order.
func probedTools() []string {
	return append([]string{"git"}, toolchain.ManagerNames()...)
}

// availabilityFrom collapses tagged probe results into the capability
// snapshot the resolver consumes. Probe failures collapse fail-open.
func availabilityFrom(results []toolchain.ProbeResult) ToolAvailability {
	avail := ToolAvailability{Managers: make(map[toolchain.Manager]bool)}
	for _, r := range results {
		if r.Tool == "git" {
			avail.Git = r.Usable()
			continue
		}
		avail.Managers[toolchain.Manager(r.Tool)] = r.Usable()
	}
	return avail
}

// CreateOptions holds the collaborators and raw input for Create.
type CreateOptions struct {
	// Raw is the unresolved flag bag.
	Raw RawOptions
	// Prompter collects interactive answers. Required.
	Prompter Prompter
	// Runner executes shell commands. Nil means the host runner.
	Runner toolchain.Runner
	// Reporter brackets pipeline steps for progress display. Optional.
	Reporter Reporter
}

// Create scaffolds a new project: probe tools, resolve the configuration,
// detect conflicts, then run the pipeline. On success it returns the
// resolved configuration so callers can render accurate follow-up hints.
// Prompt cancellation errors pass through undecorated so the CLI layer can
// exit immediately.
func Create(ctx context.Context, opts CreateOptions) (*Config, error) {
	debug.DebugSection("[app] Create workflow start")

	results := toolchain.Probe(probedTools())
	avail := availabilityFrom(results)
	debug.DebugValue("[app] Git available", avail.Git)
	debug.DebugValue("[app] Managers available", avail.Managers)

	cfg, err := ResolveOptions(opts.Raw, avail, opts.Prompter)
	if err != nil {
		return nil, err
	}

	if err := checkConflicts(cfg.Dir, cfg); err != nil {
		return nil, err
	}

	if err := os.MkdirAll(cfg.Dir, 0755); err != nil {
		return nil, NewStepError("target directory", err)
	}

	runner := opts.Runner
	if runner == nil {
		runner = toolchain.ExecRunner{}
	}
	reporter := opts.Reporter
	if reporter == nil {
		reporter = nopReporter{}
	}

	sc := &stepContext{
		ctx:    ctx,
		cfg:    cfg,
		dir:    cfg.Dir,
		runner: runner,
	}

	if err := runPipeline(sc, reporter); err != nil {
		return nil, err
	}

	debug.Debug("[app] Create workflow completed")
	return cfg, nil
}
