package app

import (
	"context"
	"time"

	"github.com/tsforge/create/internal/debug"
	"github.com/tsforge/create/internal/toolchain"
)

// Reporter brackets each pipeline step for progress display.
type Reporter interface {
	StepStart(name string)
	StepDone(name string, elapsed time.Duration)
}

// nopReporter is used when no reporter was supplied.
type nopReporter struct{}

func (nopReporter) StepStart(string) {}

func (nopReporter) StepDone(string, time.Duration) {}

// stepContext carries everything a pipeline step may need.
type stepContext struct {
	ctx    context.Context
	cfg    *Config
	dir    string
	runner toolchain.Runner
}

// step is one unit of orchestrated work: a label for progress reporting,
// an enablement predicate over the resolved configuration, and an action.
type step struct {
	name    string
	enabled func(cfg *Config) bool
	run     func(sc *stepContext) error
}

func always(*Config) bool { return true }

// pipelineSteps returns the scaffold pipeline in execution order.
func pipelineSteps() []step {
	return []step{
		{name: "package.json", enabled: always, run: stepManifest},
		{name: "git", enabled: func(c *Config) bool { return c.Git }, run: stepGit},
		{name: "dependencies", enabled: always, run: stepDependencies},
		{name: "yarn setup", enabled: isYarn, run: stepYarnSetup},
		{name: "eslint", enabled: func(c *Config) bool { return c.ESLint }, run: stepESLint},
		{name: "prettier", enabled: func(c *Config) bool { return c.Prettier }, run: stepPrettier},
		{name: "vscode", enabled: func(c *Config) bool { return c.VSCode }, run: stepVSCode},
		{name: "template", enabled: always, run: stepTemplate},
		{name: "build", enabled: always, run: stepBuild},
	}
}

func isYarn(c *Config) bool {
	return c.Manager.Name == toolchain.Yarn
}

// runPipeline executes the enabled steps strictly in order, halting on the
// first error. Completed steps are not rolled back; the pre-flight conflict
// check plus re-running after a fix stand in for transactional behavior.
func runPipeline(sc *stepContext, reporter Reporter) error {
	for _, st := range pipelineSteps() {
		if !st.enabled(sc.cfg) {
			debug.Debug("[app] Skipping step %q", st.name)
			continue
		}

		debug.Debug("[app] Running step %q", st.name)
		reporter.StepStart(st.name)
		start := time.Now()

		if err := st.run(sc); err != nil {
			debug.Debug("[app] Step %q failed: %v", st.name, err)
			return NewStepError(st.name, err)
		}

		reporter.StepDone(st.name, time.Since(start))
	}
	return nil
}
