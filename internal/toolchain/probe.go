package toolchain

import (
	"errors"
	"os/exec"
	"sync"
)

// ProbeState classifies the outcome of one tool probe.
type ProbeState int

const (
	// StateAvailable means the tool was found on the search path.
	StateAvailable ProbeState = iota
	// StateUnavailable means the tool is not on the search path.
	StateUnavailable
	// StateProbeFailed means the probe itself errored.
	StateProbeFailed
)

// ProbeResult is the outcome of probing a single tool.
type ProbeResult struct {
	// Tool is the probed executable name.
	Tool string
	// State is the probe outcome.
	State ProbeState
	// Err is the probe error when State is StateProbeFailed.
	Err error
}

// Usable reports whether the tool should be treated as present.
// A failed probe counts as usable: if the tool is actually missing,
// the failure surfaces later when the tool is invoked.
func (r ProbeResult) Usable() bool {
	return r.State != StateUnavailable
}

// Probe checks each tool on the executable search path. All probes run
// concurrently and settle independently; one probe erroring never affects
// the others. Results are order-correlated with tools.
func Probe(tools []string) []ProbeResult {
	results := make([]ProbeResult, len(tools))

	var wg sync.WaitGroup
	for i, tool := range tools {
		wg.Add(1)
		go func(i int, tool string) {
			defer wg.Done()
			results[i] = probeOne(tool)
		}(i, tool)
	}
	wg.Wait()

	return results
}

func probeOne(tool string) ProbeResult {
	_, err := exec.LookPath(tool)
	switch {
	case err == nil:
		return ProbeResult{Tool: tool, State: StateAvailable}
	case errors.Is(err, exec.ErrNotFound):
		return ProbeResult{Tool: tool, State: StateUnavailable}
	default:
		return ProbeResult{Tool: tool, State: StateProbeFailed, Err: err}
	}
}
