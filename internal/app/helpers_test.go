package app

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// fakePrompter answers prompts from canned maps keyed by message. A prompt
// with no canned answer resolves to its default. Every prompt is recorded.
type fakePrompter struct {
	t              *testing.T
	confirmAnswers map[string]bool
	selectAnswers  map[string]string
	err            error
	forbid         bool

	asked         []string
	selectOptions map[string][]string
}

func (p *fakePrompter) Confirm(message string, def bool) (bool, error) {
	p.record(message)
	if p.err != nil {
		return false, p.err
	}
	if answer, ok := p.confirmAnswers[message]; ok {
		return answer, nil
	}
	return def, nil
}

func (p *fakePrompter) Select(message string, options []string, def string) (string, error) {
	p.record(message)
	if p.selectOptions == nil {
		p.selectOptions = make(map[string][]string)
	}
	p.selectOptions[message] = options
	if p.err != nil {
		return "", p.err
	}
	if answer, ok := p.selectAnswers[message]; ok {
		return answer, nil
	}
	return def, nil
}

func (p *fakePrompter) record(message string) {
	if p.forbid {
		p.t.Fatalf("unexpected prompt: %q", message)
	}
	p.asked = append(p.asked, message)
}

// fakeRunner records every command. onRun, when set, simulates side effects.
type fakeRunner struct {
	commands []string
	onRun    func(dir, command string) (string, error)
}

func (r *fakeRunner) Run(_ context.Context, dir, command string) (string, error) {
	r.commands = append(r.commands, command)
	if r.onRun != nil {
		return r.onRun(dir, command)
	}
	return "", nil
}

// simulateManagerInit makes a fake runner write a plain package.json when
// it sees a manifest init command, the way npm init -y would.
func simulateManagerInit(t *testing.T) func(dir, command string) (string, error) {
	t.Helper()
	return func(dir, command string) (string, error) {
		if strings.Contains(command, "init") && !strings.Contains(command, "git") {
			content := `{"name": "my-project", "version": "1.0.0", "license": "ISC"}`
			if err := os.WriteFile(filepath.Join(dir, "package.json"), []byte(content), 0644); err != nil {
				return "", err
			}
		}
		return "", nil
	}
}

func boolPtr(v bool) *bool {
	return &v
}

func readJSONFile(t *testing.T, path string) map[string]interface{} {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read %s: %v", path, err)
	}
	var out map[string]interface{}
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("%s is not valid JSON: %v", path, err)
	}
	return out
}
