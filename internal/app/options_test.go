package app

import (
	"errors"
	"reflect"
	"testing"

	"github.com/tsforge/create/internal/toolchain"
)

func allAvailable() ToolAvailability {
	return ToolAvailability{
		Git: true,
		Managers: map[toolchain.Manager]bool{
			toolchain.NPM:  true,
			toolchain.PNPM: true,
			toolchain.Yarn: true,
		},
	}
}

func TestTogglePrecedence(t *testing.T) {
	tests := []struct {
		name       string
		flag       *bool
		yes        bool
		answer     map[string]bool
		want       bool
		wantPrompt bool
	}{
		{
			name: "explicit flag true never prompts",
			flag: boolPtr(true),
			want: true,
		},
		{
			name: "explicit flag false never prompts",
			flag: boolPtr(false),
			want: false,
		},
		{
			name: "explicit flag wins over yes shortcut",
			flag: boolPtr(false),
			yes:  true,
			want: false,
		},
		{
			name: "yes shortcut resolves to default without prompting",
			yes:  true,
			want: true,
		},
		{
			name:       "no flag prompts and uses the answer",
			answer:     map[string]bool{"Configure ESLint?": false},
			want:       false,
			wantPrompt: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prompter := &fakePrompter{t: t, confirmAnswers: tt.answer}
			raw := RawOptions{
				Mode:           ModeGame,
				Yes:            tt.yes,
				ESLint:         tt.flag,
				Git:            boolPtr(false),
				Prettier:       boolPtr(false),
				VSCode:         boolPtr(false),
				PackageManager: "npm",
			}

			cfg, err := ResolveOptions(raw, allAvailable(), prompter)
			if err != nil {
				t.Fatalf("ResolveOptions failed: %v", err)
			}
			if cfg.ESLint != tt.want {
				t.Errorf("ESLint = %v, want %v", cfg.ESLint, tt.want)
			}

			prompted := len(prompter.asked) > 0
			if prompted != tt.wantPrompt {
				t.Errorf("prompts issued = %v (%v), want %v", prompted, prompter.asked, tt.wantPrompt)
			}
		})
	}
}

func TestYesShortcutSuppressesAllPrompts(t *testing.T) {
	prompter := &fakePrompter{t: t, forbid: true}
	raw := RawOptions{Yes: true}

	cfg, err := ResolveOptions(raw, allAvailable(), prompter)
	if err != nil {
		t.Fatalf("ResolveOptions failed: %v", err)
	}

	if cfg.Mode != ModeGame {
		t.Errorf("Mode = %q, want game (first choice)", cfg.Mode)
	}
	if !cfg.Git || !cfg.ESLint || !cfg.Prettier || !cfg.VSCode {
		t.Errorf("toggles = git:%v eslint:%v prettier:%v vscode:%v, want all on",
			cfg.Git, cfg.ESLint, cfg.Prettier, cfg.VSCode)
	}
	if cfg.Manager.Name != toolchain.NPM {
		t.Errorf("Manager = %s, want npm", cfg.Manager.Name)
	}
}

func TestGitGatedByToolAvailability(t *testing.T) {
	tests := []struct {
		name string
		flag *bool
		git  bool
		want bool
	}{
		{
			name: "absent tool forces toggle off",
			git:  false,
			want: false,
		},
		{
			name: "absent tool loses to explicit flag",
			flag: boolPtr(true),
			git:  false,
			want: true,
		},
		{
			name: "absent tool with explicit false",
			flag: boolPtr(false),
			git:  false,
			want: false,
		},
		{
			name: "present tool uses default",
			git:  true,
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			avail := allAvailable()
			avail.Git = tt.git

			prompter := &fakePrompter{t: t}
			raw := RawOptions{Mode: ModeGame, Yes: true, Git: tt.flag}

			cfg, err := ResolveOptions(raw, avail, prompter)
			if err != nil {
				t.Fatalf("ResolveOptions failed: %v", err)
			}
			if cfg.Git != tt.want {
				t.Errorf("Git = %v, want %v", cfg.Git, tt.want)
			}
		})
	}
}

func TestGitAbsentNeverPrompts(t *testing.T) {
	avail := allAvailable()
	avail.Git = false

	prompter := &fakePrompter{t: t}
	raw := RawOptions{Mode: ModeGame, ESLint: boolPtr(true), Prettier: boolPtr(true),
		VSCode: boolPtr(true), PackageManager: "npm"}

	cfg, err := ResolveOptions(raw, avail, prompter)
	if err != nil {
		t.Fatalf("ResolveOptions failed: %v", err)
	}
	if cfg.Git {
		t.Error("Git resolved on although the tool is absent")
	}
	for _, msg := range prompter.asked {
		if msg == "Configure Git?" {
			t.Error("git prompt issued although the tool is absent")
		}
	}
}

func TestModeResolution(t *testing.T) {
	t.Run("explicit mode skips prompting", func(t *testing.T) {
		prompter := &fakePrompter{t: t, forbid: true}
		raw := RawOptions{Mode: ModePlugin, Yes: true}

		cfg, err := ResolveOptions(raw, allAvailable(), prompter)
		if err != nil {
			t.Fatalf("ResolveOptions failed: %v", err)
		}
		if cfg.Mode != ModePlugin {
			t.Errorf("Mode = %q, want plugin", cfg.Mode)
		}
	})

	t.Run("bare invocation prompts with the fixed choice list", func(t *testing.T) {
		prompter := &fakePrompter{t: t,
			selectAnswers: map[string]string{"Select template": "model"}}
		raw := RawOptions{Git: boolPtr(false), ESLint: boolPtr(false),
			Prettier: boolPtr(false), VSCode: boolPtr(false), PackageManager: "npm"}

		cfg, err := ResolveOptions(raw, allAvailable(), prompter)
		if err != nil {
			t.Fatalf("ResolveOptions failed: %v", err)
		}
		if cfg.Mode != ModeModel {
			t.Errorf("Mode = %q, want model", cfg.Mode)
		}

		want := []string{"game", "model", "plugin", "package"}
		if got := prompter.selectOptions["Select template"]; !reflect.DeepEqual(got, want) {
			t.Errorf("mode choices = %v, want %v", got, want)
		}
	})
}

func TestModeTemplateAlias(t *testing.T) {
	if ModePlace.Template() != "game" {
		t.Errorf("place template = %q, want game", ModePlace.Template())
	}
	if ModeModel.Template() != "model" {
		t.Errorf("model template = %q", ModeModel.Template())
	}
}

func TestManagerResolution(t *testing.T) {
	tests := []struct {
		name        string
		flag        string
		yes         bool
		available   []toolchain.Manager
		answer      string
		want        toolchain.Manager
		wantPrompt  bool
		wantChoices []string
		wantErr     bool
	}{
		{
			name:      "explicit flag wins without prompting",
			flag:      "yarn",
			available: []toolchain.Manager{toolchain.NPM},
			want:      toolchain.Yarn,
		},
		{
			name:      "invalid flag errors",
			flag:      "bower",
			available: []toolchain.Manager{toolchain.NPM},
			wantErr:   true,
		},
		{
			name:      "single available manager selected silently",
			available: []toolchain.Manager{toolchain.PNPM},
			want:      toolchain.PNPM,
		},
		{
			name:        "multiple available prompts among only those",
			available:   []toolchain.Manager{toolchain.NPM, toolchain.Yarn},
			answer:      "yarn",
			want:        toolchain.Yarn,
			wantPrompt:  true,
			wantChoices: []string{"npm", "yarn"},
		},
		{
			name:      "yes shortcut falls back to npm without prompting",
			yes:       true,
			available: []toolchain.Manager{toolchain.NPM, toolchain.PNPM, toolchain.Yarn},
			want:      toolchain.NPM,
		},
		{
			name: "none available falls back to npm",
			want: toolchain.NPM,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			avail := ToolAvailability{Git: true, Managers: map[toolchain.Manager]bool{}}
			for _, m := range tt.available {
				avail.Managers[m] = true
			}

			prompter := &fakePrompter{t: t,
				selectAnswers: map[string]string{"Choose a package manager": tt.answer}}
			raw := RawOptions{Mode: ModeGame, Yes: tt.yes, PackageManager: tt.flag,
				Git: boolPtr(false), ESLint: boolPtr(false), Prettier: boolPtr(false),
				VSCode: boolPtr(false)}

			cfg, err := ResolveOptions(raw, avail, prompter)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ResolveOptions error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if cfg.Manager.Name != tt.want {
				t.Errorf("Manager = %s, want %s", cfg.Manager.Name, tt.want)
			}

			choices := prompter.selectOptions["Choose a package manager"]
			if tt.wantPrompt {
				if !reflect.DeepEqual(choices, tt.wantChoices) {
					t.Errorf("manager choices = %v, want %v", choices, tt.wantChoices)
				}
			} else if choices != nil {
				t.Errorf("manager prompt issued with choices %v, want none", choices)
			}
		})
	}
}

func TestCancellationPassesThrough(t *testing.T) {
	cancelled := errors.New("interrupted")
	prompter := &fakePrompter{t: t, err: cancelled}
	raw := RawOptions{} // bare invocation, mode prompt fires first

	_, err := ResolveOptions(raw, allAvailable(), prompter)
	if !errors.Is(err, cancelled) {
		t.Errorf("ResolveOptions error = %v, want the cancellation error undecorated", err)
	}
}

func TestResolveDirDefault(t *testing.T) {
	prompter := &fakePrompter{t: t, forbid: true}
	cfg, err := ResolveOptions(RawOptions{Mode: ModeGame, Yes: true}, allAvailable(), prompter)
	if err != nil {
		t.Fatalf("ResolveOptions failed: %v", err)
	}
	if cfg.Dir != "." {
		t.Errorf("Dir = %q, want .", cfg.Dir)
	}
}
