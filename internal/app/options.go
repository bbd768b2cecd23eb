package app

import (
	"github.com/tsforge/create/internal/debug"
	"github.com/tsforge/create/internal/toolchain"
)

// Mode is the project archetype to scaffold.
type Mode string

const (
	// ModeNone means no mode was given; the resolver prompts for one.
	ModeNone Mode = ""
	// ModeGame scaffolds a game project.
	ModeGame Mode = "game"
	// ModePlace is an alias of ModeGame.
	ModePlace Mode = "place"
	// ModeModel scaffolds a model project.
	ModeModel Mode = "model"
	// ModePlugin scaffolds a plugin project.
	ModePlugin Mode = "plugin"
	// ModePackage scaffolds a publishable library package.
	ModePackage Mode = "package"
)

// promptModes is the ordered choice list offered when no mode was given.
// The first entry is the default.
var promptModes = []Mode{ModeGame, ModeModel, ModePlugin, ModePackage}

// Template returns the template directory name for the mode.
func (m Mode) Template() string {
	if m == ModePlace {
		return string(ModeGame)
	}
	return string(m)
}

// RawOptions is the unresolved flag bag from argument parsing. Nil toggle
// pointers mean the flag was not given on the command line.
type RawOptions struct {
	// Mode is the template mode, or ModeNone for a bare invocation.
	Mode Mode
	// Yes is the recommended-defaults shortcut: suppress every prompt and
	// resolve each toggle to its default.
	Yes bool
	// Dir is the target directory.
	Dir string
	// Git enables version control setup.
	Git *bool
	// ESLint enables linter setup.
	ESLint *bool
	// Prettier enables formatter setup.
	Prettier *bool
	// VSCode enables editor config setup.
	VSCode *bool
	// PackageManager selects a registry manager by name.
	PackageManager string
	// BuildCommand overrides the final build invocation. Empty means the
	// selected manager's build command.
	BuildCommand string
}

// ToolAvailability is the host capability snapshot from the tool prober.
type ToolAvailability struct {
	// Git reports whether the git executable was found.
	Git bool
	// Managers reports availability per package manager.
	Managers map[toolchain.Manager]bool
}

// Prompter collects interactive answers. Implementations signal user
// cancellation by returning the prompt library's interrupt error, which the
// resolver passes through undecorated.
type Prompter interface {
	Confirm(message string, def bool) (bool, error)
	Select(message string, options []string, def string) (string, error)
}

// Config is the fully resolved configuration driving the pipeline.
// It is immutable once produced.
type Config struct {
	Mode     Mode
	Dir      string
	Git      bool
	ESLint   bool
	Prettier bool
	VSCode   bool
	Manager  toolchain.ManagerInfo
	// BuildCommand, when non-empty, replaces the manager's build command
	// in the final pipeline step.
	BuildCommand string
}

// defaultToggles is the single source of fallback values for every toggle.
// The --yes shortcut resolves each toggle to exactly these values without
// prompting.
var defaultToggles = struct {
	Git      bool
	ESLint   bool
	Prettier bool
	VSCode   bool
}{
	Git:      true,
	ESLint:   true,
	Prettier: true,
	VSCode:   true,
}

// ResolveOptions merges flags, defaults, and interactive answers into a
// Config. Precedence per option: explicit flag, then interactive answer
// (only when neither the flag nor --yes was given), then default.
func ResolveOptions(raw RawOptions, avail ToolAvailability, prompter Prompter) (*Config, error) {
	debug.DebugSection("[app] Resolving options")

	mode, err := resolveMode(raw, prompter)
	if err != nil {
		return nil, err
	}
	debug.DebugValue("[app] Mode", string(mode))

	cfg := &Config{
		Mode:         mode,
		Dir:          raw.Dir,
		BuildCommand: raw.BuildCommand,
	}
	if cfg.Dir == "" {
		cfg.Dir = "."
	}

	cfg.Git, err = resolveGit(raw, avail, prompter)
	if err != nil {
		return nil, err
	}

	cfg.ESLint, err = resolveToggle(raw, raw.ESLint, "Configure ESLint?", defaultToggles.ESLint, prompter)
	if err != nil {
		return nil, err
	}

	cfg.Prettier, err = resolveToggle(raw, raw.Prettier, "Configure Prettier?", defaultToggles.Prettier, prompter)
	if err != nil {
		return nil, err
	}

	cfg.VSCode, err = resolveToggle(raw, raw.VSCode, "Configure VSCode Project Settings?", defaultToggles.VSCode, prompter)
	if err != nil {
		return nil, err
	}

	cfg.Manager, err = resolveManager(raw, avail, prompter)
	if err != nil {
		return nil, err
	}

	debug.DebugValue("[app] Git", cfg.Git)
	debug.DebugValue("[app] ESLint", cfg.ESLint)
	debug.DebugValue("[app] Prettier", cfg.Prettier)
	debug.DebugValue("[app] VSCode", cfg.VSCode)
	debug.DebugValue("[app] Package manager", string(cfg.Manager.Name))

	return cfg, nil
}

// resolveMode picks the template mode. An explicit mode skips prompting;
// a bare invocation prompts with a fixed ordered choice list.
func resolveMode(raw RawOptions, prompter Prompter) (Mode, error) {
	if raw.Mode != ModeNone {
		return raw.Mode, nil
	}
	if raw.Yes {
		return promptModes[0], nil
	}

	options := make([]string, len(promptModes))
	for i, m := range promptModes {
		options[i] = string(m)
	}
	choice, err := prompter.Select("Select template", options, options[0])
	if err != nil {
		return ModeNone, err
	}
	return Mode(choice), nil
}

// resolveToggle applies the flag > answer > default precedence for one toggle.
func resolveToggle(raw RawOptions, flag *bool, message string, def bool, prompter Prompter) (bool, error) {
	if flag != nil {
		return *flag, nil
	}
	if raw.Yes {
		return def, nil
	}
	return prompter.Confirm(message, def)
}

// resolveGit is resolveToggle with a tool gate: an absent git executable
// forces the toggle off, unless the flag explicitly forced it on. In the
// forced case the version control step surfaces the failure.
func resolveGit(raw RawOptions, avail ToolAvailability, prompter Prompter) (bool, error) {
	if !avail.Git {
		return raw.Git != nil && *raw.Git, nil
	}
	return resolveToggle(raw, raw.Git, "Configure Git?", defaultToggles.Git, prompter)
}

// resolveManager picks the package manager. An explicit flag is validated
// against the registry and wins. Otherwise, with more than one manager
// available and no --yes, the user chooses among only the available ones;
// exactly one available manager is selected silently; anything else falls
// back to the default manager.
func resolveManager(raw RawOptions, avail ToolAvailability, prompter Prompter) (toolchain.ManagerInfo, error) {
	if raw.PackageManager != "" {
		info, err := toolchain.Lookup(raw.PackageManager)
		if err != nil {
			return toolchain.ManagerInfo{}, NewResolveError("invalid package manager flag", err)
		}
		return info, nil
	}

	var available []toolchain.ManagerInfo
	for _, m := range toolchain.Managers {
		if avail.Managers[m.Name] {
			available = append(available, m)
		}
	}

	if len(available) == 1 {
		return available[0], nil
	}
	if len(available) > 1 && !raw.Yes {
		names := make([]string, len(available))
		def := string(available[0].Name)
		for i, m := range available {
			names[i] = string(m.Name)
			if m.Name == toolchain.DefaultManager().Name {
				def = string(m.Name)
			}
		}
		choice, err := prompter.Select("Choose a package manager", names, def)
		if err != nil {
			return toolchain.ManagerInfo{}, err
		}
		return toolchain.Lookup(choice)
	}

	return toolchain.DefaultManager(), nil
}
