package app

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tsforge/create/internal/debug"
	"github.com/tsforge/create/internal/template"
	"github.com/tsforge/create/internal/toolchain"
)

// ConflictError reports every destination path that already exists.
// Nothing has been written when this error is returned.
type ConflictError struct {
	// Paths are the conflicting paths, relative to the target directory,
	// in detection order.
	Paths []string
}

// Error enumerates every conflicting path.
func (e *ConflictError) Error() string {
	return fmt.Sprintf("cannot initialize project, the following paths already exist: %s",
		strings.Join(e.Paths, ", "))
}

// buildPathSet returns every relative path the pipeline may create for cfg,
// in report order: fixed config files first, then the template's top-level
// entries.
func buildPathSet(cfg *Config) ([]string, error) {
	paths := []string{"package.json", cfg.Manager.Lockfile}
	if cfg.Git {
		paths = append(paths, ".gitignore", ".gitattributes")
	}
	if cfg.Manager.Name == toolchain.Yarn {
		paths = append(paths, ".yarnrc.yml")
	}
	if cfg.ESLint {
		paths = append(paths, ".eslintrc.yml", ".eslintignore")
	}
	if cfg.Prettier {
		paths = append(paths, ".prettierrc.yml", ".prettierignore")
	}
	if cfg.VSCode {
		paths = append(paths, ".vscode")
	}

	entries, err := template.Entries(cfg.Mode.Template())
	if err != nil {
		return nil, err
	}
	return append(paths, entries...), nil
}

// checkConflicts inspects every candidate path and collects all conflicts
// before reporting. A regular file or symlink is a conflict; a directory is
// a conflict only when non-empty. This runs to completion before any
// pipeline step: the pipeline starts clean or does not start.
func checkConflicts(dir string, cfg *Config) error {
	paths, err := buildPathSet(cfg)
	if err != nil {
		return NewAppError(ConflictCheckFailed, "failed to enumerate destination paths", err)
	}
	debug.DebugValue("[app] Conflict candidates", paths)

	var conflicts []string
	for _, rel := range paths {
		conflict, err := pathConflicts(filepath.Join(dir, rel))
		if err != nil {
			return NewAppError(ConflictCheckFailed, fmt.Sprintf("failed to inspect %s", rel), err)
		}
		if conflict {
			conflicts = append(conflicts, rel)
		}
	}

	if len(conflicts) > 0 {
		return &ConflictError{Paths: conflicts}
	}
	return nil
}

func pathConflicts(path string) (bool, error) {
	info, err := os.Lstat(path)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if info.IsDir() {
		entries, err := os.ReadDir(path)
		if err != nil {
			return false, err
		}
		return len(entries) > 0, nil
	}

	// Regular file, symlink, or anything else occupying the path.
	return true, nil
}
