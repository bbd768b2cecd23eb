// Package template holds the embedded project templates and shared config
// assets the scaffold pipeline copies into a new project.
package template

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
)

//go:embed templates assets
var content embed.FS

// Entries returns the top-level names the mode's template places in the
// working directory, sorted. Used for pre-flight conflict detection.
func Entries(mode string) ([]string, error) {
	entries, err := content.ReadDir(path.Join("templates", mode))
	if err != nil {
		return nil, fmt.Errorf("unknown template %q: %w", mode, err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	sort.Strings(names)
	return names, nil
}

// CopyTo recursively copies the mode's template tree into dir.
func CopyTo(mode, dir string) error {
	root := path.Join("templates", mode)

	return fs.WalkDir(content, root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		relPath, err := filepath.Rel(root, p)
		if err != nil {
			return err
		}
		if relPath == "." {
			return nil
		}

		targetPath := filepath.Join(dir, relPath)

		if d.IsDir() {
			if err := os.MkdirAll(targetPath, 0755); err != nil {
				return fmt.Errorf("failed to create directory %s: %w", targetPath, err)
			}
			return nil
		}

		data, err := content.ReadFile(p)
		if err != nil {
			return fmt.Errorf("failed to read template file %s: %w", p, err)
		}
		if err := os.WriteFile(targetPath, data, 0644); err != nil {
			return fmt.Errorf("failed to write file %s: %w", targetPath, err)
		}
		return nil
	})
}

// CopyAsset writes the named shared asset (gitignore, eslintrc.yml, ...)
// to destPath. Asset names carry no leading dot; the caller picks the
// destination file name.
func CopyAsset(name, destPath string) error {
	data, err := content.ReadFile(path.Join("assets", name))
	if err != nil {
		return fmt.Errorf("unknown asset %q: %w", name, err)
	}
	if err := os.WriteFile(destPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", destPath, err)
	}
	return nil
}
