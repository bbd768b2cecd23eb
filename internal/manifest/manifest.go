// Package manifest models package.json as a typed structure whose unknown
// keys survive a load/patch/save round trip.
package manifest

import (
	"encoding/json"
	"fmt"
	"os"
)

// PublishConfig holds npm publish settings.
type PublishConfig struct {
	Access string `json:"access,omitempty"`
}

// PackageJSON is a package manifest. Only the fields the scaffold pipeline
// touches are named; everything else the manager's init command produced is
// carried in rest and written back unchanged.
type PackageJSON struct {
	Name          string
	Version       string
	Main          string
	Types         string
	Files         []string
	Scripts       map[string]string
	PublishConfig *PublishConfig

	rest map[string]json.RawMessage
}

// namedFields lists the keys lifted out of rest into typed fields.
var namedFields = []string{
	"name", "version", "main", "types", "files", "scripts", "publishConfig",
}

// UnmarshalJSON decodes the named fields and keeps every other key verbatim.
func (p *PackageJSON) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	type fields struct {
		Name          string            `json:"name"`
		Version       string            `json:"version"`
		Main          string            `json:"main"`
		Types         string            `json:"types"`
		Files         []string          `json:"files"`
		Scripts       map[string]string `json:"scripts"`
		PublishConfig *PublishConfig    `json:"publishConfig"`
	}
	var f fields
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}

	p.Name = f.Name
	p.Version = f.Version
	p.Main = f.Main
	p.Types = f.Types
	p.Files = f.Files
	p.Scripts = f.Scripts
	p.PublishConfig = f.PublishConfig

	for _, key := range namedFields {
		delete(raw, key)
	}
	p.rest = raw

	return nil
}

// MarshalJSON merges the named fields back over the preserved keys.
func (p PackageJSON) MarshalJSON() ([]byte, error) {
	out := make(map[string]json.RawMessage, len(p.rest)+len(namedFields))
	for k, v := range p.rest {
		out[k] = v
	}

	set := func(key string, value interface{}) error {
		data, err := json.Marshal(value)
		if err != nil {
			return fmt.Errorf("failed to marshal %s: %w", key, err)
		}
		out[key] = data
		return nil
	}

	if p.Name != "" {
		if err := set("name", p.Name); err != nil {
			return nil, err
		}
	}
	if p.Version != "" {
		if err := set("version", p.Version); err != nil {
			return nil, err
		}
	}
	if p.Main != "" {
		if err := set("main", p.Main); err != nil {
			return nil, err
		}
	}
	if p.Types != "" {
		if err := set("types", p.Types); err != nil {
			return nil, err
		}
	}
	if p.Files != nil {
		if err := set("files", p.Files); err != nil {
			return nil, err
		}
	}
	if p.Scripts != nil {
		if err := set("scripts", p.Scripts); err != nil {
			return nil, err
		}
	}
	if p.PublishConfig != nil {
		if err := set("publishConfig", p.PublishConfig); err != nil {
			return nil, err
		}
	}

	return json.Marshal(out)
}

// Load reads the manifest at path.
func Load(path string) (*PackageJSON, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}

	var pkg PackageJSON
	if err := json.Unmarshal(data, &pkg); err != nil {
		return nil, fmt.Errorf("failed to parse manifest %s: %w", path, err)
	}

	return &pkg, nil
}

// Save writes the manifest to path, pretty-printed with a trailing newline.
func Save(path string, pkg *PackageJSON) error {
	data, err := json.MarshalIndent(pkg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal manifest: %w", err)
	}

	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("failed to write manifest %s: %w", path, err)
	}

	return nil
}
