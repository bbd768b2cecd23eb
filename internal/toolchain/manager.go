package toolchain

import (
	"fmt"
	"strings"
)

// Manager identifies a supported package manager.
type Manager string

const (
	// NPM is the npm package manager.
	NPM Manager = "npm"
	// PNPM is the pnpm package manager.
	PNPM Manager = "pnpm"
	// Yarn is the yarn package manager.
	Yarn Manager = "yarn"
)

// Commands holds the shell commands a package manager is driven with.
type Commands struct {
	// Init creates a fresh package.json in the working directory.
	Init string
	// DevInstall installs dev dependencies silently; the package list is appended.
	DevInstall string
	// Build runs the project's build script.
	Build string
}

// ManagerInfo describes one entry of the package manager registry.
type ManagerInfo struct {
	// Name is the registry identifier, matching the executable name.
	Name Manager
	// Commands are the manager's init/install/build invocations.
	Commands Commands
	// Lockfile is the lockfile name the manager writes.
	Lockfile string
}

// Managers is the package manager registry, ordered by preference.
// npm comes first: it is the most universally available manager and
// serves as the fallback default.
var Managers = []ManagerInfo{
	{
		Name: NPM,
		Commands: Commands{
			Init:       "npm init -y",
			DevInstall: "npm install --silent -D",
			Build:      "npm run build",
		},
		Lockfile: "package-lock.json",
	},
	{
		Name: PNPM,
		Commands: Commands{
			Init:       "pnpm init",
			DevInstall: "pnpm install --silent -D",
			Build:      "pnpm run build",
		},
		Lockfile: "pnpm-lock.yaml",
	},
	{
		Name: Yarn,
		Commands: Commands{
			Init:       "yarn init -y",
			DevInstall: "yarn add --silent -D",
			Build:      "yarn run build",
		},
		Lockfile: "yarn.lock",
	},
}

// DefaultManager returns the fallback manager (npm).
func DefaultManager() ManagerInfo {
	return Managers[0]
}

// Lookup returns the registry entry for name.
func Lookup(name string) (ManagerInfo, error) {
	for _, m := range Managers {
		if string(m.Name) == name {
			return m, nil
		}
	}
	return ManagerInfo{}, fmt.Errorf("unknown package manager %q (known: %s)", name, strings.Join(ManagerNames(), ", "))
}

// ManagerNames returns the registry identifiers in registry order.
func ManagerNames() []string {
	names := make([]string, len(Managers))
	for i, m := range Managers {
		names[i] = string(m.Name)
	}
	return names
}
