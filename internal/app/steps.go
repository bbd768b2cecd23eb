package app

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tsforge/create/internal/configfile"
	"github.com/tsforge/create/internal/manifest"
	"github.com/tsforge/create/internal/template"
)

// Fixed identities injected into scaffolded projects.
const (
	// scopePrefix is the namespace package-mode manifests are published under.
	scopePrefix = "@tsforge"

	buildScript = "tsfc"
	watchScript = "tsfc -w"

	typesPackage         = "@tsforge/types"
	compilerTypesPackage = "@tsforge/compiler-types@2.3.0"
	compilerPackage      = "tsforge-compiler"
	eslintPluginPackage  = "@tsforge/eslint-plugin"

	eslintExtension   = "dbaeumer.vscode-eslint"
	prettierExtension = "esbenp.prettier-vscode"
	zipfsExtension    = "arcanis.vscode-zipfs"
)

// stepManifest runs the manager's init command and rewrites the produced
// manifest: build/watch scripts always, library-publish metadata in package
// mode.
func stepManifest(sc *stepContext) error {
	if _, err := sc.runner.Run(sc.ctx, sc.dir, sc.cfg.Manager.Commands.Init); err != nil {
		return err
	}

	path := filepath.Join(sc.dir, "package.json")
	pkg, err := manifest.Load(path)
	if err != nil {
		return err
	}

	if pkg.Scripts == nil {
		pkg.Scripts = make(map[string]string)
	}
	pkg.Scripts["build"] = buildScript
	pkg.Scripts["watch"] = watchScript

	if sc.cfg.Mode == ModePackage {
		name := pkg.Name
		if name == "" {
			abs, err := filepath.Abs(sc.dir)
			if err != nil {
				return err
			}
			name = filepath.Base(abs)
		}
		pkg.Name = scopePrefix + "/" + name
		pkg.Main = "out/index.js"
		pkg.Types = "out/index.d.ts"
		pkg.Files = []string{"out"}
		pkg.PublishConfig = &manifest.PublishConfig{Access: "public"}
		pkg.Scripts["prepublishOnly"] = pkg.Scripts["build"]
	}

	return manifest.Save(path, pkg)
}

// stepGit initializes the repository and copies the ignore/attribute files.
func stepGit(sc *stepContext) error {
	if _, err := sc.runner.Run(sc.ctx, sc.dir, "git init"); err != nil {
		return fmt.Errorf("git init failed, is git installed? %w", err)
	}

	if err := template.CopyAsset("gitignore", filepath.Join(sc.dir, ".gitignore")); err != nil {
		return err
	}
	return template.CopyAsset("gitattributes", filepath.Join(sc.dir, ".gitattributes"))
}

// stepDependencies installs the full dev dependency set in one call.
func stepDependencies(sc *stepContext) error {
	packages := []string{typesPackage, compilerTypesPackage, compilerPackage}
	if sc.cfg.ESLint {
		packages = append(packages, "eslint", "@typescript-eslint/parser", eslintPluginPackage)
		if sc.cfg.Prettier {
			packages = append(packages, "eslint-plugin-prettier")
		}
	}
	if sc.cfg.Prettier {
		packages = append(packages, "prettier")
	}

	command := sc.cfg.Manager.Commands.DevInstall + " " + strings.Join(packages, " ")
	_, err := sc.runner.Run(sc.ctx, sc.dir, command)
	return err
}

// stepYarnSetup pins the yarn version, clears the legacy config, and forces
// the node-modules linker in .yarnrc.yml.
func stepYarnSetup(sc *stepContext) error {
	if _, err := sc.runner.Run(sc.ctx, sc.dir, "yarn set version stable"); err != nil {
		return err
	}

	legacy := filepath.Join(sc.dir, ".yarnrc")
	if err := os.Remove(legacy); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove legacy .yarnrc: %w", err)
	}

	path := filepath.Join(sc.dir, ".yarnrc.yml")
	rc, err := configfile.LoadYarnRC(path)
	if err != nil {
		return err
	}
	if rc.NodeLinker != "node-modules" {
		rc.NodeLinker = "node-modules"
		return configfile.SaveYarnRC(path, rc)
	}
	return nil
}

// stepESLint copies the linter config files and, when the formatter is also
// enabled, delegates style rules to it via the extends field.
func stepESLint(sc *stepContext) error {
	path := filepath.Join(sc.dir, ".eslintrc.yml")
	if err := template.CopyAsset("eslintrc.yml", path); err != nil {
		return err
	}
	if err := template.CopyAsset("eslintignore", filepath.Join(sc.dir, ".eslintignore")); err != nil {
		return err
	}

	if sc.cfg.Prettier {
		cfg, err := configfile.LoadESLint(path)
		if err != nil {
			return err
		}
		cfg.Extends = "prettier"
		return configfile.SaveESLint(path, cfg)
	}
	return nil
}

// stepPrettier copies the formatter config files verbatim.
func stepPrettier(sc *stepContext) error {
	if err := template.CopyAsset("prettierrc.yml", filepath.Join(sc.dir, ".prettierrc.yml")); err != nil {
		return err
	}
	return template.CopyAsset("prettierignore", filepath.Join(sc.dir, ".prettierignore"))
}

// stepVSCode writes the recommended-extensions and settings files. The
// linter extension wins the default-formatter slot when both linter and
// formatter are enabled.
func stepVSCode(sc *stepContext) error {
	// Empty slice, not nil, so an empty list still serializes as [].
	recommendations := []string{}
	settings := make(map[string]interface{})

	if sc.cfg.ESLint {
		recommendations = append(recommendations, eslintExtension)
		settings["editor.defaultFormatter"] = eslintExtension
		settings["editor.formatOnSave"] = true
		settings["eslint.run"] = "onType"
	}
	if sc.cfg.Prettier {
		recommendations = append(recommendations, prettierExtension)
		if !sc.cfg.ESLint {
			settings["editor.defaultFormatter"] = prettierExtension
			settings["editor.formatOnSave"] = true
		}
	}
	if isYarn(sc.cfg) {
		if _, err := sc.runner.Run(sc.ctx, sc.dir, "yarn dlx @yarnpkg/sdks vscode"); err != nil {
			return err
		}
		recommendations = append(recommendations, zipfsExtension)
	}

	vscodeDir := filepath.Join(sc.dir, ".vscode")
	if err := os.MkdirAll(vscodeDir, 0755); err != nil {
		return err
	}

	extensions := map[string]interface{}{"recommendations": recommendations}
	if err := writePrettyJSON(filepath.Join(vscodeDir, "extensions.json"), extensions); err != nil {
		return err
	}
	return writePrettyJSON(filepath.Join(vscodeDir, "settings.json"), settings)
}

// stepTemplate copies the selected template tree into the directory.
func stepTemplate(sc *stepContext) error {
	return template.CopyTo(sc.cfg.Mode.Template(), sc.dir)
}

// stepBuild validates the generated project by running the build command.
func stepBuild(sc *stepContext) error {
	command := sc.cfg.BuildCommand
	if command == "" {
		command = sc.cfg.Manager.Commands.Build
	}
	_, err := sc.runner.Run(sc.ctx, sc.dir, command)
	return err
}

func writePrettyJSON(path string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", path, err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
