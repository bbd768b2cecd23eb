package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/spf13/cobra"
	"github.com/tsforge/create/internal/app"
	"github.com/tsforge/create/internal/toolchain"
)

// Scaffold flags
var (
	createYes          bool
	createGit          bool
	createESLint       bool
	createPrettier     bool
	createVSCode       bool
	createManager      string
	createDir          string
	createBuildCommand string
)

// modeCommands returns one subcommand per template mode.
func modeCommands() []*cobra.Command {
	modes := []struct {
		mode    app.Mode
		aliases []string
		short   string
	}{
		{app.ModeGame, []string{string(app.ModePlace)}, "Scaffold a game project"},
		{app.ModeModel, nil, "Scaffold a reusable model"},
		{app.ModePlugin, nil, "Scaffold an editor plugin"},
		{app.ModePackage, nil, "Scaffold a publishable @tsforge package"},
	}

	commands := make([]*cobra.Command, 0, len(modes))
	for _, m := range modes {
		mode := m.mode
		commands = append(commands, &cobra.Command{
			Use:     string(m.mode),
			Aliases: m.aliases,
			Short:   m.short,
			Args:    cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return runCreate(cmd, mode)
			},
		})
	}
	return commands
}

func runCreate(cmd *cobra.Command, mode app.Mode) error {
	raw := app.RawOptions{
		Mode:           mode,
		Yes:            createYes,
		Dir:            createDir,
		Git:            boolFlag(cmd, "git", createGit),
		ESLint:         boolFlag(cmd, "eslint", createESLint),
		Prettier:       boolFlag(cmd, "prettier", createPrettier),
		VSCode:         boolFlag(cmd, "vscode", createVSCode),
		PackageManager: createManager,
		BuildCommand:   createBuildCommand,
	}

	cfg, err := app.Create(cmd.Context(), app.CreateOptions{
		Raw:      raw,
		Prompter: surveyPrompter{},
		Reporter: stepReporter{},
	})
	if err != nil {
		if errors.Is(err, terminal.InterruptErr) {
			// Cancelled before anything was written.
			os.Exit(1)
		}
		printErrorMsg(fmt.Sprintf("Project creation failed: %v", err))
		return err
	}

	printInfo("")
	printSuccess("Project ready")
	printInfo("")
	printInfo("Next steps:")
	printInfo(fmt.Sprintf("  1. cd %s", cfg.Dir))
	printInfo("  2. Start the compiler in watch mode: " + watchHint(cfg.Manager))
	return nil
}

// watchHint renders the watch invocation for the manager that was actually
// resolved, prompt answers included.
func watchHint(manager toolchain.ManagerInfo) string {
	return string(manager.Name) + " run watch"
}

// boolFlag returns nil when the flag was not given on the command line,
// preserving the resolver's flag > prompt > default precedence.
func boolFlag(cmd *cobra.Command, name string, value bool) *bool {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v := value
	return &v
}
