package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/tsforge/create/internal/app"
	"github.com/tsforge/create/internal/debug"
)

// Version information (set by main from build-time variables)
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Global flags
var (
	globalNoColor bool
	globalQuiet   bool
	globalDebug   bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "tsforge-create",
	Short: "Scaffold a new tsforge project",
	Long: `tsforge-create sets up a new TypeScript project for the tsforge compiler.

Run it bare to be prompted for a template, or name one directly:

  tsforge-create            # prompts for the template
  tsforge-create game       # game project (alias: place)
  tsforge-create model      # reusable model
  tsforge-create plugin     # editor plugin
  tsforge-create package    # publishable @tsforge package

Each run creates a package manifest, optionally initializes git and
configures ESLint, Prettier, and VSCode, installs dev dependencies,
copies the template files, and builds the result. Existing files are
never overwritten: conflicting paths abort the run before anything is
written.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	Args:          cobra.NoArgs,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Set debug mode
		debug.SetDebug(globalDebug)
		debug.SetNoColor(globalNoColor)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCreate(cmd, app.ModeNone)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if errors.Is(err, terminal.InterruptErr) {
			// User cancelled an interactive prompt; exit without decoration.
			os.Exit(1)
		}
		printError(err)
		os.Exit(1)
	}
}

// normalizeFlagAliases maps the short --pm spelling onto --package-manager.
func normalizeFlagAliases(f *pflag.FlagSet, name string) pflag.NormalizedName {
	if name == "pm" {
		name = "package-manager"
	}
	return pflag.NormalizedName(name)
}

func init() {
	rootCmd.SetGlobalNormalizationFunc(normalizeFlagAliases)

	// Global flags
	rootCmd.PersistentFlags().BoolVar(&globalNoColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVarP(&globalQuiet, "quiet", "q", false, "Suppress non-error output")
	rootCmd.PersistentFlags().BoolVar(&globalDebug, "debug", false, "Enable debug logging")

	// Scaffold flags, shared by the root command and every mode subcommand
	rootCmd.PersistentFlags().BoolVarP(&createYes, "yes", "y", false, "Accept recommended defaults and skip all prompts")
	rootCmd.PersistentFlags().BoolVar(&createGit, "git", false, "Initialize a git repository")
	rootCmd.PersistentFlags().BoolVar(&createESLint, "eslint", false, "Configure ESLint")
	rootCmd.PersistentFlags().BoolVar(&createPrettier, "prettier", false, "Configure Prettier")
	rootCmd.PersistentFlags().BoolVar(&createVSCode, "vscode", false, "Configure VSCode project settings")
	rootCmd.PersistentFlags().StringVar(&createManager, "package-manager", "", "Package manager to use (npm, pnpm, yarn)")
	rootCmd.PersistentFlags().StringVar(&createDir, "dir", ".", "Target directory")
	rootCmd.PersistentFlags().StringVar(&createBuildCommand, "build-command", "", "Override the final build command")

	// Add subcommands
	for _, cmd := range modeCommands() {
		rootCmd.AddCommand(cmd)
	}
	rootCmd.AddCommand(versionCmd)
}

// printError prints an error message to stderr
func printError(err error) {
	if globalQuiet {
		return
	}
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
}
