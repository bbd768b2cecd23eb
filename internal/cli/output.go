package cli

import (
	"fmt"
	"os"
	"time"
)

// ANSI color codes
const (
	colorReset = "\033[0m"
	colorRed   = "\033[31m"
	colorGreen = "\033[32m"
	colorBlue  = "\033[34m"
)

// Output formatting helpers

// printInfo prints an informational message
func printInfo(msg string) {
	if globalQuiet {
		return
	}
	fmt.Println(msg)
}

// printSuccess prints a success message
func printSuccess(msg string) {
	if globalQuiet {
		return
	}
	if globalNoColor {
		fmt.Printf("✓ %s\n", msg)
	} else {
		fmt.Printf("%s✓%s %s\n", colorGreen, colorReset, msg)
	}
}

// printErrorMsg prints an error message (different from printError which takes error type)
func printErrorMsg(msg string) {
	if globalNoColor {
		fmt.Fprintf(os.Stderr, "✗ %s\n", msg)
	} else {
		fmt.Fprintf(os.Stderr, "%s✗%s %s\n", colorRed, colorReset, msg)
	}
}

// printProgress prints a progress indicator
func printProgress(msg string) {
	if globalQuiet {
		return
	}
	if globalNoColor {
		fmt.Printf("→ %s\n", msg)
	} else {
		fmt.Printf("%s→%s %s\n", colorBlue, colorReset, msg)
	}
}

// stepReporter brackets each pipeline step with progress output.
type stepReporter struct{}

func (stepReporter) StepStart(name string) {
	printProgress(name)
}

func (stepReporter) StepDone(name string, elapsed time.Duration) {
	printSuccess(fmt.Sprintf("%s (%s)", name, elapsed.Round(time.Millisecond)))
}
