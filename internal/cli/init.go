package cli

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"quizzer/internal/config"
)

// runInit builds the handler for the init command.
func runInit(cmd *Command) func(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	return func(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		dir := flags.String("dir", "", "Directory to scaffold into (default: current directory)")
		force := flags.Bool("force", false, "Overwrite existing files")
		yes := flags.Bool("yes", false, "Skip the confirmation prompt")
		if code, ok := parseFlags(cmd, flags, args, stdout, stderr); !ok {
			return code
		}

		targetDir := strings.TrimSpace(*dir)
		if targetDir == "" {
			wd, err := os.Getwd()
			if err != nil {
				fmt.Fprintf(stderr, "Init failed: %v\n", err)
				return ExitError
			}
			targetDir = wd
		}
		targetDir, err := filepath.Abs(targetDir)
		if err != nil {
			fmt.Fprintf(stderr, "Init failed: %v\n", err)
			return ExitError
		}
		if info, err := os.Stat(targetDir); err != nil || !info.IsDir() {
			fmt.Fprintf(stderr, "Init failed: %q is not a directory\n", targetDir)
			return ExitError
		}

		if !*yes {
			if stdin == nil {
				stdin = os.Stdin
			}
			confirm, err := promptYesNo(bufio.NewReader(stdin), stdout, fmt.Sprintf("Create quiz files in %s?", targetDir), true)
			if err != nil {
				fmt.Fprintf(stderr, "Init failed: %v\n", err)
				return ExitError
			}
			if !confirm {
				fmt.Fprintln(stderr, "Init cancelled.")
				return ExitCancelled
			}
		}

		written, err := config.Scaffold(targetDir, *force)
		if err != nil {
			fmt.Fprintf(stderr, "Init failed: %v\n", err)
			return ExitError
		}
		for _, path := range written {
			fmt.Fprintf(stdout, "Wrote %s\n", path)
		}
		return ExitOK
	}
}
