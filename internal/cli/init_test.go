package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestInitCommandCreatesFiles(t *testing.T) {
	dir := t.TempDir()
	code, out, errOut := runCLI(t, "", "init", "--dir", dir, "--yes")
	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d (stderr %q)", ExitOK, code, errOut)
	}
	for _, name := range []string{".quizzer.yml", "questions.json"} {
		path := filepath.Join(dir, name)
		if !strings.Contains(out, "Wrote "+path) {
			t.Fatalf("expected write of %s, got %q", path, out)
		}
		if _, err := os.Stat(path); err != nil {
			t.Fatalf("expected %s to exist: %v", name, err)
		}
	}

	code, out, errOut = runCLI(t, "", "validate", "--config", filepath.Join(dir, ".quizzer.yml"))
	if code != ExitOK {
		t.Fatalf("expected scaffold to validate, got %d (stderr %q)", code, errOut)
	}
	if !strings.Contains(out, "Questions OK") {
		t.Fatalf("unexpected validate output %q", out)
	}
}

func TestInitCommandRefusesOverwrite(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ".quizzer.yml"), []byte("version: 1\n"), 0o644); err != nil {
		t.Fatalf("write settings: %v", err)
	}

	code, out, errOut := runCLI(t, "", "init", "--dir", dir, "--yes")
	if code != ExitError {
		t.Fatalf("expected exit %d, got %d", ExitError, code)
	}
	if out != "" {
		t.Fatalf("expected no stdout output, got %q", out)
	}
	if !strings.Contains(errOut, "already exists") {
		t.Fatalf("expected overwrite warning, got %q", errOut)
	}

	if code, _, errOut := runCLI(t, "", "init", "--dir", dir, "--yes", "--force"); code != ExitOK {
		t.Fatalf("expected --force to overwrite, got %d (stderr %q)", code, errOut)
	}
}

func TestInitCommandPrompts(t *testing.T) {
	dir := t.TempDir()
	code, out, errOut := runCLI(t, "n\n", "init", "--dir", dir)
	if code != ExitCancelled {
		t.Fatalf("expected exit %d, got %d", ExitCancelled, code)
	}
	if !strings.Contains(out, "Create quiz files in") || !strings.Contains(errOut, "Init cancelled.") {
		t.Fatalf("expected prompt and cancellation, got %q / %q", out, errOut)
	}
	if _, err := os.Stat(filepath.Join(dir, ".quizzer.yml")); !os.IsNotExist(err) {
		t.Fatalf("expected no files after declining")
	}

	code, _, errOut = runCLI(t, "\n", "init", "--dir", dir)
	if code != ExitOK {
		t.Fatalf("expected default yes to scaffold, got %d (stderr %q)", code, errOut)
	}
}

func TestInitCommandRejectsMissingDir(t *testing.T) {
	code, _, errOut := runCLI(t, "", "init", "--dir", filepath.Join(t.TempDir(), "nope"), "--yes")
	if code != ExitError || !strings.Contains(errOut, "is not a directory") {
		t.Fatalf("expected missing dir error, got %d %q", code, errOut)
	}
}
